package indexes

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestKeySig(t *testing.T) {
	tests := []struct {
		name string
		keys bson.D
		want string
	}{
		{"single", bson.D{{Key: "email", Value: 1}}, "email:1"},
		{"compound", bson.D{{Key: "is_active", Value: 1}, {Key: "title", Value: 1}}, "is_active:1, title:1"},
		{"descending", bson.D{{Key: "created_at", Value: -1}}, "created_at:-1"},
		{"empty", bson.D{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keySig(tt.keys); got != tt.want {
				t.Errorf("keySig() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSameUnique(t *testing.T) {
	tr, fa := true, false
	tests := []struct {
		name string
		a, b *bool
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs false", nil, &fa, true},
		{"nil vs true", nil, &tr, false},
		{"true vs true", &tr, &tr, true},
		{"true vs false", &tr, &fa, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameUnique(tt.a, tt.b); got != tt.want {
				t.Errorf("sameUnique() = %v, want %v", got, tt.want)
			}
		})
	}
}
