package slug_test

import (
	"testing"

	"github.com/dalemusser/scholarhub/internal/app/system/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Merit Scholarship", "merit-scholarship"},
		{"Tata Trust  Merit!", "tata-trust-merit"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-Slugged", "already-slugged"},
		{"UPPER CASE", "upper-case"},
		{"punct!!!only???sep", "punct-only-sep"},
		{"2026 Post-Matric Award", "2026-post-matric-award"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := slug.Make(tt.input)
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMake_TitleChangeKeepsDerivation(t *testing.T) {
	// Updating a title must produce the slugified form of the new title,
	// independent of what the slug was before.
	before := slug.Make("Old Title")
	after := slug.Make("New Title Entirely")
	if before == after {
		t.Fatal("expected distinct slugs for distinct titles")
	}
	if after != "new-title-entirely" {
		t.Errorf("got %q, want %q", after, "new-title-entirely")
	}
}
