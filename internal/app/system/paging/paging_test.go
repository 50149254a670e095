package paging_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/scholarhub/internal/app/system/paging"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"page=1", 1},
		{"page=7", 7},
		{"page=0", 1},
		{"page=-3", 1},
		{"page=abc", 1},
		{"page=2.5", 1},
		{"page=99", 99},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/admin/view-all-scholarships?"+tt.query, nil)
			if got := paging.ParsePage(r); got != tt.want {
				t.Errorf("ParsePage(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	if got := paging.Skip(1); got != 0 {
		t.Errorf("Skip(1) = %d, want 0", got)
	}
	if got := paging.Skip(3); got != 10 {
		t.Errorf("Skip(3) = %d, want 10", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		want  int64
	}{
		{0, 0},
		{1, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{11, 3},
	}
	for _, tt := range tests {
		if got := paging.TotalPages(tt.total); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}
