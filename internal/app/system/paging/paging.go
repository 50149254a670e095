// Package paging implements page-number pagination for the scholarship
// listing: a fixed page size of 5, a 1-based page parameter that falls
// back to 1 when absent or malformed, and ceiling division for the total
// page count.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the fixed number of scholarships per listing page.
const PageSize = 5

// ParsePage extracts the 1-based "page" query parameter.
// Non-numeric or sub-1 values fall back to page 1; pages past the end are
// legal and simply yield an empty result set.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Skip returns the number of documents to skip for the given page.
func Skip(page int) int64 {
	return int64(page-1) * PageSize
}

// TotalPages returns ceil(total/PageSize). Zero records means zero pages.
func TotalPages(total int64) int64 {
	return (total + PageSize - 1) / PageSize
}
