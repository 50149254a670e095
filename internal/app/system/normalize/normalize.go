// Package normalize holds small input-normalization helpers shared by the
// login and entity write paths.
package normalize

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Email trims whitespace and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Title trims surrounding whitespace but preserves case for display.
func Title(s string) string {
	return strings.TrimSpace(s)
}

// TitleCI folds a title for case-insensitive comparison and unique
// indexing. Folding (not just lowercasing) also strips diacritics so
// "Réseau" and "Reseau" collide, matching the index semantics.
func TitleCI(s string) string {
	return text.Fold(strings.TrimSpace(s))
}
