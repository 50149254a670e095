// Package slug derives URL-safe identifiers from titles and names.
//
// Slugs are a write-path concern: the stores call Make whenever the source
// title/name is set or changes, so the stored slug can never drift from its
// source and is never directly settable by clients.
package slug

import (
	"strings"
	"unicode"
)

// Make converts s to a lowercase, hyphen-separated slug. Runs of
// non-alphanumeric characters collapse into a single hyphen, and leading or
// trailing hyphens are dropped: "Tata Trust  Merit!" → "tata-trust-merit".
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
