// Package htmlsanitize strips unsafe HTML from admin-entered text fields.
//
// Sponsor, type and scholarship descriptions (and the catchy phrase) come
// from an admin-facing rich text box and are later rendered in a browser,
// so the write path sanitizes them with bluemonday's UGC policy: common
// formatting survives, scripts and event handlers do not.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func ugc() *bluemonday.Policy {
	once.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Sanitize returns s with disallowed HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc().Sanitize(s)
}

// Strings sanitizes every element of ss in place and returns it.
// Used for list fields like eligibility criteria and benefits.
func Strings(ss []string) []string {
	for i, s := range ss {
		ss[i] = Sanitize(s)
	}
	return ss
}
