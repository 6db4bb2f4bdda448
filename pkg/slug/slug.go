// Package slug derives URL-safe identifiers from folder names. Every id in the
// catalog is produced by Slugify, and image lookups re-derive ids with the same
// function, so the two always agree.
package slug

import "strings"

// Slugify lowercases text, collapses every run of non-alphanumeric characters
// into a single hyphen and strips leading/trailing hyphens. It is total and
// idempotent.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
