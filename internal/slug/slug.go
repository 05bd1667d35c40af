// Package slug derives URL-safe ASCII slugs from arbitrary titles. Slugs
// identify stories in routes and in JSON-LD ids, so the mapping must be
// deterministic.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// From converts s into a lowercase hyphen-separated slug: accents are
// stripped via NFD decomposition, anything non-alphanumeric becomes a
// hyphen, and runs of hyphens collapse.
func From(s string) string {
	flat, _, err := transform.String(deaccent, s)
	if err != nil {
		flat = s
	}
	flat = strings.ToLower(flat)

	var b strings.Builder
	b.Grow(len(flat))
	lastHyphen := true // suppress leading hyphen
	for _, r := range flat {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
