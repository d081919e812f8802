// Package slug derives URL-safe organization identifiers from display names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"deskhive/internal/shared/constants"
)

// stripDiacritics decomposes to NFD, drops combining marks, and recomposes.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make derives a slug: lowercase, diacritics stripped, non-alphanumeric runs
// collapsed to single hyphens, leading/trailing hyphens trimmed, truncated to
// 50 characters. "Acme Corp" becomes "acme-corp".
func Make(name string) string {
	folded, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // swallow leading separators
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	s := strings.Trim(b.String(), "-")
	if len(s) > constants.MaxSlugLength {
		s = strings.Trim(s[:constants.MaxSlugLength], "-")
	}
	return s
}

// IsValid checks whether s is a well-formed slug.
func IsValid(s string) bool {
	if s == "" || len(s) > constants.MaxSlugLength {
		return false
	}
	return s == Make(s)
}
