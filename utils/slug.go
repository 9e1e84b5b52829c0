package utils

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes to NFKD and removes combining marks, so
// "Zoë" and "Zoe" produce the same slug.
var stripDiacritics = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// ToMemberSlug derives the URL-safe, lowercase, hyphenated identifier
// used to address a member's views. Names that reduce to nothing fall
// back to "member-<id>".
func ToMemberSlug(name string, fallbackID int) string {
	folded, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	if slug := b.String(); slug != "" {
		return slug
	}
	return fmt.Sprintf("member-%d", fallbackID)
}
