// Package slug derives and validates URL slugs for organizations.
package slug

import (
	"regexp"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Pattern accepts lowercase letters, digits, and hyphens only.
var Pattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Valid reports whether s is an acceptable client-supplied slug.
func Valid(s string) bool {
	return s != "" && Pattern.MatchString(s)
}

// Derive builds a slug from a display name: fold case and diacritics,
// drop everything outside [a-z0-9 ], then turn whitespace runs into
// single hyphens. "Café São Paulo" becomes "cafe-sao-paulo".
func Derive(name string) string {
	folded := text.Fold(name)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
