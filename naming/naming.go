// Package naming converts host identifiers into GraphQL enum value names.
package naming

import (
	"strings"
	"unicode"
)

// Normalize converts an identifier such as "NewHope" into the GraphQL enum value
// convention "NEW_HOPE".
//
// Words are split on '_', '-' and ' ', on a lower-case to upper-case transition
// and on a digit followed by an upper-case letter that starts a capitalized
// word ("Episode4Remaster"). The words are joined with '_' and every rune is
// upper-cased. Running Normalize on its own output returns it unchanged.
func Normalize(identifier string) string {
	runes := []rune(identifier)

	var b strings.Builder
	b.Grow(len(identifier) + 4)

	inWord := false
	for i, c := range runes {
		if isSeparator(c) {
			inWord = false
			continue
		}

		if inWord && isBoundary(runes, i) {
			inWord = false
		}
		if !inWord {
			if b.Len() > 0 {
				b.WriteByte('_')
			}
			inWord = true
		}

		b.WriteRune(unicode.ToUpper(c))
	}
	return b.String()
}

// isBoundary reports whether a new word starts at runes[i], given that
// runes[i-1] belongs to the same word.
func isBoundary(runes []rune, i int) bool {
	prev, c := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(c):
		return true
	case unicode.IsDigit(prev) && unicode.IsUpper(c):
		// Only a capitalized word counts, so "A2B" and "V2ALPHA" stay whole.
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	default:
		return false
	}
}

func isSeparator(c rune) bool {
	return c == '_' || c == '-' || c == ' '
}

// IsConventional reports whether name follows the ^[A-Z][A-Z0-9_]*$ convention.
// Explicit overrides are never required to follow it.
func IsConventional(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '_'):
		default:
			return false
		}
	}
	return true
}
