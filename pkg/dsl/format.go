package dsl

import (
	"strings"
	"unicode"
)

// placeholderIdentifier replaces identifiers that format to nothing.
const placeholderIdentifier = "element"

// wildcard is passed through unchanged by FormatReference.
const wildcard = "*"

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EscapeString escapes s for use inside a double-quoted DSL string literal.
// Backslashes are escaped before quotes.
func EscapeString(s string) string {
	return stringEscaper.Replace(s)
}

// quote returns s escaped and wrapped in double quotes.
func quote(s string) string {
	return `"` + EscapeString(s) + `"`
}

// FormatIdentifier turns s into a bare DSL identifier. Every character that
// is not a letter, digit or underscore becomes an underscore, and a leading
// underscore is added when the result does not start with an ASCII letter
// or underscore. Letters outside ASCII are kept. The empty string becomes
// "element".
func FormatIdentifier(s string) string {
	if s == "" {
		return placeholderIdentifier
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i, r := range s {
		if !isIdentPart(r) {
			r = '_'
		}
		if i == 0 && !isIdentStart(r) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatReference formats a dotted reference such as "a.wa.au" segment by
// segment. The wildcard "*" is returned unchanged.
func FormatReference(ref string) string {
	if ref == wildcard {
		return ref
	}
	parts := strings.Split(ref, ".")
	for i, p := range parts {
		parts[i] = FormatIdentifier(p)
	}
	return strings.Join(parts, ".")
}

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
