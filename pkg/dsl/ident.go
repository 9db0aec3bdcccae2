package dsl

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IdentifierSet holds the identifiers already allocated in one scope.
type IdentifierSet map[string]struct{}

// Has reports whether id is allocated.
func (s IdentifierSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add marks id as allocated.
func (s IdentifierSet) Add(id string) { s[id] = struct{}{} }

// Generate derives a short identifier from name: the lower-cased first
// character of every whitespace-separated token, concatenated.
//
//	Generate("Web App")  // "wa"
//	Generate("   ")      // ""
func Generate(name string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// GenerateUnique returns Generate(name), or Generate(name) followed by the
// smallest positive integer suffix not yet in used. The result is added to
// used.
//
//	used := IdentifierSet{}
//	GenerateUnique("User", used) // "u"
//	GenerateUnique("User", used) // "u1"
//	GenerateUnique("User", used) // "u2"
func GenerateUnique(name string, used IdentifierSet) string {
	return claim(Generate(name), used)
}

func claim(base string, used IdentifierSet) string {
	id := base
	for i := 1; used.Has(id); i++ {
		id = base + strconv.Itoa(i)
	}
	used.Add(id)
	return id
}

// Scope allocates identifiers that are unique among siblings: the top level
// of a workspace, or the children of one element.
//
// Unlike [GenerateUnique], a Scope passes the generated slug through
// [FormatIdentifier] first, so every identifier it returns is valid in the
// DSL grammar.
type Scope struct {
	used IdentifierSet
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{used: IdentifierSet{}}
}

// Allocate returns a fresh identifier for name.
func (s *Scope) Allocate(name string) string {
	return claim(FormatIdentifier(Generate(name)), s.used)
}
