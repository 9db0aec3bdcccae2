package dsl

import (
	"fmt"

	"github.com/c4dsl/c4dsl/pkg/model"
)

// Paths maps element identities to hierarchical paths such as "a.wa.au".
type Paths struct {
	m map[model.Identity]string
}

// NewPaths returns an empty resolver.
func NewPaths() *Paths {
	return &Paths{m: make(map[model.Identity]string)}
}

// Register records the path of id. Registering an identity twice means the
// model walk visited an element twice, and panics.
func (p *Paths) Register(id model.Identity, path string) {
	if _, dup := p.m[id]; dup {
		panic(fmt.Sprintf("dsl: identity %q registered twice", id))
	}
	p.m[id] = path
}

// Lookup returns the registered path of id.
func (p *Paths) Lookup(id model.Identity) (string, bool) {
	path, ok := p.m[id]
	return path, ok
}

// Len returns the number of registered identities.
func (p *Paths) Len() int { return len(p.m) }

// Resolve returns the DSL reference for ep.
//
// A registered identity resolves to its path. Anything else falls back to a
// reference the DSL can still parse: the element's own short identifier for
// typed endpoints, or the formatted raw string for raw endpoints. Elements
// declared outside the walked model are referenced this way.
func (p *Paths) Resolve(ep model.Endpoint) string {
	if !ep.IsRaw() {
		if path, ok := p.m[ep.Identity]; ok {
			return path
		}
		return FormatIdentifier(Generate(ep.Name))
	}
	return FormatReference(ep.Name)
}
