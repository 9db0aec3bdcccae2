package dsl

import (
	"fmt"

	"github.com/c4dsl/c4dsl/pkg/model"
)

// externalTag is the tag emitted for elements outside the enterprise.
const externalTag = "External"

// pass holds the state of one serialization. It is discarded afterwards.
type pass struct {
	ws     *Workspace
	w      *Writer
	paths  *Paths
	top    *Scope
	allocs []Allocation
}

func (ws *Workspace) run() (*pass, error) {
	if err := ws.checkUnique(); err != nil {
		return nil, err
	}
	p := &pass{
		ws:    ws,
		w:     &Writer{},
		paths: NewPaths(),
		top:   NewScope(),
	}

	p.w.Open(fmt.Sprintf("workspace %s %s", quote(ws.name), quote(ws.description)))
	p.w.AddLine("!identifiers hierarchical")
	p.w.AddEmptyLine()

	p.w.Open("model")
	p.model()
	p.w.Close()

	if ws.hasViews() {
		p.w.AddEmptyLine()
		p.w.Open("views")
		if err := p.views(); err != nil {
			return nil, err
		}
		p.w.Close()
	}

	p.w.Close()
	return p, nil
}

// model emits every element before any relationship, so relationship
// resolution always sees the complete path map.
func (p *pass) model() {
	for _, person := range p.ws.people {
		p.person(person)
	}
	for _, s := range p.ws.systems {
		p.system(s)
	}

	if len(p.allocs) > 0 && len(p.ws.relationships) > 0 {
		p.w.AddEmptyLine()
	}
	for _, r := range p.ws.relationships {
		p.relationship(r)
	}
}

func (p *pass) allocate(scope *Scope, e model.Identifiable, parent *Allocation) Allocation {
	id := scope.Allocate(e.Name())
	a := Allocation{
		Identity: e.Identity(),
		Kind:     e.Kind(),
		Name:     e.Name(),
		ID:       id,
		Path:     id,
	}
	if parent != nil {
		a.Path = parent.Path + "." + id
		a.Parent = parent.Identity
	}
	p.paths.Register(a.Identity, a.Path)
	p.allocs = append(p.allocs, a)
	return a
}

func (p *pass) person(person *model.Person) {
	a := p.allocate(p.top, person, nil)
	line := fmt.Sprintf("%s = person %s %s", a.ID, quote(person.Name()), quote(person.Description()))
	if !person.IsExternal() {
		p.w.AddLine(line)
		return
	}
	p.w.Open(line)
	p.tags(externalTag)
	p.w.Close()
}

func (p *pass) system(s *model.SoftwareSystem) {
	a := p.allocate(p.top, s, nil)
	line := fmt.Sprintf("%s = softwareSystem %s %s", a.ID, quote(s.Name()), quote(s.Description()))
	if len(s.Containers()) == 0 && !s.IsExternal() {
		p.w.AddLine(line + " {}")
		return
	}

	p.w.Open(line)
	if s.IsExternal() {
		p.tags(externalTag)
	}
	scope := NewScope()
	for _, c := range s.Containers() {
		p.container(scope, c, &a)
	}
	p.w.Close()
}

func (p *pass) container(scope *Scope, c *model.Container, parent *Allocation) {
	a := p.allocate(scope, c, parent)
	line := fmt.Sprintf("%s = container %s %s", a.ID, quote(c.Name()), quote(c.Description()))
	if c.Technology() != "" {
		line += " " + quote(c.Technology())
	}
	if len(c.Components()) == 0 && !c.IsExternal() {
		p.w.AddLine(line + " {}")
		return
	}

	p.w.Open(line)
	if c.IsExternal() {
		p.tags(externalTag)
	}
	inner := NewScope()
	for _, cp := range c.Components() {
		p.component(inner, cp, &a)
	}
	p.w.Close()
}

// component emits a leaf line. Code elements have no DSL form and are
// not allocated.
func (p *pass) component(scope *Scope, cp *model.Component, parent *Allocation) {
	a := p.allocate(scope, cp, parent)
	line := fmt.Sprintf("%s = component %s %s", a.ID, quote(cp.Name()), quote(cp.Description()))
	if cp.Technology() != "" {
		line += " " + quote(cp.Technology())
	}
	p.w.AddLine(line)
}

func (p *pass) tags(tags ...string) {
	line := "tags"
	for _, t := range tags {
		line += " " + quote(t)
	}
	p.w.AddLine(line)
}

func (p *pass) relationship(r *model.Relationship) {
	line := fmt.Sprintf("%s -> %s %s",
		p.paths.Resolve(r.Source()), p.paths.Resolve(r.Target()), quote(r.Description()))
	if r.Technology() != "" {
		line += " " + quote(r.Technology())
	}
	p.w.AddLine(line)
}

func (p *pass) views() error {
	for _, v := range p.ws.views {
		if err := v.render(p.w, p.paths); err != nil {
			return err
		}
	}
	switch {
	case p.ws.stylesDSL != "":
		p.w.AddBlock(p.ws.stylesDSL)
	case !p.ws.styles.IsEmpty():
		p.ws.styles.render(p.w)
	}
	return nil
}
