package model

import (
	"github.com/c4dsl/c4dsl/pkg/errors"
)

// Declaration describes one element of a flat, parent-referencing model.
// Parent names the owning element by its Name; persons and software systems
// must leave it empty.
type Declaration struct {
	Kind          ElementKind
	Name          string
	Description   string
	Technology    string
	Location      Location
	Parent        string
	ContainerType ContainerType
	CodeType      CodeElementType
}

// parentKind maps each kind to the kind its parent must have.
var parentKind = map[ElementKind]ElementKind{
	KindContainer: KindSoftwareSystem,
	KindComponent: KindContainer,
	KindCode:      KindComponent,
}

// Assembly is the owned tree built from declarations.
type Assembly struct {
	People  []*Person
	Systems []*SoftwareSystem

	byName map[string]Identifiable
}

// Lookup returns the element declared under name.
func (a *Assembly) Lookup(name string) (Identifiable, bool) {
	e, ok := a.byName[name]
	return e, ok
}

// Endpoint returns a typed endpoint for a declared name, or a raw endpoint
// when name was not declared.
func (a *Assembly) Endpoint(name string) Endpoint {
	if e, ok := a.byName[name]; ok {
		return Ref(e)
	}
	return Raw(name)
}

// Assemble builds the ownership tree described by decls.
//
// Elements are constructed in declaration order and children are attached to
// their parents in declaration order. Assemble returns an error, and no
// partial assembly, if:
//   - a declaration has an unknown kind or invalid fields
//   - two declarations share a name
//   - a parent chain revisits a name ([errors.CircularError])
//   - a declared parent is missing or of the wrong kind ([errors.HierarchyError])
func Assemble(ids IdentityAllocator, decls []Declaration) (*Assembly, error) {
	index := make(map[string]*Declaration, len(decls))
	for i := range decls {
		d := &decls[i]
		if !d.Kind.valid() {
			return nil, errors.New(errors.ErrCodeInvalidElement, "%q: unknown element kind %q", d.Name, d.Kind)
		}
		if _, dup := index[d.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidHierarchy, "duplicate declaration %q", d.Name)
		}
		index[d.Name] = d
	}

	for i := range decls {
		if err := checkChain(index, &decls[i]); err != nil {
			return nil, err
		}
	}
	for i := range decls {
		if err := checkParent(index, &decls[i]); err != nil {
			return nil, err
		}
	}

	a := &Assembly{byName: make(map[string]Identifiable, len(decls))}
	built := make([]Identifiable, len(decls))
	for i, d := range decls {
		e, err := build(ids, d)
		if err != nil {
			return nil, err
		}
		built[i] = e
		a.byName[d.Name] = e
	}

	for i, d := range decls {
		if err := attach(a, built[i], d); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// checkChain walks the parent chain of d and fails on the first repeated name.
func checkChain(index map[string]*Declaration, d *Declaration) error {
	seen := map[string]bool{d.Name: true}
	chain := []string{d.Name}
	for cur := d.Parent; cur != ""; {
		chain = append(chain, cur)
		if seen[cur] {
			return errors.Wrap(errors.ErrCodeCircularHierarchy,
				&errors.CircularError{Element: cur, Chain: chain},
				"invalid hierarchy for %q", d.Name)
		}
		seen[cur] = true
		next, ok := index[cur]
		if !ok {
			return nil
		}
		cur = next.Parent
	}
	return nil
}

func checkParent(index map[string]*Declaration, d *Declaration) error {
	want, nested := parentKind[d.Kind]
	if !nested {
		if d.Parent != "" {
			return errors.New(errors.ErrCodeInvalidHierarchy, "%s %q cannot declare a parent (got %q)", d.Kind, d.Name, d.Parent)
		}
		return nil
	}
	if d.Parent == "" {
		return errors.New(errors.ErrCodeInvalidHierarchy, "%s %q must declare a %s parent", d.Kind, d.Name, want)
	}
	p, ok := index[d.Parent]
	if !ok {
		return errors.Wrap(errors.ErrCodeInvalidHierarchy,
			&errors.HierarchyError{Child: d.Name, Expected: string(want), Parent: d.Parent},
			"invalid parent for %s", d.Kind)
	}
	if p.Kind != want {
		return errors.Wrap(errors.ErrCodeInvalidHierarchy,
			&errors.HierarchyError{Child: d.Name, Expected: string(want), Parent: d.Parent, Actual: string(p.Kind)},
			"invalid parent for %s", d.Kind)
	}
	return nil
}

func build(ids IdentityAllocator, d Declaration) (Identifiable, error) {
	switch d.Kind {
	case KindPerson:
		return NewPerson(ids, PersonConfig{Name: d.Name, Description: d.Description, Location: d.Location})
	case KindSoftwareSystem:
		return NewSoftwareSystem(ids, SoftwareSystemConfig{Name: d.Name, Description: d.Description, Location: d.Location})
	case KindContainer:
		return NewContainer(ids, ContainerConfig{
			Name: d.Name, Description: d.Description, Technology: d.Technology,
			Type: d.ContainerType, Location: d.Location,
		})
	case KindComponent:
		return NewComponent(ids, ComponentConfig{
			Name: d.Name, Description: d.Description, Technology: d.Technology, Location: d.Location,
		})
	default:
		return NewCodeElement(ids, CodeElementConfig{
			Name: d.Name, Description: d.Description, Technology: d.Technology,
			Type: d.CodeType, Location: d.Location,
		})
	}
}

// attach places e in the tree. Parent kinds were checked, so the type
// assertions hold.
func attach(a *Assembly, e Identifiable, d Declaration) error {
	switch v := e.(type) {
	case *Person:
		a.People = append(a.People, v)
	case *SoftwareSystem:
		a.Systems = append(a.Systems, v)
	case *Container:
		return a.byName[d.Parent].(*SoftwareSystem).AddContainer(v)
	case *Component:
		return a.byName[d.Parent].(*Container).AddComponent(v)
	case *CodeElement:
		return a.byName[d.Parent].(*Component).AddCodeElement(v)
	}
	return nil
}
