package dsl

import (
	"io"

	"github.com/c4dsl/c4dsl/pkg/errors"
	"github.com/c4dsl/c4dsl/pkg/model"
)

// WorkspaceConfig configures a [Workspace].
type WorkspaceConfig struct {
	Name        string
	Description string
}

// Workspace accumulates the model, views and styles of one DSL document.
//
// People, software systems, relationships and views are emitted in the order
// they were added. A Workspace is not safe for concurrent use.
type Workspace struct {
	name          string
	description   string
	people        []*model.Person
	systems       []*model.SoftwareSystem
	relationships []*model.Relationship
	views         []ViewConfig
	styles        Styles
	stylesDSL     string
}

// NewWorkspace validates cfg and returns an empty workspace.
func NewWorkspace(cfg WorkspaceConfig) (*Workspace, error) {
	if err := errors.ValidateName(cfg.Name); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid workspace")
	}
	if err := errors.ValidateDescription(cfg.Description); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid workspace %q", cfg.Name)
	}
	return &Workspace{name: cfg.Name, description: cfg.Description}, nil
}

func (ws *Workspace) Name() string        { return ws.name }
func (ws *Workspace) Description() string { return ws.description }

// People returns the people in insertion order.
func (ws *Workspace) People() []*model.Person { return ws.people }

// Systems returns the software systems in insertion order.
func (ws *Workspace) Systems() []*model.SoftwareSystem { return ws.systems }

// Relationships returns the relationships in insertion order.
func (ws *Workspace) Relationships() []*model.Relationship { return ws.relationships }

// Views returns the views in insertion order.
func (ws *Workspace) Views() []ViewConfig { return ws.views }

// AddPerson appends p to the model.
func (ws *Workspace) AddPerson(p *model.Person) error {
	if p == nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot add nil person")
	}
	ws.people = append(ws.people, p)
	return nil
}

// AddSoftwareSystem appends s, including its containers and components.
func (ws *Workspace) AddSoftwareSystem(s *model.SoftwareSystem) error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot add nil software system")
	}
	ws.systems = append(ws.systems, s)
	return nil
}

// AddRelationship appends r. Relationships keep their insertion order in the
// output regardless of where their endpoints are declared.
func (ws *Workspace) AddRelationship(r *model.Relationship) error {
	if r == nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot add nil relationship")
	}
	ws.relationships = append(ws.relationships, r)
	return nil
}

// AddView appends a view. Views are validated when serialized.
func (ws *Workspace) AddView(v ViewConfig) {
	ws.views = append(ws.views, v)
}

// AddElementStyle appends an element style.
func (ws *Workspace) AddElementStyle(s ElementStyle) {
	ws.styles.Elements = append(ws.styles.Elements, s)
}

// AddRelationshipStyle appends a relationship style.
func (ws *Workspace) AddRelationshipStyle(s RelationshipStyle) {
	ws.styles.Relationships = append(ws.styles.Relationships, s)
}

// SetStylesDSL supplies an already rendered styles block. When set it is
// spliced into the views section instead of the styles built with
// AddElementStyle and AddRelationshipStyle.
func (ws *Workspace) SetStylesDSL(block string) {
	ws.stylesDSL = block
}

// Serialize renders the whole document. On error no output is produced.
func (ws *Workspace) Serialize() (string, error) {
	p, err := ws.run()
	if err != nil {
		return "", err
	}
	return p.w.String(), nil
}

// WriteTo writes the serialized document to w.
func (ws *Workspace) WriteTo(w io.Writer) (int64, error) {
	s, err := ws.Serialize()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s)
	if err != nil {
		return int64(n), errors.Wrap(errors.ErrCodeTemplate, err, "write workspace %q", ws.name)
	}
	return int64(n), nil
}

// Index runs the model walk and returns the identifier allocations.
func (ws *Workspace) Index() (*Index, error) {
	p, err := ws.run()
	if err != nil {
		return nil, err
	}
	return &Index{Allocations: p.allocs, paths: p.paths}, nil
}

// Allocation records the identifier and path given to one element.
type Allocation struct {
	Identity model.Identity
	Kind     model.ElementKind
	Name     string
	ID       string
	Path     string
	Parent   model.Identity
}

// Index is the result of a model walk, in walk order.
type Index struct {
	Allocations []Allocation
	paths       *Paths
}

// Resolve returns the DSL reference for ep.
func (ix *Index) Resolve(ep model.Endpoint) string {
	return ix.paths.Resolve(ep)
}

// Lookup returns the allocation for id.
func (ix *Index) Lookup(id model.Identity) (Allocation, bool) {
	for _, a := range ix.Allocations {
		if a.Identity == id {
			return a, true
		}
	}
	return Allocation{}, false
}

func (ws *Workspace) hasViews() bool {
	return len(ws.views) > 0 || !ws.styles.IsEmpty() || ws.stylesDSL != ""
}

// checkUnique rejects elements added to the workspace more than once.
func (ws *Workspace) checkUnique() error {
	seen := make(map[model.Identity]bool)
	check := func(e model.Identifiable) error {
		if seen[e.Identity()] {
			return errors.New(errors.ErrCodeDuplicateElement, "%s %q was added more than once", e.Kind(), e.Name())
		}
		seen[e.Identity()] = true
		return nil
	}
	for _, p := range ws.people {
		if err := check(p); err != nil {
			return err
		}
	}
	for _, s := range ws.systems {
		if err := check(s); err != nil {
			return err
		}
		for _, c := range s.Containers() {
			if err := check(c); err != nil {
				return err
			}
			for _, cp := range c.Components() {
				if err := check(cp); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
