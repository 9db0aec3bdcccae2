package model

import (
	"strings"

	"github.com/c4dsl/c4dsl/pkg/errors"
)

// ElementKind names the level of an element in the model tree.
type ElementKind string

const (
	KindPerson         ElementKind = "person"
	KindSoftwareSystem ElementKind = "softwareSystem"
	KindContainer      ElementKind = "container"
	KindComponent      ElementKind = "component"
	KindCode           ElementKind = "code"
)

var kindFromString = map[string]ElementKind{
	"person":          KindPerson,
	"softwaresystem":  KindSoftwareSystem,
	"software_system": KindSoftwareSystem,
	"system":          KindSoftwareSystem,
	"container":       KindContainer,
	"component":       KindComponent,
	"code":            KindCode,
}

func (k ElementKind) valid() bool {
	switch k {
	case KindPerson, KindSoftwareSystem, KindContainer, KindComponent, KindCode:
		return true
	}
	return false
}

// ParseKind parses an element kind, ignoring case.
func ParseKind(s string) (ElementKind, error) {
	if k, ok := kindFromString[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown element kind: %q", s)
}

// Location marks an element as inside or outside the modelled enterprise.
type Location int

const (
	Internal Location = iota
	External
)

// String returns "Internal" or "External".
func (l Location) String() string {
	if l == External {
		return "External"
	}
	return "Internal"
}

// ParseLocation parses "internal" or "external", ignoring case.
// The empty string is Internal.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "internal":
		return Internal, nil
	case "external":
		return External, nil
	}
	return Internal, errors.New(errors.ErrCodeInvalidInput, "unknown location: %q", s)
}

// ContainerType classifies a container. It is carried for collaborators and
// is not part of the DSL output.
type ContainerType string

const (
	ContainerWebApplication   ContainerType = "Web Application"
	ContainerMobileApp        ContainerType = "Mobile App"
	ContainerDesktopApp       ContainerType = "Desktop App"
	ContainerAPI              ContainerType = "API"
	ContainerDatabase         ContainerType = "Database"
	ContainerQueue            ContainerType = "Queue"
	ContainerFileSystem       ContainerType = "File System"
	ContainerServerSideWebApp ContainerType = "Server-side Web Application"
	ContainerClientSideWebApp ContainerType = "Client-side Web Application"
	ContainerOther            ContainerType = "Other"
)

// CodeElementType classifies a code element.
type CodeElementType string

const (
	CodeClass     CodeElementType = "Class"
	CodeStruct    CodeElementType = "Struct"
	CodeInterface CodeElementType = "Interface"
	CodeEnum      CodeElementType = "Enum"
	CodeFunction  CodeElementType = "Function"
	CodeMethod    CodeElementType = "Method"
	CodeModule    CodeElementType = "Module"
	CodeOther     CodeElementType = "Other"
)

// Identifiable is the capability shared by every element kind.
type Identifiable interface {
	Identity() Identity
	Kind() ElementKind
	Name() string
	Description() string
	Location() Location
}

// element holds the fields common to all kinds.
type element struct {
	id          Identity
	kind        ElementKind
	name        string
	description string
	technology  string
	location    Location
	owner       Identity
}

func (e *element) Identity() Identity  { return e.id }
func (e *element) Kind() ElementKind   { return e.kind }
func (e *element) Name() string        { return e.name }
func (e *element) Description() string { return e.description }
func (e *element) Technology() string  { return e.technology }
func (e *element) Location() Location  { return e.location }
func (e *element) IsExternal() bool    { return e.location == External }
func (e *element) owned() bool         { return !e.owner.IsZero() }

func newElement(ids IdentityAllocator, kind ElementKind, name, desc, tech string, loc Location) (element, error) {
	if ids == nil {
		return element{}, errors.New(errors.ErrCodeInvalidInput, "%s %q: identity allocator is required", kind, name)
	}
	if err := errors.ValidateName(name); err != nil {
		return element{}, errors.Wrap(errors.ErrCodeInvalidElement, err, "invalid %s", kind)
	}
	if err := errors.ValidateDescription(desc); err != nil {
		return element{}, errors.Wrap(errors.ErrCodeInvalidElement, err, "invalid %s %q", kind, name)
	}
	if err := errors.ValidateTechnology(tech); err != nil {
		return element{}, errors.Wrap(errors.ErrCodeInvalidElement, err, "invalid %s %q", kind, name)
	}
	if loc != Internal && loc != External {
		return element{}, errors.New(errors.ErrCodeInvalidElement, "invalid %s %q: unknown location %d", kind, name, loc)
	}
	return element{
		id:          ids.Next(),
		kind:        kind,
		name:        name,
		description: desc,
		technology:  tech,
		location:    loc,
	}, nil
}

// PersonConfig configures a [Person].
type PersonConfig struct {
	Name        string
	Description string
	Location    Location
}

// Person is a human user of the modelled systems.
type Person struct {
	element
}

// NewPerson validates cfg and mints a new person.
func NewPerson(ids IdentityAllocator, cfg PersonConfig) (*Person, error) {
	e, err := newElement(ids, KindPerson, cfg.Name, cfg.Description, "", cfg.Location)
	if err != nil {
		return nil, err
	}
	return &Person{element: e}, nil
}

// SoftwareSystemConfig configures a [SoftwareSystem].
type SoftwareSystemConfig struct {
	Name        string
	Description string
	Location    Location
}

// SoftwareSystem is the top level of the ownership tree.
type SoftwareSystem struct {
	element
	containers []*Container
}

// NewSoftwareSystem validates cfg and mints a new software system.
func NewSoftwareSystem(ids IdentityAllocator, cfg SoftwareSystemConfig) (*SoftwareSystem, error) {
	e, err := newElement(ids, KindSoftwareSystem, cfg.Name, cfg.Description, "", cfg.Location)
	if err != nil {
		return nil, err
	}
	return &SoftwareSystem{element: e}, nil
}

// Containers returns the owned containers in insertion order.
func (s *SoftwareSystem) Containers() []*Container { return s.containers }

// AddContainer transfers ownership of c to s.
func (s *SoftwareSystem) AddContainer(c *Container) error {
	if c == nil {
		return nilChild(&s.element)
	}
	if err := adopt(&s.element, &c.element); err != nil {
		return err
	}
	c.owner = s.id
	s.containers = append(s.containers, c)
	return nil
}

// ContainerConfig configures a [Container].
type ContainerConfig struct {
	Name        string
	Description string
	Technology  string
	Type        ContainerType
	Location    Location
}

// Container is a deployable unit inside a software system.
type Container struct {
	element
	containerType ContainerType
	components    []*Component
}

// NewContainer validates cfg and mints a new container.
func NewContainer(ids IdentityAllocator, cfg ContainerConfig) (*Container, error) {
	e, err := newElement(ids, KindContainer, cfg.Name, cfg.Description, cfg.Technology, cfg.Location)
	if err != nil {
		return nil, err
	}
	return &Container{element: e, containerType: cfg.Type}, nil
}

// Type returns the container classification.
func (c *Container) Type() ContainerType { return c.containerType }

// Components returns the owned components in insertion order.
func (c *Container) Components() []*Component { return c.components }

// AddComponent transfers ownership of cp to c.
func (c *Container) AddComponent(cp *Component) error {
	if cp == nil {
		return nilChild(&c.element)
	}
	if err := adopt(&c.element, &cp.element); err != nil {
		return err
	}
	cp.owner = c.id
	c.components = append(c.components, cp)
	return nil
}

// ComponentConfig configures a [Component].
type ComponentConfig struct {
	Name        string
	Description string
	Technology  string
	Location    Location
}

// Component is a grouping of functionality inside a container.
type Component struct {
	element
	code []*CodeElement
}

// NewComponent validates cfg and mints a new component.
func NewComponent(ids IdentityAllocator, cfg ComponentConfig) (*Component, error) {
	e, err := newElement(ids, KindComponent, cfg.Name, cfg.Description, cfg.Technology, cfg.Location)
	if err != nil {
		return nil, err
	}
	return &Component{element: e}, nil
}

// CodeElements returns the owned code elements in insertion order.
func (c *Component) CodeElements() []*CodeElement { return c.code }

// AddCodeElement transfers ownership of ce to c.
func (c *Component) AddCodeElement(ce *CodeElement) error {
	if ce == nil {
		return nilChild(&c.element)
	}
	if err := adopt(&c.element, &ce.element); err != nil {
		return err
	}
	ce.owner = c.id
	c.code = append(c.code, ce)
	return nil
}

// CodeElementConfig configures a [CodeElement].
type CodeElementConfig struct {
	Name        string
	Description string
	Technology  string
	Type        CodeElementType
	Location    Location
}

// CodeElement is a class, function or similar unit inside a component.
type CodeElement struct {
	element
	codeType CodeElementType
}

// NewCodeElement validates cfg and mints a new code element.
func NewCodeElement(ids IdentityAllocator, cfg CodeElementConfig) (*CodeElement, error) {
	e, err := newElement(ids, KindCode, cfg.Name, cfg.Description, cfg.Technology, cfg.Location)
	if err != nil {
		return nil, err
	}
	return &CodeElement{element: e, codeType: cfg.Type}, nil
}

// Type returns the code element classification.
func (c *CodeElement) Type() CodeElementType { return c.codeType }

func nilChild(parent *element) error {
	return errors.New(errors.ErrCodeInvalidHierarchy, "%s %q: cannot add nil child", parent.kind, parent.name)
}

// adopt checks that child can be owned by parent. Ownership is exclusive.
func adopt(parent, child *element) error {
	if child.id == parent.id {
		return errors.New(errors.ErrCodeInvalidHierarchy, "%s %q cannot own itself", parent.kind, parent.name)
	}
	if child.owned() {
		return errors.New(errors.ErrCodeInvalidHierarchy, "%s %q already has a parent", child.kind, child.name)
	}
	return nil
}

var (
	_ Identifiable = (*Person)(nil)
	_ Identifiable = (*SoftwareSystem)(nil)
	_ Identifiable = (*Container)(nil)
	_ Identifiable = (*Component)(nil)
	_ Identifiable = (*CodeElement)(nil)
)
