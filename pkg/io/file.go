package io

// File is the on-disk form of a workspace. Elements form a flat list and
// refer to their owner by name; relationships and views refer to elements by
// name too. A name that matches no element is passed through as a raw DSL
// reference.
type File struct {
	Name          string         `json:"name" toml:"name" yaml:"name"`
	Description   string         `json:"description" toml:"description" yaml:"description"`
	Elements      []Element      `json:"elements,omitempty" toml:"elements,omitempty" yaml:"elements,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty" toml:"relationships,omitempty" yaml:"relationships,omitempty"`
	Views         []View         `json:"views,omitempty" toml:"views,omitempty" yaml:"views,omitempty"`
	Styles        Styles         `json:"styles,omitzero" toml:"styles,omitempty" yaml:"styles,omitempty"`
}

type Element struct {
	Kind        string `json:"kind" toml:"kind" yaml:"kind"`
	Name        string `json:"name" toml:"name" yaml:"name"`
	Description string `json:"description" toml:"description" yaml:"description"`
	Technology  string `json:"technology,omitempty" toml:"technology,omitempty" yaml:"technology,omitempty"`
	Location    string `json:"location,omitempty" toml:"location,omitempty" yaml:"location,omitempty"`
	Parent      string `json:"parent,omitempty" toml:"parent,omitempty" yaml:"parent,omitempty"`
	// Type is the container type or code element type.
	Type string `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`
}

type Relationship struct {
	Source      string `json:"source" toml:"source" yaml:"source"`
	Target      string `json:"target" toml:"target" yaml:"target"`
	Description string `json:"description" toml:"description" yaml:"description"`
	Technology  string `json:"technology,omitempty" toml:"technology,omitempty" yaml:"technology,omitempty"`
	Style       string `json:"style,omitempty" toml:"style,omitempty" yaml:"style,omitempty"`
}

type View struct {
	Type       string   `json:"type" toml:"type" yaml:"type"`
	Element    string   `json:"element,omitempty" toml:"element,omitempty" yaml:"element,omitempty"`
	Title      string   `json:"title" toml:"title" yaml:"title"`
	Include    []string `json:"include,omitempty" toml:"include,omitempty" yaml:"include,omitempty"`
	Exclude    []string `json:"exclude,omitempty" toml:"exclude,omitempty" yaml:"exclude,omitempty"`
	AutoLayout string   `json:"autoLayout,omitempty" toml:"autoLayout,omitempty" yaml:"autoLayout,omitempty"`
}

// Styles holds element and relationship styles, or a pre-rendered DSL
// styles block that replaces them.
type Styles struct {
	Elements      []ElementStyle      `json:"elements,omitempty" toml:"elements,omitempty" yaml:"elements,omitempty"`
	Relationships []RelationshipStyle `json:"relationships,omitempty" toml:"relationships,omitempty" yaml:"relationships,omitempty"`
	DSL           string              `json:"dsl,omitempty" toml:"dsl,omitempty" yaml:"dsl,omitempty"`
}

type ElementStyle struct {
	Tag         string `json:"tag" toml:"tag" yaml:"tag"`
	Background  string `json:"background,omitempty" toml:"background,omitempty" yaml:"background,omitempty"`
	Color       string `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
	Shape       string `json:"shape,omitempty" toml:"shape,omitempty" yaml:"shape,omitempty"`
	Size        int    `json:"size,omitempty" toml:"size,omitempty" yaml:"size,omitempty"`
	Stroke      string `json:"stroke,omitempty" toml:"stroke,omitempty" yaml:"stroke,omitempty"`
	StrokeWidth int    `json:"strokeWidth,omitempty" toml:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`
}

type RelationshipStyle struct {
	Tag       string `json:"tag" toml:"tag" yaml:"tag"`
	Thickness int    `json:"thickness,omitempty" toml:"thickness,omitempty" yaml:"thickness,omitempty"`
	Color     string `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
	Router    string `json:"router,omitempty" toml:"router,omitempty" yaml:"router,omitempty"`
	Dashed    *bool  `json:"dashed,omitempty" toml:"dashed,omitempty" yaml:"dashed,omitempty"`
}

// IsZero reports whether no styles are set.
func (s Styles) IsZero() bool {
	return len(s.Elements) == 0 && len(s.Relationships) == 0 && s.DSL == ""
}
