package model

import (
	"strings"

	"github.com/c4dsl/c4dsl/pkg/errors"
)

// InteractionStyle describes how the source talks to the target.
type InteractionStyle int

const (
	Synchronous InteractionStyle = iota
	Asynchronous
	Bidirectional
)

// String returns the style name.
func (s InteractionStyle) String() string {
	switch s {
	case Asynchronous:
		return "Asynchronous"
	case Bidirectional:
		return "Bidirectional"
	}
	return "Synchronous"
}

// ParseInteractionStyle parses a style name, ignoring case.
// The empty string is Synchronous.
func ParseInteractionStyle(s string) (InteractionStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sync", "synchronous":
		return Synchronous, nil
	case "async", "asynchronous":
		return Asynchronous, nil
	case "bidirectional":
		return Bidirectional, nil
	}
	return Synchronous, errors.New(errors.ErrCodeInvalidInput, "unknown interaction style: %q", s)
}

// Endpoint is one side of a relationship or the subject of a view.
//
// A typed endpoint carries the element's identity and name; a raw endpoint
// only carries a reference string for elements that are not part of the
// model being serialized.
type Endpoint struct {
	Identity Identity
	Kind     ElementKind
	Name     string
}

// Ref returns a typed endpoint for e.
func Ref(e Identifiable) Endpoint {
	return Endpoint{Identity: e.Identity(), Kind: e.Kind(), Name: e.Name()}
}

// Raw returns an endpoint for a bare string reference such as "x" or "a.wa".
func Raw(ref string) Endpoint {
	return Endpoint{Name: ref}
}

// IsRaw reports whether the endpoint has no identity.
func (e Endpoint) IsRaw() bool { return e.Identity.IsZero() }

// IsZero reports whether the endpoint refers to nothing.
func (e Endpoint) IsZero() bool { return e.Identity.IsZero() && e.Name == "" }

// RelationshipConfig configures a [Relationship].
type RelationshipConfig struct {
	Source      Endpoint
	Target      Endpoint
	Description string
	Technology  string
	Style       InteractionStyle
}

// Relationship is a directed, described link between two endpoints.
type Relationship struct {
	source      Endpoint
	target      Endpoint
	description string
	technology  string
	style       InteractionStyle
}

// NewRelationship validates cfg and returns the relationship.
func NewRelationship(cfg RelationshipConfig) (*Relationship, error) {
	if cfg.Source.IsZero() {
		return nil, errors.New(errors.ErrCodeInvalidElement, "relationship source is required")
	}
	if cfg.Target.IsZero() {
		return nil, errors.New(errors.ErrCodeInvalidElement, "relationship target is required")
	}
	if err := errors.ValidateDescription(cfg.Description); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidElement, err, "invalid relationship %s -> %s", cfg.Source.Name, cfg.Target.Name)
	}
	if err := errors.ValidateTechnology(cfg.Technology); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidElement, err, "invalid relationship %s -> %s", cfg.Source.Name, cfg.Target.Name)
	}
	if cfg.Style < Synchronous || cfg.Style > Bidirectional {
		return nil, errors.New(errors.ErrCodeInvalidElement, "unknown interaction style %d", cfg.Style)
	}
	return &Relationship{
		source:      cfg.Source,
		target:      cfg.Target,
		description: cfg.Description,
		technology:  cfg.Technology,
		style:       cfg.Style,
	}, nil
}

func (r *Relationship) Source() Endpoint                   { return r.source }
func (r *Relationship) Target() Endpoint                   { return r.target }
func (r *Relationship) Description() string                { return r.description }
func (r *Relationship) Technology() string                 { return r.technology }
func (r *Relationship) InteractionStyle() InteractionStyle { return r.style }
