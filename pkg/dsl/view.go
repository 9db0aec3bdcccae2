package dsl

import (
	"github.com/c4dsl/c4dsl/pkg/errors"
	"github.com/c4dsl/c4dsl/pkg/model"
)

// ViewType is the keyword that opens a view declaration.
type ViewType string

const (
	SystemLandscapeView ViewType = "systemLandscape"
	SystemContextView   ViewType = "systemContext"
	ContainerView       ViewType = "container"
	ComponentView       ViewType = "component"
)

// Valid reports whether t is a known view type.
func (t ViewType) Valid() bool {
	switch t {
	case SystemLandscapeView, SystemContextView, ContainerView, ComponentView:
		return true
	}
	return false
}

// AutoLayout is the rank direction of an automatic layout.
type AutoLayout string

const (
	AutoLayoutNone      AutoLayout = ""
	AutoLayoutTopBottom AutoLayout = "tb"
	AutoLayoutBottomTop AutoLayout = "bt"
	AutoLayoutLeftRight AutoLayout = "lr"
	AutoLayoutRightLeft AutoLayout = "rl"
)

func (a AutoLayout) valid() bool {
	switch a {
	case AutoLayoutNone, AutoLayoutTopBottom, AutoLayoutBottomTop, AutoLayoutLeftRight, AutoLayoutRightLeft:
		return true
	}
	return false
}

// ViewConfig describes one view.
//
// Element is the subject of the view and is ignored for system landscape
// views. Include and Exclude entries are element references ("a.wa") or the
// wildcard "*", emitted in order.
type ViewConfig struct {
	Type       ViewType
	Element    model.Endpoint
	Title      string
	Include    []string
	Exclude    []string
	AutoLayout AutoLayout
}

func (v ViewConfig) validate() error {
	if !v.Type.Valid() {
		return errors.New(errors.ErrCodeTemplate, "view %q: unknown view type %q", v.Title, v.Type)
	}
	if v.Type != SystemLandscapeView && v.Element.IsZero() {
		return errors.New(errors.ErrCodeTemplate, "%s view %q: element is required", v.Type, v.Title)
	}
	if !v.AutoLayout.valid() {
		return errors.New(errors.ErrCodeTemplate, "view %q: unknown autoLayout direction %q", v.Title, v.AutoLayout)
	}
	return nil
}

// render writes the view using paths to resolve its references.
func (v ViewConfig) render(w *Writer, paths *Paths) error {
	if err := v.validate(); err != nil {
		return err
	}
	if v.Type == SystemLandscapeView {
		w.Open(string(v.Type) + " " + quote(v.Title))
	} else {
		w.Open(string(v.Type) + " " + paths.Resolve(v.Element) + " " + quote(v.Title))
	}
	for _, ref := range v.Include {
		w.AddLine("include " + FormatReference(ref))
	}
	for _, ref := range v.Exclude {
		w.AddLine("exclude " + FormatReference(ref))
	}
	if v.AutoLayout != AutoLayoutNone {
		w.AddLine("autoLayout " + string(v.AutoLayout))
	}
	w.Close()
	return nil
}
