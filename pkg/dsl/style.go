package dsl

import (
	"regexp"
	"strconv"
)

// Shape is an element shape keyword.
type Shape string

const (
	ShapeBox                   Shape = "Box"
	ShapeRoundedBox            Shape = "RoundedBox"
	ShapeCircle                Shape = "Circle"
	ShapeEllipse               Shape = "Ellipse"
	ShapeHexagon               Shape = "Hexagon"
	ShapeCylinder              Shape = "Cylinder"
	ShapePipe                  Shape = "Pipe"
	ShapePerson                Shape = "Person"
	ShapeRobot                 Shape = "Robot"
	ShapeFolder                Shape = "Folder"
	ShapeWebBrowser            Shape = "WebBrowser"
	ShapeMobileDevicePortrait  Shape = "MobileDevicePortrait"
	ShapeMobileDeviceLandscape Shape = "MobileDeviceLandscape"
	ShapeComponent             Shape = "Component"
)

// Router is a relationship routing keyword.
type Router string

const (
	RouterDirect     Router = "Direct"
	RouterOrthogonal Router = "Orthogonal"
	RouterCurved     Router = "Curved"
)

// ElementStyle styles elements carrying Tag. Zero fields are not emitted.
type ElementStyle struct {
	Tag         string
	Background  string
	Color       string
	Shape       Shape
	Size        int
	Stroke      string
	StrokeWidth int
}

// RelationshipStyle styles relationships carrying Tag. Zero fields, and a
// nil Dashed, are not emitted.
type RelationshipStyle struct {
	Tag       string
	Thickness int
	Color     string
	Router    Router
	Dashed    *bool
}

// Styles is the styles block of the views section.
type Styles struct {
	Elements      []ElementStyle
	Relationships []RelationshipStyle
}

// IsEmpty reports whether there is nothing to emit.
func (s Styles) IsEmpty() bool {
	return len(s.Elements) == 0 && len(s.Relationships) == 0
}

// String renders the styles block on its own, starting at depth zero.
func (s Styles) String() string {
	var w Writer
	s.render(&w)
	return w.String()
}

func (s Styles) render(w *Writer) {
	w.Open("styles")
	for _, e := range s.Elements {
		w.Open("element " + quote(e.Tag))
		attr(w, "background", e.Background)
		attr(w, "color", e.Color)
		attr(w, "shape", string(e.Shape))
		attrInt(w, "size", e.Size)
		attr(w, "stroke", e.Stroke)
		attrInt(w, "strokeWidth", e.StrokeWidth)
		w.Close()
	}
	for _, r := range s.Relationships {
		w.Open("relationship " + quote(r.Tag))
		attrInt(w, "thickness", r.Thickness)
		attr(w, "color", r.Color)
		attr(w, "router", string(r.Router))
		if r.Dashed != nil {
			w.AddLine("dashed " + strconv.FormatBool(*r.Dashed))
		}
		w.Close()
	}
	w.Close()
}

func attr(w *Writer, name, value string) {
	if value != "" {
		w.AddLine(name + " " + token(value))
	}
}

func attrInt(w *Writer, name string, value int) {
	if value != 0 {
		w.AddLine(name + " " + strconv.Itoa(value))
	}
}

var bareToken = regexp.MustCompile(`^#?[A-Za-z0-9]+$`)

// token emits simple values such as "#08427b" or "Person" bare and anything
// else as a string literal.
func token(v string) string {
	if bareToken.MatchString(v) {
		return v
	}
	return quote(v)
}
