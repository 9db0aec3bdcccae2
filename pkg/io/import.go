package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/c4dsl/c4dsl/pkg/dsl"
	"github.com/c4dsl/c4dsl/pkg/errors"
	"github.com/c4dsl/c4dsl/pkg/model"
)

// Decode reads a workspace file from r without assembling it.
//
// Input is decoded strictly in every format: keys that do not belong to the
// file format are reported as INVALID_FORMAT errors, so that a misspelled
// "parnet" does not silently produce a top-level element.
func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var f File
	switch format {
	case FormatJSON:
		if err := decodeJSON(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "decode toml: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		if err := decodeYAML(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown workspace format: %q", format)
	}
	return &f, nil
}

func decodeJSON(data []byte, f *File) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(f)
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// ReadWorkspace decodes a workspace file from r and builds it with [Build].
// ReadWorkspace does not close r.
func ReadWorkspace(r io.Reader, format Format, ids model.IdentityAllocator) (*dsl.Workspace, error) {
	f, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return Build(f, ids)
}

// ImportWorkspace reads the workspace file at path. The format is taken from
// the file extension.
func ImportWorkspace(path string, ids model.IdentityAllocator) (*dsl.Workspace, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(f, ids)
}

// Load reads and decodes the workspace file at path without assembling it.
// The format is taken from the file extension.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, format)
}

// LoadAs reads and decodes the workspace file at path in the given format.
func LoadAs(path string, format Format) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "workspace file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()
	return Decode(fh, format)
}

// Build assembles the element hierarchy of f and returns the populated
// workspace. Relationship and view endpoints that name a declared element
// refer to it; any other name is kept as a raw reference.
//
// Build returns the first error found, and no workspace, if an element has
// an unknown kind, location or type, if the hierarchy is invalid (see
// [model.Assemble]), or if a relationship is invalid.
func Build(f *File, ids model.IdentityAllocator) (*dsl.Workspace, error) {
	ws, err := dsl.NewWorkspace(dsl.WorkspaceConfig{Name: f.Name, Description: f.Description})
	if err != nil {
		return nil, err
	}

	decls := make([]model.Declaration, 0, len(f.Elements))
	for i, e := range f.Elements {
		d, err := declaration(e)
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, e.Name, err)
		}
		decls = append(decls, d)
	}
	a, err := model.Assemble(ids, decls)
	if err != nil {
		return nil, err
	}
	for _, p := range a.People {
		if err := ws.AddPerson(p); err != nil {
			return nil, err
		}
	}
	for _, s := range a.Systems {
		if err := ws.AddSoftwareSystem(s); err != nil {
			return nil, err
		}
	}

	for _, r := range f.Relationships {
		style, err := model.ParseInteractionStyle(r.Style)
		if err != nil {
			return nil, fmt.Errorf("relationship %s->%s: %w", r.Source, r.Target, err)
		}
		rel, err := model.NewRelationship(model.RelationshipConfig{
			Source:      a.Endpoint(r.Source),
			Target:      a.Endpoint(r.Target),
			Description: r.Description,
			Technology:  r.Technology,
			Style:       style,
		})
		if err != nil {
			return nil, fmt.Errorf("relationship %s->%s: %w", r.Source, r.Target, err)
		}
		if err := ws.AddRelationship(rel); err != nil {
			return nil, err
		}
	}

	for _, v := range f.Views {
		cfg := dsl.ViewConfig{
			Type:       dsl.ViewType(v.Type),
			Title:      v.Title,
			Include:    v.Include,
			Exclude:    v.Exclude,
			AutoLayout: dsl.AutoLayout(v.AutoLayout),
		}
		if v.Element != "" {
			cfg.Element = a.Endpoint(v.Element)
		}
		ws.AddView(cfg)
	}

	applyStyles(ws, f.Styles)
	return ws, nil
}

func declaration(e Element) (model.Declaration, error) {
	kind, err := model.ParseKind(e.Kind)
	if err != nil {
		return model.Declaration{}, err
	}
	loc, err := model.ParseLocation(e.Location)
	if err != nil {
		return model.Declaration{}, err
	}
	d := model.Declaration{
		Kind:        kind,
		Name:        e.Name,
		Description: e.Description,
		Technology:  e.Technology,
		Location:    loc,
		Parent:      e.Parent,
	}
	switch kind {
	case model.KindContainer:
		d.ContainerType = model.ContainerType(e.Type)
	case model.KindCode:
		d.CodeType = model.CodeElementType(e.Type)
	}
	return d, nil
}

func applyStyles(ws *dsl.Workspace, s Styles) {
	if s.DSL != "" {
		ws.SetStylesDSL(s.DSL)
		return
	}
	for _, e := range s.Elements {
		ws.AddElementStyle(dsl.ElementStyle{
			Tag:         e.Tag,
			Background:  e.Background,
			Color:       e.Color,
			Shape:       dsl.Shape(e.Shape),
			Size:        e.Size,
			Stroke:      e.Stroke,
			StrokeWidth: e.StrokeWidth,
		})
	}
	for _, r := range s.Relationships {
		ws.AddRelationshipStyle(dsl.RelationshipStyle{
			Tag:       r.Tag,
			Thickness: r.Thickness,
			Color:     r.Color,
			Router:    dsl.Router(r.Router),
			Dashed:    r.Dashed,
		})
	}
}
