// Package pipeline provides the load → serialize → render pipeline.
//
// This package implements the steps the CLI runs for every workspace file.
// By centralizing this logic, every command reports errors, timings and
// hook events the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode a workspace file and assemble its element hierarchy
//  2. Serialize: Produce the DSL document
//  3. Render: Generate other outputs (DOT, SVG, PNG, PDF, or the workspace
//     file itself in another encoding)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "bank.toml",
//	    Formats: []string{"dsl", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dsl := result.Artifacts["dsl"]
//
// Run individual stages:
//
//	// Load only (the validate command)
//	loaded, err := runner.Load(ctx, opts)
//
//	// Identifier table (the ids command)
//	index, err := runner.Index(ctx, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/c4dsl/c4dsl/pkg/dsl"
	"github.com/c4dsl/c4dsl/pkg/errors"
	wsio "github.com/c4dsl/c4dsl/pkg/io"
)

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultIdentities is the identity allocator used when none is named.
	DefaultIdentities = IdentitiesSequential
)

// Identity allocator names.
const (
	IdentitiesSequential = "sequential"
	IdentitiesUUID       = "uuid"
)

// Format constants for output formats.
const (
	FormatDSL  = "dsl"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDSL:  true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatTOML: true,
	FormatYAML: true,
}

// ValidIdentities is the set of supported identity allocators.
var ValidIdentities = map[string]bool{
	IdentitiesSequential: true,
	IdentitiesUUID:       true,
}

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options
	Input       string    `json:"input"` // File path, or "-" for Stdin
	Stdin       io.Reader `json:"-"`
	InputFormat string    `json:"input_format,omitempty"` // Inferred from the Input extension when empty
	Identities  string    `json:"identities,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"`
	Direction string   `json:"direction,omitempty"` // tb, bt, lr or rl
	Scale     float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Workspace is the assembled workspace.
	Workspace *dsl.Workspace

	// File is the decoded workspace file.
	File *wsio.File

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount      int
	RelationshipCount int
	ViewCount         int
	LoadTime          time.Duration
	SerializeTime     time.Duration
	RenderTime        time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: dsl, dot, svg, png, pdf, json, toml, yaml)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDirection checks that a layout direction is valid.
func ValidateDirection(dir string) error {
	switch dsl.AutoLayout(dir) {
	case dsl.AutoLayoutNone, dsl.AutoLayoutTopBottom, dsl.AutoLayoutBottomTop,
		dsl.AutoLayoutLeftRight, dsl.AutoLayoutRightLeft:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q (must be one of: tb, bt, lr, rl)", dir)
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	if o.Input == "-" && o.InputFormat == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input format is required when reading from stdin")
	}
	if o.InputFormat != "" {
		if _, err := wsio.ParseFormat(o.InputFormat); err != nil {
			return err
		}
	}
	if o.Identities == "" {
		o.Identities = DefaultIdentities
	}
	if !ValidIdentities[o.Identities] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid identities: %q (must be one of: sequential, uuid)", o.Identities)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatDSL}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid scale: %v (must be positive)", o.Scale)
	}
	return ValidateDirection(o.Direction)
}

// NeedsDOT reports whether any requested format is produced through Graphviz.
func (o *Options) NeedsDOT() bool {
	for _, f := range o.Formats {
		switch f {
		case FormatDOT, FormatSVG, FormatPNG, FormatPDF:
			return true
		}
	}
	return false
}
