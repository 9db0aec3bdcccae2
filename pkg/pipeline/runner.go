package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/c4dsl/c4dsl/pkg/dsl"
	wsio "github.com/c4dsl/c4dsl/pkg/io"
	"github.com/c4dsl/c4dsl/pkg/model"
	"github.com/c4dsl/c4dsl/pkg/observability"
)

// Runner executes pipeline stages and reports them to its logger and to the
// registered observability hooks.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Loaded is the result of the load stage.
type Loaded struct {
	File      *wsio.File
	Workspace *dsl.Workspace
}

// Execute runs the complete load → serialize → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	loaded, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.File = loaded.File
	result.Workspace = loaded.Workspace
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ElementCount = len(loaded.File.Elements)
	result.Stats.RelationshipCount = len(loaded.File.Relationships)
	result.Stats.ViewCount = len(loaded.File.Views)

	r.Logger.Info("loaded workspace",
		"name", loaded.Workspace.Name(),
		"elements", result.Stats.ElementCount,
		"relationships", result.Stats.RelationshipCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Serialize
	serializeStart := time.Now()
	doc, err := r.Serialize(ctx, loaded.Workspace)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	result.Stats.SerializeTime = time.Since(serializeStart)

	r.Logger.Info("serialized workspace",
		"bytes", len(doc),
		"duration", result.Stats.SerializeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, loaded, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load decodes the input file and assembles the workspace.
func (r *Runner) Load(ctx context.Context, opts Options) (*Loaded, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	loaded, err := load(opts)
	count := 0
	if loaded != nil {
		count = len(loaded.File.Elements)
	}
	hooks.OnLoadComplete(ctx, opts.Input, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("assembled hierarchy",
		"people", len(loaded.Workspace.People()),
		"systems", len(loaded.Workspace.Systems()))
	return loaded, nil
}

func load(opts Options) (*Loaded, error) {
	f, err := decode(opts)
	if err != nil {
		return nil, err
	}
	ws, err := wsio.Build(f, allocator(opts.Identities))
	if err != nil {
		return nil, err
	}
	return &Loaded{File: f, Workspace: ws}, nil
}

func decode(opts Options) (*wsio.File, error) {
	if opts.Input == "-" {
		format, err := wsio.ParseFormat(opts.InputFormat)
		if err != nil {
			return nil, err
		}
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		return wsio.Decode(in, format)
	}
	if opts.InputFormat == "" {
		return wsio.Load(opts.Input)
	}
	format, err := wsio.ParseFormat(opts.InputFormat)
	if err != nil {
		return nil, err
	}
	return wsio.LoadAs(opts.Input, format)
}

func allocator(name string) model.IdentityAllocator {
	if name == IdentitiesUUID {
		return model.NewUUIDAllocator()
	}
	return model.NewSequentialAllocator()
}

// Serialize renders the DSL document of ws.
func (r *Runner) Serialize(ctx context.Context, ws *dsl.Workspace) (string, error) {
	hooks := observability.Pipeline()
	hooks.OnSerializeStart(ctx, ws.Name())
	start := time.Now()

	doc, err := ws.Serialize()
	hooks.OnSerializeComplete(ctx, ws.Name(), len(doc), time.Since(start), err)
	return doc, err
}

// Index loads the input and returns the identifier allocations of its
// workspace.
func (r *Runner) Index(ctx context.Context, opts Options) (*dsl.Index, error) {
	loaded, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return loaded.Workspace.Index()
}

// Render generates the requested artifacts. doc is the serialized DSL
// document, used for the dsl format.
func (r *Runner) Render(ctx context.Context, loaded *Loaded, doc string, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(ctx, loaded, doc, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
