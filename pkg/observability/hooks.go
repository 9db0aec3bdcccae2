// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about workspace loading, serialization and rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for each event category
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the model and DSL
// packages never import a metrics or tracing framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... decode and assemble ...
//	observability.Pipeline().OnLoadComplete(ctx, path, elementCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// PipelineHooks receives events from the workspace pipeline.
type PipelineHooks interface {
	// Load events: decoding a workspace file and assembling its hierarchy.
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, elementCount int, duration time.Duration, err error)

	// Serialize events: producing the DSL document.
	OnSerializeStart(ctx context.Context, workspace string)
	OnSerializeComplete(ctx context.Context, workspace string, size int, duration time.Duration, err error)

	// Render events: producing DOT, SVG, PDF or PNG artifacts.
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnSerializeStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnSerializeComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// LogHooks reports pipeline events to a logger at debug level, and failures
// at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("load started", "path", path)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, path string, elementCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("load failed", "path", path, "duration", d, "error", err)
		return
	}
	h.logger.Debug("load complete", "path", path, "elements", elementCount, "duration", d)
}

func (h *LogHooks) OnSerializeStart(_ context.Context, workspace string) {
	h.logger.Debug("serialize started", "workspace", workspace)
}

func (h *LogHooks) OnSerializeComplete(_ context.Context, workspace string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("serialize failed", "workspace", workspace, "duration", d, "error", err)
		return
	}
	h.logger.Debug("serialize complete", "workspace", workspace, "bytes", size, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render started", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "formats", formats, "duration", d, "error", err)
		return
	}
	h.logger.Debug("render complete", "formats", formats, "duration", d)
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
