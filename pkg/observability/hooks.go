// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about each stage of a chart render.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks around each stage:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... read the CSV ...
//	observability.Pipeline().OnLoadComplete(ctx, path, rows, columns, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the chart pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, rows, columns int, duration time.Duration, err error)

	// Layout events cover range computation and panel planning.
	OnLayoutStart(ctx context.Context, strategy string, columns int)
	OnLayoutComplete(ctx context.Context, strategy string, panels int, duration time.Duration, err error)

	// Draw events
	OnDrawStart(ctx context.Context, width, height int)
	OnDrawComplete(ctx context.Context, width, height int, duration time.Duration, err error)

	// Present events
	OnPresentStart(ctx context.Context, path string)
	OnPresentComplete(ctx context.Context, path string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnDrawStart(context.Context, int, int)                               {}
func (NoopPipelineHooks) OnDrawComplete(context.Context, int, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnPresentStart(context.Context, string)                              {}
func (NoopPipelineHooks) OnPresentComplete(context.Context, string, time.Duration, error)     {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
// This should be called once at application startup before any render.
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

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
