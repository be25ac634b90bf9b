// Package observability provides hooks for diagram build and render events.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. The CLI registers a logging implementation
// at startup; library code only ever talks to the hook interfaces.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the diagram package never
// imports a logger or metrics client directly.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDiagramHooks(&myDiagramHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Diagram().OnRenderStart(ctx, name, "svg")
//	// ... render ...
//	observability.Diagram().OnRenderComplete(ctx, name, "svg", len(data), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Diagram Hooks
// =============================================================================

// BuildStats summarizes a diagram when its declarations are complete.
type BuildStats struct {
	Nodes    int
	Clusters int
	Edges    int
}

// DiagramHooks receives events from diagram construction and rendering.
type DiagramHooks interface {
	// OnBuildComplete fires once the declarative description has been
	// collected, before any rendering starts.
	OnBuildComplete(ctx context.Context, name string, stats BuildStats, err error)

	// Render events
	OnRenderStart(ctx context.Context, name, format string)
	OnRenderComplete(ctx context.Context, name, format string, size int, duration time.Duration, err error)

	// OnWrite records the final output file.
	OnWrite(ctx context.Context, path string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDiagramHooks is a no-op implementation of DiagramHooks.
type NoopDiagramHooks struct{}

func (NoopDiagramHooks) OnBuildComplete(context.Context, string, BuildStats, error) {}
func (NoopDiagramHooks) OnRenderStart(context.Context, string, string)             {}
func (NoopDiagramHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopDiagramHooks) OnWrite(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	diagramHooks DiagramHooks = NoopDiagramHooks{}
	hooksMu      sync.RWMutex
)

// SetDiagramHooks registers custom diagram hooks.
// This should be called once at application startup before any rendering.
func SetDiagramHooks(h DiagramHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		diagramHooks = h
	}
}

// Diagram returns the registered diagram hooks.
func Diagram() DiagramHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return diagramHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	diagramHooks = NoopDiagramHooks{}
}
