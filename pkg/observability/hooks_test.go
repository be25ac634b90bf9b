package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopDiagramHooks{}
	h.OnBuildComplete(ctx, "arch", BuildStats{Nodes: 21, Clusters: 5, Edges: 30}, nil)
	h.OnRenderStart(ctx, "arch", "svg")
	h.OnRenderComplete(ctx, "arch", "svg", 1024, time.Second, nil)
	h.OnWrite(ctx, "architecture.svg", 1024, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Diagram().(NoopDiagramHooks); !ok {
		t.Error("Diagram() should return NoopDiagramHooks by default")
	}

	custom := &testDiagramHooks{}
	SetDiagramHooks(custom)
	if Diagram() != custom {
		t.Error("SetDiagramHooks should set custom hooks")
	}

	// nil registration keeps the current hooks
	SetDiagramHooks(nil)
	if Diagram() != custom {
		t.Error("SetDiagramHooks(nil) should not replace hooks")
	}

	Reset()
	if _, ok := Diagram().(NoopDiagramHooks); !ok {
		t.Error("Reset() should restore NoopDiagramHooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testDiagramHooks{}
	SetDiagramHooks(custom)

	ctx := context.Background()
	Diagram().OnBuildComplete(ctx, "arch", BuildStats{Nodes: 2}, nil)
	Diagram().OnRenderStart(ctx, "arch", "svg")
	Diagram().OnRenderComplete(ctx, "arch", "svg", 10, time.Millisecond, nil)
	Diagram().OnWrite(ctx, "out.svg", 10, nil)

	if custom.builds != 1 || custom.starts != 1 || custom.completes != 1 || custom.writes != 1 {
		t.Errorf("events = %+v, want one of each", custom)
	}
	if custom.lastNodes != 2 {
		t.Errorf("lastNodes = %d, want 2", custom.lastNodes)
	}
}

type testDiagramHooks struct {
	builds, starts, completes, writes int
	lastNodes                         int
}

func (h *testDiagramHooks) OnBuildComplete(_ context.Context, _ string, s BuildStats, _ error) {
	h.builds++
	h.lastNodes = s.Nodes
}

func (h *testDiagramHooks) OnRenderStart(context.Context, string, string) { h.starts++ }

func (h *testDiagramHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
	h.completes++
}

func (h *testDiagramHooks) OnWrite(context.Context, string, int, error) { h.writes++ }
