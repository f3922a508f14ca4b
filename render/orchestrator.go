package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neonops/page"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	layout    Layout
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator for screen at its current size
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		layout:    ComputeLayout(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize recomputes the layout and buffer, then syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.layout = ComputeLayout(width, height)
	o.screen.Sync()
}

// Layout returns the current section layout
func (o *RenderOrchestrator) Layout() Layout {
	return o.layout
}

// Buffer exposes the compositor for inspection
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(snap page.Snapshot) {
	o.buffer.Clear()

	ctx := RenderContext{Snap: snap, Layout: o.layout}
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
}
