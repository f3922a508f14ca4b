package render

import "github.com/lixenwraith/neonops/page"

// RenderContext is the read-only input to every renderer for one frame
type RenderContext struct {
	Snap   page.Snapshot
	Layout Layout
}

// SystemRenderer draws one part of the page into the buffer
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle lets a renderer skip frames
type VisibilityToggle interface {
	IsVisible() bool
}
