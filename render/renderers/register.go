package renderers

import "github.com/lixenwraith/neonops/render"

// RegisterAll installs every page renderer on the orchestrator at its layer and returns the debug overlay
func RegisterAll(o *render.RenderOrchestrator, debug bool) *DebugOverlayRenderer {
	o.Register(NewNeonGridRenderer(), render.PriorityBackground)
	o.Register(NewCursorGlowRenderer(), render.PriorityGlow)
	o.Register(NewParticlesRenderer(), render.PriorityParticle)
	o.Register(NewHeroRenderer(), render.PriorityContent)
	o.Register(NewScanLineRenderer(), render.PriorityContent)
	o.Register(NewOrbitRenderer(), render.PriorityContent)
	o.Register(NewConsoleRenderer(), render.PriorityContent)
	o.Register(NewPipelineRenderer(), render.PriorityContent)
	o.Register(NewCarouselRenderer(), render.PriorityContent)
	o.Register(NewNavRenderer(), render.PriorityChrome)

	overlay := NewDebugOverlayRenderer(debug, nil)
	o.Register(overlay, render.PriorityOverlay)
	return overlay
}
