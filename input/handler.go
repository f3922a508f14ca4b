// Package input maps terminal events onto page interactions
package input

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neonops/engine"
)

// Page is the interactive surface of the landing page, satisfied by *page.Page
type Page interface {
	NextTestimonial()
	PrevTestimonial()
	GoToTestimonial(i int)
	TestimonialCount() int
	ToggleCarousel()
	CycleTab()
	ToggleAutoRemediate()
	Remount()
}

// Hooks are the non-page side effects of input, any may be nil
type Hooks struct {
	// Pointer receives mouse moves in screen cells
	Pointer func(engine.PointerEvent)
	// Resize is called with the new screen size
	Resize func(w, h int)
	// ToggleDebug flips the debug overlay
	ToggleDebug func()
	// Freeze pauses or resumes the page clock
	Freeze func()
}

// InputHandler processes user input events
type InputHandler struct {
	page   Page
	hooks  Hooks
	logger *slog.Logger
}

// NewInputHandler creates a new input handler
func NewInputHandler(page Page, hooks Hooks, logger *slog.Logger) *InputHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InputHandler{
		page:   page,
		hooks:  hooks,
		logger: logger.With("component", "input"),
	}
}

// HandleEvent processes a tcell event and returns false if the program should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		if h.hooks.Pointer != nil {
			x, y := ev.Position()
			h.hooks.Pointer(engine.PointerEvent{X: float64(x), Y: float64(y)})
		}
	case *tcell.EventResize:
		if h.hooks.Resize != nil {
			w, hgt := ev.Size()
			h.hooks.Resize(w, hgt)
		}
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false
	case tcell.KeyRight:
		h.page.NextTestimonial()
		return true
	case tcell.KeyLeft:
		h.page.PrevTestimonial()
		return true
	case tcell.KeyTab:
		h.page.CycleTab()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case 'p':
		h.page.ToggleCarousel()
	case ' ':
		h.page.ToggleAutoRemediate()
	case 'r':
		h.logger.Debug("remount requested")
		h.page.Remount()
	case 'd':
		if h.hooks.ToggleDebug != nil {
			h.hooks.ToggleDebug()
		}
	case 'f':
		if h.hooks.Freeze != nil {
			h.hooks.Freeze()
		}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// Digits past the last slide are ignored rather than wrapped
		if i := int(r - '1'); i < h.page.TestimonialCount() {
			h.page.GoToTestimonial(i)
		}
	}
	return true
}
