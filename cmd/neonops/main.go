package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neonops/animation"
	"github.com/lixenwraith/neonops/audio"
	"github.com/lixenwraith/neonops/config"
	"github.com/lixenwraith/neonops/core"
	"github.com/lixenwraith/neonops/engine"
	"github.com/lixenwraith/neonops/input"
	"github.com/lixenwraith/neonops/motion"
	"github.com/lixenwraith/neonops/page"
	"github.com/lixenwraith/neonops/render"
	"github.com/lixenwraith/neonops/render/renderers"
)

var (
	configFlag       = flag.String("config", config.DefaultPath, "Path to the TOML settings file")
	reduceMotionFlag = flag.Bool("reduce-motion", false, "Force reduced motion on or off, overrides config and environment")
	debugFlag        = flag.Bool("debug", false, "Write logs to logs/neonops.log and show the debug overlay")
	soundFlag        = flag.Bool("sound", false, "Play a chime on testimonial rotation")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the page crashes
	defer core.Recover()

	flag.Parse()
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if set["debug"] {
		cfg.Debug = *debugFlag
	}
	if set["sound"] {
		cfg.Sound = *soundFlag
	}

	logFile, logger := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	// Flag beats config beats environment
	pref := motion.Detect(nil).Override(cfg.ReducedMotion, motion.SourceConfig)
	if set["reduce-motion"] {
		pref = pref.Override(reduceMotionFlag, motion.SourceFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashRestore(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(render.ToTcell(render.Background)))
	screen.HideCursor()
	if pref.Animate() {
		// Motion events feed the cursor glow, not needed when it is frozen
		screen.EnableMouse(tcell.MouseMotionEvents)
	}

	sound := audio.NewSoundManager(cfg.Sound && pref.Animate())
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sound.Cleanup()

	orchestrator := render.NewRenderOrchestrator(screen)
	overlay := renderers.RegisterAll(orchestrator, cfg.Debug)

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	loop := engine.NewLoop(clock)
	landing := page.New(page.Deps{
		Host:       loop,
		Config:     cfg,
		Pref:       pref,
		Logger:     logger,
		GlowBounds: func() animation.Rect { return orchestrator.Layout().Hero.Anim() },
		OnRotate:   sound.PlayChime,
	})
	landing.Mount()
	defer landing.Unmount()

	handler := input.NewInputHandler(landing, input.Hooks{
		Pointer:     loop.DispatchPointer,
		Resize:      orchestrator.Resize,
		ToggleDebug: overlay.Toggle,
		Freeze: func() {
			logger.Debug("clock toggled", "paused", clock.Toggle())
		},
	}, logger)

	eventChan := make(chan tcell.Event, 256)
	// Input polling runs off the main goroutine; the loop itself stays single-threaded
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	logger.Info("neonops started",
		"frame_rate", cfg.FrameRate,
		"reduced_motion", pref.Reduce,
		"motion_source", pref.Source,
		"sound", sound.Enabled(),
	)

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	orchestrator.RenderFrame(landing.Snapshot())
	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				logger.Info("neonops exiting")
				return
			}
		case <-frameTicker.C:
			loop.Step()
			orchestrator.RenderFrame(landing.Snapshot())
		}
	}
}
