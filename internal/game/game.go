// Package game implements the main loop that drives a Logic once per frame.
package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sunlit/internal/engine/input"
	"github.com/Faultbox/sunlit/internal/engine/renderer"
	"github.com/Faultbox/sunlit/internal/logger"
)

// Logic is the lifecycle a scene implements. The engine calls Init once,
// then Input, Update and Render once per frame, and Cleanup once at the end.
type Logic interface {
	// Init loads resources. A scene whose Init failed must not be driven.
	Init(target renderer.Target) error

	// Input samples the current input state.
	Input(state input.State)

	// Update advances the scene by dt seconds.
	Update(dt float64, state input.State)

	// Render draws the scene.
	Render(target renderer.Target)

	// Cleanup releases everything Init acquired.
	Cleanup()
}

// Window is the surface the engine renders to and presents.
type Window interface {
	renderer.Target
	SwapBuffers()
	SetRelativeMouse(enabled bool)
}

// Events is a per-frame input source.
type Events interface {
	input.State
	// Update polls the platform and returns true when the user asked to quit.
	Update() bool
	Events() []input.Event
}

// Config holds engine loop configuration.
type Config struct {
	// FPSLimit caps the frame rate; 0 leaves it to VSync.
	FPSLimit int
	// MaxFrames stops the loop after that many frames; 0 runs until quit.
	MaxFrames int
	// Screenshot, when set, is called after rendering a frame in which F12
	// was pressed. It returns the file written.
	Screenshot func() (string, error)
}

// Engine runs the frame loop.
type Engine struct {
	config  Config
	window  Window
	events  Events
	logic   Logic
	log     *zap.Logger
	stopped atomic.Bool

	// sleep is replaced in tests.
	sleep func(time.Duration)
}

// New creates an engine. Window and events must already be initialised.
func New(cfg Config, win Window, events Events, logic Logic) *Engine {
	return &Engine{
		config: cfg,
		window: win,
		events: events,
		logic:  logic,
		log:    logger.Named("engine"),
		sleep:  time.Sleep,
	}
}

// Run initialises the logic, loops until quit and cleans up.
// Cleanup runs even when Init fails so partially loaded resources are freed.
func (e *Engine) Run() error {
	defer e.logic.Cleanup()

	if err := e.logic.Init(e.window); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	e.log.Info("starting game loop", zap.Int("fps_limit", e.config.FPSLimit))

	var frameBudget time.Duration
	if e.config.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(e.config.FPSLimit)
	}

	lastTime := time.Now()
	fpsTimer := lastTime
	frameCount := 0
	frames := 0
	dragging := false
	shotHeld := false

	for !e.stopped.Load() {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// 1. Process input
		if e.events.Update() || e.events.IsKeyDown(input.KeyEscape) {
			break
		}
		for _, ev := range e.events.Events() {
			if ev.Type == input.EventWindowResize {
				e.log.Debug("window resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
			}
		}
		if held := e.events.IsRightButtonPressed(); held != dragging {
			dragging = held
			e.window.SetRelativeMouse(held)
		}

		// 2. Update scene state
		e.logic.Input(e.events)
		e.logic.Update(dt, e.events)

		// 3. Render and present
		e.logic.Render(e.window)
		shot := e.events.IsKeyDown(input.KeyF12)
		if shot && !shotHeld {
			e.screenshot()
		}
		shotHeld = shot
		e.window.SwapBuffers()

		frames++
		if e.config.MaxFrames > 0 && frames >= e.config.MaxFrames {
			break
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			e.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if spent := time.Since(frameStart); spent < frameBudget {
				e.sleep(frameBudget - spent)
			}
		}
	}

	e.log.Info("game loop stopped", zap.Int("frames", frames))
	return nil
}

func (e *Engine) screenshot() {
	if e.config.Screenshot == nil {
		return
	}
	path, err := e.config.Screenshot()
	if err != nil {
		e.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	e.log.Info("screenshot saved", zap.String("path", path))
}

// Stop ends the loop after the current frame. It may be called from any
// goroutine, also before Run, in which case no frame is drawn.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}
