// Package window opens the SDL2 window and its OpenGL context.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/sunlit/internal/logger"
)

func init() {
	// SDL and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

// Context defaults. 4.1 core is the newest profile macOS offers.
const (
	DefaultGLMajor   = 4
	DefaultGLMinor   = 1
	DefaultDepthBits = 24
)

// Config holds window configuration. Zero GL fields fall back to the
// defaults above.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	GLMajor   int
	GLMinor   int
	DepthBits int
	Samples   int // MSAA samples, 0 disables multisampling
}

// glAttribute is one SDL_GL_SetAttribute call.
type glAttribute struct {
	attr  sdl.GLattr
	value int
}

// glAttributes lists the context attributes for cfg. They must be set
// before the window is created.
func glAttributes(cfg Config) []glAttribute {
	major, minor := cfg.GLMajor, cfg.GLMinor
	if major == 0 {
		major, minor = DefaultGLMajor, DefaultGLMinor
	}
	depth := cfg.DepthBits
	if depth == 0 {
		depth = DefaultDepthBits
	}

	attrs := []glAttribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, major},
		{sdl.GL_CONTEXT_MINOR_VERSION, minor},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, depth},
	}
	if cfg.Samples > 0 {
		attrs = append(attrs,
			glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 1},
			glAttribute{sdl.GL_MULTISAMPLESAMPLES, cfg.Samples},
		)
	}
	return attrs
}

// windowFlags returns the SDL_CreateWindow flags for cfg.
func windowFlags(cfg Config) uint32 {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// swapIntervals lists the swap intervals to try in order. With VSync on,
// adaptive sync (-1) is preferred and plain sync (1) is the fallback.
func swapIntervals(vsync bool) []int {
	if vsync {
		return []int{-1, 1}
	}
	return []int{0}
}

// Window wraps the SDL2 window and its OpenGL context.
type Window struct {
	config    Config
	log       *zap.Logger
	sdlWindow *sdl.Window
	glContext sdl.GLContext
}

// New initialises SDL, creates the window and makes its GL context current.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
		log:    logger.Named("window"),
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	for _, a := range glAttributes(cfg) {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			w.log.Warn("GL attribute rejected", zap.Int("attr", int(a.attr)), zap.Int("value", a.value), zap.Error(err))
		}
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), windowFlags(cfg))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	if w.glContext, err = w.sdlWindow.GLCreateContext(); err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := w.setSwapInterval(cfg.VSync)

	dw, dh := w.Size()
	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Int("swap_interval", interval),
	)
	return w, nil
}

// setSwapInterval applies the first accepted interval and returns it.
func (w *Window) setSwapInterval(vsync bool) int {
	intervals := swapIntervals(vsync)
	for _, iv := range intervals {
		if err := sdl.GLSetSwapInterval(iv); err == nil {
			return iv
		}
	}
	w.log.Warn("no swap interval accepted", zap.Ints("tried", intervals))
	return 0
}

// Close destroys the context and window and shuts SDL down.
func (w *Window) Close() {
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
		w.sdlWindow = nil
	}
	sdl.Quit()
	w.log.Info("window closed")
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Size returns the drawable size in pixels, which differs from the window
// size on high-DPI displays.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// SetRelativeMouse toggles relative mouse mode, which hides the cursor and
// reports unbounded motion while the camera is being dragged.
func (w *Window) SetRelativeMouse(enabled bool) {
	sdl.SetRelativeMouseMode(enabled)
}
