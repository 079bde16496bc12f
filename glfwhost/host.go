// Package glfwhost runs the renderer in a desktop window. It opens a glfw window with an OpenGL core profile context,
// feeds keyboard events into a glcube.KeyState, and hands out frame timestamps to glcube.Run.
//
// glfw must be driven from the main thread, so Open, every Host method and every GL call have to happen on the
// goroutine that runs main.
package glfwhost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/solarlune/glcube"
	"github.com/solarlune/glcube/gfx/glcore"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// ErrNoContext is returned by Open when none of the requested context versions could be created.
var ErrNoContext = errors.New("glfwhost: no OpenGL context could be created")

// Host is an open window with a current GL context. It implements glcube.Host and glcube.Waiter.
type Host struct {
	Window  *glfw.Window
	Context *glcore.Context
	Version glcube.GLVersion

	// OnResize is called after the viewport has been updated for a new framebuffer size.
	OnResize func(width, height int)

	keys   *glcube.KeyState
	logger *slog.Logger
}

var (
	_ glcube.Host   = (*Host)(nil)
	_ glcube.Waiter = (*Host)(nil)
)

// Open initializes glfw, opens a window for cfg and makes a core profile context current, trying each of
// cfg.ContextVersions in turn. A nil logger uses slog.Default().
func Open(cfg glcube.WindowConfig, logger *slog.Logger) (*Host, error) {

	if logger == nil {
		logger = slog.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwhost: initializing glfw: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if cfg.FitMonitor {
		if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
			mode := monitor.GetVideoMode()
			width, height = mode.Width, mode.Height
		}
	}

	window, version, err := createWindow(cfg, width, height, logger)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	ctx, err := glcore.New()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	host := &Host{
		Window:  window,
		Context: ctx,
		Version: version,
		keys:    glcube.NewKeyState(),
		logger:  logger,
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	ctx.Viewport(0, 0, fbWidth, fbHeight)

	window.SetFramebufferSizeCallback(host.resized)
	window.SetKeyCallback(host.keyEvent)
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			host.keys.Reset()
		}
	})

	logger.Info("window opened", "width", fbWidth, "height", fbHeight, "requested", version.String(), "driver", ctx.Version())

	return host, nil

}

func createWindow(cfg glcube.WindowConfig, width, height int, logger *slog.Logger) (*glfw.Window, glcube.GLVersion, error) {

	var errs []error

	for _, version := range cfg.ContextVersions {

		glfw.DefaultWindowHints()
		glfw.WindowHint(glfw.ContextVersionMajor, version.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, version.Minor)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		glfw.WindowHint(glfw.Resizable, glfw.True)

		window, err := glfw.CreateWindow(width, height, cfg.Title, nil, nil)
		if err == nil {
			return window, version, nil
		}

		logger.Warn("couldn't create GL context", "version", version.String(), "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", version, err))

	}

	return nil, glcube.GLVersion{}, fmt.Errorf("%w: %w", ErrNoContext, errors.Join(errs...))

}

func (host *Host) resized(_ *glfw.Window, width, height int) {
	host.Context.Viewport(0, 0, width, height)
	if host.OnResize != nil {
		host.OnResize(width, height)
	}
}

func (host *Host) keyEvent(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {

	name := keyName(key, scancode)
	if name == "" {
		return
	}

	switch action {
	case glfw.Press:
		host.keys.PressCode(name, int(key))
	case glfw.Release:
		host.keys.ReleaseCode(name, int(key))
	}

}

// FramebufferSize returns the size of the window's drawable area in pixels.
func (host *Host) FramebufferSize() (width, height int) {
	return host.Window.GetFramebufferSize()
}

// NextFrame processes pending window events and returns the time since glfw was initialized.
func (host *Host) NextFrame(c context.Context) (time.Duration, bool) {

	glfw.PollEvents()

	if c.Err() != nil || host.Window.ShouldClose() {
		return 0, false
	}

	return time.Duration(glfw.GetTime() * float64(time.Second)), true

}

// Wait sleeps until an event arrives or d has passed.
func (host *Host) Wait(c context.Context, d time.Duration) {
	if d <= 0 || c.Err() != nil {
		return
	}
	glfw.WaitEventsTimeout(d.Seconds())
}

// Present swaps the window's buffers.
func (host *Host) Present() {
	host.Window.SwapBuffers()
}

// Keys returns the live keyboard state of the window.
func (host *Host) Keys() *glcube.KeyState {
	return host.keys
}

// Close releases the GL context, destroys the window and terminates glfw.
func (host *Host) Close() {
	host.Context.Release()
	host.Window.Destroy()
	glfw.Terminate()
}
