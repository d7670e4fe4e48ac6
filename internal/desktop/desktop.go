// Package desktop plays the game in an OpenGL window.
package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"shooter/internal/config"
	"shooter/internal/game"
)

const frameTime = time.Second / 60

// Frontend implements game.Frontend on a GLFW window. It must be opened,
// driven and closed from the main OS thread.
type Frontend struct {
	window *glfw.Window
	rend   *Renderer
	keys   *Keys
	log    *slog.Logger

	vsync bool
	next  time.Time

	w, h float64
	last game.Snapshot
}

// Open creates the window and GL resources. The caller must have called
// runtime.LockOSThread.
func Open(cfg config.Window, g game.Config, logger *slog.Logger) (*Frontend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	window, err := initWindow(cfg, g)
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	cr, cg, cb := game.Palette.Background.Float()
	gl.ClearColor(cr, cg, cb, 1)

	rend, err := NewRenderer(g.Width, g.Height)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}
	logger.Debug("window open",
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"vsync", cfg.VSync,
	)
	return &Frontend{
		window: window,
		rend:   rend,
		keys:   NewKeys(),
		log:    logger,
		vsync:  cfg.VSync,
		w:      g.Width,
		h:      g.Height,
	}, nil
}

func (f *Frontend) Close() {
	f.rend.Destroy()
	f.window.Destroy()
	glfw.Terminate()
}

// pace sleeps to the next 60 Hz deadline when vsync is off. With vsync the
// buffer swap in Present does the waiting.
func (f *Frontend) pace() {
	if f.vsync {
		return
	}
	now := time.Now()
	if f.next.Before(now) {
		f.next = now
	}
	time.Sleep(f.next.Sub(now))
	f.next = f.next.Add(frameTime)
}

func (f *Frontend) WaitFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.pace()
	glfw.PollEvents()
	if f.window.ShouldClose() {
		return game.ErrQuit
	}
	return nil
}

func (f *Frontend) Input() game.Input {
	down := windowKeys(f.window)
	if down(glfw.KeyEscape) {
		f.window.SetShouldClose(true)
	}
	return f.keys.Read(down)
}

func (f *Frontend) Present(snap game.Snapshot) {
	f.last = snap
	f.render(-1)
}

func (f *Frontend) ShowGameOver(score int) {
	f.render(score)
}

// AwaitRestart keeps redrawing the final frame under the overlay until the
// player restarts or closes the window.
func (f *Frontend) AwaitRestart(ctx context.Context) (bool, error) {
	down := windowKeys(f.window)
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		f.pace()
		glfw.PollEvents()
		if f.window.ShouldClose() || down(glfw.KeyEscape) {
			return false, nil
		}
		if f.keys.Restart(down) {
			// Swallow a space still held from play so it is not a press.
			f.keys.Read(down)
			return true, nil
		}
		f.render(f.last.Score)
	}
}

// render draws the last snapshot, with the game over overlay when score is
// not negative.
func (f *Frontend) render(score int) {
	fbW, fbH := f.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}
	f.rend.BeginFrame(fbW, fbH)
	f.rend.DrawSnapshot(f.last)
	if score >= 0 {
		f.rend.DrawGameOver(score, f.w, f.h)
	}
	f.window.SwapBuffers()
}
