package desktop

import (
	"fmt"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shooter/internal/config"
	"shooter/internal/game"
)

// windowSize scales the playfield to the window, at least one pixel a side.
func windowSize(cfg config.Window, g game.Config) (int, int) {
	w := int(math.Round(g.Width * cfg.Scale))
	h := int(math.Round(g.Height * cfg.Scale))
	return max(w, 1), max(h, 1)
}

func initWindow(cfg config.Window, g game.Config) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	w, h := windowSize(cfg, g)
	window, err := glfw.CreateWindow(w, h, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return window, nil
}
