package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shooter/internal/game"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv(SeedEnv, "")
	path := writeFile(t, `
seed: 42
frontend: terminal
terminal:
  fps: 30
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 42 || cfg.Frontend != FrontendTerminal {
		t.Errorf("seed=%d frontend=%q", cfg.Seed, cfg.Frontend)
	}
	if cfg.Terminal.FPS != 30 {
		t.Errorf("terminal.fps = %d, want 30", cfg.Terminal.FPS)
	}
	// Untouched keys keep their defaults.
	if cfg.Terminal.HoldFrames != Default().Terminal.HoldFrames {
		t.Errorf("terminal.hold_frames = %d, want default %d", cfg.Terminal.HoldFrames, Default().Terminal.HoldFrames)
	}
	if cfg.Screen != Default().Screen || cfg.Window != Default().Window {
		t.Errorf("screen %+v window %+v, want defaults", cfg.Screen, cfg.Window)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want json", cfg.Log.Format)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv(SeedEnv, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Setenv(SeedEnv, "")
	cfg, err := Load(writeFile(t, ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("empty file = %+v, want defaults", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "screen:\n  widht: 300\n"))
	if err == nil {
		t.Fatal("Load() accepted a misspelt key")
	}
	if !strings.Contains(err.Error(), "widht") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestSeedFromEnv(t *testing.T) {
	t.Setenv(SeedEnv, "1234")
	cfg, err := Load(writeFile(t, "seed: 9\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("seed = %d, want 1234 from %s", cfg.Seed, SeedEnv)
	}

	t.Setenv(SeedEnv, "banana")
	if _, err := Load(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad seed: error = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"frontend", func(c *Config) { c.Frontend = "vr" }, `frontend "vr"`},
		{"screen", func(c *Config) { c.Screen.Width = 0 }, "screen 0x640"},
		{"narrower than ship", func(c *Config) { c.Screen.Width = 49 }, "screen 49x640 smaller than 50x40"},
		{"shorter than ship row", func(c *Config) { c.Screen.Height = 39 }, "screen 480x39"},
		{"scale", func(c *Config) { c.Window.Scale = -1 }, "window.scale"},
		{"fps", func(c *Config) { c.Terminal.FPS = 0 }, "terminal.fps"},
		{"hold", func(c *Config) { c.Terminal.HoldFrames = 0 }, "terminal.hold_frames"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, `log.level "loud"`},
		{"format", func(c *Config) { c.Log.Format = "xml" }, `log.format "xml"`},
		{"bench", func(c *Config) { c.Bench.Workers = 0 }, "workers=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateSmallestScreen(t *testing.T) {
	cfg := Default()
	cfg.Screen.Width, cfg.Screen.Height = 50, 40
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for 50x40", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestGameConfig(t *testing.T) {
	cfg := Default()
	if got, want := cfg.GameConfig(), game.DefaultConfig(); got != want {
		t.Errorf("GameConfig() = %+v, want %+v", got, want)
	}
}
