// Package config loads the shooter's YAML settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"shooter/internal/game"
)

// SeedEnv overrides the configured seed when set.
const SeedEnv = "SHOOTER_SEED"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Frontend names.
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

type Config struct {
	// Seed feeds the session generator. Zero means seed from the clock.
	Seed     uint64   `yaml:"seed"`
	Frontend string   `yaml:"frontend"`
	Screen   Screen   `yaml:"screen"`
	Window   Window   `yaml:"window"`
	Terminal Terminal `yaml:"terminal"`
	Log      Log      `yaml:"log"`
	Bench    Bench    `yaml:"bench"`
}

type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Window struct {
	Title string `yaml:"title"`
	// Scale multiplies the playfield size to get the window size.
	Scale float64 `yaml:"scale"`
	VSync bool    `yaml:"vsync"`
}

type Terminal struct {
	FPS int `yaml:"fps"`
	// HoldFrames is how long a key counts as held after its last event.
	// Terminals report no key releases.
	HoldFrames int `yaml:"hold_frames"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Bench struct {
	Runs     int `yaml:"runs"`
	Workers  int `yaml:"workers"`
	MaxTicks int `yaml:"max_ticks"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Frontend: FrontendDesktop,
		Screen:   Screen{Width: game.ScreenWidth, Height: game.ScreenHeight},
		Window:   Window{Title: "Space Shooter", Scale: 1, VSync: true},
		Terminal: Terminal{FPS: 60, HoldFrames: 8},
		Log:      Log{Level: "info", Format: "text"},
		Bench:    Bench{Runs: 8, Workers: 4, MaxTicks: 36_000},
	}
}

// Load reads path over the defaults, applies the environment and
// validates. An empty path loads only defaults and environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode rejects unknown keys so typos do not silently fall back to
// defaults. An empty document leaves cfg untouched.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	s := getenv(SeedEnv)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, SeedEnv, s, err)
	}
	c.Seed = v
	return nil
}

// The playfield must fit the ship at its resting row and a spawned enemy.
const (
	minScreenWidth  = int(max(game.PlayerWidth, game.EnemyWidth))
	minScreenHeight = int(game.PlayerHeight + game.PlayerBottomInset)
)

func (c Config) Validate() error {
	var errs []error
	switch c.Frontend {
	case FrontendDesktop, FrontendTerminal, FrontendHeadless:
	default:
		errs = append(errs, fmt.Errorf("frontend %q", c.Frontend))
	}
	if c.Screen.Width < minScreenWidth || c.Screen.Height < minScreenHeight {
		errs = append(errs, fmt.Errorf("screen %dx%d smaller than %dx%d",
			c.Screen.Width, c.Screen.Height, minScreenWidth, minScreenHeight))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale %v", c.Window.Scale))
	}
	if c.Terminal.FPS <= 0 {
		errs = append(errs, fmt.Errorf("terminal.fps %d", c.Terminal.FPS))
	}
	if c.Terminal.HoldFrames < 1 {
		errs = append(errs, fmt.Errorf("terminal.hold_frames %d", c.Terminal.HoldFrames))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q", c.Log.Format))
	}
	if c.Bench.Runs <= 0 || c.Bench.Workers <= 0 || c.Bench.MaxTicks <= 0 {
		errs = append(errs, fmt.Errorf("bench runs=%d workers=%d max_ticks=%d",
			c.Bench.Runs, c.Bench.Workers, c.Bench.MaxTicks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// ParseLevel maps a level name onto slog's levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log.level %q", s)
	}
	return l, nil
}

// GameConfig is the playfield the session runs on.
func (c Config) GameConfig() game.Config {
	return game.Config{
		Width:  float64(c.Screen.Width),
		Height: float64(c.Screen.Height),
	}
}
