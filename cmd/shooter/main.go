package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"shooter/internal/bench"
	"shooter/internal/config"
	"shooter/internal/desktop"
	"shooter/internal/game"
	"shooter/internal/terminal"
)

// GLFW and GL calls must stay on the main thread.
func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil {
		slog.Error("shooter failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath  = flag.String("config", "", "YAML config file")
		frontend = flag.String("frontend", "", "desktop, terminal or headless")
		seed     = flag.Uint64("seed", 0, "session seed, 0 seeds from the clock")
		runs     = flag.Int("runs", 0, "headless: number of sessions")
		maxTicks = flag.Int("max-ticks", 0, "headless: tick limit per session")
		level    = flag.String("log-level", "", "debug, info, warn or error")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = *frontend
		case "seed":
			cfg.Seed = *seed
		case "runs":
			cfg.Bench.Runs = *runs
		case "max-ticks":
			cfg.Bench.MaxTicks = *maxTicks
		case "log-level":
			cfg.Log.Level = *level
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Frontend {
	case config.FrontendHeadless:
		logger, err := newLogger(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		return runHeadless(ctx, cfg, logger)
	case config.FrontendTerminal:
		// The screen owns stderr while it is up; logs are written out after.
		var buf bytes.Buffer
		defer func() {
			_, _ = os.Stderr.Write(buf.Bytes())
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		}()
		logger, err := newLogger(cfg.Log, &buf)
		if err != nil {
			return err
		}
		return runTerminal(ctx, cfg, logger)
	default:
		logger, err := newLogger(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		return runDesktop(ctx, cfg, logger)
	}
}

func newLogger(cfg config.Log, w io.Writer) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, nil
}

func runDesktop(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	fe, err := desktop.Open(cfg.Window, cfg.GameConfig(), logger)
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	defer fe.Close()

	logger.InfoContext(ctx, "starting", "frontend", cfg.Frontend, "seed", cfg.Seed)
	s := game.NewSession(cfg.GameConfig(), game.NewRand(cfg.Seed))
	return game.NewRunner(s, fe, logger).Run(ctx)
}

func runTerminal(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	fe, err := terminal.Open(cfg.Terminal, logger)
	if err != nil {
		return err
	}
	defer fe.Close()

	logger.InfoContext(ctx, "starting", "frontend", cfg.Frontend, "seed", cfg.Seed)
	s := game.NewSession(cfg.GameConfig(), game.NewRand(cfg.Seed))
	return game.NewRunner(s, fe, logger).Run(ctx)
}

func runHeadless(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting batch",
		"runs", cfg.Bench.Runs,
		"workers", cfg.Bench.Workers,
		"seed", cfg.Seed,
	)
	results, err := bench.RunBatch(ctx, bench.Options{
		Runs:     cfg.Bench.Runs,
		Workers:  cfg.Bench.Workers,
		MaxTicks: cfg.Bench.MaxTicks,
		Seed:     cfg.Seed,
		Game:     cfg.GameConfig(),
	}, logger)

	sum := bench.Summarize(results)
	logger.InfoContext(ctx, "batch finished",
		"runs", sum.Runs,
		"finished", sum.Finished,
		"best", sum.Best,
		"mean", sum.Mean,
	)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
