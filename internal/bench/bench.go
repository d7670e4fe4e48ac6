package bench

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"shooter/internal/game"
)

// Options controls a batch of headless runs. Run i plays with Seed+i.
type Options struct {
	Runs     int
	Workers  int
	MaxTicks int
	Seed     uint64
	Game     game.Config
}

type Result struct {
	ID    uuid.UUID
	Seed  uint64
	Score int
	Ticks uint64
	// Over is false when the run hit MaxTicks still alive.
	Over bool
}

// headless implements game.Frontend for the autopilot. It ends the run
// after maxTicks frames and never restarts.
type headless struct {
	pilot    Autopilot
	snap     game.Snapshot
	maxTicks int
	frames   int
}

func (h *headless) WaitFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.frames >= h.maxTicks {
		return game.ErrQuit
	}
	h.frames++
	return nil
}

func (h *headless) Input() game.Input { return h.pilot.Decide(h.snap) }

func (h *headless) Present(snap game.Snapshot) { h.snap = snap }

func (h *headless) ShowGameOver(int) {}

func (h *headless) AwaitRestart(context.Context) (bool, error) { return false, nil }

// Play runs one seeded session to game over or maxTicks.
func Play(ctx context.Context, cfg game.Config, seed uint64, maxTicks int, logger *slog.Logger) (Result, error) {
	s := game.NewSession(cfg, game.NewRand(seed))
	fe := &headless{snap: s.Snapshot(), maxTicks: maxTicks}
	r := game.NewRunner(s, fe, logger)
	if err := r.Run(ctx); err != nil {
		return Result{}, err
	}
	return Result{
		ID:    r.SessionID(),
		Seed:  seed,
		Score: s.Score,
		Ticks: s.Tick,
		Over:  s.Over(),
	}, nil
}

// RunBatch plays opts.Runs sessions on at most opts.Workers goroutines.
// Results are in seed order. A cancelled ctx stops the batch and returns
// ctx's error along with whatever finished.
func RunBatch(ctx context.Context, opts Options, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Runs <= 0 {
		return nil, nil
	}
	results := make([]Result, opts.Runs)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(opts.Workers, 1))
	for i := range opts.Runs {
		seed := opts.Seed + uint64(i)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := Play(egCtx, opts.Game, seed, opts.MaxTicks, logger)
			if err != nil {
				return fmt.Errorf("bench run %d: %w", i, err)
			}
			results[i] = res
			logger.InfoContext(egCtx, "run finished",
				"session", res.ID,
				"seed", res.Seed,
				"score", res.Score,
				"ticks", res.Ticks,
				"over", res.Over,
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

type Summary struct {
	Runs     int
	Finished int
	Best     int
	Mean     float64
}

// Summarize aggregates the results that actually ran.
func Summarize(results []Result) Summary {
	var sum Summary
	total := 0
	for _, r := range results {
		if r.ID == uuid.Nil {
			continue
		}
		sum.Runs++
		if r.Over {
			sum.Finished++
		}
		sum.Best = max(sum.Best, r.Score)
		total += r.Score
	}
	if sum.Runs > 0 {
		sum.Mean = float64(total) / float64(sum.Runs)
	}
	return sum
}
