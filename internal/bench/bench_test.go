package bench

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"shooter/internal/game"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func snapshotWith(mutate func(s *game.Session)) game.Snapshot {
	s := game.NewSession(game.DefaultConfig(), game.NewRand(1))
	if mutate != nil {
		mutate(s)
	}
	return s.Snapshot()
}

func enemy(x, y float64) game.Enemy {
	return game.Enemy{
		Rect:   game.Rect{X: x, Y: y, W: game.EnemyWidth, H: game.EnemyHeight},
		Speed:  game.EnemySpeed,
		Health: 1, MaxHealth: 1,
	}
}

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *game.Session)
		check func(t *testing.T, in game.Input)
	}{
		{
			name: "idle at center",
			check: func(t *testing.T, in game.Input) {
				if in != (game.Input{}) {
					t.Errorf("input = %+v, want none", in)
				}
			},
		},
		{
			name:  "chase lowest enemy",
			setup: func(s *game.Session) { s.Enemies = append(s.Enemies, enemy(400, 50), enemy(10, 200)) },
			check: func(t *testing.T, in game.Input) {
				if !in.Left || in.Right {
					t.Errorf("input = %+v, want left", in)
				}
			},
		},
		{
			name:  "fire when aligned",
			setup: func(s *game.Session) { s.Enemies = append(s.Enemies, enemy(s.Player.X+5, 100)) },
			check: func(t *testing.T, in game.Input) {
				if in.FirePresses != 1 || in.FireHeld {
					t.Errorf("input = %+v, want one press", in)
				}
			},
		},
		{
			name: "hold fire with rapid fire",
			setup: func(s *game.Session) {
				s.Enemies = append(s.Enemies, enemy(s.Player.X+5, 100))
				s.Status.RapidFire.Start(game.RapidFireDuration)
			},
			check: func(t *testing.T, in game.Input) {
				if !in.FireHeld {
					t.Errorf("input = %+v, want fire held", in)
				}
			},
		},
		{
			name: "dodge incoming shot",
			setup: func(s *game.Session) {
				s.EnemyBullets = append(s.EnemyBullets, game.EnemyBullet{
					Rect:  game.Rect{X: s.Player.X + 5, Y: s.Player.Y - 60, W: game.EnemyBulletWidth, H: game.EnemyBulletHeight},
					Speed: game.EnemyBulletSpeed,
				})
			},
			check: func(t *testing.T, in game.Input) {
				if !in.Right || in.Left {
					t.Errorf("input = %+v, want right, away from the shot", in)
				}
			},
		},
		{
			name: "grenade a crowd",
			setup: func(s *game.Session) {
				s.Grenades.Fill(1)
				for i := range 3 {
					s.Enemies = append(s.Enemies, enemy(s.Player.X-20+float64(i)*20, s.Player.Y-60))
				}
			},
			check: func(t *testing.T, in game.Input) {
				if in.GrenadePresses != 1 {
					t.Errorf("input = %+v, want a grenade", in)
				}
			},
		},
		{
			name: "no grenade without stock",
			setup: func(s *game.Session) {
				for i := range 3 {
					s.Enemies = append(s.Enemies, enemy(s.Player.X-20+float64(i)*20, s.Player.Y-60))
				}
			},
			check: func(t *testing.T, in game.Input) {
				if in.GrenadePresses != 0 {
					t.Errorf("input = %+v, want no grenade", in)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Autopilot
			tt.check(t, a.Decide(snapshotWith(tt.setup)))
		})
	}
}

func TestAutopilotCooldown(t *testing.T) {
	snap := snapshotWith(func(s *game.Session) {
		s.Enemies = append(s.Enemies, enemy(s.Player.X+5, 100))
	})
	var a Autopilot
	presses := 0
	for range fireCooldown + 1 {
		presses += a.Decide(snap).FirePresses
	}
	if presses != 2 {
		t.Errorf("presses over %d ticks = %d, want 2", fireCooldown+1, presses)
	}
}

func TestPlayIsDeterministic(t *testing.T) {
	ctx := context.Background()
	a, err := Play(ctx, game.DefaultConfig(), 5, 20_000, quiet())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Play(ctx, game.DefaultConfig(), 5, 20_000, quiet())
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != b.Score || a.Ticks != b.Ticks || a.Over != b.Over {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
	if a.ID == b.ID {
		t.Error("two runs shared a session id")
	}
}

func TestPlayStopsAtMaxTicks(t *testing.T) {
	res, err := Play(context.Background(), game.DefaultConfig(), 1, 10, quiet())
	if err != nil {
		t.Fatal(err)
	}
	if res.Ticks != 10 || res.Over {
		t.Errorf("result = %+v, want 10 ticks still running", res)
	}
}

func TestRunBatch(t *testing.T) {
	opts := Options{Runs: 6, Workers: 3, MaxTicks: 3_000, Seed: 100, Game: game.DefaultConfig()}
	results, err := RunBatch(context.Background(), opts, quiet())
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	if len(results) != opts.Runs {
		t.Fatalf("results = %d, want %d", len(results), opts.Runs)
	}
	for i, r := range results {
		if r.Seed != opts.Seed+uint64(i) {
			t.Errorf("results[%d].Seed = %d, want %d", i, r.Seed, opts.Seed+uint64(i))
		}
		if r.ID == uuid.Nil {
			t.Errorf("results[%d] has no session id", i)
		}
		solo, err := Play(context.Background(), opts.Game, r.Seed, opts.MaxTicks, quiet())
		if err != nil {
			t.Fatal(err)
		}
		if solo.Score != r.Score || solo.Ticks != r.Ticks {
			t.Errorf("seed %d: batch %+v, solo %+v", r.Seed, r, solo)
		}
	}
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := RunBatch(ctx, Options{Runs: 4, Workers: 2, MaxTicks: 100, Game: game.DefaultConfig()}, quiet())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunBatch() error = %v, want context.Canceled", err)
	}
	if got := Summarize(results); got.Runs != 0 {
		t.Errorf("summary = %+v, want no runs", got)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{ID: uuid.New(), Score: 4, Over: true},
		{ID: uuid.New(), Score: 10, Over: false},
		{},
	}
	got := Summarize(results)
	want := Summary{Runs: 2, Finished: 1, Best: 10, Mean: 7}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}
