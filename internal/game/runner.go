package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

//go:generate go tool mockgen -destination=./mocks/frontend_mock.go -package=mocks . Frontend

// ErrQuit is returned by a Frontend when the player closes the game.
var ErrQuit = errors.New("game: quit")

// Frontend is the presentation and input side of the loop. Every method is
// called from the runner's goroutine, one tick at a time.
type Frontend interface {
	// WaitFrame blocks until the next display refresh.
	WaitFrame(ctx context.Context) error
	// Input returns the key state collected since the previous call.
	Input() Input
	// Present draws the state produced by the tick that just ran.
	Present(snap Snapshot)
	// ShowGameOver is called once when a session ends.
	ShowGameOver(score int)
	// AwaitRestart blocks until the player restarts (true) or leaves (false).
	AwaitRestart(ctx context.Context) (bool, error)
}

// Runner drives a Session with one tick per frame and handles the
// game over / restart cycle.
type Runner struct {
	session *Session
	fe      Frontend
	log     *slog.Logger
	id      uuid.UUID
	played  int
}

func NewRunner(s *Session, fe Frontend, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{session: s, fe: fe, log: logger}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, t := range AllEvents {
			s.Events().Subscribe(t, r.logEvent)
		}
	}
	return r
}

// SessionID identifies the current session in logs.
func (r *Runner) SessionID() uuid.UUID { return r.id }

// Played is the number of sessions started so far.
func (r *Runner) Played() int { return r.played }

// Run ticks until the player quits, declines a restart, or ctx ends. A quit
// or a cancelled context is a normal exit and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	r.begin(ctx)
	for {
		if err := r.fe.WaitFrame(ctx); err != nil {
			return r.exit(ctx, err)
		}
		r.session.Step(r.fe.Input())
		r.fe.Present(r.session.Snapshot())
		if !r.session.Over() {
			continue
		}

		r.log.InfoContext(ctx, "game over",
			"session", r.id,
			"score", r.session.Score,
			"ticks", r.session.Tick,
		)
		r.fe.ShowGameOver(r.session.Score)
		again, err := r.fe.AwaitRestart(ctx)
		if err != nil {
			return r.exit(ctx, err)
		}
		if !again {
			return nil
		}
		r.session.Reset()
		r.begin(ctx)
	}
}

func (r *Runner) begin(ctx context.Context) {
	r.id = uuid.New()
	r.played++
	r.log.InfoContext(ctx, "session started", "session", r.id, "n", r.played)
}

func (r *Runner) exit(ctx context.Context, err error) error {
	if errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		r.log.InfoContext(ctx, "session closed",
			"session", r.id,
			"score", r.session.Score,
			"ticks", r.session.Tick,
		)
		return nil
	}
	return err
}

func (r *Runner) logEvent(e Event) {
	r.log.Debug("event",
		"session", r.id,
		"tick", r.session.Tick,
		"type", e.Type.String(),
		"x", e.X,
		"y", e.Y,
		"count", e.Count,
		"cause", e.Cause,
		"perk", e.Perk,
	)
}
