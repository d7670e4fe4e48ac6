// Package terminal plays the game in a text terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"shooter/internal/config"
	"shooter/internal/game"
)

// Frontend implements game.Frontend on a tcell screen. Terminals report key
// presses and auto-repeats but never releases, so a key counts as held for
// a few frames after its last event.
type Frontend struct {
	screen tcell.Screen
	log    *slog.Logger
	ticker *time.Ticker
	events chan tcell.Event
	hold   uint64

	done      chan struct{} // closed by Close
	stopped   chan struct{} // closed when pump returns
	closeOnce sync.Once

	frame uint64
	keys  keyState
	quit  bool
}

// keyState records the frame until which each key counts as held.
type keyState struct {
	left, right   uint64
	fire, grenade uint64

	firePresses    int
	grenadePresses int
	restart        bool
}

// Open creates and initializes the terminal screen.
func Open(cfg config.Terminal, logger *slog.Logger) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return New(screen, cfg, logger)
}

// New takes ownership of screen, initializes it and starts the event pump.
func New(screen tcell.Screen, cfg config.Terminal, logger *slog.Logger) (*Frontend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	f := &Frontend{
		screen: screen,
		log:    logger,
		ticker: time.NewTicker(time.Second / time.Duration(max(cfg.FPS, 1))),
		events: make(chan tcell.Event, 100),
		hold:   uint64(max(cfg.HoldFrames, 1)),

		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go f.pump()
	return f, nil
}

// pump forwards screen events until the screen is finalized or the
// frontend is closed.
func (f *Frontend) pump() {
	defer close(f.stopped)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			close(f.events)
			return
		}
		select {
		case f.events <- ev:
		case <-f.done:
			return
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (f *Frontend) Close() {
	f.closeOnce.Do(func() {
		close(f.done)
		f.ticker.Stop()
		f.screen.Fini()
	})
}

func (f *Frontend) WaitFrame(ctx context.Context) error {
	if f.quit {
		return game.ErrQuit
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.ticker.C:
		return nil
	}
}

func (f *Frontend) Input() game.Input {
	f.drain()
	f.frame++
	in := game.Input{
		Left:           f.frame <= f.keys.left,
		Right:          f.frame <= f.keys.right,
		FireHeld:       f.frame <= f.keys.fire,
		FirePresses:    f.keys.firePresses,
		GrenadePresses: f.keys.grenadePresses,
	}
	f.keys.firePresses = 0
	f.keys.grenadePresses = 0
	return in
}

func (f *Frontend) drain() {
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				f.quit = true
				return
			}
			f.handle(ev)
		default:
			return
		}
	}
}

// handle folds one event into the key state. A press only counts when the
// key was not already held, so auto-repeat extends a hold instead of firing
// again.
func (f *Frontend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		until := f.frame + f.hold
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			f.quit = true
		case tcell.KeyLeft:
			f.keys.left = until
		case tcell.KeyRight:
			f.keys.right = until
		case tcell.KeyEnter:
			f.keys.restart = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				if f.frame >= f.keys.fire {
					f.keys.firePresses++
				}
				f.keys.fire = until
			case 'g', 'G':
				if f.frame >= f.keys.grenade {
					f.keys.grenadePresses++
				}
				f.keys.grenade = until
			case 'a', 'A', 'h':
				f.keys.left = until
			case 'd', 'D', 'l':
				f.keys.right = until
			case 'r', 'R':
				f.keys.restart = true
			case 'q', 'Q':
				f.quit = true
			}
		}
	}
}

func (f *Frontend) Present(snap game.Snapshot) {
	f.draw(snap)
	f.screen.Show()
}

func (f *Frontend) ShowGameOver(score int) {
	f.drawGameOver(score)
	f.screen.Show()
}

// AwaitRestart polls the keyboard once a frame until the player restarts
// or quits. Keys pressed during play do not count.
func (f *Frontend) AwaitRestart(ctx context.Context) (bool, error) {
	f.drain()
	f.keys = keyState{}
	for {
		if f.quit {
			return false, nil
		}
		if f.keys.restart {
			f.keys = keyState{}
			f.log.Debug("restart requested")
			return true, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-f.ticker.C:
		}
		f.drain()
		f.frame++
	}
}
