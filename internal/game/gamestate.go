package game

type GameState int

const (
	StateRunning  GameState = iota // ticking
	StateGameOver                  // terminal until Reset
)

func (g GameState) String() string {
	if g == StateGameOver {
		return "game_over"
	}
	return "running"
}

// Session is the whole simulation: the player, every entity store, the
// timers and the score. It is mutated only by Step and the actions it
// triggers.
type Session struct {
	State GameState
	Score int
	Tick  uint64

	Player       Player
	Bullets      []Bullet
	EnemyBullets []EnemyBullet
	Enemies      []Enemy
	Perks        []Perk
	Particles    *ParticleSystem
	Grenades     Meter

	Status  StatusEffects
	Spawner Spawner

	cfg    Config
	rng    RandSource
	events *EventBus

	// lost is raised mid-tick by any loss condition; the state flips once
	// the tick completes.
	lost bool
}

// NewSession builds a running session. rng supplies every random draw; a
// nil rng gets a generator seeded with 1.
func NewSession(cfg Config, rng RandSource) *Session {
	if rng == nil {
		rng = NewRand(1)
	}
	s := &Session{
		cfg:       cfg.withDefaults(),
		rng:       rng,
		events:    NewEventBus(),
		Particles: NewParticleSystem(MaxParticles),
	}
	s.Reset()
	return s
}

// Reset returns the session to its initial state. Event subscriptions and
// the random source carry over, so a restart plays a different game.
func (s *Session) Reset() {
	s.State = StateRunning
	s.Score = 0
	s.Tick = 0
	s.lost = false

	s.Player = newPlayer(s.cfg)
	s.Bullets = s.Bullets[:0]
	s.EnemyBullets = s.EnemyBullets[:0]
	s.Enemies = s.Enemies[:0]
	s.Perks = s.Perks[:0]
	s.Particles.Clear()
	s.Grenades = Meter{Current: 0, Max: GrenadeMax}

	s.Status = StatusEffects{}
	s.Spawner.reset()
}

func (s *Session) Events() *EventBus { return s.events }

// Over reports whether the session has reached its terminal state.
func (s *Session) Over() bool { return s.State == StateGameOver }
