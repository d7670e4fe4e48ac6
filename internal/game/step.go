package game

// Input is the key state read once at the start of a tick. Held keys are
// levels; presses are the key-down edges collected since the last tick.
type Input struct {
	Left     bool
	Right    bool
	FireHeld bool

	FirePresses    int
	GrenadePresses int
}

// Step advances the session by one tick. It is a no-op once the game is over.
func (s *Session) Step(in Input) {
	if s.State != StateRunning {
		return
	}
	s.Tick++

	// Key-down edges happen between frames.
	for range in.FirePresses {
		s.Fire()
	}
	for range in.GrenadePresses {
		s.ThrowGrenade()
	}

	s.movePlayer(in)
	s.advanceBullets()
	s.advanceEnemyBullets()
	s.advanceEnemies()
	s.advancePerks()
	s.Particles.Update()

	s.autoFire(in.FireHeld)
	s.resolveCollisions()
	s.regen()
	s.decayEffects()
	s.tickSpawner()

	if s.lost {
		s.State = StateGameOver
		s.events.Emit(Event{Type: EventGameOver, X: s.Player.X, Y: s.Player.Y, Count: s.Score})
	}
}

// movePlayer applies held arrows, keeping the ship on screen.
func (s *Session) movePlayer(in Input) {
	p := &s.Player
	if in.Left {
		p.X = max(p.X-p.Speed, 0)
	}
	if in.Right {
		p.X = min(p.X+p.Speed, s.cfg.Width-p.W)
	}
}

func (s *Session) advanceBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Y -= b.Speed
		if b.Y+b.H > 0 {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

func (s *Session) advanceEnemyBullets() {
	kept := s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		b.Y += b.Speed
		if b.Y <= s.cfg.Height {
			kept = append(kept, b)
		}
	}
	s.EnemyBullets = kept
}

// advanceEnemies moves enemies down, lets shooters fire, and drops the ones
// past the bottom edge. Any enemy crossing the bottom loses the game.
func (s *Session) advanceEnemies() {
	counts := s.inFlight()
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		e.Y += e.Speed
		if e.Y > s.cfg.Height {
			s.lost = true
		}
		if e.CanShoot {
			e.ShootTimer--
			if e.ShootTimer <= 0 && counts[e.ID] < e.MaxBullets {
				s.EnemyBullets = append(s.EnemyBullets, EnemyBullet{
					Rect: Rect{
						X: e.X + e.W/2 - EnemyBulletWidth/2,
						Y: e.Y + e.H,
						W: EnemyBulletWidth,
						H: EnemyBulletHeight,
					},
					Speed: EnemyBulletSpeed,
					Owner: e.ID,
				})
				e.ShootTimer = EnemyShootRate + floorN(s.rng.Float64(), EnemyShootJitter)
			}
		}
		if e.Y <= s.cfg.Height {
			kept = append(kept, e)
		}
	}
	s.Enemies = kept
}

func (s *Session) advancePerks() {
	kept := s.Perks[:0]
	for _, p := range s.Perks {
		p.Y += p.Speed
		if p.Y <= s.cfg.Height {
			kept = append(kept, p)
		}
	}
	s.Perks = kept
}
