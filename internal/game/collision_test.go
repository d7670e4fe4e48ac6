package game

import "testing"

func bulletOver(e *Enemy) Bullet {
	return Bullet{
		Rect:  Rect{X: e.X + 5, Y: e.Y + 5, W: BulletWidth, H: BulletHeight},
		Speed: BulletSpeed,
	}
}

func TestBulletKillsEnemyInOneHit(t *testing.T) {
	s := NewSession(DefaultConfig(), &seqRand{vals: []float64{0.5}})
	e := enemyAt(s, 100, 100)
	cx, cy := e.Center()
	s.Bullets = append(s.Bullets, bulletOver(e))

	s.resolveCollisions()

	if len(s.Enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(s.Enemies))
	}
	if len(s.Bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(s.Bullets))
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if len(s.Particles.P) != HitParticles {
		t.Errorf("particles = %d, want %d", len(s.Particles.P), HitParticles)
	}
	for _, p := range s.Particles.P {
		if p.X != cx || p.Y != cy {
			t.Errorf("hit particle at (%v, %v), want enemy center (%v, %v)", p.X, p.Y, cx, cy)
			break
		}
	}
	if len(s.Perks) != 0 {
		t.Errorf("perks = %d, want 0 with a failed drop roll", len(s.Perks))
	}
}

func TestBulletKillDropsPerk(t *testing.T) {
	// Every draw is 0.05: the drop roll succeeds and the kind is the first.
	s := NewSession(DefaultConfig(), &seqRand{vals: []float64{0.05}})
	e := enemyAt(s, 100, 100)
	cx, cy := e.Center()
	s.Bullets = append(s.Bullets, bulletOver(e))

	s.resolveCollisions()

	if len(s.Perks) != 1 {
		t.Fatalf("perks = %d, want 1", len(s.Perks))
	}
	p := s.Perks[0]
	if p.Kind != PerkHealth {
		t.Errorf("perk kind = %v, want %v", p.Kind, PerkHealth)
	}
	if p.X != cx || p.Y != cy {
		t.Errorf("perk at (%v, %v), want (%v, %v)", p.X, p.Y, cx, cy)
	}
}

func TestDroppedPerkDrifts(t *testing.T) {
	s := NewSession(DefaultConfig(), &seqRand{vals: []float64{0.05}})
	s.dropPerk(100, 100)
	if len(s.Perks) != 1 {
		t.Fatalf("perks = %d, want 1", len(s.Perks))
	}
	if got := s.Perks[0].Speed; got != PerkDriftSpeed {
		t.Errorf("perk speed = %v, want %v", got, PerkDriftSpeed)
	}

	s.advancePerks()
	if got := s.Perks[0].Y; got != 100+PerkDriftSpeed {
		t.Errorf("perk y = %v, want %v", got, 100+PerkDriftSpeed)
	}
}

func TestBulletMayKillSeveralEnemies(t *testing.T) {
	s := newTestSession(t)
	a := enemyAt(s, 100, 100)
	enemyAt(s, 100, 110)
	s.Bullets = append(s.Bullets, bulletOver(a))

	s.resolveCollisions()

	if len(s.Enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(s.Enemies))
	}
	if s.Score != 2 {
		t.Errorf("score = %d, want 2", s.Score)
	}
	if len(s.Bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(s.Bullets))
	}
}

func TestDeadEnemyAbsorbsNoSecondBullet(t *testing.T) {
	s := newTestSession(t)
	e := enemyAt(s, 100, 100)
	s.Bullets = append(s.Bullets, bulletOver(e), bulletOver(e))

	s.resolveCollisions()

	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if len(s.Bullets) != 1 {
		t.Errorf("bullets = %d, want 1", len(s.Bullets))
	}
}

func TestEnemyContactDamagesEveryTick(t *testing.T) {
	s := newTestSession(t)
	enemyAt(s, s.Player.X, s.Player.Y)

	for tick := 1; tick <= 4; tick++ {
		s.Step(Input{})
		if want := MaxHealth - tick*EnemyContactDmg; s.Player.Health.Current != want {
			t.Fatalf("tick %d: health = %d, want %d", tick, s.Player.Health.Current, want)
		}
		if s.Over() {
			t.Fatalf("tick %d: game over too early", tick)
		}
		if len(s.Enemies) != 1 {
			t.Fatalf("tick %d: enemies = %d, want the rammer to survive", tick, len(s.Enemies))
		}
	}

	s.Step(Input{})
	if s.Player.Health.Current != 0 {
		t.Errorf("health = %d, want 0", s.Player.Health.Current)
	}
	if !s.Over() {
		t.Error("game not over at zero health")
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	s := newTestSession(t)
	s.EnemyBullets = append(s.EnemyBullets, EnemyBullet{
		Rect:  Rect{X: s.Player.X + 10, Y: s.Player.Y + 5, W: EnemyBulletWidth, H: EnemyBulletHeight},
		Speed: EnemyBulletSpeed,
		Owner: 7,
	})

	s.resolveCollisions()

	if s.Player.Health.Current != MaxHealth-EnemyBulletDmg {
		t.Errorf("health = %d, want %d", s.Player.Health.Current, MaxHealth-EnemyBulletDmg)
	}
	if len(s.EnemyBullets) != 0 {
		t.Errorf("enemy bullets = %d, want 0", len(s.EnemyBullets))
	}
}

func TestPerkPickup(t *testing.T) {
	tests := []struct {
		name  string
		kind  PerkKind
		setup func(s *Session)
		check func(t *testing.T, s *Session)
	}{
		{
			name:  "health",
			kind:  PerkHealth,
			setup: func(s *Session) { s.Player.Health.Current = 50 },
			check: func(t *testing.T, s *Session) {
				if s.Player.Health.Current != 80 {
					t.Errorf("health = %d, want 80", s.Player.Health.Current)
				}
			},
		},
		{
			name:  "health capped",
			kind:  PerkHealth,
			setup: func(s *Session) { s.Player.Health.Current = 90 },
			check: func(t *testing.T, s *Session) {
				if s.Player.Health.Current != MaxHealth {
					t.Errorf("health = %d, want %d", s.Player.Health.Current, MaxHealth)
				}
			},
		},
		{
			name:  "ammo capped",
			kind:  PerkAmmo,
			setup: func(s *Session) { s.Player.Ammo.Current = 20 },
			check: func(t *testing.T, s *Session) {
				if s.Player.Ammo.Current != MaxAmmo {
					t.Errorf("ammo = %d, want %d", s.Player.Ammo.Current, MaxAmmo)
				}
			},
		},
		{
			name: "speed",
			kind: PerkSpeed,
			check: func(t *testing.T, s *Session) {
				if s.Player.Speed != PlayerBoostSpeed {
					t.Errorf("speed = %v, want %v", s.Player.Speed, PlayerBoostSpeed)
				}
				if s.Status.SpeedBoost.Remaining != SpeedBoostDuration {
					t.Errorf("boost = %d, want %d", s.Status.SpeedBoost.Remaining, SpeedBoostDuration)
				}
			},
		},
		{
			name: "rapid fire",
			kind: PerkRapidFire,
			check: func(t *testing.T, s *Session) {
				if s.Status.RapidFire.Remaining != RapidFireDuration {
					t.Errorf("rapid fire = %d, want %d", s.Status.RapidFire.Remaining, RapidFireDuration)
				}
			},
		},
		{
			name:  "grenade capped",
			kind:  PerkGrenade,
			setup: func(s *Session) { s.Grenades.Current = GrenadeMax },
			check: func(t *testing.T, s *Session) {
				if s.Grenades.Current != GrenadeMax {
					t.Errorf("grenades = %d, want %d", s.Grenades.Current, GrenadeMax)
				}
			},
		},
		{
			name:  "unknown kind",
			kind:  PerkKind(200),
			setup: func(s *Session) { s.Player.Health.Current = 50 },
			check: func(t *testing.T, s *Session) {
				if s.Player.Health.Current != 50 || s.Player.Speed != PlayerSpeed || s.Grenades.Current != 0 {
					t.Errorf("unknown perk changed state: %+v grenades=%d", s.Player, s.Grenades.Current)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			if tt.setup != nil {
				tt.setup(s)
			}
			s.Perks = append(s.Perks, Perk{
				Rect:  Rect{X: s.Player.X, Y: s.Player.Y, W: PerkSize, H: PerkSize},
				Kind:  tt.kind,
				Speed: PerkDriftSpeed,
			})

			s.resolveCollisions()

			if len(s.Perks) != 0 {
				t.Errorf("perks = %d, want pickup removed", len(s.Perks))
			}
			tt.check(t, s)
		})
	}
}
