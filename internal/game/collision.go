package game

// resolveCollisions runs the four interaction passes in order. Removals are
// marked during the passes and applied by filtering once at the end, so no
// store is mutated while it is being walked.
func (s *Session) resolveCollisions() {
	bulletGone := make([]bool, len(s.Bullets))
	enemyDead := make([]bool, len(s.Enemies))

	// Player bullets against enemies. Every live pair is resolved, so one
	// bullet may take down more than one enemy.
	for bi := range s.Bullets {
		b := s.Bullets[bi].Rect
		for ei := range s.Enemies {
			if enemyDead[ei] {
				continue
			}
			e := &s.Enemies[ei]
			if !Intersects(b, e.Rect) {
				continue
			}
			bulletGone[bi] = true
			e.Health = max(e.Health-1, 0)
			cx, cy := e.Center()
			s.Particles.SpawnHit(s.rng, cx, cy)
			if e.Health <= 0 {
				enemyDead[ei] = true
				s.Score++
				s.events.Emit(Event{Type: EventEnemyKilled, X: cx, Y: cy, Cause: CauseBullet})
				s.dropPerk(cx, cy)
			}
		}
	}

	// Perks against the player, including any dropped just above.
	perkGone := make([]bool, len(s.Perks))
	for i := range s.Perks {
		if Intersects(s.Perks[i].Rect, s.Player.Rect) {
			s.applyPerk(s.Perks[i].Kind)
			perkGone[i] = true
		}
	}

	// Enemies ram the player every tick they overlap; they are not consumed.
	for i := range s.Enemies {
		if enemyDead[i] {
			continue
		}
		if Intersects(s.Enemies[i].Rect, s.Player.Rect) {
			s.damagePlayer(EnemyContactDmg)
		}
	}

	// Enemy bullets against the player.
	shotGone := make([]bool, len(s.EnemyBullets))
	for i := range s.EnemyBullets {
		if Intersects(s.EnemyBullets[i].Rect, s.Player.Rect) {
			s.damagePlayer(EnemyBulletDmg)
			shotGone[i] = true
		}
	}

	s.Bullets = filterIdx(s.Bullets, bulletGone)
	s.Enemies = filterIdx(s.Enemies, enemyDead)
	s.Perks = filterIdx(s.Perks, perkGone)
	s.EnemyBullets = filterIdx(s.EnemyBullets, shotGone)
}

// damagePlayer applies damage and flags the loss once health is gone.
func (s *Session) damagePlayer(amount int) {
	s.Player.Health.Drain(amount)
	s.events.Emit(Event{Type: EventPlayerHit, X: s.Player.X, Y: s.Player.Y, Count: amount})
	if s.Player.Health.Empty() {
		s.lost = true
	}
}
