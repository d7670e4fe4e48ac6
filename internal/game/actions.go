package game

import "sort"

// Fire launches one bullet from the ship's nose. It does nothing without
// ammo and reports whether a bullet left.
func (s *Session) Fire() bool {
	if s.State != StateRunning || s.Player.Ammo.Empty() {
		return false
	}
	p := &s.Player
	s.Bullets = append(s.Bullets, Bullet{
		Rect: Rect{
			X: p.X + p.W/2 - BulletWidth/2,
			Y: p.Y,
			W: BulletWidth,
			H: BulletHeight,
		},
		Speed: BulletSpeed,
	})
	p.Ammo.Drain(1)
	s.Particles.SpawnMuzzle(s.rng, p.X+p.W/2, p.Y)
	s.events.Emit(Event{Type: EventShot, X: p.X + p.W/2, Y: p.Y})
	return true
}

// ThrowGrenade spends one grenade and destroys up to GrenadeKillCount
// enemies within GrenadeRadius of the ship, closest first. It returns the
// number of enemies destroyed.
func (s *Session) ThrowGrenade() int {
	if s.State != StateRunning || s.Grenades.Empty() {
		return 0
	}
	s.Grenades.Drain(1)

	type ranked struct {
		idx  int
		dist float64
	}
	order := make([]ranked, len(s.Enemies))
	for i := range s.Enemies {
		order[i] = ranked{idx: i, dist: centerDist(s.Enemies[i].Rect, s.Player.Rect)}
	}
	sort.SliceStable(order, func(a, b int) bool { return order[a].dist < order[b].dist })

	dead := make([]bool, len(s.Enemies))
	killed := 0
	for _, o := range order {
		if killed >= GrenadeKillCount || o.dist > GrenadeRadius {
			break
		}
		e := &s.Enemies[o.idx]
		cx, cy := e.Center()
		s.Particles.SpawnExplosion(s.rng, cx, cy)
		dead[o.idx] = true
		s.Score++
		killed++
		s.events.Emit(Event{Type: EventEnemyKilled, X: cx, Y: cy, Cause: CauseGrenade})
	}
	s.Enemies = filterIdx(s.Enemies, dead)

	s.events.Emit(Event{Type: EventGrenadeThrown, X: s.Player.X, Y: s.Player.Y, Count: killed})
	return killed
}

// filterIdx keeps the elements whose index is not marked. The backing array
// is reused.
func filterIdx[T any](items []T, removed []bool) []T {
	kept := items[:0]
	for i := range items {
		if !removed[i] {
			kept = append(kept, items[i])
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
