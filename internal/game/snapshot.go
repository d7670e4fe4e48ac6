package game

import "slices"

// Snapshot is a read-only copy of everything a presentation layer draws.
// It shares no memory with the session.
type Snapshot struct {
	Tick   uint64
	State  GameState
	Score  int
	Width  float64
	Height float64

	Player       Player
	Bullets      []Bullet
	EnemyBullets []EnemyBullet
	Enemies      []Enemy
	Perks        []Perk
	Particles    []Particle

	Health     Meter
	Ammo       Meter
	Grenades   Meter
	RapidFire  Timer
	SpeedBoost Timer
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:   s.Tick,
		State:  s.State,
		Score:  s.Score,
		Width:  s.cfg.Width,
		Height: s.cfg.Height,

		Player:       s.Player,
		Bullets:      copyOf(s.Bullets),
		EnemyBullets: copyOf(s.EnemyBullets),
		Enemies:      copyOf(s.Enemies),
		Perks:        copyOf(s.Perks),
		Particles:    copyOf(s.Particles.P),

		Health:     s.Player.Health,
		Ammo:       s.Player.Ammo,
		Grenades:   s.Grenades,
		RapidFire:  s.Status.RapidFire,
		SpeedBoost: s.Status.SpeedBoost,
	}
}

// copyOf clones a store; empty stores come back nil so snapshots of equal
// states compare equal.
func copyOf[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	return slices.Clone(items)
}
