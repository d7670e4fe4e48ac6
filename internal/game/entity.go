package game

// EntityID identifies an enemy for the lifetime of a session. IDs are never
// reused within a session, so a bullet can name its owner after the owner is
// gone.
type EntityID uint64

// Player is the ship at the bottom of the screen.
type Player struct {
	Rect
	BaseSpeed float64
	Speed     float64
	Health    Meter
	Ammo      Meter
}

// Bullet is a player projectile travelling up.
type Bullet struct {
	Rect
	Speed float64
}

// EnemyBullet is an enemy projectile travelling down. Owner is only used to
// count how many shots an enemy has in flight.
type EnemyBullet struct {
	Rect
	Speed float64
	Owner EntityID
}

// Enemy descends from above the screen. Shooters carry a countdown to their
// next shot and a cap on simultaneous bullets.
type Enemy struct {
	Rect
	ID         EntityID
	Speed      float64
	Health     int
	MaxHealth  int
	CanShoot   bool
	ShootTimer int
	MaxBullets int
}

// HealthFraction is the enemy's remaining health in [0,1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return clampF(float64(e.Health)/float64(e.MaxHealth), 0, 1)
}

// Perk is a pickup dropped by a destroyed enemy.
type Perk struct {
	Rect
	Kind  PerkKind
	Speed float64
}

func newPlayer(cfg Config) Player {
	return Player{
		Rect: Rect{
			X: cfg.Width/2 - PlayerWidth/2,
			Y: cfg.Height - PlayerHeight - PlayerBottomInset,
			W: PlayerWidth,
			H: PlayerHeight,
		},
		BaseSpeed: PlayerSpeed,
		Speed:     PlayerSpeed,
		Health:    NewMeter(MaxHealth),
		Ammo:      NewMeter(MaxAmmo),
	}
}
