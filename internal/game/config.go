package game

// Screen dimensions (in world pixels). The playfield is one screen; the
// frontends scale it to their surface.
const (
	ScreenWidth  = 480
	ScreenHeight = 640
)

// Player ship.
const (
	PlayerWidth       = 50.0
	PlayerHeight      = 30.0
	PlayerSpeed       = 5.0
	PlayerBoostSpeed  = PlayerSpeed + 4
	PlayerBottomInset = 10.0
	MaxHealth         = 100
	MaxAmmo           = 30
)

// Projectiles.
const (
	BulletWidth       = 5.0
	BulletHeight      = 15.0
	BulletSpeed       = 7.0
	EnemyBulletWidth  = 5.0
	EnemyBulletHeight = 12.0
	EnemyBulletSpeed  = 4.0
)

// Enemies.
const (
	EnemyWidth       = 40.0
	EnemyHeight      = 30.0
	EnemySpeed       = 2.0
	EnemyMaxHealth   = 1
	EnemySpawnRate   = 30  // ticks
	EnemyShootRate   = 120 // ticks
	EnemyShootJitter = 60  // ticks added on re-arm
	EnemyShootChance = 0.4
	EnemyMinBullets  = 2
	EnemyContactDmg  = 20
	EnemyBulletDmg   = 10
)

// Perks and timed effects.
const (
	PerkSize           = 20.0
	PerkDriftSpeed     = 1.0
	PerkDropRate       = 0.1
	PerkHealthAmount   = 30
	PerkAmmoAmount     = 15
	AmmoRegenRate      = 60  // ticks per ammo
	HealthRegenRate    = 300 // ticks per health point
	RapidFireDuration  = 300 // ticks (5 s at 60 Hz)
	SpeedBoostDuration = 300
	AutoFireInterval   = 5
)

// Grenades.
const (
	GrenadeRadius    = 80.0
	GrenadeMax       = 3
	GrenadeKillCount = 5
)

// Particles.
const (
	MaxParticles       = 4096
	MuzzleParticles    = 5
	HitParticles       = 8
	ExplosionParticles = 20
)

// Config holds the per-session parameters that are not gameplay tuning.
type Config struct {
	Width  float64
	Height float64
}

// DefaultConfig returns the 480x640 playfield.
func DefaultConfig() Config {
	return Config{Width: ScreenWidth, Height: ScreenHeight}
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = ScreenWidth
	}
	if c.Height <= 0 {
		c.Height = ScreenHeight
	}
	return c
}
