package game

// Spawner owns the periodic enemy cadence and the session's ID sequence.
type Spawner struct {
	Timer  int // ticks since the last enemy
	nextID EntityID
}

func (sp *Spawner) reset() {
	sp.Timer = 0
	sp.nextID = 0
}

func (sp *Spawner) newID() EntityID {
	sp.nextID++
	return sp.nextID
}

// tickSpawner advances the enemy cadence and spawns one enemy every
// EnemySpawnRate ticks.
func (s *Session) tickSpawner() {
	s.Spawner.Timer++
	if s.Spawner.Timer >= EnemySpawnRate {
		s.spawnEnemy()
		s.Spawner.Timer = 0
	}
}

// spawnEnemy places a new enemy just above the top edge at a random x.
// Draw order: shooter roll, x, shoot countdown, bullet cap.
func (s *Session) spawnEnemy() *Enemy {
	canShoot := s.rng.Float64() < EnemyShootChance
	e := Enemy{
		ID: s.Spawner.newID(),
		Rect: Rect{
			X: s.rng.Float64() * (s.cfg.Width - EnemyWidth),
			Y: -EnemyHeight,
			W: EnemyWidth,
			H: EnemyHeight,
		},
		Speed:     EnemySpeed,
		Health:    EnemyMaxHealth,
		MaxHealth: EnemyMaxHealth,
		CanShoot:  canShoot,
	}
	if canShoot {
		e.ShootTimer = floorN(s.rng.Float64(), EnemyShootRate)
		e.MaxBullets = EnemyMinBullets + floorN(s.rng.Float64(), 2)
	}
	s.Enemies = append(s.Enemies, e)
	return &s.Enemies[len(s.Enemies)-1]
}

// inFlight counts live enemy bullets per owner. Owners that no longer exist
// simply have stale entries nobody asks for.
func (s *Session) inFlight() map[EntityID]int {
	counts := make(map[EntityID]int, len(s.Enemies))
	for i := range s.EnemyBullets {
		counts[s.EnemyBullets[i].Owner]++
	}
	return counts
}
