package game

import "testing"

// seqRand replays a fixed sequence of draws, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(DefaultConfig(), NewRand(42))
}

// enemyAt places a one-hit enemy with its top-left corner at (x, y).
func enemyAt(s *Session, x, y float64) *Enemy {
	s.Enemies = append(s.Enemies, Enemy{
		ID:        s.Spawner.newID(),
		Rect:      Rect{X: x, Y: y, W: EnemyWidth, H: EnemyHeight},
		Speed:     EnemySpeed,
		Health:    EnemyMaxHealth,
		MaxHealth: EnemyMaxHealth,
	})
	return &s.Enemies[len(s.Enemies)-1]
}

// stepQuiet steps once and clears every enemy, so long runs never lose.
func stepQuiet(s *Session, in Input) {
	s.Step(in)
	s.Enemies = s.Enemies[:0]
	s.EnemyBullets = s.EnemyBullets[:0]
}
