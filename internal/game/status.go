package game

// Timer is a countdown in ticks. Zero means inactive.
type Timer struct {
	Remaining int
}

// Start (re)arms the timer; picking up the same perk twice restarts it.
func (t *Timer) Start(ticks int) { t.Remaining = ticks }

func (t *Timer) Active() bool { return t.Remaining > 0 }

// Tick advances an active timer and reports whether it expired on this tick.
func (t *Timer) Tick() bool {
	if t.Remaining <= 0 {
		return false
	}
	t.Remaining--
	return t.Remaining == 0
}

// StatusEffects holds the timed buffs and the passive regen counters.
type StatusEffects struct {
	RapidFire  Timer
	SpeedBoost Timer

	// Ticks since the last granted point. A full meter keeps counting, so
	// the first point after spending can arrive on the next tick.
	AmmoRegen   int
	HealthRegen int

	// Ticks since the last automatic shot while the fire key is held.
	AutoFire int
}

// autoFire fires every AutoFireInterval ticks while rapid fire is active and
// the fire key is held. Releasing the key or losing the buff resets the
// cadence.
func (s *Session) autoFire(held bool) {
	if !s.Status.RapidFire.Active() || !held {
		s.Status.AutoFire = 0
		return
	}
	s.Status.AutoFire++
	if s.Status.AutoFire >= AutoFireInterval {
		s.Fire()
		s.Status.AutoFire = 0
	}
}

// regen grants one ammo every AmmoRegenRate ticks and one health every
// HealthRegenRate ticks while the meter is below max.
func (s *Session) regen() {
	s.Status.AmmoRegen++
	s.Status.HealthRegen++
	if s.Status.AmmoRegen >= AmmoRegenRate && !s.Player.Ammo.Full() {
		s.Player.Ammo.Fill(1)
		s.Status.AmmoRegen = 0
	}
	if s.Status.HealthRegen >= HealthRegenRate && !s.Player.Health.Full() {
		s.Player.Health.Fill(1)
		s.Status.HealthRegen = 0
	}
}

// decayEffects counts down the timed buffs and reverts their side effects
// on expiry.
func (s *Session) decayEffects() {
	s.Status.RapidFire.Tick()
	if s.Status.SpeedBoost.Tick() {
		s.Player.Speed = s.Player.BaseSpeed
	}
}
