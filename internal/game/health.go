package game

// Meter is a clamped integer resource: health, ammo, grenade stock.
type Meter struct {
	Current int
	Max     int
}

func NewMeter(max int) Meter {
	return Meter{Current: max, Max: max}
}

// Drain removes amount, never going below zero.
func (m *Meter) Drain(amount int) {
	m.Current = clamp(m.Current-amount, 0, m.Max)
}

// Fill adds amount, never going above Max.
func (m *Meter) Fill(amount int) {
	m.Current = clamp(m.Current+amount, 0, m.Max)
}

func (m *Meter) Fraction() float64 {
	if m.Max <= 0 {
		return 0
	}
	return clampF(float64(m.Current)/float64(m.Max), 0, 1)
}

func (m *Meter) Empty() bool { return m.Current <= 0 }

func (m *Meter) Full() bool { return m.Current >= m.Max }

// HealthBarColor returns green/yellow/red based on fraction.
func HealthBarColor(frac float64) RGB {
	if frac > 0.6 {
		return Palette.BarHigh
	}
	if frac > 0.3 {
		return Palette.BarMid
	}
	return Palette.BarLow
}
