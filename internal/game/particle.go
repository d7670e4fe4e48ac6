package game

// Particle is a purely cosmetic spark. Life counts down in ticks.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Col     RGB
}

// Alpha is the fade factor life/maxLife in [0,1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clampF(float64(p.Life)/float64(p.MaxLife), 0, 1)
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, 256),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update moves every particle one tick and drops the expired ones. Order
// is preserved so renderers draw older sparks first.
func (ps *ParticleSystem) Update() {
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	ps.P = kept
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// burst emits n sparks at (x, y). spreadX/spreadY scale the centered
// velocity draw; upwardY switches vy to a one-sided [0, spreadY) draw.
func (ps *ParticleSystem) burst(r RandSource, x, y float64, n int, spreadX, spreadY float64, upwardY bool, life int, col RGB) {
	for range n {
		vx := (r.Float64() - 0.5) * spreadX
		var vy float64
		if upwardY {
			vy = r.Float64() * spreadY
		} else {
			vy = (r.Float64() - 0.5) * spreadY
		}
		ps.Add(Particle{
			X: x, Y: y,
			VX: vx, VY: vy,
			Life: life, MaxLife: life,
			Col: col,
		})
	}
}

// SpawnMuzzle is the flash at the ship's nose when a bullet leaves.
func (ps *ParticleSystem) SpawnMuzzle(r RandSource, x, y float64) {
	ps.burst(r, x, y, MuzzleParticles, 3, 2, true, 10, Palette.Muzzle)
}

// SpawnHit is the spray at an enemy's center when a bullet connects.
func (ps *ParticleSystem) SpawnHit(r RandSource, x, y float64) {
	ps.burst(r, x, y, HitParticles, 4, 4, false, 15, Palette.Hit)
}

// SpawnExplosion is the blast left by a grenade kill.
func (ps *ParticleSystem) SpawnExplosion(r RandSource, x, y float64) {
	ps.burst(r, x, y, ExplosionParticles, 6, 6, false, 20, Palette.Explosion)
}
