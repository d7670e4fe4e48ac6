package game

import (
	"testing"

	"pgregory.net/rapid"
)

func inputGen() *rapid.Generator[Input] {
	return rapid.Custom(func(t *rapid.T) Input {
		return Input{
			Left:           rapid.Bool().Draw(t, "left"),
			Right:          rapid.Bool().Draw(t, "right"),
			FireHeld:       rapid.Bool().Draw(t, "held"),
			FirePresses:    rapid.IntRange(0, 2).Draw(t, "fire"),
			GrenadePresses: rapid.IntRange(0, 1).Draw(t, "grenade"),
		}
	})
}

// Meters, position and stores stay in range whatever the player does and
// however hard the ship is hit.
func TestSessionBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewSession(DefaultConfig(), NewRand(rapid.Uint64().Draw(t, "seed")))
		inputs := rapid.SliceOfN(inputGen(), 1, 400).Draw(t, "inputs")
		perks := rapid.SliceOfN(rapid.IntRange(0, int(perkKindCount)), 0, 20).Draw(t, "perks")
		hits := rapid.SliceOfN(rapid.IntRange(0, 150), 0, 40).Draw(t, "hits")

		score := 0
		for i, in := range inputs {
			if i < len(perks) {
				s.applyPerk(PerkKind(perks[i]))
			}
			if i < len(hits) {
				s.damagePlayer(hits[i])
			}
			s.Step(in)

			if h := s.Player.Health; h.Current < 0 || h.Current > h.Max {
				t.Fatalf("tick %d: health %+v", s.Tick, h)
			}
			if s.Player.Health.Empty() && !s.Over() {
				t.Fatalf("tick %d: health empty but still running", s.Tick)
			}
			if a := s.Player.Ammo; a.Current < 0 || a.Current > a.Max {
				t.Fatalf("tick %d: ammo %+v", s.Tick, a)
			}
			if g := s.Grenades; g.Current < 0 || g.Current > GrenadeMax {
				t.Fatalf("tick %d: grenades %+v", s.Tick, g)
			}
			if x := s.Player.X; x < 0 || x > ScreenWidth-PlayerWidth {
				t.Fatalf("tick %d: player x %v", s.Tick, x)
			}
			if len(s.Particles.P) > s.Particles.Max {
				t.Fatalf("tick %d: %d particles", s.Tick, len(s.Particles.P))
			}
			if s.Score < score {
				t.Fatalf("tick %d: score fell from %d to %d", s.Tick, score, s.Score)
			}
			score = s.Score
			if s.Over() {
				return
			}
		}
	})
}

func TestFireSpendsExactlyOneAmmo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestSessionRapid(t)
		s.Player.Ammo.Current = rapid.IntRange(0, MaxAmmo).Draw(t, "ammo")
		before := s.Player.Ammo.Current
		fired := s.Fire()

		if fired != (before > 0) {
			t.Fatalf("Fire() = %v with %d ammo", fired, before)
		}
		want := before
		if fired {
			want--
		}
		if s.Player.Ammo.Current != want {
			t.Fatalf("ammo = %d, want %d", s.Player.Ammo.Current, want)
		}
		if len(s.Bullets) != before-want {
			t.Fatalf("bullets = %d, want %d", len(s.Bullets), before-want)
		}
	})
}

func TestParticleCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ps := NewParticleSystem(rapid.IntRange(1, 64).Draw(t, "max"))
		n := rapid.IntRange(0, 300).Draw(t, "n")
		for i := range n {
			ps.Add(Particle{X: float64(i), Life: 5, MaxLife: 5})
		}
		if len(ps.P) != min(n, ps.Max) {
			t.Fatalf("len = %d, want %d", len(ps.P), min(n, ps.Max))
		}
	})
}

func newTestSessionRapid(t *rapid.T) *Session {
	return NewSession(DefaultConfig(), NewRand(rapid.Uint64().Draw(t, "seed")))
}
