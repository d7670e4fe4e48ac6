// Package bench plays seeded sessions without a display, driven by a
// simple autopilot.
package bench

import (
	"math"

	"shooter/internal/game"
)

const (
	dodgeRange   = 140.0 // how far above the ship an incoming shot is a threat
	fireCooldown = 8     // ticks between manual shots
	reserveAmmo  = 5     // keep this many unless the target is close
)

// Autopilot picks an Input from a snapshot. It chases the lowest enemy,
// dodges incoming shots and throws grenades at crowds or near misses.
type Autopilot struct {
	cool int
}

func (a *Autopilot) Decide(snap game.Snapshot) game.Input {
	var in game.Input
	if snap.State != game.StateRunning {
		return in
	}
	p := snap.Player
	px, py := p.Center()

	if a.cool > 0 {
		a.cool--
	}

	if dir := dodge(snap); dir != 0 {
		in.Left, in.Right = dir < 0, dir > 0
	} else if t := lowest(snap.Enemies); t != nil {
		tx, _ := t.Center()
		in.Left = tx < px-p.Speed
		in.Right = tx > px+p.Speed
	} else {
		mid := snap.Width / 2
		in.Left = px > mid+p.Speed
		in.Right = px < mid-p.Speed
	}

	if t := lowest(snap.Enemies); t != nil {
		tx, ty := t.Center()
		aligned := math.Abs(tx-px) < game.EnemyWidth/2
		urgent := ty > snap.Height/2
		if aligned && a.cool == 0 && (snap.Ammo.Current > reserveAmmo || urgent) {
			in.FirePresses = 1
			a.cool = fireCooldown
		}
		in.FireHeld = aligned && snap.RapidFire.Active()
	}

	if snap.Grenades.Current > 0 {
		near := 0
		danger := false
		for i := range snap.Enemies {
			ex, ey := snap.Enemies[i].Center()
			if game.Dist(ex, ey, px, py) <= game.GrenadeRadius {
				near++
				danger = danger || ey > py
			}
		}
		if near >= 3 || danger {
			in.GrenadePresses = 1
		}
	}
	return in
}

// lowest is the enemy closest to the bottom edge.
func lowest(enemies []game.Enemy) *game.Enemy {
	var best *game.Enemy
	for i := range enemies {
		if best == nil || enemies[i].Y > best.Y {
			best = &enemies[i]
		}
	}
	return best
}

// dodge returns -1 or 1 to step away from the nearest shot heading for the
// ship, or 0 when nothing threatens.
func dodge(snap game.Snapshot) int {
	p := snap.Player
	var threat *game.EnemyBullet
	for i := range snap.EnemyBullets {
		b := &snap.EnemyBullets[i]
		if b.Right() < p.X-p.Speed || b.X > p.Right()+p.Speed {
			continue
		}
		if b.Bottom() < p.Y-dodgeRange || b.Y > p.Bottom() {
			continue
		}
		if threat == nil || b.Y > threat.Y {
			threat = b
		}
	}
	if threat == nil {
		return 0
	}
	bx, _ := threat.Center()
	px, _ := p.Center()
	switch {
	case p.X <= p.Speed:
		return 1
	case p.Right() >= snap.Width-p.Speed:
		return -1
	case bx < px:
		return 1
	default:
		return -1
	}
}
