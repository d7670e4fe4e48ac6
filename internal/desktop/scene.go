package desktop

import (
	"fmt"

	"shooter/internal/game"
)

const (
	hudScale  = 1.5
	hudBarW   = 200.0
	hudBarH   = 20.0
	particleW = 3.0
)

// DrawSnapshot queues the playfield and HUD and flushes both.
func (r *Renderer) DrawSnapshot(snap game.Snapshot) {
	pal := game.Palette

	p := snap.Player
	r.Rect(p.X, p.Y, p.W, p.H, pal.Player, 1)
	if snap.SpeedBoost.Active() {
		r.Outline(p.X-3.5, p.Y-3.5, p.W+7, p.H+7, 3, pal.BoostRing)
	}

	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		r.Rect(b.X, b.Y, b.W, b.H, pal.Bullet, 1)
	}
	for i := range snap.EnemyBullets {
		b := &snap.EnemyBullets[i]
		r.Rect(b.X, b.Y, b.W, b.H, pal.EnemyBullet, 1)
	}

	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		r.Rect(e.X, e.Y, e.W, e.H, pal.EnemyHull, 1)
		r.Rect(e.X+5, e.Y+5, e.W-10, e.H-10, pal.EnemyCore, 1)
		r.Rect(e.X+15, e.Y+10, 10, 10, pal.EnemyEye, 1)

		frac := e.HealthFraction()
		r.Rect(e.X, e.Y-8, e.W, 5, pal.BarTrack, 1)
		r.Rect(e.X, e.Y-8, e.W*frac, 5, game.HealthBarColor(frac), 1)
		r.Outline(e.X, e.Y-8, e.W, 5, 1, pal.Text)

		if e.CanShoot {
			r.Rect(e.X+e.W/2-3, e.Y+e.H, 6, 8, pal.EnemyGun, 1)
		}
	}

	for i := range snap.Perks {
		pk := &snap.Perks[i]
		r.Rect(pk.X, pk.Y, pk.W, pk.H, pk.Kind.Color(), 1)
		cx, cy := pk.Center()
		r.DrawChar(pk.Kind.Label(), float32(cx-FontCellW/2.0), float32(cy-FontCellH/2.0), 1, pal.Text)
	}

	for i := range snap.Particles {
		pt := &snap.Particles[i]
		r.Rect(pt.X, pt.Y, particleW, particleW, pt.Col, float32(pt.Alpha()))
	}

	r.queueHUD(snap)

	r.FlushRects()
	r.FlushText()
}

func (r *Renderer) queueHUD(snap game.Snapshot) {
	pal := game.Palette
	r.DrawString(fmt.Sprintf("Score: %d", snap.Score), 10, 14, hudScale, pal.Text)
	r.DrawString(fmt.Sprintf("Ammo: %d/%d", snap.Ammo.Current, snap.Ammo.Max), 10, 44, hudScale, pal.Text)
	r.DrawString(fmt.Sprintf("Grenades: %d/%d", snap.Grenades.Current, snap.Grenades.Max), 10, 69, hudScale, pal.Text)
	r.DrawString("Health:", 10, 94, hudScale, pal.Text)

	frac := snap.Health.Fraction()
	r.Rect(10, 120, hudBarW, hudBarH, pal.BarTrack, 1)
	r.Rect(10, 120, hudBarW*frac, hudBarH, game.HealthBarColor(frac), 1)
	r.Outline(9, 119, hudBarW+2, hudBarH+2, 2, pal.Text)

	if snap.RapidFire.Active() {
		r.DrawString("RAPID FIRE!", snap.Width-150, 14, hudScale, pal.Badge)
	}
	if snap.SpeedBoost.Active() {
		r.DrawString("SPEED BOOST!", snap.Width-170, 44, hudScale, pal.Badge)
	}
}

type overlayLine struct {
	text  string
	scale float32
}

// gameOverLines is the overlay text, top to bottom.
func gameOverLines(score int) []overlayLine {
	return []overlayLine{
		{"GAME OVER", 3},
		{fmt.Sprintf("Final Score: %d", score), 1.5},
		{"Press R or Enter to restart, Esc to quit", 1},
	}
}

// DrawGameOver dims the playfield and centres the final score on it.
func (r *Renderer) DrawGameOver(score int, w, h float64) {
	pal := game.Palette
	r.Rect(0, 0, w, h, pal.Background, 0.6)
	r.FlushRects()

	y := h/2 - 80
	for i, l := range gameOverLines(score) {
		col := pal.Text
		if i == 0 {
			col = pal.EnemyHull
		}
		r.DrawString(l.text, w/2-TextWidth(l.text, l.scale)/2, y, l.scale, col)
		y += float64(FontCellH)*float64(l.scale) + 20
	}
	r.FlushText()
}
