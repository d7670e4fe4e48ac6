package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"shooter/internal/game"
)

// hudRows is the status line at the top; the playfield fills the rest.
const hudRows = 1

const barCells = 10

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fg(c game.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(color(c)).Background(tcell.ColorBlack)
}

// grid maps playfield coordinates onto terminal cells.
type grid struct {
	cols, rows int
	w, h       float64
}

func (f *Frontend) grid(snap game.Snapshot) grid {
	cols, rows := f.screen.Size()
	return grid{cols: cols, rows: max(rows-hudRows, 1), w: snap.Width, h: snap.Height}
}

// cell returns the cell containing the point (x, y).
func (g grid) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x / g.w * float64(g.cols)))
	cy := int(math.Floor(y / g.h * float64(g.rows)))
	return cx, cy + hudRows
}

// span returns the inclusive cell range a rectangle covers. Small entities
// still get at least one cell.
func (g grid) span(r game.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = g.cell(r.X, r.Y)
	x1, y1 = g.cell(r.X+r.W, r.Y+r.H)
	x1, y1 = max(x1-1, x0), max(y1-1, y0)
	return x0, y0, x1, y1
}

// put draws one cell, dropping anything outside the playfield.
func (f *Frontend) put(x, y int, r rune, st tcell.Style) {
	cols, rows := f.screen.Size()
	if x < 0 || x >= cols || y < hudRows || y >= rows {
		return
	}
	f.screen.SetContent(x, y, r, nil, st)
}

func (f *Frontend) fill(g grid, rect game.Rect, r rune, st tcell.Style) {
	x0, y0, x1, y1 := g.span(rect)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.put(x, y, r, st)
		}
	}
}

// text writes s starting at (x, y); it may overwrite the HUD row.
func (f *Frontend) text(x, y int, s string, st tcell.Style) int {
	cols, _ := f.screen.Size()
	for _, r := range s {
		if x >= 0 && x < cols {
			f.screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
	return x
}

func (f *Frontend) draw(snap game.Snapshot) {
	f.screen.Clear()
	g := f.grid(snap)

	for i := range snap.Particles {
		p := &snap.Particles[i]
		x, y := g.cell(p.X, p.Y)
		f.put(x, y, '·', fg(p.Col.Mul(uint8(p.Alpha()*255))))
	}
	for i := range snap.Perks {
		p := &snap.Perks[i]
		st := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(color(p.Kind.Color()))
		x, y := g.cell(p.X+p.W/2, p.Y+p.H/2)
		f.put(x, y, p.Kind.Label(), st)
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		f.fill(g, e.Rect, '▼', fg(game.Palette.EnemyHull))
		if e.CanShoot {
			x, y := g.cell(e.X+e.W/2, e.Y+e.H)
			f.put(x, y, '╹', fg(game.Palette.EnemyGun))
		}
	}
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		x, y := g.cell(b.X+b.W/2, b.Y)
		f.put(x, y, '|', fg(game.Palette.Bullet))
	}
	for i := range snap.EnemyBullets {
		b := &snap.EnemyBullets[i]
		x, y := g.cell(b.X+b.W/2, b.Y+b.H)
		f.put(x, y, '¦', fg(game.Palette.EnemyBullet))
	}

	ship := fg(game.Palette.Player)
	if snap.SpeedBoost.Active() {
		ship = ship.Background(color(game.Palette.BoostRing))
	}
	f.fill(g, snap.Player.Rect, '▲', ship)

	f.drawHUD(snap)
}

func (f *Frontend) drawHUD(snap game.Snapshot) {
	label := fg(game.Palette.Text)
	x := f.text(0, 0, fmt.Sprintf("Score: %d  Ammo: %d/%d  Grenades: %d/%d  HP ",
		snap.Score, snap.Ammo.Current, snap.Ammo.Max, snap.Grenades.Current, snap.Grenades.Max), label)

	frac := snap.Health.Fraction()
	filled := int(math.Round(frac * barCells))
	bar := fg(game.HealthBarColor(frac))
	track := fg(game.Palette.BarTrack)
	for i := range barCells {
		if i < filled {
			f.screen.SetContent(x+i, 0, '█', nil, bar)
		} else {
			f.screen.SetContent(x+i, 0, '░', nil, track)
		}
	}
	x += barCells

	badge := fg(game.Palette.Badge).Bold(true)
	if snap.RapidFire.Active() {
		x = f.text(x+2, 0, "RAPID FIRE!", badge)
	}
	if snap.SpeedBoost.Active() {
		f.text(x+2, 0, "SPEED BOOST!", badge)
	}
}

func (f *Frontend) drawGameOver(score int) {
	cols, rows := f.screen.Size()
	lines := []struct {
		s  string
		st tcell.Style
	}{
		{"GAME OVER", fg(game.Palette.EnemyHull).Bold(true)},
		{fmt.Sprintf("Final Score: %d", score), fg(game.Palette.Text)},
		{"Press R to restart or Esc to quit", fg(game.Palette.Text)},
	}
	top := rows/2 - len(lines)
	for i, l := range lines {
		x := (cols - len(l.s)) / 2
		f.text(x, top+2*i, l.s, l.st)
	}
}
