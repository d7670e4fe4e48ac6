package game

// Rect is an axis-aligned box: X, Y is the top-left corner, Y grows down.
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether two rectangles overlap. Touching edges do not
// count as overlap.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// centerDist is the distance between the centers of two rectangles.
func centerDist(a, b Rect) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return Dist(ax, ay, bx, by)
}
