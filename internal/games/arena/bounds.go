package arena

// Bounds is the playable, axis-aligned arena rectangle in world units.
type Bounds struct {
	X, Y float64 // Min corner
	W, H float64
}

// Right returns the max x edge.
func (b Bounds) Right() float64 {
	return b.X + b.W
}

// Bottom returns the max y edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the middle of the rectangle.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Inner returns the corners of the region a circle of radius r may occupy.
func (b Bounds) Inner(r float64) (lo, hi Vec2) {
	return Vec2{X: b.X + r, Y: b.Y + r}, Vec2{X: b.Right() - r, Y: b.Bottom() - r}
}

// Contains reports whether a circle of radius r at p is fully inside.
func (b Bounds) Contains(p Vec2, r float64) bool {
	lo, hi := b.Inner(r)
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// ClampPosition clips p into the inner region on each axis independently.
// When the arena is narrower than the circle the low bound wins.
func (b Bounds) ClampPosition(p Vec2, r float64) Vec2 {
	lo, hi := b.Inner(r)
	return Vec2{X: clampAxis(p.X, lo.X, hi.X), Y: clampAxis(p.Y, lo.Y, hi.Y)}
}

func clampAxis(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Reflect pins p to any inner bound it crossed and flips dir on that axis.
// Axes are independent, so a corner hit flips both components.
func (b Bounds) Reflect(p, dir Vec2, r float64) (Vec2, Vec2) {
	lo, hi := b.Inner(r)

	if p.X > hi.X {
		p.X = hi.X
		dir.X = -dir.X
	} else if p.X < lo.X {
		p.X = lo.X
		dir.X = -dir.X
	}

	if p.Y > hi.Y {
		p.Y = hi.Y
		dir.Y = -dir.Y
	} else if p.Y < lo.Y {
		p.Y = lo.Y
		dir.Y = -dir.Y
	}

	return p, dir
}

// Escapes reports whether a circle at p has left the inner region.
func (b Bounds) Escapes(p Vec2, r float64) bool {
	return !b.Contains(p, r)
}

// Shrink contracts the arena by step on every side, keeping the center fixed.
// The step is capped so neither extent drops below zero.
func (b Bounds) Shrink(step float64) Bounds {
	step = min(step, b.W/2, b.H/2)
	if step <= 0 {
		return b
	}
	b.X += step
	b.Y += step
	b.W -= 2 * step
	b.H -= 2 * step
	return b
}

// Exhausted reports whether the arena has become too small for a circle
// of radius r, which ends the session.
func (b Bounds) Exhausted(r float64) bool {
	return b.W <= r || b.H <= r
}
