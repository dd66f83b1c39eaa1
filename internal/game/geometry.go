package game

import "math"

// Vec2 is a point or displacement in level units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectCentered returns the w×h box centred on pos.
func RectCentered(pos Vec2, w, h float64) Rect {
	return Rect{X: pos.X - w/2, Y: pos.Y - h/2, W: w, H: h}
}

// Center returns the centre point of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Intersects reports whether r and o overlap. Rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Overlap returns the intersection of r and o, or false when they do not
// intersect.
func (r Rect) Overlap(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.W, o.X+o.W)
	y1 := math.Min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}
