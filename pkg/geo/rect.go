package geo

import "math"

// Rect is an axis-aligned rectangle on the ground plane, given by its
// center and its extents along X (Width) and Z (Depth).
type Rect struct {
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point2D {
	return Point2D{r.X, r.Z}
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point2D {
	return Point2D{r.X - r.Width/2, r.Z - r.Depth/2}
}

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point2D {
	return Point2D{r.X + r.Width/2, r.Z + r.Depth/2}
}

// Area returns Width * Depth.
func (r Rect) Area() float64 {
	return r.Width * r.Depth
}

// Corners returns the four corners in counterclockwise order starting at Min.
func (r Rect) Corners() [4]Point2D {
	lo, hi := r.Min(), r.Max()
	return [4]Point2D{lo, {hi.X, lo.Z}, hi, {lo.X, hi.Z}}
}

// Contains reports whether pt lies inside or on the edge of r.
func (r Rect) Contains(pt Point2D) bool {
	lo, hi := r.Min(), r.Max()
	return pt.X >= lo.X && pt.X <= hi.X && pt.Z >= lo.Z && pt.Z <= hi.Z
}

// Intersects reports whether r and o overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	rl, rh := r.Min(), r.Max()
	ol, oh := o.Min(), o.Max()
	return rl.X < oh.X && ol.X < rh.X && rl.Z < oh.Z && ol.Z < rh.Z
}

// Rotated returns the axis-aligned bounds of r after rotating it about its
// center by a Y rotation. Only quarter turns keep the result exact.
func (r Rect) Rotated(angle float64) Rect {
	c, s := math.Abs(math.Cos(angle)), math.Abs(math.Sin(angle))
	return Rect{
		X:     r.X,
		Z:     r.Z,
		Width: r.Width*c + r.Depth*s,
		Depth: r.Width*s + r.Depth*c,
	}
}

// EdgeDistance returns the distance from pt to the nearest edge of r,
// negative when pt lies outside.
func (r Rect) EdgeDistance(pt Point2D) float64 {
	lo, hi := r.Min(), r.Max()
	return math.Min(math.Min(pt.X-lo.X, hi.X-pt.X), math.Min(pt.Z-lo.Z, hi.Z-pt.Z))
}

// Square returns the square of the given side centered on the origin.
func Square(side float64) Rect {
	return Rect{Width: side, Depth: side}
}
