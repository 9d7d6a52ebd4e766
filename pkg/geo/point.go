// Package geo holds the ground-plane geometry of a layout: points and
// center-sized rectangles on the X/Z plane.
package geo

import "math"

// Point2D is a position or direction on the ground plane. Y is up in the
// scene, so the second coordinate is Z.
type Point2D struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Pt builds a Point2D.
func Pt(x, z float64) Point2D {
	return Point2D{X: x, Z: z}
}

// Add offsets p by q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Z: p.Z + q.Z}
}

// Sub returns the vector from q to p.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{X: p.X - q.X, Z: p.Z - q.Z}
}

// Dot is the dot product; frontage checks use it to compare facings.
func (p Point2D) Dot(q Point2D) float64 {
	return p.X*q.X + p.Z*q.Z
}

// RotateY rotates p about the vertical axis the way the renderer applies
// an object's Y rotation: +Z turns toward +X for positive angles.
func (p Point2D) RotateY(angle float64) Point2D {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point2D{
		X: p.X*c + p.Z*s,
		Z: -p.X*s + p.Z*c,
	}
}
