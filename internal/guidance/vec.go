package guidance

import "math"

type Vec2 struct{ X, Y float64 }

func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) LenSq() float64       { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2) Cross(b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// Perp returns a rotated 90° counter-clockwise.
func (a Vec2) Perp() Vec2 { return Vec2{-a.Y, a.X} }

// Heading returns the direction of a in radians. It reports false for the
// zero vector, which has no direction.
func (a Vec2) Heading() (float64, bool) {
	if a.X == 0 && a.Y == 0 {
		return 0, false
	}
	return math.Atan2(a.Y, a.X), true
}
