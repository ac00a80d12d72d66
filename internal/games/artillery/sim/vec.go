// Package sim is the deterministic simulation core of the artillery game:
// destructible terrain, opacity masks, pixel-exact collision, ballistics,
// particles and turn sequencing. It is UI-agnostic; a front end feeds it one
// Input per tick and draws the Frame it returns.
//
// Coordinates are field pixels with X to the right and Y downward.
package sim

import "math"

// Vec2 is a point or direction in field space.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate rotates v clockwise on screen (Y down) by angle radians.
// Rotating (0,-1) by a positive angle tilts it to the right.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Up is the rest orientation of every sprite.
var Up = Vec2{X: 0, Y: -1}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
