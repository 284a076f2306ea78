package chem

import "math"

//Vec is a 2D vector in arena pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }

//FromAngle returns the unit vector pointing at angle a (radians).
func FromAngle(a float64) Vec {
	return Vec{math.Cos(a), math.Sin(a)}
}
