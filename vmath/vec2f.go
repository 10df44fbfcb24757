package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in viewport pixel space
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2FPolar returns the vector of magnitude mag at angle radians
func V2FPolar(angle, mag float64) Vec2F {
	return Vec2F{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// V2FAxis returns the unit x-axis rotated by degrees
func V2FAxis(degrees float64) Vec2F {
	return V2FPolar(DegToRad(degrees), 1)
}
