package kinematic

// This package includes the small amount of 2D vector math used to move cards around.

import (
	"math"
)

// Vector is a 2D point or displacement in canvas units.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vector) float64 {
	return b.Sub(a).Length()
}

// Lerp linearly interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b Vector, t float64) Vector {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Scale(t))
}

// LerpFloat linearly interpolates between a and b. t is clamped to [0, 1].
func LerpFloat(a, b, t float64) float64 {
	t = Clamp01(t)
	return a + (b-a)*t
}

// Approach moves from toward to by the fraction dt*rate of the remaining distance.
// The step shrinks as the distance shrinks, so motion slows near the target.
func Approach(from, to Vector, dt, rate float64) Vector {
	return Lerp(from, to, dt*rate)
}

// ApproachFloat is the scalar form of Approach.
func ApproachFloat(from, to, dt, rate float64) float64 {
	return LerpFloat(from, to, dt*rate)
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
