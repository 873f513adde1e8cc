package gamemath

import (
	"fmt"
	"math"
)

// Vector2 is an immutable 2D vector. All methods return new values.
type Vector2 struct {
	X, Y float64
}

// Zero returns the zero vector.
func Zero() Vector2 {
	return Vector2{}
}

// Vec returns a vector from components.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns a vector of the given magnitude pointing at angle radians.
func FromAngle(angle, magnitude float64) Vector2 {
	return Vector2{
		X: math.Cos(angle) * magnitude,
		Y: math.Sin(angle) * magnitude,
	}
}

// FromAngleDegrees is FromAngle with the angle in degrees.
func FromAngleDegrees(degrees, magnitude float64) Vector2 {
	return FromAngle(DegToRad(degrees), magnitude)
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both components by factor.
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns the unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vector2) Normalized() Vector2 {
	mag := v.Magnitude()
	if mag > 0 {
		return Vector2{X: v.X / mag, Y: v.Y / mag}
	}
	return Vector2{}
}

// AngleRadians returns atan2(y, x).
func (v Vector2) AngleRadians() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vector2) AngleDegrees() float64 {
	return RadToDeg(v.AngleRadians())
}

func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vector2) DistanceTo(other Vector2) float64 {
	return v.Sub(other).Magnitude()
}

// Lerp interpolates linearly toward other; t is not clamped.
func (v Vector2) Lerp(other Vector2, t float64) Vector2 {
	return Vector2{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}

// Equals compares component-wise within epsilon.
func (v Vector2) Equals(other Vector2, epsilon float64) bool {
	return math.Abs(v.X-other.X) < epsilon && math.Abs(v.Y-other.Y) < epsilon
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%.3f, %.3f)", v.X, v.Y)
}
