package d3

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// float32 vector routines shared by the field and the extractor.

func Elem(sides float32) ms3.Vec {
	return ms3.Vec{
		X: sides,
		Y: sides,
		Z: sides,
	}
}

func EqualWithin(a, b ms3.Vec, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol &&
		math32.Abs(a.Y-b.Y) <= tol &&
		math32.Abs(a.Z-b.Z) <= tol
}

// IsFinite returns true if no component of a is NaN or infinite.
func IsFinite(a ms3.Vec) bool {
	return finite(a.X) && finite(a.Y) && finite(a.Z)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Lerp returns the point a + t*(b-a).
func Lerp(a, b ms3.Vec, t float32) ms3.Vec {
	return ms3.Vec{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: a.Z + t*(b.Z-a.Z),
	}
}

// Unit returns a scaled to unit length and true. If a has zero
// length or ms3.Unit does not produce a finite vector the zero
// vector and false are returned.
func Unit(a ms3.Vec) (ms3.Vec, bool) {
	u := ms3.Unit(a)
	if !IsFinite(u) {
		return ms3.Vec{}, false
	}
	return u, true
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// FromR3 converts a float64 vector to its float32 counterpart.
func FromR3(a r3.Vec) ms3.Vec {
	return ms3.Vec{X: float32(a.X), Y: float32(a.Y), Z: float32(a.Z)}
}

// ToR3 converts a to float64.
func ToR3(a ms3.Vec) r3.Vec {
	return r3.Vec{X: float64(a.X), Y: float64(a.Y), Z: float64(a.Z)}
}
