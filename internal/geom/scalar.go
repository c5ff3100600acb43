// Package geom is the 2D geometry and collision kernel: circles, lines and
// axis-aligned rectangles with integer or floating coordinates, plus the
// predicates and transforms that operate on them.
//
// Every type here is a plain value. Methods with an IP suffix mutate the
// receiver in place; their counterparts without the suffix return a new
// value and leave the receiver untouched. Nothing in this package performs
// I/O, logs, or synchronizes: callers that share a value across goroutines
// serialize access themselves.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Scalar is the set of numeric kinds a Rect can be built over.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// nearEqualTol is used both as the absolute and the relative tolerance.
const nearEqualTol = 1e-6

// NearEqual reports whether a and b are equal within an absolute tolerance
// of 1e-6 or a relative tolerance of 1e-6 of the larger magnitude.
func NearEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, nearEqualTol, nearEqualTol)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Clamp restricts val to [lo, hi].
func Clamp[T Scalar](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Min returns the smaller of a and b.
func Min[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of x.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// isIntegral reports whether T truncates fractions.
func isIntegral[T Scalar]() bool {
	half := 0.5
	return T(half) == 0
}

// fromFloat converts v to T, rounding to nearest for integer kinds.
func fromFloat[T Scalar](v float64) T {
	if isIntegral[T]() {
		return T(math.Round(v))
	}
	return T(v)
}
