package geom

import "fmt"

// Point is a 2D coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Vec2 is a point or displacement with floating coordinates.
type Vec2 = Point[float64]

// Pt creates a point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Float returns p with floating coordinates.
func (p Point[T]) Float() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Segment is a pair of endpoints, the result of clipping a line to a rect.
type Segment[T Scalar] struct {
	A, B Point[T]
}

// Line converts the segment to a floating Line.
func (s Segment[T]) Line() Line {
	return Line{AX: float64(s.A.X), AY: float64(s.A.Y), BX: float64(s.B.X), BY: float64(s.B.Y)}
}
