package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
// W and H may be negative; such a rect is legal but unnormalized, and
// Normalize turns it into the equivalent rect with non-negative extents.
type Rect[T Scalar] struct {
	X, Y T
	W, H T
}

// IRect is a rect with integer coordinates.
type IRect = Rect[int]

// FRect is a rect with floating coordinates.
type FRect = Rect[float64]

// NewRect creates a rect from its position and size.
func NewRect[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// ParseRect builds a rect from one of the accepted source forms: a Rect of
// either coordinate kind, (x, y, w, h), (topleft, size), a one-element
// sequence wrapping any of these, or a RectSource.
func ParseRect[T Scalar](args ...any) (Rect[T], error) {
	return rectFromArgs[T](args)
}

// Update replaces the rect with one parsed from args. On error the rect is
// left unchanged.
func (r *Rect[T]) Update(args ...any) error {
	nr, err := rectFromArgs[T](args)
	if err != nil {
		return fmt.Errorf("rect update: %w", err)
	}
	*r = nr
	return nil
}

// FRect converts r to floating coordinates.
func (r Rect[T]) FRect() FRect {
	return FRect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// IRect converts r to integer coordinates, truncating toward zero.
func (r Rect[T]) IRect() IRect {
	return IRect{X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H)}
}

// Area returns W*H. It is negative for rects with one negative extent.
func (r Rect[T]) Area() T {
	return r.W * r.H
}

// Empty reports whether the rect has zero width or height.
func (r Rect[T]) Empty() bool {
	return r.W == 0 || r.H == 0
}

// Normalize returns the equivalent rect with non-negative width and height.
func (r Rect[T]) Normalize() Rect[T] {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// NormalizeIP normalizes the rect in place.
func (r *Rect[T]) NormalizeIP() {
	*r = r.Normalize()
}

// Move returns the rect translated by (dx, dy).
func (r Rect[T]) Move(dx, dy T) Rect[T] {
	r.X += dx
	r.Y += dy
	return r
}

// MoveIP translates the rect in place.
func (r *Rect[T]) MoveIP(dx, dy T) {
	*r = r.Move(dx, dy)
}

// Inflate returns the rect grown by dx and dy around its center. Negative
// values shrink it. For integer rects the half offset truncates.
func (r Rect[T]) Inflate(dx, dy T) Rect[T] {
	r.X -= dx / 2
	r.Y -= dy / 2
	r.W += dx
	r.H += dy
	return r
}

// InflateIP inflates the rect in place.
func (r *Rect[T]) InflateIP(dx, dy T) {
	*r = r.Inflate(dx, dy)
}

// ScaleBy returns the rect scaled by sx and sy around its center. Negative
// factors are treated as their magnitude.
func (r Rect[T]) ScaleBy(sx, sy float64) Rect[T] {
	sx = math.Abs(sx)
	sy = math.Abs(sy)
	w := float64(r.W) * sx
	h := float64(r.H) * sy
	return Rect[T]{
		X: T(float64(r.X) + float64(r.W/2) - w/2),
		Y: T(float64(r.Y) + float64(r.H/2) - h/2),
		W: T(w),
		H: T(h),
	}
}

// ScaleByIP scales the rect in place.
func (r *Rect[T]) ScaleByIP(sx, sy float64) {
	*r = r.ScaleBy(sx, sy)
}

// Union returns the smallest rect containing both r and other.
func (r Rect[T]) Union(other Rect[T]) Rect[T] {
	x := Min(r.X, other.X)
	y := Min(r.Y, other.Y)
	w := Max(r.X+r.W, other.X+other.W) - x
	h := Max(r.Y+r.H, other.Y+other.H) - y
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// UnionIP grows the rect in place to contain other.
func (r *Rect[T]) UnionIP(other Rect[T]) {
	*r = r.Union(other)
}

// UnionAll returns the smallest rect containing r and every rect in others.
// An empty list is rejected.
func (r Rect[T]) UnionAll(others []Rect[T]) (Rect[T], error) {
	if len(others) == 0 {
		return r, fmt.Errorf("union of an empty rect list: %w", ErrInvalidArgument)
	}
	out := r
	for _, o := range others {
		out = out.Union(o)
	}
	return out, nil
}

// UnionAllIP grows the rect in place to contain every rect in others.
func (r *Rect[T]) UnionAllIP(others []Rect[T]) error {
	nr, err := r.UnionAll(others)
	if err != nil {
		return err
	}
	*r = nr
	return nil
}

// Clip returns the part of r that lies inside other. When they do not
// overlap the result is a zero-size rect at r's top-left corner.
func (r Rect[T]) Clip(other Rect[T]) Rect[T] {
	a, b := r, other
	var x, y, w, h T

	switch {
	case a.X >= b.X && a.X < b.X+b.W:
		x = a.X
	case b.X >= a.X && b.X < a.X+a.W:
		x = b.X
	default:
		return Rect[T]{X: r.X, Y: r.Y}
	}

	switch {
	case a.X+a.W > b.X && a.X+a.W <= b.X+b.W:
		w = a.X + a.W - x
	case b.X+b.W > a.X && b.X+b.W <= a.X+a.W:
		w = b.X + b.W - x
	default:
		return Rect[T]{X: r.X, Y: r.Y}
	}

	switch {
	case a.Y >= b.Y && a.Y < b.Y+b.H:
		y = a.Y
	case b.Y >= a.Y && b.Y < a.Y+a.H:
		y = b.Y
	default:
		return Rect[T]{X: r.X, Y: r.Y}
	}

	switch {
	case a.Y+a.H > b.Y && a.Y+a.H <= b.Y+b.H:
		h = a.Y + a.H - y
	case b.Y+b.H > a.Y && b.Y+b.H <= a.Y+a.H:
		h = b.Y + b.H - y
	default:
		return Rect[T]{X: r.X, Y: r.Y}
	}

	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// ClipLine clips the segment (x1, y1)-(x2, y2) to the rect and reports
// whether any part of it lies inside. Integer rects clip against the
// inclusive pixel box [X, X+W-1] x [Y, Y+H-1] and round the result.
func (r Rect[T]) ClipLine(x1, y1, x2, y2 T) (Segment[T], bool) {
	n := r.Normalize()
	if n.Empty() {
		return Segment[T]{}, false
	}

	left, top := float64(n.X), float64(n.Y)
	right, bottom := float64(n.X+n.W), float64(n.Y+n.H)
	if isIntegral[T]() {
		right--
		bottom--
	}

	fx1, fy1 := float64(x1), float64(y1)
	dx := float64(x2) - fx1
	dy := float64(y2) - fy1

	// Liang-Barsky: each edge bounds the parameter range [t0, t1].
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{fx1 - left, right - fx1, fy1 - top, bottom - fy1}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return Segment[T]{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return Segment[T]{}, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return Segment[T]{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	seg := Segment[T]{
		A: Point[T]{X: x1, Y: y1},
		B: Point[T]{X: x2, Y: y2},
	}
	if t0 > 0 {
		seg.A = Point[T]{X: fromFloat[T](fx1 + t0*dx), Y: fromFloat[T](fy1 + t0*dy)}
	}
	if t1 < 1 {
		seg.B = Point[T]{X: fromFloat[T](fx1 + t1*dx), Y: fromFloat[T](fy1 + t1*dy)}
	}
	return seg, true
}

// Clamp returns r moved, never resized, to lie inside other. Along an axis
// where r is at least as large as other, r is centered on other instead.
func (r Rect[T]) Clamp(other Rect[T]) Rect[T] {
	var x, y T

	switch {
	case r.W >= other.W:
		x = other.X + other.W/2 - r.W/2
	case r.X < other.X:
		x = other.X
	case r.X+r.W > other.X+other.W:
		x = other.X + other.W - r.W
	default:
		x = r.X
	}

	switch {
	case r.H >= other.H:
		y = other.Y + other.H/2 - r.H/2
	case r.Y < other.Y:
		y = other.Y
	case r.Y+r.H > other.Y+other.H:
		y = other.Y + other.H - r.H
	default:
		y = r.Y
	}

	return Rect[T]{X: x, Y: y, W: r.W, H: r.H}
}

// ClampIP clamps the rect in place.
func (r *Rect[T]) ClampIP(other Rect[T]) {
	*r = r.Clamp(other)
}

// Fit returns r scaled, keeping its aspect ratio, to the largest size that
// fits inside other, centered on other.
func (r Rect[T]) Fit(other Rect[T]) Rect[T] {
	xRatio := float64(r.W) / float64(other.W)
	yRatio := float64(r.H) / float64(other.H)
	ratio := math.Max(xRatio, yRatio)

	w := T(float64(r.W) / ratio)
	h := T(float64(r.H) / ratio)
	return Rect[T]{
		X: other.X + (other.W-w)/2,
		Y: other.Y + (other.H-h)/2,
		W: w,
		H: h,
	}
}

// Contains reports whether other lies entirely inside r.
func (r Rect[T]) Contains(other Rect[T]) bool {
	return r.X <= other.X && r.Y <= other.Y &&
		r.X+r.W >= other.X+other.W &&
		r.Y+r.H >= other.Y+other.H &&
		r.X+r.W > other.X &&
		r.Y+r.H > other.Y
}

func (r Rect[T]) String() string {
	if isIntegral[T]() {
		return fmt.Sprintf("Rect(%v, %v, %v, %v)", r.X, r.Y, r.W, r.H)
	}
	return fmt.Sprintf("FRect(%v, %v, %v, %v)", r.X, r.Y, r.W, r.H)
}
