package geom

import (
	"fmt"
	"math"
)

// Line is a segment between endpoints A and B. A line and its reverse are
// distinct values but have the same length and coverage.
type Line struct {
	AX, AY float64
	BX, BY float64
}

// NewLine creates a line from (ax, ay) to (bx, by).
func NewLine(ax, ay, bx, by float64) Line {
	return Line{AX: ax, AY: ay, BX: bx, BY: by}
}

// ParseLine builds a line from one of the accepted source forms: a Line,
// (ax, ay, bx, by), (a, b), a one-element sequence wrapping any of these,
// or a LineSource.
func ParseLine(args ...any) (Line, error) {
	return lineFromArgs(args)
}

// Update replaces the line with one parsed from args. On error the line is
// left unchanged.
func (l *Line) Update(args ...any) error {
	nl, err := lineFromArgs(args)
	if err != nil {
		return fmt.Errorf("line update: %w", err)
	}
	*l = nl
	return nil
}

// A returns the first endpoint.
func (l Line) A() Vec2 { return Vec2{X: l.AX, Y: l.AY} }

// B returns the second endpoint.
func (l Line) B() Vec2 { return Vec2{X: l.BX, Y: l.BY} }

// SetA moves the first endpoint.
func (l *Line) SetA(x, y float64) {
	l.AX, l.AY = x, y
}

// SetB moves the second endpoint.
func (l *Line) SetB(x, y float64) {
	l.BX, l.BY = x, y
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return math.Hypot(l.BX-l.AX, l.BY-l.AY)
}

// Move returns the line translated by (dx, dy).
func (l Line) Move(dx, dy float64) Line {
	return Line{AX: l.AX + dx, AY: l.AY + dy, BX: l.BX + dx, BY: l.BY + dy}
}

// MoveIP translates the line in place.
func (l *Line) MoveIP(dx, dy float64) {
	*l = l.Move(dx, dy)
}

// FlipAB returns the line with its endpoints swapped.
func (l Line) FlipAB() Line {
	return Line{AX: l.BX, AY: l.BY, BX: l.AX, BY: l.AY}
}

// FlipABIP swaps the endpoints in place.
func (l *Line) FlipABIP() {
	*l = l.FlipAB()
}

// Scale returns the line scaled by factor about the point that sits at
// fraction origin along it: 0 pivots on A, 1 on B, 0.5 on the midpoint.
//
// Both endpoints are scaled about the coordinate origin first; the result is
// then shifted back by the scaled-minus-original delta interpolated at
// origin, which keeps the pivot fixed.
func (l Line) Scale(factor, origin float64) (Line, error) {
	if err := checkPositive("scale factor", factor); err != nil {
		return l, err
	}
	if !(origin >= 0 && origin <= 1) {
		return l, fmt.Errorf("origin must be within [0, 1], got %v: %w", origin, ErrInvalidArgument)
	}
	if factor == 1 {
		return l, nil
	}

	ax, ay := l.AX*factor, l.AY*factor
	bx, by := l.BX*factor, l.BY*factor

	dax, day := ax-l.AX, ay-l.AY
	dbx, dby := bx-l.BX, by-l.BY

	offX := dax + (dbx-dax)*origin
	offY := day + (dby-day)*origin

	return Line{AX: ax - offX, AY: ay - offY, BX: bx - offX, BY: by - offY}, nil
}

// ScaleIP scales the line in place. On error the line is left unchanged.
func (l *Line) ScaleIP(factor, origin float64) error {
	nl, err := l.Scale(factor, origin)
	if err != nil {
		return err
	}
	*l = nl
	return nil
}

// Equal reports whether both endpoints match within NearEqual, in order.
func (l Line) Equal(other Line) bool {
	return NearEqual(l.AX, other.AX) && NearEqual(l.AY, other.AY) &&
		NearEqual(l.BX, other.BX) && NearEqual(l.BY, other.BY)
}

func (l Line) String() string {
	return fmt.Sprintf("Line((%g, %g), (%g, %g))", l.AX, l.AY, l.BX, l.BY)
}
