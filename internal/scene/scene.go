// Package scene loads named kernel shapes and the queries to run against
// them from YAML files.
package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/shapekit/internal/geom"
)

// Kind identifies which kernel type a shape holds.
type Kind string

const (
	KindCircle Kind = "circle"
	KindRect   Kind = "rect"
	KindFRect  Kind = "frect"
	KindLine   Kind = "line"
)

// Shape is a named kernel value. Exactly one of the value fields is
// meaningful, selected by Kind.
type Shape struct {
	Name  string
	Kind  Kind
	Color string

	Circle geom.Circle
	Rect   geom.IRect
	FRect  geom.FRect
	Line   geom.Line
}

// Value returns the kernel value held by the shape.
func (s *Shape) Value() any {
	switch s.Kind {
	case KindCircle:
		return s.Circle
	case KindRect:
		return s.Rect
	case KindFRect:
		return s.FRect
	case KindLine:
		return s.Line
	}
	return nil
}

// Bounds returns the normalized bounding box of the shape.
func (s *Shape) Bounds() geom.FRect {
	switch s.Kind {
	case KindCircle:
		return s.Circle.AsFRect()
	case KindRect:
		return s.Rect.FRect().Normalize()
	case KindFRect:
		return s.FRect.Normalize()
	case KindLine:
		l := s.Line
		return geom.NewRect(l.AX, l.AY, l.BX-l.AX, l.BY-l.AY).Normalize()
	}
	return geom.FRect{}
}

// Move translates the shape. Integer rects move by the rounded offset.
func (s *Shape) Move(dx, dy float64) {
	switch s.Kind {
	case KindCircle:
		s.Circle.MoveIP(dx, dy)
	case KindRect:
		s.Rect.MoveIP(int(math.Round(dx)), int(math.Round(dy)))
	case KindFRect:
		s.FRect.MoveIP(dx, dy)
	case KindLine:
		s.Line.MoveIP(dx, dy)
	}
}

// Scale grows or shrinks the shape by factor about its center. On error the
// shape is unchanged.
func (s *Shape) Scale(factor float64) error {
	if !(factor > 0) {
		return fmt.Errorf("scale %s by %v: %w", s.Name, factor, geom.ErrInvalidArgument)
	}
	switch s.Kind {
	case KindCircle:
		return s.Circle.SetR(s.Circle.R() * factor)
	case KindRect:
		s.Rect.ScaleByIP(factor, factor)
	case KindFRect:
		s.FRect.ScaleByIP(factor, factor)
	case KindLine:
		return s.Line.ScaleIP(factor, 0.5)
	}
	return nil
}

// Normalize normalizes rect shapes in place and reports whether the shape
// changed.
func (s *Shape) Normalize() bool {
	switch s.Kind {
	case KindRect:
		n := s.Rect.Normalize()
		changed := n != s.Rect
		s.Rect = n
		return changed
	case KindFRect:
		n := s.FRect.Normalize()
		changed := n != s.FRect
		s.FRect = n
		return changed
	}
	return false
}

// Collides reports whether two shapes overlap, using the kernel predicate
// for the pair of kinds.
func Collides(a, b *Shape) bool {
	if a.Kind == KindLine && b.Kind != KindLine {
		a, b = b, a
	}

	switch a.Kind {
	case KindCircle:
		switch b.Kind {
		case KindCircle:
			return a.Circle.CollideCircle(b.Circle)
		case KindRect, KindFRect:
			return a.Circle.CollideFRect(b.AsFRect())
		case KindLine:
			return b.Line.CollideCircle(a.Circle)
		}
	case KindRect, KindFRect:
		r := a.AsFRect()
		switch b.Kind {
		case KindCircle:
			return r.CollideCircle(b.Circle)
		case KindRect, KindFRect:
			return r.CollideRect(b.AsFRect())
		case KindLine:
			return b.Line.CollideRect(r)
		}
	case KindLine:
		return a.Line.CollideLine(b.Line)
	}
	return false
}

// IsRect reports whether the shape is a Rect or an FRect.
func (s *Shape) IsRect() bool {
	return s.Kind == KindRect || s.Kind == KindFRect
}

// AsFRect returns a rect shape's normalized value in floating coordinates.
// It is only meaningful when IsRect is true.
func (s *Shape) AsFRect() geom.FRect {
	if s.Kind == KindRect {
		return s.Rect.FRect().Normalize()
	}
	return s.FRect.Normalize()
}

// Query is one operation to evaluate against named shapes.
type Query struct {
	Op     string
	Args   []string
	Params []float64
}

func (q Query) String() string {
	if len(q.Params) == 0 {
		return fmt.Sprintf("%s%v", q.Op, q.Args)
	}
	return fmt.Sprintf("%s%v%v", q.Op, q.Args, q.Params)
}

// Scene is a parsed, validated scene.
type Scene struct {
	Name    string
	Width   int
	Height  int
	Shapes  []*Shape
	Queries []Query

	index map[string]*Shape
}

// Shape returns the shape with the given name.
func (sc *Scene) Shape(name string) (*Shape, bool) {
	s, ok := sc.index[name]
	return s, ok
}

// Resolve looks up every name, failing on the first unknown one.
func (sc *Scene) Resolve(names []string) ([]*Shape, error) {
	out := make([]*Shape, 0, len(names))
	for _, n := range names {
		s, ok := sc.index[n]
		if !ok {
			return nil, fmt.Errorf("unknown shape %q", n)
		}
		out = append(out, s)
	}
	return out, nil
}

// OfKind returns the shapes of kind k in file order.
func (sc *Scene) OfKind(k Kind) []*Shape {
	var out []*Shape
	for _, s := range sc.Shapes {
		if s.Kind == k {
			out = append(out, s)
		}
	}
	return out
}

// Colliding returns every other shape that collides with s, in file order.
func (sc *Scene) Colliding(s *Shape) []*Shape {
	var out []*Shape
	for _, o := range sc.Shapes {
		if o != s && Collides(s, o) {
			out = append(out, o)
		}
	}
	return out
}
