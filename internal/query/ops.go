// Package query implements the scene query operations on top of the
// geometry kernel and evaluates scene query lists.
package query

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/shapekit/internal/geom"
	"github.com/vovakirdan/shapekit/internal/registry"
	"github.com/vovakirdan/shapekit/internal/scene"
)

// ErrUnsupported is returned when an op does not apply to the given kinds.
var ErrUnsupported = errors.New("unsupported shape kinds")

// op adapts a plain function to registry.Op.
type op struct {
	name    string
	summary string
	arity   registry.Arity
	eval    func(shapes []*scene.Shape, params []float64) (registry.Result, error)
}

func (o op) Name() string          { return o.name }
func (o op) Summary() string       { return o.summary }
func (o op) Arity() registry.Arity { return o.arity }

func (o op) Eval(shapes []*scene.Shape, params []float64) (registry.Result, error) {
	return o.eval(shapes, params)
}

func init() {
	for _, o := range []op{
		{"collide", "whether two shapes overlap", registry.Exactly(2), evalCollide},
		{"collideall", "shapes that collide with the first one", registry.AtLeast(2), evalCollideAll},
		{"contains", "whether the first shape fully contains the second", registry.Exactly(2), evalContains},
		{"intersect", "boundary intersection points of two circles", registry.Exactly(2), evalIntersect},
		{"union", "smallest rect covering every rect", registry.AtLeast(2), evalUnion},
		{"clip", "part of the first rect inside the second", registry.Exactly(2), evalClip},
		{"clipline", "part of a line inside a rect", registry.Exactly(2), evalClipLine},
		{"clamp", "first rect moved inside the second", registry.Exactly(2), evalClamp},
		{"fit", "first rect scaled to fit the second, keeping aspect", registry.Exactly(2), evalFit},
		{"normalize", "rect with non-negative size", registry.Exactly(1), evalNormalize},
		{"inflate", "rect grown by params [dx, dy] around its center", registry.Exactly(1), evalInflate},
		{"scale", "shape scaled by params [factor, origin|sy]", registry.Exactly(1), evalScale},
		{"rotate", "circle rotated by params [degrees, px, py]", registry.Exactly(1), evalRotate},
		{"distance", "distance between shape centers", registry.Exactly(2), evalDistance},
		{"measure", "circle area, rect area or line length", registry.Exactly(1), evalMeasure},
	} {
		registry.Register(o)
	}
}

func result(v any) registry.Result {
	return registry.Result{Value: v, Text: fmt.Sprint(v)}
}

func unsupported(op string, shapes ...*scene.Shape) error {
	kinds := make([]scene.Kind, len(shapes))
	for i, s := range shapes {
		kinds[i] = s.Kind
	}
	return fmt.Errorf("%s %v: %w", op, kinds, ErrUnsupported)
}

// needParams checks that between lo and hi params were given.
func needParams(params []float64, lo, hi int) error {
	if len(params) < lo || len(params) > hi {
		if lo == hi {
			return fmt.Errorf("expected %d params, got %d: %w", lo, len(params), geom.ErrInvalidArgument)
		}
		return fmt.Errorf("expected %d-%d params, got %d: %w", lo, hi, len(params), geom.ErrInvalidArgument)
	}
	return nil
}

func param(params []float64, i int, def float64) float64 {
	if i < len(params) {
		return params[i]
	}
	return def
}

func allRects(shapes []*scene.Shape) bool {
	for _, s := range shapes {
		if !s.IsRect() {
			return false
		}
	}
	return true
}

func allIntRects(shapes []*scene.Shape) bool {
	for _, s := range shapes {
		if s.Kind != scene.KindRect {
			return false
		}
	}
	return true
}

func evalCollide(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	return result(scene.Collides(shapes[0], shapes[1])), nil
}

func evalCollideAll(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	first, rest := shapes[0], shapes[1:]

	switch {
	case first.Kind == scene.KindCircle:
		values := make([]any, len(rest))
		for i, s := range rest {
			if s.Kind == scene.KindLine {
				return registry.Result{}, unsupported("collideall", first, s)
			}
			values[i] = s.Value()
		}
		idx, err := first.Circle.CollideListAll(values)
		if err != nil {
			return registry.Result{}, err
		}
		names := make([]string, len(idx))
		for i, j := range idx {
			names[i] = rest[j].Name
		}
		return result(names), nil

	case first.IsRect() && allRects(rest):
		rects := make([]geom.FRect, len(rest))
		for i, s := range rest {
			rects[i] = s.AsFRect()
		}
		idx := first.AsFRect().CollideListAll(rects)
		names := make([]string, len(idx))
		for i, j := range idx {
			names[i] = rest[j].Name
		}
		return result(names), nil
	}
	return registry.Result{}, unsupported("collideall", shapes...)
}

func evalContains(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	a, b := shapes[0], shapes[1]

	switch {
	case a.Kind == scene.KindCircle && b.Kind == scene.KindLine:
		pa, pb := b.Line.A(), b.Line.B()
		return result(geom.CirclePoint(a.Circle, pa.X, pa.Y) && geom.CirclePoint(a.Circle, pb.X, pb.Y)), nil
	case a.Kind == scene.KindCircle:
		ok, err := a.Circle.Contains(b.Value())
		if err != nil {
			return registry.Result{}, err
		}
		return result(ok), nil
	case a.IsRect():
		return result(a.AsFRect().Contains(b.Bounds())), nil
	}
	return registry.Result{}, unsupported("contains", a, b)
}

func evalIntersect(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	a, b := shapes[0], shapes[1]
	if a.Kind != scene.KindCircle || b.Kind != scene.KindCircle {
		return registry.Result{}, unsupported("intersect", a, b)
	}
	return result(a.Circle.Intersect(b.Circle)), nil
}

func evalUnion(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	if !allRects(shapes) {
		return registry.Result{}, unsupported("union", shapes...)
	}

	if allIntRects(shapes) {
		others := make([]geom.IRect, 0, len(shapes)-1)
		for _, s := range shapes[1:] {
			others = append(others, s.Rect)
		}
		u, err := shapes[0].Rect.UnionAll(others)
		if err != nil {
			return registry.Result{}, err
		}
		return result(u), nil
	}

	others := make([]geom.FRect, 0, len(shapes)-1)
	for _, s := range shapes[1:] {
		others = append(others, s.AsFRect())
	}
	u, err := shapes[0].AsFRect().UnionAll(others)
	if err != nil {
		return registry.Result{}, err
	}
	return result(u), nil
}

// rectPair applies an integer or floating rect operation depending on the
// kinds involved; mixed pairs use floating coordinates.
func rectPair(name string, shapes []*scene.Shape,
	fi func(a, b geom.IRect) geom.IRect,
	ff func(a, b geom.FRect) geom.FRect,
) (registry.Result, error) {
	a, b := shapes[0], shapes[1]
	switch {
	case allIntRects(shapes):
		return result(fi(a.Rect, b.Rect)), nil
	case allRects(shapes):
		return result(ff(a.AsFRect(), b.AsFRect())), nil
	}
	return registry.Result{}, unsupported(name, a, b)
}

func evalClip(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	return rectPair("clip", shapes, geom.IRect.Clip, geom.FRect.Clip)
}

func evalClamp(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	return rectPair("clamp", shapes, geom.IRect.Clamp, geom.FRect.Clamp)
}

func evalFit(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	return rectPair("fit", shapes, geom.IRect.Fit, geom.FRect.Fit)
}

// ClippedLine is the part of a line inside a rect.
type ClippedLine struct {
	Line geom.Line
	Hit  bool
}

func (c ClippedLine) String() string {
	if !c.Hit {
		return "miss"
	}
	return c.Line.String()
}

func evalClipLine(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	r, l := shapes[0], shapes[1]
	if l.IsRect() && r.Kind == scene.KindLine {
		r, l = l, r
	}
	if !r.IsRect() || l.Kind != scene.KindLine {
		return registry.Result{}, unsupported("clipline", shapes...)
	}

	line := l.Line
	if r.Kind == scene.KindRect {
		seg, ok := r.Rect.ClipLine(round(line.AX), round(line.AY), round(line.BX), round(line.BY))
		return result(ClippedLine{Line: seg.Line(), Hit: ok}), nil
	}
	seg, ok := r.FRect.ClipLine(line.AX, line.AY, line.BX, line.BY)
	return result(ClippedLine{Line: seg.Line(), Hit: ok}), nil
}

func evalNormalize(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	s := shapes[0]
	switch s.Kind {
	case scene.KindRect:
		return result(s.Rect.Normalize()), nil
	case scene.KindFRect:
		return result(s.FRect.Normalize()), nil
	}
	return registry.Result{}, unsupported("normalize", s)
}

func evalInflate(shapes []*scene.Shape, params []float64) (registry.Result, error) {
	if err := needParams(params, 1, 2); err != nil {
		return registry.Result{}, err
	}
	dx := params[0]
	dy := param(params, 1, dx)

	s := shapes[0]
	switch s.Kind {
	case scene.KindRect:
		return result(s.Rect.Inflate(round(dx), round(dy))), nil
	case scene.KindFRect:
		return result(s.FRect.Inflate(dx, dy)), nil
	}
	return registry.Result{}, unsupported("inflate", s)
}

func evalScale(shapes []*scene.Shape, params []float64) (registry.Result, error) {
	if err := needParams(params, 1, 2); err != nil {
		return registry.Result{}, err
	}
	factor := params[0]

	s := *shapes[0]
	switch s.Kind {
	case scene.KindCircle:
		if len(params) > 1 {
			return registry.Result{}, needParams(params, 1, 1)
		}
		if err := s.Circle.SetR(s.Circle.R() * factor); err != nil {
			return registry.Result{}, err
		}
		return result(s.Circle), nil
	case scene.KindRect:
		return result(s.Rect.ScaleBy(factor, param(params, 1, factor))), nil
	case scene.KindFRect:
		return result(s.FRect.ScaleBy(factor, param(params, 1, factor))), nil
	case scene.KindLine:
		l, err := s.Line.Scale(factor, param(params, 1, 0.5))
		if err != nil {
			return registry.Result{}, err
		}
		return result(l), nil
	}
	return registry.Result{}, unsupported("scale", &s)
}

func evalRotate(shapes []*scene.Shape, params []float64) (registry.Result, error) {
	s := shapes[0]
	if s.Kind != scene.KindCircle {
		return registry.Result{}, unsupported("rotate", s)
	}
	if err := needParams(params, 3, 3); err != nil {
		return registry.Result{}, err
	}
	return result(s.Circle.Rotate(params[0], geom.Vec2{X: params[1], Y: params[2]})), nil
}

func evalDistance(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	a := shapes[0].Bounds().Center()
	b := shapes[1].Bounds().Center()
	return result(geom.NewLine(a.X, a.Y, b.X, b.Y).Length()), nil
}

func evalMeasure(shapes []*scene.Shape, _ []float64) (registry.Result, error) {
	s := shapes[0]
	switch s.Kind {
	case scene.KindCircle:
		return result(s.Circle.Area()), nil
	case scene.KindRect:
		return result(geom.Abs(s.Rect.Area())), nil
	case scene.KindFRect:
		return result(geom.Abs(s.FRect.Area())), nil
	case scene.KindLine:
		return result(s.Line.Length()), nil
	}
	return registry.Result{}, unsupported("measure", s)
}

func round(v float64) int {
	return int(math.Round(v))
}
