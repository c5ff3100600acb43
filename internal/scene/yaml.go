package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/shapekit/internal/geom"
)

// Default canvas size for scenes that do not set one.
const (
	DefaultWidth  = 60
	DefaultHeight = 24
)

// Document is the YAML structure of a scene file.
type Document struct {
	Name    string      `yaml:"name"`
	Canvas  CanvasSpec  `yaml:"canvas,omitempty"`
	Shapes  []ShapeSpec `yaml:"shapes"`
	Queries []QuerySpec `yaml:"queries,omitempty"`
}

// CanvasSpec is the drawing area of a scene in cells.
type CanvasSpec struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// ShapeSpec is one named shape. Exactly one of the kind fields must be set;
// its value is any source form the kernel parsers accept, e.g.
// [x, y, r] or [[x, y], r] for a circle.
type ShapeSpec struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color,omitempty"`
	Circle any    `yaml:"circle,omitempty"`
	Rect   any    `yaml:"rect,omitempty"`
	FRect  any    `yaml:"frect,omitempty"`
	Line   any    `yaml:"line,omitempty"`
}

// QuerySpec is one query over named shapes.
type QuerySpec struct {
	Op     string    `yaml:"op"`
	Args   []string  `yaml:"args,omitempty"`
	Params []float64 `yaml:"params,omitempty"`
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Build(doc)
}

// Build validates doc and resolves its shapes into kernel values.
func Build(doc Document) (*Scene, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	sc := &Scene{
		Name:   doc.Name,
		Width:  doc.Canvas.Width,
		Height: doc.Canvas.Height,
		index:  make(map[string]*Shape, len(doc.Shapes)),
	}
	if sc.Width == 0 {
		sc.Width = DefaultWidth
	}
	if sc.Height == 0 {
		sc.Height = DefaultHeight
	}

	for _, spec := range doc.Shapes {
		shape, err := buildShape(spec)
		if err != nil {
			return nil, ValidationError{
				Code:    "BAD_SHAPE",
				Message: fmt.Sprintf("shape %q: %v", spec.Name, err),
				Err:     err,
			}
		}
		sc.Shapes = append(sc.Shapes, shape)
		sc.index[shape.Name] = shape
	}

	for _, q := range doc.Queries {
		sc.Queries = append(sc.Queries, Query(q))
	}
	return sc, nil
}

func buildShape(spec ShapeSpec) (*Shape, error) {
	s := &Shape{Name: spec.Name, Color: spec.Color}
	var err error

	switch {
	case spec.Circle != nil:
		s.Kind = KindCircle
		s.Circle, err = geom.ParseCircle(spec.Circle)
	case spec.Rect != nil:
		s.Kind = KindRect
		s.Rect, err = geom.ParseRect[int](spec.Rect)
	case spec.FRect != nil:
		s.Kind = KindFRect
		s.FRect, err = geom.ParseRect[float64](spec.FRect)
	case spec.Line != nil:
		s.Kind = KindLine
		s.Line, err = geom.ParseLine(spec.Line)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Document converts the scene back to its YAML structure, writing every
// shape in its canonical flat form.
func (sc *Scene) Document() Document {
	doc := Document{
		Name:   sc.Name,
		Canvas: CanvasSpec{Width: sc.Width, Height: sc.Height},
	}
	for _, s := range sc.Shapes {
		spec := ShapeSpec{Name: s.Name, Color: s.Color}
		switch s.Kind {
		case KindCircle:
			spec.Circle = []float64{s.Circle.X(), s.Circle.Y(), s.Circle.R()}
		case KindRect:
			spec.Rect = []int{s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H}
		case KindFRect:
			spec.FRect = []float64{s.FRect.X, s.FRect.Y, s.FRect.W, s.FRect.H}
		case KindLine:
			spec.Line = [][]float64{{s.Line.AX, s.Line.AY}, {s.Line.BX, s.Line.BY}}
		}
		doc.Shapes = append(doc.Shapes, spec)
	}
	for _, q := range sc.Queries {
		doc.Queries = append(doc.Queries, QuerySpec(q))
	}
	return doc
}

// Encode renders the scene as YAML.
func (sc *Scene) Encode() ([]byte, error) {
	data, err := yaml.Marshal(sc.Document())
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
