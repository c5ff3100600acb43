package scene

import "fmt"

// ValidationError describes why a scene document was rejected.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the document structure. Checks:
//   - the canvas size is not negative
//   - there is at least one shape
//   - shape names are non-empty and unique
//   - every shape sets exactly one kind
//   - every query names an operation and only known shapes
//
// Shape values themselves are checked when the scene is built.
func (doc Document) Validate() error {
	if doc.Canvas.Width < 0 || doc.Canvas.Height < 0 {
		return ValidationError{
			Code:    "BAD_CANVAS",
			Message: fmt.Sprintf("canvas size %dx%d is negative", doc.Canvas.Width, doc.Canvas.Height),
		}
	}
	if len(doc.Shapes) == 0 {
		return ValidationError{Code: "NO_SHAPES", Message: "scene has no shapes"}
	}

	names := make(map[string]bool, len(doc.Shapes))
	for i, s := range doc.Shapes {
		if s.Name == "" {
			return ValidationError{
				Code:    "EMPTY_NAME",
				Message: fmt.Sprintf("shape %d has no name", i),
			}
		}
		if names[s.Name] {
			return ValidationError{
				Code:    "DUPLICATE_NAME",
				Message: fmt.Sprintf("shape name %q is used more than once", s.Name),
			}
		}
		names[s.Name] = true

		if n := s.kindCount(); n != 1 {
			return ValidationError{
				Code:    "SHAPE_KIND",
				Message: fmt.Sprintf("shape %q sets %d kinds, expected exactly one of circle, rect, frect, line", s.Name, n),
			}
		}
	}

	for i, q := range doc.Queries {
		if q.Op == "" {
			return ValidationError{
				Code:    "EMPTY_OP",
				Message: fmt.Sprintf("query %d has no op", i),
			}
		}
		for _, a := range q.Args {
			if !names[a] {
				return ValidationError{
					Code:    "UNKNOWN_SHAPE",
					Message: fmt.Sprintf("query %d (%s) references unknown shape %q", i, q.Op, a),
				}
			}
		}
	}

	return nil
}

func (s ShapeSpec) kindCount() int {
	n := 0
	for _, v := range []any{s.Circle, s.Rect, s.FRect, s.Line} {
		if v != nil {
			n++
		}
	}
	return n
}
