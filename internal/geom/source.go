package geom

import "fmt"

// CircleSource is implemented by values that can describe themselves as a
// Circle. ParseCircle consults it after the instance and sequence forms.
type CircleSource interface {
	AsCircle() (Circle, error)
}

// LineSource is implemented by values that can describe themselves as a Line.
type LineSource interface {
	AsLine() (Line, error)
}

// RectSource is implemented by values that can describe themselves as a Rect.
type RectSource[T Scalar] interface {
	AsRect() (Rect[T], error)
}

// asSequence reports whether v is one of the accepted sequence forms and
// returns its elements. Strings are never sequences.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []float64:
		return boxAll(s), true
	case []float32:
		return boxAll(s), true
	case []int:
		return boxAll(s), true
	case []int64:
		return boxAll(s), true
	case []int32:
		return boxAll(s), true
	case [2]float64:
		return boxAll(s[:]), true
	case [3]float64:
		return boxAll(s[:]), true
	case [4]float64:
		return boxAll(s[:]), true
	case [2]int:
		return boxAll(s[:]), true
	case [4]int:
		return boxAll(s[:]), true
	case Point[float64]:
		return []any{s.X, s.Y}, true
	case Point[float32]:
		return []any{s.X, s.Y}, true
	case Point[int]:
		return []any{s.X, s.Y}, true
	case Point[int64]:
		return []any{s.X, s.Y}, true
	}
	return nil, false
}

func boxAll[E any](s []E) []any {
	out := make([]any, len(s))
	for i, e := range s {
		out[i] = e
	}
	return out
}

// toFloat converts any integer or floating kind to float64.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected a number, got %T: %w", v, ErrInvalidType)
}

// toScalar converts a number to T. Integer inputs are converted directly so
// large values are not routed through float64; floats truncate toward zero
// for integer kinds.
func toScalar[T Scalar](v any) (T, error) {
	switch n := v.(type) {
	case int:
		return T(n), nil
	case int64:
		return T(n), nil
	case int32:
		return T(n), nil
	case uint32:
		return T(n), nil
	case uint64:
		return T(n), nil
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	return T(f), nil
}

// twoFloats reads a 2-number sequence.
func twoFloats(v any) (float64, float64, error) {
	seq, ok := asSequence(v)
	if !ok || len(seq) != 2 {
		return 0, 0, fmt.Errorf("expected a sequence of 2 numbers, got %T: %w", v, ErrInvalidType)
	}
	x, err := toFloat(seq[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := toFloat(seq[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// twoScalars reads a 2-number sequence into T.
func twoScalars[T Scalar](v any) (T, T, error) {
	seq, ok := asSequence(v)
	if !ok || len(seq) != 2 {
		return 0, 0, fmt.Errorf("expected a sequence of 2 numbers, got %T: %w", v, ErrInvalidType)
	}
	x, err := toScalar[T](seq[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := toScalar[T](seq[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// circleFromArgs dispatches on argument count: 1 is a single source,
// 2 is (center, r) and 3 is (x, y, r).
func circleFromArgs(args []any) (Circle, error) {
	switch len(args) {
	case 1:
		return circleFromValue(args[0])
	case 2:
		x, y, err := twoFloats(args[0])
		if err != nil {
			return Circle{}, fmt.Errorf("circle center: %w", err)
		}
		r, err := toFloat(args[1])
		if err != nil {
			return Circle{}, fmt.Errorf("circle radius: %w", err)
		}
		return NewCircle(x, y, r)
	case 3:
		var f [3]float64
		for i, a := range args {
			v, err := toFloat(a)
			if err != nil {
				return Circle{}, fmt.Errorf("circle field %d: %w", i, err)
			}
			f[i] = v
		}
		return NewCircle(f[0], f[1], f[2])
	}
	return Circle{}, fmt.Errorf("circle: expected 1, 2 or 3 values, got %d: %w", len(args), ErrInvalidArgument)
}

func circleFromValue(v any) (Circle, error) {
	switch s := v.(type) {
	case Circle:
		return NewCircle(s.x, s.y, s.r)
	case *Circle:
		if s != nil {
			return NewCircle(s.x, s.y, s.r)
		}
	case string:
		return Circle{}, fmt.Errorf("circle: strings are not shapes: %w", ErrInvalidArgument)
	}
	if seq, ok := asSequence(v); ok {
		return circleFromArgs(seq)
	}
	if src, ok := v.(CircleSource); ok {
		c, err := src.AsCircle()
		if err != nil {
			return Circle{}, fmt.Errorf("circle source: %w", err)
		}
		return NewCircle(c.x, c.y, c.r)
	}
	return Circle{}, fmt.Errorf("circle: unrecognized source %T: %w", v, ErrInvalidArgument)
}

// lineFromArgs dispatches on argument count: 1 is a single source,
// 2 is (a, b) and 4 is (ax, ay, bx, by).
func lineFromArgs(args []any) (Line, error) {
	switch len(args) {
	case 1:
		return lineFromValue(args[0])
	case 2:
		ax, ay, err := twoFloats(args[0])
		if err != nil {
			return Line{}, fmt.Errorf("line point a: %w", err)
		}
		bx, by, err := twoFloats(args[1])
		if err != nil {
			return Line{}, fmt.Errorf("line point b: %w", err)
		}
		return NewLine(ax, ay, bx, by), nil
	case 4:
		var f [4]float64
		for i, a := range args {
			v, err := toFloat(a)
			if err != nil {
				return Line{}, fmt.Errorf("line field %d: %w", i, err)
			}
			f[i] = v
		}
		return NewLine(f[0], f[1], f[2], f[3]), nil
	}
	return Line{}, fmt.Errorf("line: expected 1, 2 or 4 values, got %d: %w", len(args), ErrInvalidArgument)
}

func lineFromValue(v any) (Line, error) {
	switch s := v.(type) {
	case Line:
		return s, nil
	case *Line:
		if s != nil {
			return *s, nil
		}
	case string:
		return Line{}, fmt.Errorf("line: strings are not shapes: %w", ErrInvalidArgument)
	}
	if seq, ok := asSequence(v); ok {
		return lineFromArgs(seq)
	}
	if src, ok := v.(LineSource); ok {
		l, err := src.AsLine()
		if err != nil {
			return Line{}, fmt.Errorf("line source: %w", err)
		}
		return l, nil
	}
	return Line{}, fmt.Errorf("line: unrecognized source %T: %w", v, ErrInvalidArgument)
}

// rectFromArgs dispatches on argument count: 1 is a single source,
// 2 is (topleft, size) and 4 is (x, y, w, h).
func rectFromArgs[T Scalar](args []any) (Rect[T], error) {
	switch len(args) {
	case 1:
		return rectFromValue[T](args[0])
	case 2:
		x, y, err := twoScalars[T](args[0])
		if err != nil {
			return Rect[T]{}, fmt.Errorf("rect position: %w", err)
		}
		w, h, err := twoScalars[T](args[1])
		if err != nil {
			return Rect[T]{}, fmt.Errorf("rect size: %w", err)
		}
		return Rect[T]{X: x, Y: y, W: w, H: h}, nil
	case 4:
		var f [4]T
		for i, a := range args {
			v, err := toScalar[T](a)
			if err != nil {
				return Rect[T]{}, fmt.Errorf("rect field %d: %w", i, err)
			}
			f[i] = v
		}
		return Rect[T]{X: f[0], Y: f[1], W: f[2], H: f[3]}, nil
	}
	return Rect[T]{}, fmt.Errorf("rect: expected 1, 2 or 4 values, got %d: %w", len(args), ErrInvalidArgument)
}

func rectFromValue[T Scalar](v any) (Rect[T], error) {
	switch s := v.(type) {
	case Rect[T]:
		return s, nil
	case *Rect[T]:
		if s != nil {
			return *s, nil
		}
	case Rect[int]:
		return Rect[T]{X: T(s.X), Y: T(s.Y), W: T(s.W), H: T(s.H)}, nil
	case Rect[float64]:
		return Rect[T]{X: T(s.X), Y: T(s.Y), W: T(s.W), H: T(s.H)}, nil
	case string:
		return Rect[T]{}, fmt.Errorf("rect: strings are not shapes: %w", ErrInvalidArgument)
	}
	if seq, ok := asSequence(v); ok {
		return rectFromArgs[T](seq)
	}
	if src, ok := v.(RectSource[T]); ok {
		r, err := src.AsRect()
		if err != nil {
			return Rect[T]{}, fmt.Errorf("rect source: %w", err)
		}
		return r, nil
	}
	return Rect[T]{}, fmt.Errorf("rect: unrecognized source %T: %w", v, ErrInvalidArgument)
}
