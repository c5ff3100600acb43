package geom

import (
	"errors"
	"testing"
)

type ball struct{ x, y, r float64 }

func (b ball) AsCircle() (Circle, error) { return NewCircle(b.x, b.y, b.r) }

type wire struct{ from, to Vec2 }

func (w wire) AsLine() (Line, error) { return NewLine(w.from.X, w.from.Y, w.to.X, w.to.Y), nil }

func TestParseCircle(t *testing.T) {
	want := MustCircle(1, 2, 3)

	tests := []struct {
		name string
		args []any
	}{
		{"three numbers", []any{1, 2, 3}},
		{"mixed kinds", []any{int64(1), float32(2), 3.0}},
		{"center slice and radius", []any{[]float64{1, 2}, 3}},
		{"center point and radius", []any{Vec2{X: 1, Y: 2}, 3}},
		{"flat sequence", []any{[]any{1, 2, 3}}},
		{"nested center", []any{[]any{[2]float64{1, 2}, 3}}},
		{"instance", []any{want}},
		{"instance pointer", []any{&want}},
		{"one-element wrapper", []any{[]any{want}}},
		{"source", []any{ball{1, 2, 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCircle(tc.args...)
			if err != nil {
				t.Fatalf("ParseCircle() failed: %v", err)
			}
			if got != want {
				t.Errorf("ParseCircle() = %v, expected %v", got, want)
			}
		})
	}
}

func TestParseCircleErrors(t *testing.T) {
	tests := []struct {
		name string
		args []any
		err  error
	}{
		{"no args", nil, ErrInvalidArgument},
		{"too many", []any{1, 2, 3, 4}, ErrInvalidArgument},
		{"string", []any{"circle"}, ErrInvalidArgument},
		{"unknown value", []any{struct{}{}}, ErrInvalidArgument},
		{"zero radius", []any{1, 2, 0}, ErrInvalidArgument},
		{"source with bad radius", []any{ball{0, 0, -1}}, ErrInvalidArgument},
		{"non-number field", []any{1, "2", 3}, ErrInvalidType},
		{"bad center", []any{5, 3}, ErrInvalidType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCircle(tc.args...); !errors.Is(err, tc.err) {
				t.Errorf("ParseCircle() error = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestCircleUpdateIsAtomic(t *testing.T) {
	c := MustCircle(1, 1, 1)

	if err := c.Update(9, 9, -9); err == nil {
		t.Fatal("Update() with a negative radius should fail")
	}
	if c != MustCircle(1, 1, 1) {
		t.Errorf("circle changed on failed Update: %v", c)
	}

	if err := c.Update([]int{4, 5}, 6); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if c != MustCircle(4, 5, 6) {
		t.Errorf("Update() = %v, expected Circle((4, 5), 6)", c)
	}
}

func TestParseLine(t *testing.T) {
	want := NewLine(1, 2, 3, 4)

	tests := []struct {
		name string
		args []any
	}{
		{"four numbers", []any{1, 2, 3, 4}},
		{"two points", []any{[]float64{1, 2}, Vec2{X: 3, Y: 4}}},
		{"flat array", []any{[4]float64{1, 2, 3, 4}}},
		{"nested points", []any{[]any{[2]int{1, 2}, [2]int{3, 4}}}},
		{"instance", []any{want}},
		{"one-element wrapper", []any{[]any{want}}},
		{"source", []any{wire{Vec2{X: 1, Y: 2}, Vec2{X: 3, Y: 4}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLine(tc.args...)
			if err != nil {
				t.Fatalf("ParseLine() failed: %v", err)
			}
			if got != want {
				t.Errorf("ParseLine() = %v, expected %v", got, want)
			}
		})
	}

	if _, err := ParseLine("0,0,1,1"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseLine(string) error = %v, expected ErrInvalidArgument", err)
	}
	if _, err := ParseLine(1, 2, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseLine(3 values) error = %v, expected ErrInvalidArgument", err)
	}
}

func TestParseRect(t *testing.T) {
	want := NewRect(1, 2, 3, 4)

	tests := []struct {
		name string
		args []any
	}{
		{"four numbers", []any{1, 2, 3, 4}},
		{"position and size", []any{[2]int{1, 2}, []int{3, 4}}},
		{"flat slice", []any{[]int{1, 2, 3, 4}}},
		{"floats truncate", []any{[]float64{1.9, 2.2, 3.7, 4.1}}},
		{"frect converts", []any{NewRect(1.5, 2.5, 3.5, 4.5)}},
		{"instance", []any{want}},
		{"one-element wrapper", []any{[]any{want}}},
		{"source", []any{sprite{"s", want}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRect[int](tc.args...)
			if err != nil {
				t.Fatalf("ParseRect() failed: %v", err)
			}
			if got != want {
				t.Errorf("ParseRect() = %v, expected %v", got, want)
			}
		})
	}
}

func TestParseFRect(t *testing.T) {
	got, err := ParseRect[float64](Vec2{X: 0.5, Y: 1}, []any{2, 2.5})
	if err != nil {
		t.Fatalf("ParseRect() failed: %v", err)
	}
	if got != NewRect(0.5, 1.0, 2.0, 2.5) {
		t.Errorf("ParseRect() = %v, expected FRect(0.5, 1, 2, 2.5)", got)
	}

	got, err = ParseRect[float64](NewRect(1, 2, 3, 4))
	if err != nil || got != NewRect(1.0, 2.0, 3.0, 4.0) {
		t.Errorf("ParseRect(IRect) = %v, %v", got, err)
	}

	if _, err := ParseRect[float64]("1 2 3 4"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseRect(string) error = %v, expected ErrInvalidArgument", err)
	}
	if _, err := ParseRect[float64](1, 2, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseRect(3 values) error = %v, expected ErrInvalidArgument", err)
	}
}

func TestRectUpdateIsAtomic(t *testing.T) {
	r := NewRect(1, 1, 1, 1)
	if err := r.Update(1, 2, "x", 4); !errors.Is(err, ErrInvalidType) {
		t.Errorf("Update() error = %v, expected ErrInvalidType", err)
	}
	if r != NewRect(1, 1, 1, 1) {
		t.Errorf("rect changed on failed Update: %v", r)
	}
}
