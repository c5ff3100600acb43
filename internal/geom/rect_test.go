package geom

import (
	"errors"
	"testing"
)

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	if got := a.Union(b); got != NewRect(0, 0, 15, 15) {
		t.Errorf("Union() = %v, expected Rect(0, 0, 15, 15)", got)
	}
	if a.Union(b) != b.Union(a) {
		t.Error("Union() should be symmetric")
	}

	a.UnionIP(NewRect(-5, 20, 1, 1))
	if a != NewRect(-5, 0, 15, 21) {
		t.Errorf("UnionIP() = %v, expected Rect(-5, 0, 15, 21)", a)
	}
}

func TestRectUnionAll(t *testing.T) {
	r := NewRect(0.0, 0.0, 1.0, 1.0)

	got, err := r.UnionAll([]FRect{{X: 5, Y: 5, W: 1, H: 1}, {X: -2, Y: 3, W: 1, H: 1}})
	if err != nil {
		t.Fatalf("UnionAll() failed: %v", err)
	}
	if got != (FRect{X: -2, Y: 0, W: 8, H: 6}) {
		t.Errorf("UnionAll() = %v, expected FRect(-2, 0, 8, 6)", got)
	}

	if _, err := r.UnionAll(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("UnionAll(nil) error = %v, expected ErrInvalidArgument", err)
	}
	if err := r.UnionAllIP([]FRect{}); err == nil {
		t.Error("UnionAllIP(empty) should fail")
	}
	if r != NewRect(0.0, 0.0, 1.0, 1.0) {
		t.Errorf("rect changed on failed UnionAllIP: %v", r)
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		a, b     IRect
		expected IRect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"inside", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 5), NewRect(2, 3, 4, 5)},
		{"disjoint", NewRect(3, 4, 2, 2), NewRect(50, 50, 1, 1), NewRect(3, 4, 0, 0)},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), NewRect(0, 0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Clip(tc.b)
			if got != tc.expected {
				t.Errorf("Clip() = %v, expected %v", got, tc.expected)
			}
			if !tc.a.Contains(got) && !got.Empty() {
				t.Errorf("Clip() = %v is not inside %v", got, tc.a)
			}
		})
	}
}

func TestRectNormalize(t *testing.T) {
	r := NewRect(10, 0, -10, 10)
	if got := r.Normalize(); got != NewRect(0, 0, 10, 10) {
		t.Errorf("Normalize() = %v, expected Rect(0, 0, 10, 10)", got)
	}

	f := NewRect(1.5, 2.5, -1.0, -2.0)
	f.NormalizeIP()
	if f != NewRect(0.5, 0.5, 1.0, 2.0) {
		t.Errorf("NormalizeIP() = %v, expected FRect(0.5, 0.5, 1, 2)", f)
	}
	if f.Normalize() != f {
		t.Error("Normalize() of a normalized rect should be a no-op")
	}
}

func TestRectCollideRect(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		other    IRect
		expected bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"inside", NewRect(2, 2, 2, 2), true},
		{"shared edge", NewRect(10, 0, 5, 5), false},
		{"far away", NewRect(20, 20, 5, 5), false},
		{"zero width", NewRect(5, 5, 0, 5), false},
		{"negative extents", NewRect(12, 12, -5, -5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.CollideRect(tc.other); got != tc.expected {
				t.Errorf("CollideRect(%v) = %v, expected %v", tc.other, got, tc.expected)
			}
			if got := tc.other.CollideRect(base); got != tc.expected {
				t.Errorf("reverse CollideRect = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectCollidePoint(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{9, 9, true},
		{10, 5, false},
		{5, 10, false},
		{-1, 5, false},
	}

	for _, tc := range tests {
		if got := r.CollidePoint(tc.x, tc.y); got != tc.expected {
			t.Errorf("CollidePoint(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectCollideCircle(t *testing.T) {
	r := NewRect(0.0, 0.0, 10.0, 10.0)
	if !r.CollideCircle(MustCircle(-2, 5, 2)) {
		t.Error("circle touching the left edge should collide")
	}
	if r.CollideCircle(MustCircle(12, 12, 2)) {
		t.Error("circle near the corner but outside should not collide")
	}
}

func TestRectInflate(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if got := r.Inflate(4, 2); got != NewRect(-2, -1, 14, 12) {
		t.Errorf("Inflate(4, 2) = %v, expected Rect(-2, -1, 14, 12)", got)
	}
	r.InflateIP(-4, -4)
	if r != NewRect(2, 2, 6, 6) {
		t.Errorf("InflateIP(-4, -4) = %v, expected Rect(2, 2, 6, 6)", r)
	}
}

func TestRectScaleBy(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if got := r.ScaleBy(2, 2); got != NewRect(-5, -5, 20, 20) {
		t.Errorf("ScaleBy(2, 2) = %v, expected Rect(-5, -5, 20, 20)", got)
	}
	if got := r.ScaleBy(-2, -2); got != r.ScaleBy(2, 2) {
		t.Errorf("ScaleBy(-2, -2) = %v, expected same as ScaleBy(2, 2)", got)
	}

	f := NewRect(0.0, 0.0, 4.0, 2.0)
	f.ScaleByIP(0.5, 1)
	if f != NewRect(1.0, 0.0, 2.0, 2.0) {
		t.Errorf("ScaleByIP(0.5, 1) = %v, expected FRect(1, 0, 2, 2)", f)
	}
}

func TestRectClamp(t *testing.T) {
	area := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		r        IRect
		expected IRect
	}{
		{"above left", NewRect(0, 0, 5, 5), NewRect(10, 10, 5, 5)},
		{"off right", NewRect(28, 0, 5, 5), NewRect(25, 10, 5, 5)},
		{"already inside", NewRect(12, 14, 5, 5), NewRect(12, 14, 5, 5)},
		{"wider than area", NewRect(0, 15, 40, 5), NewRect(0, 15, 40, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Clamp(area)
			if got != tc.expected {
				t.Errorf("Clamp() = %v, expected %v", got, tc.expected)
			}
			if got.W != tc.r.W || got.H != tc.r.H {
				t.Errorf("Clamp() resized the rect: %v", got)
			}
		})
	}
}

func TestRectFit(t *testing.T) {
	if got := NewRect(0, 0, 20, 10).Fit(NewRect(0, 0, 10, 10)); got != NewRect(0, 2, 10, 5) {
		t.Errorf("Fit() = %v, expected Rect(0, 2, 10, 5)", got)
	}
	if got := NewRect(0.0, 0.0, 20.0, 10.0).Fit(NewRect(0.0, 0.0, 10.0, 10.0)); got != NewRect(0.0, 2.5, 10.0, 5.0) {
		t.Errorf("Fit() = %v, expected FRect(0, 2.5, 10, 5)", got)
	}
	if got := NewRect(0.0, 0.0, 1.0, 2.0).Fit(NewRect(10.0, 10.0, 10.0, 10.0)); got != NewRect(12.5, 10.0, 5.0, 10.0) {
		t.Errorf("Fit(upscale) = %v, expected FRect(12.5, 10, 5, 10)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		other    IRect
		expected bool
	}{
		{"inside", NewRect(2, 2, 3, 3), true},
		{"itself", r, true},
		{"overlapping", NewRect(5, 5, 10, 10), false},
		{"outside", NewRect(20, 20, 1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.other); got != tc.expected {
				t.Errorf("Contains() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectClipLine(t *testing.T) {
	f := NewRect(0.0, 0.0, 10.0, 10.0)

	seg, ok := f.ClipLine(-5, 5, 15, 5)
	if !ok {
		t.Fatal("ClipLine() should hit")
	}
	if seg.A != (Vec2{X: 0, Y: 5}) || seg.B != (Vec2{X: 10, Y: 5}) {
		t.Errorf("ClipLine() = %v-%v, expected (0, 5)-(10, 5)", seg.A, seg.B)
	}

	if _, ok := f.ClipLine(-5, -5, -1, -1); ok {
		t.Error("ClipLine() outside the rect should miss")
	}

	seg, ok = f.ClipLine(1, 2, 3, 4)
	if !ok || seg.A != (Vec2{X: 1, Y: 2}) || seg.B != (Vec2{X: 3, Y: 4}) {
		t.Errorf("ClipLine(inside) = %v-%v, %v, expected unchanged", seg.A, seg.B, ok)
	}

	i := NewRect(0, 0, 10, 10)
	iseg, ok := i.ClipLine(-5, 5, 15, 5)
	if !ok {
		t.Fatal("integer ClipLine() should hit")
	}
	if iseg.A != (Point[int]{X: 0, Y: 5}) || iseg.B != (Point[int]{X: 9, Y: 5}) {
		t.Errorf("integer ClipLine() = %v-%v, expected (0, 5)-(9, 5)", iseg.A, iseg.B)
	}

	if _, ok := NewRect(0, 0, 0, 10).ClipLine(0, 0, 5, 5); ok {
		t.Error("ClipLine() against an empty rect should miss")
	}
}

func TestRectPoints(t *testing.T) {
	r := NewRect(0, 0, 10, 20)

	if got := r.Center(); got != Pt(5, 10) {
		t.Errorf("Center() = %v, expected (5, 10)", got)
	}
	if got := r.BottomRight(); got != Pt(10, 20) {
		t.Errorf("BottomRight() = %v, expected (10, 20)", got)
	}
	if got := r.MidLeft(); got != Pt(0, 10) {
		t.Errorf("MidLeft() = %v, expected (0, 10)", got)
	}

	r.SetCenter(0, 0)
	if r != NewRect(-5, -10, 10, 20) {
		t.Errorf("SetCenter(0, 0) = %v", r)
	}
	r.SetBottomRight(10, 10)
	if r != NewRect(0, -10, 10, 20) {
		t.Errorf("SetBottomRight(10, 10) = %v", r)
	}
	r.SetRight(100)
	if r.Left() != 90 || r.Right() != 100 {
		t.Errorf("SetRight(100) left/right = %d/%d", r.Left(), r.Right())
	}
	r.SetSize(1, 2)
	if r.Size() != Pt(1, 2) {
		t.Errorf("SetSize(1, 2) size = %v", r.Size())
	}
}

func TestRectCollideList(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	rects := []IRect{
		NewRect(20, 20, 1, 1),
		NewRect(5, 5, 2, 2),
		NewRect(-5, -5, 6, 6),
	}

	if got := r.CollideList(rects); got != 1 {
		t.Errorf("CollideList() = %d, expected 1", got)
	}
	if got := r.CollideListAll(rects); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("CollideListAll() = %v, expected [1 2]", got)
	}
	if got := r.CollideList(rects[:1]); got != -1 {
		t.Errorf("CollideList(no hit) = %d, expected -1", got)
	}
	if got := r.CollideListAll(nil); len(got) != 0 {
		t.Errorf("CollideListAll(nil) = %v, expected empty", got)
	}
}

func TestCollideDict(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	m := map[string]IRect{
		"zeta":  NewRect(1, 1, 1, 1),
		"alpha": NewRect(2, 2, 1, 1),
		"miss":  NewRect(50, 50, 1, 1),
	}

	k, v, ok := CollideDict(r, m)
	if !ok || k != "alpha" || v != NewRect(2, 2, 1, 1) {
		t.Errorf("CollideDict() = %q, %v, %v, expected alpha", k, v, ok)
	}

	all := CollideDictAll(r, m)
	if len(all) != 2 || all[0] != "alpha" || all[1] != "zeta" {
		t.Errorf("CollideDictAll() = %v, expected [alpha zeta]", all)
	}

	if _, _, ok := CollideDict(r, map[int]IRect{}); ok {
		t.Error("CollideDict(empty) should miss")
	}
}

type sprite struct {
	name string
	box  IRect
}

func (s sprite) AsRect() (IRect, error) { return s.box, nil }

func TestCollideObjects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	sprites := []sprite{
		{"far", NewRect(40, 40, 2, 2)},
		{"near", NewRect(8, 8, 4, 4)},
		{"inside", NewRect(1, 1, 2, 2)},
	}

	got, ok, err := CollideObjects(r, sprites, func(s sprite) IRect { return s.box })
	if err != nil || !ok || got.name != "near" {
		t.Errorf("CollideObjects(key) = %v, %v, %v, expected near", got, ok, err)
	}

	all, err := CollideObjectsAll(r, sprites, nil)
	if err != nil {
		t.Fatalf("CollideObjectsAll(nil key) failed: %v", err)
	}
	if len(all) != 2 || all[0].name != "near" || all[1].name != "inside" {
		t.Errorf("CollideObjectsAll() = %v", all)
	}

	if _, _, err := CollideObjects(r, []any{"box"}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CollideObjects(string) error = %v, expected ErrInvalidArgument", err)
	}
}

func TestRectString(t *testing.T) {
	if got := NewRect(1, 2, 3, 4).String(); got != "Rect(1, 2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
	if got := NewRect(1.5, 2.0, 3.0, 4.0).String(); got != "FRect(1.5, 2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
}
