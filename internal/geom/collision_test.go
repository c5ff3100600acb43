package geom

import (
	"math"
	"testing"
)

func TestCirclePoint(t *testing.T) {
	c := MustCircle(0, 0, 5)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"center", 0, 0, true},
		{"on boundary", 3, 4, true},
		{"just outside", 3, 5, false},
		{"far away", 100, 0, false},
		{"negative quadrant", -3, -4, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclePoint(c, tc.x, tc.y); got != tc.expected {
				t.Errorf("CirclePoint(%v, %g, %g) = %v, expected %v", c, tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCircleCircle(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"overlapping", MustCircle(0, 0, 5), MustCircle(3, 0, 5), true},
		{"touching", MustCircle(0, 0, 3), MustCircle(5, 0, 2), true},
		{"apart", MustCircle(0, 0, 3), MustCircle(10, 0, 2), false},
		{"nested", MustCircle(0, 0, 10), MustCircle(1, 1, 1), true},
		{"diagonal gap", MustCircle(0, 0, 1), MustCircle(2, 2, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleCircle(tc.a, tc.b); got != tc.expected {
				t.Errorf("CircleCircle() = %v, expected %v", got, tc.expected)
			}
			if got := CircleCircle(tc.b, tc.a); got != tc.expected {
				t.Errorf("CircleCircle() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectCircle(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		c          Circle
		expected   bool
	}{
		{"center inside", 0, 0, 10, 10, MustCircle(5, 5, 1), true},
		{"touching left edge", 0, 0, 10, 10, MustCircle(-2, 5, 2), true},
		{"left of rect", 0, 0, 10, 10, MustCircle(-3, 5, 2), false},
		{"near corner but outside", 0, 0, 10, 10, MustCircle(12, 12, 2), false},
		{"overlapping corner", 0, 0, 10, 10, MustCircle(11, 11, 2), true},
		{"rect inside circle", 4, 4, 2, 2, MustCircle(5, 5, 50), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RectCircle(tc.x, tc.y, tc.w, tc.h, tc.c); got != tc.expected {
				t.Errorf("RectCircle() = %v, expected %v", got, tc.expected)
			}
			// Circle and Rect methods must agree with the free function.
			if got := tc.c.CollideRect(tc.x, tc.y, tc.w, tc.h); got != tc.expected {
				t.Errorf("Circle.CollideRect() = %v, expected %v", got, tc.expected)
			}
			if got := NewRect(tc.x, tc.y, tc.w, tc.h).CollideCircle(tc.c); got != tc.expected {
				t.Errorf("Rect.CollideCircle() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleCircleIntersection(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected []Vec2
	}{
		{"identical", MustCircle(1, 1, 4), MustCircle(1, 1, 4), nil},
		{"concentric different radii", MustCircle(0, 0, 4), MustCircle(0, 0, 2), nil},
		{"nearly concentric equal radii", MustCircle(0, 0, 5), MustCircle(0.0005, 0, 5), nil},
		{"too far apart", MustCircle(0, 0, 1), MustCircle(10, 0, 1), nil},
		{"one inside the other", MustCircle(0, 0, 10), MustCircle(1, 0, 2), nil},
		{"external tangent", MustCircle(0, 0, 3), MustCircle(5, 0, 2), []Vec2{{X: 3, Y: 0}}},
		{"internal tangent", MustCircle(0, 0, 5), MustCircle(2, 0, 3), []Vec2{{X: 5, Y: 0}}},
		{"two points", MustCircle(0, 0, 5), MustCircle(8, 0, 5), []Vec2{{X: 4, Y: -3}, {X: 4, Y: 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CircleCircleIntersection(tc.a, tc.b)
			if len(got) != len(tc.expected) {
				t.Fatalf("CircleCircleIntersection() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if !NearEqual(got[i].X, tc.expected[i].X) || !NearEqual(got[i].Y, tc.expected[i].Y) {
					t.Errorf("point %d = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestCircleCircleIntersectionOnBoth(t *testing.T) {
	a := MustCircle(1.5, -2, 3.25)
	b := MustCircle(4, 1, 2.5)

	points := CircleCircleIntersection(a, b)
	if len(points) != 2 {
		t.Fatalf("expected 2 intersection points, got %d", len(points))
	}
	for _, p := range points {
		da := math.Hypot(p.X-a.X(), p.Y-a.Y())
		db := math.Hypot(p.X-b.X(), p.Y-b.Y())
		if !NearEqual(da, a.R()) || !NearEqual(db, b.R()) {
			t.Errorf("point %v is not on both circles (%g, %g)", p, da, db)
		}
	}
}
