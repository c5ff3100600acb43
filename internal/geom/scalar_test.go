package geom

import (
	"math"
	"testing"
)

func TestNearEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected bool
	}{
		{"identical", 1.5, 1.5, true},
		{"within absolute tolerance", 0, 5e-7, true},
		{"outside absolute tolerance", 0, 1e-5, false},
		{"within relative tolerance", 1e9, 1e9 + 100, true},
		{"outside relative tolerance", 1e9, 1e9 + 1e4, false},
		{"sign differs", -1, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearEqual(tc.a, tc.b); got != tc.expected {
				t.Errorf("NearEqual(%g, %g) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
			if got := NearEqual(tc.b, tc.a); got != tc.expected {
				t.Errorf("NearEqual(%g, %g) (reversed) = %v, expected %v", tc.b, tc.a, got, tc.expected)
			}
		})
	}
}

func TestDegRad(t *testing.T) {
	if got := DegToRad(180); !NearEqual(got, math.Pi) {
		t.Errorf("DegToRad(180) = %g, expected π", got)
	}
	if got := RadToDeg(math.Pi / 2); !NearEqual(got, 90) {
		t.Errorf("RadToDeg(π/2) = %g, expected 90", got)
	}
	for _, deg := range []float64{-720, -45, 0, 33.3, 359} {
		if got := RadToDeg(DegToRad(deg)); !NearEqual(got, deg) {
			t.Errorf("RadToDeg(DegToRad(%g)) = %g", deg, got)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := Clamp(-5.5, 0.0, 10.0); got != 0 {
		t.Errorf("Clamp(-5.5, 0, 10) = %g, expected 0", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5.5, 10.5) != 10.5 {
		t.Error("Max(5.5, 10.5) should be 10.5")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should drop the sign")
	}
}

func TestIsIntegral(t *testing.T) {
	if !isIntegral[int]() || !isIntegral[int32]() || !isIntegral[uint8]() {
		t.Error("integer kinds should be integral")
	}
	if isIntegral[float64]() || isIntegral[float32]() {
		t.Error("float kinds should not be integral")
	}
	if got := fromFloat[int](2.5); got != 3 {
		t.Errorf("fromFloat[int](2.5) = %d, expected 3", got)
	}
	if got := fromFloat[float64](2.5); got != 2.5 {
		t.Errorf("fromFloat[float64](2.5) = %g, expected 2.5", got)
	}
}
