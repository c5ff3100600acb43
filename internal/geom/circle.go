package geom

import (
	"fmt"
	"math"
)

// Circle is a circle with a strictly positive radius. The zero value is not
// a valid circle; build one with NewCircle or ParseCircle.
type Circle struct {
	x, y, r float64
}

// NewCircle creates a circle centered at (x, y) with radius r.
// A radius that is not strictly positive is rejected.
func NewCircle(x, y, r float64) (Circle, error) {
	if err := checkPositive("radius", r); err != nil {
		return Circle{}, err
	}
	return Circle{x: x, y: y, r: r}, nil
}

// MustCircle is like NewCircle but panics on an invalid radius.
// Intended for literals in tests and defaults.
func MustCircle(x, y, r float64) Circle {
	c, err := NewCircle(x, y, r)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCircle builds a circle from one of the accepted source forms: a
// Circle, (x, y, r), (center, r), a one-element sequence wrapping any of
// these, or a CircleSource.
func ParseCircle(args ...any) (Circle, error) {
	return circleFromArgs(args)
}

// checkPositive rejects values that are not strictly positive and finite,
// NaN included.
func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%s must be positive and finite, got %v: %w", name, v, ErrInvalidArgument)
	}
	return nil
}

// Update replaces the circle with one parsed from args. On error the circle
// is left unchanged.
func (c *Circle) Update(args ...any) error {
	nc, err := circleFromArgs(args)
	if err != nil {
		return fmt.Errorf("circle update: %w", err)
	}
	*c = nc
	return nil
}

// X returns the x-coordinate of the center.
func (c Circle) X() float64 { return c.x }

// Y returns the y-coordinate of the center.
func (c Circle) Y() float64 { return c.y }

// R returns the radius.
func (c Circle) R() float64 { return c.r }

// SetX sets the x-coordinate of the center.
func (c *Circle) SetX(x float64) { c.x = x }

// SetY sets the y-coordinate of the center.
func (c *Circle) SetY(y float64) { c.y = y }

// SetR sets the radius.
func (c *Circle) SetR(r float64) error {
	if err := checkPositive("radius", r); err != nil {
		return err
	}
	c.r = r
	return nil
}

// RSqr returns the squared radius.
func (c Circle) RSqr() float64 { return c.r * c.r }

// SetRSqr sets the radius from its square.
func (c *Circle) SetRSqr(v float64) error {
	if err := checkPositive("squared radius", v); err != nil {
		return err
	}
	c.r = math.Sqrt(v)
	return nil
}

// Area returns πr².
func (c Circle) Area() float64 { return math.Pi * c.r * c.r }

// SetArea sets the radius to sqrt(area/π).
func (c *Circle) SetArea(area float64) error {
	if err := checkPositive("area", area); err != nil {
		return err
	}
	c.r = math.Sqrt(area / math.Pi)
	return nil
}

// Circumference returns 2πr.
func (c Circle) Circumference() float64 { return 2 * math.Pi * c.r }

// SetCircumference sets the radius to circumference/2π.
func (c *Circle) SetCircumference(circumference float64) error {
	if err := checkPositive("circumference", circumference); err != nil {
		return err
	}
	c.r = circumference / (2 * math.Pi)
	return nil
}

// Diameter returns 2r.
func (c Circle) Diameter() float64 { return 2 * c.r }

// SetDiameter sets the radius to half the diameter.
func (c *Circle) SetDiameter(diameter float64) error {
	if err := checkPositive("diameter", diameter); err != nil {
		return err
	}
	c.r = diameter / 2
	return nil
}

// Center returns the center point.
func (c Circle) Center() Vec2 { return Vec2{X: c.x, Y: c.y} }

// SetCenter moves the center to (x, y).
func (c *Circle) SetCenter(x, y float64) {
	c.x = x
	c.y = y
}

// Top returns the topmost point of the circle.
func (c Circle) Top() Vec2 { return Vec2{X: c.x, Y: c.y - c.r} }

// SetTop moves the circle so its topmost point is (x, y).
func (c *Circle) SetTop(x, y float64) {
	c.x = x
	c.y = y + c.r
}

// Bottom returns the bottommost point of the circle.
func (c Circle) Bottom() Vec2 { return Vec2{X: c.x, Y: c.y + c.r} }

// SetBottom moves the circle so its bottommost point is (x, y).
func (c *Circle) SetBottom(x, y float64) {
	c.x = x
	c.y = y - c.r
}

// Left returns the leftmost point of the circle.
func (c Circle) Left() Vec2 { return Vec2{X: c.x - c.r, Y: c.y} }

// SetLeft moves the circle so its leftmost point is (x, y).
func (c *Circle) SetLeft(x, y float64) {
	c.x = x + c.r
	c.y = y
}

// Right returns the rightmost point of the circle.
func (c Circle) Right() Vec2 { return Vec2{X: c.x + c.r, Y: c.y} }

// SetRight moves the circle so its rightmost point is (x, y).
func (c *Circle) SetRight(x, y float64) {
	c.x = x - c.r
	c.y = y
}

// Move returns the circle translated by (dx, dy).
func (c Circle) Move(dx, dy float64) Circle {
	c.x += dx
	c.y += dy
	return c
}

// MoveIP translates the circle in place.
func (c *Circle) MoveIP(dx, dy float64) {
	*c = c.Move(dx, dy)
}

// Rotate returns the circle rotated by angle degrees around pivot.
// Rotations by a whole number of turns return the circle unchanged.
func (c Circle) Rotate(angle float64, pivot Vec2) Circle {
	if angle == 0 || math.Mod(angle, 360) == 0 {
		return c
	}
	x := c.x - pivot.X
	y := c.y - pivot.Y
	sin, cos := math.Sincos(DegToRad(angle))
	c.x = pivot.X + x*cos - y*sin
	c.y = pivot.Y + x*sin + y*cos
	return c
}

// RotateIP rotates the circle in place.
func (c *Circle) RotateIP(angle float64, pivot Vec2) {
	*c = c.Rotate(angle, pivot)
}

// CollidePoint reports whether (px, py) lies inside or on the circle.
func (c Circle) CollidePoint(px, py float64) bool {
	return CirclePoint(c, px, py)
}

// CollideCircle reports whether the circles overlap or touch.
func (c Circle) CollideCircle(other Circle) bool {
	return CircleCircle(c, other)
}

// CollideRect reports whether the circle overlaps the box (x, y, w, h).
func (c Circle) CollideRect(x, y, w, h float64) bool {
	return RectCircle(x, y, w, h, c)
}

// CollideFRect reports whether the circle overlaps r.
func (c Circle) CollideFRect(r FRect) bool {
	return RectCircle(r.X, r.Y, r.W, r.H, c)
}

// CollidesWith tests the circle against a Circle, Rect, FRect or point.
func (c Circle) CollidesWith(shape any) (bool, error) {
	switch s := shape.(type) {
	case Circle:
		return CircleCircle(s, c), nil
	case Rect[int]:
		f := s.FRect()
		return RectCircle(f.X, f.Y, f.W, f.H, c), nil
	case Rect[float64]:
		return RectCircle(s.X, s.Y, s.W, s.H, c), nil
	}
	x, y, err := twoFloats(shape)
	if err != nil {
		return false, fmt.Errorf("circle collide: %w", err)
	}
	return CirclePoint(c, x, y), nil
}

// CollideList returns the index of the first shape that collides with the
// circle, or -1 when none does.
func (c Circle) CollideList(shapes []any) (int, error) {
	for i, s := range shapes {
		hit, err := c.CollidesWith(s)
		if err != nil {
			return -1, fmt.Errorf("shape %d: %w", i, err)
		}
		if hit {
			return i, nil
		}
	}
	return -1, nil
}

// CollideListAll returns the indices of every shape that collides with the
// circle, in input order.
func (c Circle) CollideListAll(shapes []any) ([]int, error) {
	hits := make([]int, 0)
	for i, s := range shapes {
		hit, err := c.CollidesWith(s)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		if hit {
			hits = append(hits, i)
		}
	}
	return hits, nil
}

// Contains reports whether shape lies entirely inside the circle. A rect is
// contained when all four of its corners are.
func (c Circle) Contains(shape any) (bool, error) {
	switch s := shape.(type) {
	case Circle:
		return c.containsCircle(s), nil
	case Rect[int]:
		return c.containsBox(s.FRect()), nil
	case Rect[float64]:
		return c.containsBox(s), nil
	}
	x, y, err := twoFloats(shape)
	if err != nil {
		return false, fmt.Errorf("circle contains: %w", err)
	}
	return CirclePoint(c, x, y), nil
}

func (c Circle) containsCircle(o Circle) bool {
	if o.r > c.r {
		return false
	}
	dx := o.x - c.x
	dy := o.y - c.y
	dr := o.r - c.r
	return dx*dx+dy*dy <= dr*dr
}

func (c Circle) containsBox(r FRect) bool {
	return CirclePoint(c, r.X, r.Y) &&
		CirclePoint(c, r.X+r.W, r.Y) &&
		CirclePoint(c, r.X, r.Y+r.H) &&
		CirclePoint(c, r.X+r.W, r.Y+r.H)
}

// Intersect returns the points where the two circles' boundaries cross.
func (c Circle) Intersect(other Circle) []Vec2 {
	return CircleCircleIntersection(c, other)
}

// AsRect returns the integer bounding box, truncating toward zero.
func (c Circle) AsRect() IRect {
	d := int(c.r * 2)
	return IRect{X: int(c.x - c.r), Y: int(c.y - c.r), W: d, H: d}
}

// AsFRect returns the bounding box.
func (c Circle) AsFRect() FRect {
	d := c.r * 2
	return FRect{X: c.x - c.r, Y: c.y - c.r, W: d, H: d}
}

// Equal reports whether both circles match field by field within NearEqual.
func (c Circle) Equal(other Circle) bool {
	return NearEqual(c.x, other.x) && NearEqual(c.y, other.y) && NearEqual(c.r, other.r)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle((%g, %g), %g)", c.x, c.y, c.r)
}
