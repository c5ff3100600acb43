package geom

import "math"

// CirclePoint reports whether (px, py) lies inside or on the boundary of c.
func CirclePoint(c Circle, px, py float64) bool {
	dx := c.x - px
	dy := c.y - py
	return dx*dx+dy*dy <= c.r*c.r
}

// CircleCircle reports whether a and b overlap. Touching circles collide.
func CircleCircle(a, b Circle) bool {
	dx := a.x - b.x
	dy := a.y - b.y
	sum := a.r + b.r
	return dx*dx+dy*dy <= sum*sum
}

// RectCircle reports whether c overlaps the box (rx, ry, rw, rh). The
// circle center is clamped into the box and the clamped point is tested
// against the circle.
func RectCircle(rx, ry, rw, rh float64, c Circle) bool {
	right := rx + rw
	bottom := ry + rh

	tx := c.x
	if tx < rx {
		tx = rx
	} else if tx > right {
		tx = right
	}
	ty := c.y
	if ty < ry {
		ty = ry
	} else if ty > bottom {
		ty = bottom
	}
	return CirclePoint(c, tx, ty)
}

// CircleCircleIntersection returns the points where the boundaries of a and
// b cross: none when the circles are apart, nested or concentric, one when
// they are tangent (d² within NearEqual of (ra±rb)²), two otherwise.
func CircleCircleIntersection(a, b Circle) []Vec2 {
	dx := b.x - a.x
	dy := b.y - a.y
	d2 := dx*dx + dy*dy

	// Concentric, or so close to it with equal radii that the boundaries
	// coincide: no single crossing to report.
	if d2 == 0 || (NearEqual(d2, 0) && NearEqual(a.r, b.r)) {
		return nil
	}

	sum := a.r + b.r
	diff := a.r - b.r
	sum2 := sum * sum
	diff2 := diff * diff

	d := math.Sqrt(d2)
	// Distance from a's center to the chord midpoint along the center line.
	along := (a.r*a.r - b.r*b.r + d2) / (2 * d)
	ux := dx / d
	uy := dy / d
	mx := a.x + along*ux
	my := a.y + along*uy

	if NearEqual(d2, sum2) || NearEqual(d2, diff2) {
		return []Vec2{{X: mx, Y: my}}
	}
	if d2 > sum2 || d2 < diff2 {
		return nil
	}

	h := math.Sqrt(math.Max(a.r*a.r-along*along, 0))
	return []Vec2{
		{X: mx + h*uy, Y: my - h*ux},
		{X: mx - h*uy, Y: my + h*ux},
	}
}
