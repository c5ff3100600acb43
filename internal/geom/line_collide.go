package geom

import "math"

// LineCircle reports whether any point of segment l lies inside or on c.
func LineCircle(l Line, c Circle) bool {
	vx := l.BX - l.AX
	vy := l.BY - l.AY
	lenSq := vx*vx + vy*vy
	if lenSq == 0 {
		return CirclePoint(c, l.AX, l.AY)
	}
	t := Clamp(((c.x-l.AX)*vx+(c.y-l.AY)*vy)/lenSq, 0, 1)
	return CirclePoint(c, l.AX+t*vx, l.AY+t*vy)
}

// LineLine reports whether segments a and b share at least one point.
// Collinear segments collide when their extents overlap.
func LineLine(a, b Line) bool {
	p1, p2 := a.A(), a.B()
	q1, q2 := b.A(), b.B()

	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	return (o1 == 0 && onSegment(p1, q1, p2)) ||
		(o2 == 0 && onSegment(p1, q2, p2)) ||
		(o3 == 0 && onSegment(q1, p1, q2)) ||
		(o4 == 0 && onSegment(q1, p2, q2))
}

// LineRect reports whether segment l crosses or lies inside r.
func LineRect(l Line, r FRect) bool {
	_, ok := r.ClipLine(l.AX, l.AY, l.BX, l.BY)
	return ok
}

// collinearTol is relative to the product of the two edge lengths, so the
// collinearity test behaves the same at every scale.
const collinearTol = 1e-9

// orientation returns 1 for a clockwise turn p->q->r in screen space,
// -1 for counter-clockwise and 0 when the points are collinear.
func orientation(p, q, r Vec2) int {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	scale := math.Hypot(q.X-p.X, q.Y-p.Y) * math.Hypot(r.X-q.X, r.Y-q.Y)
	switch {
	case math.Abs(v) <= collinearTol*scale:
		return 0
	case v > 0:
		return 1
	}
	return -1
}

// onSegment reports whether q lies within the bounding box of p and r.
func onSegment(p, q, r Vec2) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// CollideCircle reports whether the segment touches c.
func (l Line) CollideCircle(c Circle) bool { return LineCircle(l, c) }

// CollideLine reports whether the segments share a point.
func (l Line) CollideLine(other Line) bool { return LineLine(l, other) }

// CollideRect reports whether the segment crosses or lies inside r.
func (l Line) CollideRect(r FRect) bool { return LineRect(l, r) }
