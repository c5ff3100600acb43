package geom

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// CollidePoint reports whether (x, y) lies inside r. The top and left edges
// are inside, the bottom and right edges are not.
func (r Rect[T]) CollidePoint(x, y T) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CollideRect reports whether r and other overlap. Rects with zero width or
// height never collide; negative extents are treated as their normalized
// equivalent. Shared edges do not count as overlap.
func (r Rect[T]) CollideRect(other Rect[T]) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	a := r.Normalize()
	b := other.Normalize()
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// CollideCircle reports whether r overlaps c.
func (r Rect[T]) CollideCircle(c Circle) bool {
	f := r.FRect()
	return RectCircle(f.X, f.Y, f.W, f.H, c)
}

// CollideList returns the index of the first rect in rects that collides
// with r, or -1 when none does.
func (r Rect[T]) CollideList(rects []Rect[T]) int {
	for i, o := range rects {
		if r.CollideRect(o) {
			return i
		}
	}
	return -1
}

// CollideListAll returns the indices of every colliding rect in input order.
func (r Rect[T]) CollideListAll(rects []Rect[T]) []int {
	hits := make([]int, 0)
	for i, o := range rects {
		if r.CollideRect(o) {
			hits = append(hits, i)
		}
	}
	return hits
}

// CollideDict returns the first entry of m, in ascending key order, whose
// rect collides with r.
func CollideDict[T Scalar, K cmp.Ordered](r Rect[T], m map[K]Rect[T]) (K, Rect[T], bool) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if v := m[k]; r.CollideRect(v) {
			return k, v, true
		}
	}
	var zero K
	return zero, Rect[T]{}, false
}

// CollideDictAll returns the keys of every entry of m whose rect collides
// with r, in ascending key order.
func CollideDictAll[T Scalar, K cmp.Ordered](r Rect[T], m map[K]Rect[T]) []K {
	hits := make([]K, 0)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if r.CollideRect(m[k]) {
			hits = append(hits, k)
		}
	}
	return hits
}

// objectRect maps obj to a rect with key, or parses obj when key is nil.
func objectRect[T Scalar, E any](obj E, key func(E) Rect[T]) (Rect[T], error) {
	if key != nil {
		return key(obj), nil
	}
	return rectFromValue[T](obj)
}

// CollideObjects returns the first object whose rect collides with r. Each
// object is mapped to a rect with key; a nil key parses the object itself
// as a rect source.
func CollideObjects[T Scalar, E any](r Rect[T], objs []E, key func(E) Rect[T]) (E, bool, error) {
	for i, obj := range objs {
		or, err := objectRect(obj, key)
		if err != nil {
			var zero E
			return zero, false, fmt.Errorf("object %d: %w", i, err)
		}
		if r.CollideRect(or) {
			return obj, true, nil
		}
	}
	var zero E
	return zero, false, nil
}

// CollideObjectsAll returns every object whose rect collides with r, in
// input order.
func CollideObjectsAll[T Scalar, E any](r Rect[T], objs []E, key func(E) Rect[T]) ([]E, error) {
	hits := make([]E, 0)
	for i, obj := range objs {
		or, err := objectRect(obj, key)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if r.CollideRect(or) {
			hits = append(hits, obj)
		}
	}
	return hits, nil
}
