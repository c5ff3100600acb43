package geom

// Derived edges and points. Each setter moves the rect so that the named
// edge or point lands on the given value, keeping the size, except for the
// size setters which keep (X, Y).

func (r Rect[T]) Left() T   { return r.X }
func (r Rect[T]) Top() T    { return r.Y }
func (r Rect[T]) Right() T  { return r.X + r.W }
func (r Rect[T]) Bottom() T { return r.Y + r.H }

func (r *Rect[T]) SetLeft(v T)   { r.X = v }
func (r *Rect[T]) SetTop(v T)    { r.Y = v }
func (r *Rect[T]) SetRight(v T)  { r.X = v - r.W }
func (r *Rect[T]) SetBottom(v T) { r.Y = v - r.H }

// CenterX returns the x-coordinate of the center. Integer rects truncate.
func (r Rect[T]) CenterX() T { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the center. Integer rects truncate.
func (r Rect[T]) CenterY() T { return r.Y + r.H/2 }

func (r *Rect[T]) SetCenterX(v T) { r.X = v - r.W/2 }
func (r *Rect[T]) SetCenterY(v T) { r.Y = v - r.H/2 }

func (r Rect[T]) Width() T  { return r.W }
func (r Rect[T]) Height() T { return r.H }

func (r *Rect[T]) SetWidth(w T)  { r.W = w }
func (r *Rect[T]) SetHeight(h T) { r.H = h }

// Size returns (W, H).
func (r Rect[T]) Size() Point[T] { return Point[T]{X: r.W, Y: r.H} }

// SetSize resizes the rect, keeping its top-left corner.
func (r *Rect[T]) SetSize(w, h T) {
	r.W = w
	r.H = h
}

func (r Rect[T]) TopLeft() Point[T]     { return Point[T]{X: r.X, Y: r.Y} }
func (r Rect[T]) TopRight() Point[T]    { return Point[T]{X: r.X + r.W, Y: r.Y} }
func (r Rect[T]) BottomLeft() Point[T]  { return Point[T]{X: r.X, Y: r.Y + r.H} }
func (r Rect[T]) BottomRight() Point[T] { return Point[T]{X: r.X + r.W, Y: r.Y + r.H} }
func (r Rect[T]) MidTop() Point[T]      { return Point[T]{X: r.X + r.W/2, Y: r.Y} }
func (r Rect[T]) MidLeft() Point[T]     { return Point[T]{X: r.X, Y: r.Y + r.H/2} }
func (r Rect[T]) MidBottom() Point[T]   { return Point[T]{X: r.X + r.W/2, Y: r.Y + r.H} }
func (r Rect[T]) MidRight() Point[T]    { return Point[T]{X: r.X + r.W, Y: r.Y + r.H/2} }
func (r Rect[T]) Center() Point[T]      { return Point[T]{X: r.X + r.W/2, Y: r.Y + r.H/2} }

func (r *Rect[T]) SetTopLeft(x, y T) {
	r.X = x
	r.Y = y
}

func (r *Rect[T]) SetTopRight(x, y T) {
	r.X = x - r.W
	r.Y = y
}

func (r *Rect[T]) SetBottomLeft(x, y T) {
	r.X = x
	r.Y = y - r.H
}

func (r *Rect[T]) SetBottomRight(x, y T) {
	r.X = x - r.W
	r.Y = y - r.H
}

func (r *Rect[T]) SetMidTop(x, y T) {
	r.X = x - r.W/2
	r.Y = y
}

func (r *Rect[T]) SetMidLeft(x, y T) {
	r.X = x
	r.Y = y - r.H/2
}

func (r *Rect[T]) SetMidBottom(x, y T) {
	r.X = x - r.W/2
	r.Y = y - r.H
}

func (r *Rect[T]) SetMidRight(x, y T) {
	r.X = x - r.W
	r.Y = y - r.H/2
}

// SetCenter translates the rect so its center is (x, y).
func (r *Rect[T]) SetCenter(x, y T) {
	r.X = x - r.W/2
	r.Y = y - r.H/2
}
