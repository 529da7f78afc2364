package entity

// Rect is an axis-aligned box in world units.
// Right and Bottom lie one past the covered area, so Width is Right-Left.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether the rect covers no area
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// CenterX returns the integer horizontal midpoint
func (r Rect) CenterX() int {
	return (r.Left + r.Right) >> 1
}

// CenterY returns the integer vertical midpoint
func (r Rect) CenterY() int {
	return (r.Top + r.Bottom) >> 1
}

// Offset returns the rect moved by (dx, dy)
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersects reports whether the open interiors of both rects overlap.
// Rects that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Contains reports whether o lies fully inside r
func (r Rect) Contains(o Rect) bool {
	return !r.Empty() &&
		r.Left <= o.Left && r.Top <= o.Top &&
		r.Right >= o.Right && r.Bottom >= o.Bottom
}

// Within reports whether r lies inside the closed bounds
func (r Rect) Within(bounds Rect) bool {
	return r.Left >= bounds.Left && r.Top >= bounds.Top &&
		r.Right <= bounds.Right && r.Bottom <= bounds.Bottom
}
