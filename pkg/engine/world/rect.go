package world

// Rect is an axis-aligned rectangle with inclusive corner coordinates.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersect reports whether r and other overlap. Touching edges count.
func (r Rect) Intersect(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the rectangle's center tile.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains reports whether p lies in the carved interior of the room.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X1 && p.X <= r.X2 && p.Y > r.Y1 && p.Y <= r.Y2
}
