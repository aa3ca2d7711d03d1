package rtree

import "fmt"

// Rect is an immutable axis-aligned rectangle: MinX <= MaxX and
// MinY <= MaxY. A degenerate rect with equal bounds on an axis (zero width
// or height) is permitted.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect constructs a Rect, returning ErrInvalidRectangle if minX > maxX or
// minY > maxY.
func NewRect(minX, minY, maxX, maxY float64) (Rect, error) {
	if minX > maxX || minY > maxY {
		return Rect{}, fmt.Errorf("rtree: rect (%v,%v,%v,%v): %w", minX, minY, maxX, maxY, ErrInvalidRectangle)
	}
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// mustRect is NewRect for internal call sites that already know the bounds
// are valid (e.g. unions of already-valid rects).
func mustRect(minX, minY, maxX, maxY float64) Rect {
	r, err := NewRect(minX, minY, maxX, maxY)
	if err != nil {
		panic(err)
	}
	return r
}

// Area returns (MaxX-MinX) * (MaxY-MinY).
func (r Rect) Area() float64 {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return mustRect(
		min(r.MinX, o.MinX), min(r.MinY, o.MinY),
		max(r.MaxX, o.MaxX), max(r.MaxY, o.MaxY),
	)
}

// Enlargement is the area cost of growing r's cover to also contain o: the
// area of Union(r, o) minus the area of r. Always >= 0.
func (r Rect) Enlargement(o Rect) float64 {
	return r.Union(o).Area() - r.Area()
}

// Intersects reports whether r and o overlap on both axes. Touching edges
// count as intersecting.
func (r Rect) Intersects(o Rect) bool {
	if r.MaxX < o.MinX || o.MaxX < r.MinX {
		return false
	}
	if r.MaxY < o.MinY || o.MaxY < r.MinY {
		return false
	}
	return true
}

// Intersection returns the overlap of r and o, and false if they don't
// intersect.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	return mustRect(
		max(r.MinX, o.MinX), max(r.MinY, o.MinY),
		min(r.MaxX, o.MaxX), min(r.MaxY, o.MaxY),
	), true
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%.3f,%.3f,%.3f,%.3f)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
