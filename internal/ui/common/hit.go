package common

// HitRegion represents a rectangular hit target in view-local coordinates.
type HitRegion struct {
	ID     string
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point is within the hit region bounds.
func (h HitRegion) Contains(x, y int) bool {
	return x >= h.X && x < h.X+h.Width && y >= h.Y && y < h.Y+h.Height
}

// Local converts screen coordinates to coordinates relative to the region's
// top-left corner.
func (h HitRegion) Local(x, y int) (int, int) {
	return x - h.X, y - h.Y
}

// Offset returns the region moved by dx, dy.
func (h HitRegion) Offset(dx, dy int) HitRegion {
	h.X += dx
	h.Y += dy
	return h
}
