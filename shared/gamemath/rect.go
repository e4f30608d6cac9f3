package gamemath

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectAround returns the w by h rect centred on (x, y).
func RectAround(x, y, w, h float64) Rect {
	return Rect{MinX: x - w/2, MinY: y - h/2, MaxX: x + w/2, MaxY: y + h/2}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Clamp moves (x, y) to the nearest point inside r.
func (r Rect) Clamp(x, y float64) (float64, float64) {
	return Clamp(x, r.MinX, r.MaxX), Clamp(y, r.MinY, r.MaxY)
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Overlaps reports whether r and o share a region of positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinY < o.MaxY && o.MinY < r.MaxY
}
