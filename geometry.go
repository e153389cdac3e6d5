package main

// Rectangle is axis aligned. Min is the top-left corner and Max the
// bottom-right corner, in screen coordinates (Y grows downwards).
type Rectangle struct {
	Min Pt
	Max Pt
}

func NewRectangle(x1, y1, x2, y2 int64) Rectangle {
	return Rectangle{Pt{min(x1, x2), min(y1, y2)}, Pt{max(x1, x2), max(y1, y2)}}
}

// RectangleAt is a utility for the common case of a sprite which has a
// position (its top-left corner) and a size.
func RectangleAt(pos Pt, size Pt) Rectangle {
	return Rectangle{pos, pos.Plus(size)}
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Center() Pt {
	return Pt{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// ContainsHorizontally checks if the horizontal extent of other is fully
// within the horizontal extent of r. Edges may touch.
func (r Rectangle) ContainsHorizontally(other Rectangle) bool {
	return other.Min.X >= r.Min.X && other.Max.X <= r.Max.X
}

func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}
