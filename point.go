package main

// Pt is a position or a size in screen pixels. Y grows downwards.
type Pt struct {
	X int64
	Y int64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}
