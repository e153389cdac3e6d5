package main

// Direction is where the player wants the receptacle to go.
type Direction int64

const (
	Left  Direction = -1
	Hold  Direction = 0
	Right Direction = 1
)

// Sign is the factor applied to the step size when moving.
func (d Direction) Sign() int64 {
	return int64(d)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "hold"
	}
}

// Receptacle is the bucket controlled by the player. It only moves
// horizontally.
type Receptacle struct {
	Pos         Pt
	Size        Pt
	StepSize    int64
	Direction   Direction
	ScreenWidth int64
}

func (r *Receptacle) Bounds() Rectangle {
	return RectangleAt(r.Pos, r.Size)
}

// Step moves the receptacle in its current direction. A move that would
// take it past the left or right edge of the screen is not done at all, so
// the receptacle may stop short of the edge.
func (r *Receptacle) Step() {
	newX := r.Pos.X + r.Direction.Sign()*r.StepSize
	if newX >= 0 && newX <= r.ScreenWidth-r.Bounds().Width() {
		r.Pos.X = newX
	}
}
