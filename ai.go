package main

// AI drives the bucket instead of the player. It only reacts to objects that
// are already visible: it follows benign objects and gets out of the way of
// hazardous ones.
// It produces the same kind of input the keyboard does, so a round played by
// the AI can be recorded and replayed like any other.
type AI struct {
	dir Direction
}

func (a *AI) Step(w *World) (input PlayerInput) {
	want := a.desiredDirection(w)
	if want == a.dir {
		return
	}

	switch a.dir {
	case Left:
		input.LeftReleased = true
	case Right:
		input.RightReleased = true
	}
	switch want {
	case Left:
		input.LeftPressed = true
	case Right:
		input.RightPressed = true
	}
	a.dir = want
	return
}

func (a *AI) desiredDirection(w *World) Direction {
	obj, ok := w.Generator.Visible()
	if !ok {
		return Hold
	}

	bucket := w.Bucket.Bounds()
	objBounds := obj.Bounds()
	diff := objBounds.Center().X - bucket.Center().X

	if obj.Hazard {
		// Already passed the bucket, nothing to avoid.
		if objBounds.Min.Y > bucket.Max.Y {
			return Hold
		}
		// The bucket's column, at the height of the object.
		column := NewRectangle(bucket.Min.X, objBounds.Min.Y,
			bucket.Max.X, objBounds.Max.Y)
		if !column.Intersects(objBounds) {
			return Hold
		}
		// Run towards the side with more room.
		if bucket.Center().X < w.ScreenWidth/2 {
			return Right
		}
		return Left
	}

	if Abs(diff) <= w.Bucket.StepSize {
		return Hold
	}
	if diff < 0 {
		return Left
	}
	return Right
}
