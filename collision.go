package main

// The catch band is measured upwards from the bottom edge of the falling
// object. The top of the receptacle must be inside the band for the object
// to count as caught. This is looser than an overlap test on purpose: it
// approximates the object having just reached the opening of the bucket.
const (
	CatchBandNear = int64(25)
	CatchBandFar  = int64(50)
)

// IsCaught checks if the object is inside the receptacle.
func IsCaught(o FallingObject, r Receptacle) bool {
	obj := o.Bounds()
	rec := r.Bounds()
	if !rec.ContainsHorizontally(obj) {
		return false
	}
	top := rec.Min.Y
	return obj.Max.Y-CatchBandFar <= top && top <= obj.Max.Y-CatchBandNear
}
