package main

// CatchAnimation is the simulation side of the splash shown when a benign
// object is caught. It only knows how many frames there are and which one is
// showing. The images live in the Gui.
//
// It is a one-shot animation: once activated it shows every frame once, then
// it goes back to idle with the index reset to 0.
type CatchAnimation struct {
	NFrames   int64
	FrameMs   int64
	Index     int64
	ElapsedMs int64
	Active    bool
	Pos       Pt
}

func NewCatchAnimation(nFrames int64, frameMs int64) CatchAnimation {
	return CatchAnimation{NFrames: nFrames, FrameMs: frameMs}
}

// Start (re)starts the animation from its first frame at pos.
func (a *CatchAnimation) Start(pos Pt) {
	a.Index = 0
	a.ElapsedMs = 0
	a.Active = true
	a.Pos = pos
}

func (a *CatchAnimation) Reset() {
	a.Index = 0
	a.ElapsedMs = 0
	a.Active = false
}

// Animate advances the animation by dtMs milliseconds. It returns true if
// the animation should be drawn this frame.
// The index moves at most one frame per call and the time left over after
// crossing a frame boundary is dropped.
func (a *CatchAnimation) Animate(dtMs int64) bool {
	if !a.Active {
		return false
	}

	// The last frame was shown during the previous call.
	if a.Index+1 >= a.NFrames {
		a.Reset()
		return false
	}

	a.ElapsedMs += dtMs
	if a.ElapsedMs >= a.FrameMs {
		a.ElapsedMs = 0
		a.Index++
	}
	return true
}
