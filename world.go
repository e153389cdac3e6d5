package main

import (
	"fmt"
)

// SimulationVersion is the version of the World's behavior. If the same
// playthrough (same seed, params and inputs) produces a different sequence
// of World states, SimulationVersion must change.
const SimulationVersion = 1

// World rules
// - There is exactly one falling object at any time. It falls at a fixed
// speed.
// - The player moves the bucket left and right. The bucket never leaves the
// screen.
// - Catching a benign object gives a point. Catching a hazardous object
// costs a life.
// - Letting a benign object fall past the bottom of the screen costs a life.
// Letting a hazardous object fall past the bottom is fine.
// - Every time an object is caught or falls past the bottom, a new one is
// spawned above the screen.
// - The round ends when there are no lives left.

type RoundState int64

const (
	Running RoundState = iota
	Terminated
)

type EndReason int64

const (
	NotEnded EndReason = iota
	OutOfLives
	Quit
)

// Outcome is what happened to the falling object during the last Step.
type Outcome int64

const (
	NoOutcome Outcome = iota
	CaughtBenign
	CaughtHazard
	MissedBenign
	MissedHazard
)

// Params are the tuning values of a round. They are saved in a playthrough
// so they must stay fixed size (int64 and Pt only).
type Params struct {
	ScreenWidth  int64
	ScreenHeight int64
	BenignSize   Pt
	HazardSize   Pt
	BucketSize   Pt
	BucketStart  Pt
	BucketStep   int64
	FallSpeed    int64
	BenignWeight int64
	HazardWeight int64
	SpawnMinX    int64
	SpawnMaxX    int64
	SpawnMinY    int64
	SpawnMaxY    int64
	VisibleY     int64
	InitialLives int64
	CatchFrames  int64
	CatchFrameMs int64
	// CatchOffset places the catch animation: X is relative to the center
	// of the caught object, Y is relative to the top of the bucket.
	CatchOffset Pt
}

func DefaultParams() (p Params) {
	p.ScreenWidth = 500
	p.ScreenHeight = 600
	p.BenignSize = Pt{40, 40}
	p.HazardSize = Pt{40, 40}
	p.BucketSize = Pt{80, 70}
	p.BucketStart = Pt{p.ScreenWidth * 45 / 100, p.ScreenHeight * 80 / 100}
	p.BucketStep = 4
	p.FallSpeed = 7
	p.BenignWeight = 3
	p.HazardWeight = 1
	p.SpawnMinX = 0
	p.SpawnMaxX = 460
	p.SpawnMinY = -600
	p.SpawnMaxY = -200
	p.VisibleY = -20
	p.InitialLives = 3
	p.CatchFrames = 6
	p.CatchFrameMs = 30
	p.CatchOffset = Pt{-10, 5}
	return
}

type PlayerInput struct {
	LeftPressed   bool
	LeftReleased  bool
	RightPressed  bool
	RightReleased bool
	Quit          bool
	// DeltaMs is the time since the previous frame, as reported by the frame
	// clock.
	DeltaMs int64
}

func (p *PlayerInput) EventOccurred() bool {
	return p.LeftPressed || p.LeftReleased || p.RightPressed ||
		p.RightReleased || p.Quit
}

type World struct {
	Params
	State     RoundState
	EndReason EndReason
	Score     int64
	Lives     int64
	ElapsedMs int64
	Generator Generator
	Bucket    Receptacle
	Catch     CatchAnimation
	// FallingDrawn is the falling object as it should be drawn for the last
	// frame, which is its position before it was caught or missed.
	FallingDrawn FallingObject
	// CatchVisible is true if the catch animation should be drawn for the
	// last frame.
	CatchVisible bool
	LastOutcome  Outcome
}

func NewWorld(seed int64, p Params) (w World) {
	w.Params = p
	w.State = Running
	w.Lives = p.InitialLives
	w.Bucket = Receptacle{
		Pos:         p.BucketStart,
		Size:        p.BucketSize,
		StepSize:    p.BucketStep,
		ScreenWidth: p.ScreenWidth,
	}
	w.Catch = NewCatchAnimation(p.CatchFrames, p.CatchFrameMs)
	w.Generator = NewGenerator(p, NewRand(seed))
	w.FallingDrawn = w.Generator.Spawn()
	return
}

func NewWorldFromPlaythrough(p Playthrough) World {
	return NewWorld(p.Seed, p.Params)
}

// Step advances the round by one frame. The order of operations matters:
// the catch is evaluated with the bucket position from before this frame's
// move.
func (w *World) Step(input PlayerInput) {
	if w.State == Terminated {
		return
	}

	w.applyInput(input)
	w.ElapsedMs += input.DeltaMs

	w.Generator.Advance(w.Generator.Speed)
	obj := w.Generator.Active
	w.FallingDrawn = obj
	w.LastOutcome = NoOutcome

	if IsCaught(obj, w.Bucket) {
		if obj.Hazard {
			w.Lives--
			w.LastOutcome = CaughtHazard
		} else {
			w.Score++
			w.LastOutcome = CaughtBenign
			w.Catch.Start(Pt{
				obj.Pos.X + obj.Size.X/2 + w.CatchOffset.X,
				w.Bucket.Pos.Y + w.CatchOffset.Y,
			})
		}
		w.Generator.Spawn()
	} else if obj.Pos.Y > w.ScreenHeight {
		if obj.Hazard {
			w.LastOutcome = MissedHazard
		} else {
			w.Lives--
			w.LastOutcome = MissedBenign
		}
		w.Generator.Spawn()
	}

	w.Bucket.Step()
	w.CatchVisible = w.Catch.Animate(input.DeltaMs)

	Assert(w.Bucket.Pos.X >= 0 && w.Bucket.Pos.X <= w.ScreenWidth-w.Bucket.Size.X)
	Assert(w.Catch.Index < max(w.Catch.NFrames, 1))

	if w.Lives <= 0 {
		w.Lives = 0
		w.State = Terminated
		w.EndReason = OutOfLives
	} else if input.Quit {
		w.State = Terminated
		w.EndReason = Quit
	}
}

// applyInput latches the bucket's direction. Releases are applied before
// presses so that switching from one arrow to the other within a single
// frame keeps the bucket moving.
func (w *World) applyInput(input PlayerInput) {
	if input.LeftReleased || input.RightReleased {
		w.Bucket.Direction = Hold
	}
	if input.LeftPressed {
		w.Bucket.Direction = Left
	}
	if input.RightPressed {
		w.Bucket.Direction = Right
	}
}

// Summary describes a round which ended.
type Summary struct {
	Score      int64
	ElapsedSec float64
	// Dropped does not count the object which was still falling when the
	// round ended.
	Dropped int64
}

func (w *World) Summary() Summary {
	return Summary{
		Score:      w.Score,
		ElapsedSec: float64(w.ElapsedMs) / 1000,
		Dropped:    w.Generator.SpawnCount() - 1,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Final score: %d, Total time played: %.3f secs, "+
		"Total balls dropped: %d", s.Score, s.ElapsedSec, s.Dropped)
}
