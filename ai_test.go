package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAI_IgnoresObjectsAboveScreen(t *testing.T) {
	w := NewWorld(0, DefaultParams())
	w.Generator.Active.Pos = Pt{0, -100}
	var ai AI
	input := ai.Step(&w)
	assert.False(t, input.EventOccurred())
}

func TestAI_FollowsBenignObject(t *testing.T) {
	w := NewWorld(0, DefaultParams())
	w.Generator.Active = FallingObject{VariantIdx: 0, Size: w.BenignSize,
		Pos: Pt{10, 0}}
	var ai AI

	input := ai.Step(&w)
	assert.True(t, input.LeftPressed)
	w.Step(input)
	assert.Equal(t, Left, w.Bucket.Direction)

	// Keep going left without sending more events.
	input = ai.Step(&w)
	assert.False(t, input.EventOccurred())

	// Once aligned, stop.
	w.Generator.Active.Pos.X = w.Bucket.Bounds().Center().X - w.BenignSize.X/2
	input = ai.Step(&w)
	assert.True(t, input.LeftReleased)
	assert.False(t, input.RightPressed)
	w.Step(input)
	assert.Equal(t, Hold, w.Bucket.Direction)
}

func TestAI_AvoidsHazard(t *testing.T) {
	w := NewWorld(0, DefaultParams())
	w.Generator.Active = FallingObject{VariantIdx: 1, Hazard: true,
		Size: w.HazardSize, Pos: Pt{w.Bucket.Pos.X, 100}}
	var ai AI

	// The bucket starts a little right of the middle of the screen, so it
	// runs left.
	input := ai.Step(&w)
	assert.True(t, input.LeftPressed)

	// Not over the bucket anymore, nothing to avoid.
	w.Generator.Active.Pos.X = 0
	input = ai.Step(&w)
	assert.True(t, input.LeftReleased)

	// Near the left edge there is more room on the right.
	w.Bucket.Pos.X = 10
	w.Generator.Active.Pos.X = 20
	input = ai.Step(&w)
	assert.True(t, input.RightPressed)
}

func TestAI_PlaysARound(t *testing.T) {
	w := NewWorld(1, DefaultParams())
	var ai AI
	clock := NewFrameClock(TPS)
	for range 20000 {
		input := ai.Step(&w)
		input.DeltaMs = clock.Tick()
		w.Step(input)
		require.GreaterOrEqual(t, w.Lives, int64(0))
		if w.State == Terminated {
			break
		}
	}
	assert.Greater(t, w.Score, int64(0))
}
