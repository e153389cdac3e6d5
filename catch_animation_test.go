package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCatchAnimation_IdleDoesNothing(t *testing.T) {
	a := NewCatchAnimation(3, 30)
	assert.False(t, a.Animate(1000))
	assert.Equal(t, int64(0), a.Index)
	assert.Equal(t, int64(0), a.ElapsedMs)
}

func TestCatchAnimation_RunsOnceThenResets(t *testing.T) {
	a := NewCatchAnimation(3, 30)
	a.Start(Pt{10, 20})
	assert.True(t, a.Active)
	assert.Equal(t, Pt{10, 20}, a.Pos)

	assert.True(t, a.Animate(16))
	assert.Equal(t, int64(0), a.Index)
	assert.True(t, a.Animate(16))
	assert.Equal(t, int64(1), a.Index)
	assert.True(t, a.Animate(10))
	assert.Equal(t, int64(1), a.Index)
	assert.True(t, a.Animate(20))
	assert.Equal(t, int64(2), a.Index)

	// The last frame was shown, so the next call ends the animation.
	assert.False(t, a.Animate(16))
	assert.False(t, a.Active)
	assert.Equal(t, int64(0), a.Index)
	assert.Equal(t, int64(0), a.ElapsedMs)

	// And it stays idle.
	assert.False(t, a.Animate(16))
	assert.Equal(t, int64(0), a.Index)
}

func TestCatchAnimation_OneFramePerThreshold(t *testing.T) {
	a := NewCatchAnimation(6, 30)
	a.Start(Pt{})
	// A huge delta still only moves one frame.
	assert.True(t, a.Animate(10000))
	assert.Equal(t, int64(1), a.Index)

	maxIndex := int64(0)
	for a.Animate(10000) {
		maxIndex = max(maxIndex, a.Index)
		assert.Less(t, a.Index, a.NFrames)
	}
	assert.Equal(t, int64(5), maxIndex)
}

func TestCatchAnimation_StartRestarts(t *testing.T) {
	a := NewCatchAnimation(6, 30)
	a.Start(Pt{1, 1})
	a.Animate(30)
	a.Animate(30)
	assert.Equal(t, int64(2), a.Index)

	a.Start(Pt{5, 5})
	assert.Equal(t, int64(0), a.Index)
	assert.Equal(t, Pt{5, 5}, a.Pos)
	assert.True(t, a.Active)
}
