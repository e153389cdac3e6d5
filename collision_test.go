package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsCaught_VerticalBand(t *testing.T) {
	// Object with its bottom edge at y=400 and a height of 50. The top of the
	// receptacle must be between 350 and 375.
	o := FallingObject{Pos: Pt{120, 350}, Size: Pt{40, 50}}
	r := Receptacle{Pos: Pt{100, 0}, Size: Pt{80, 70}}

	for top := int64(340); top <= 385; top++ {
		r.Pos.Y = top
		expected := top >= 350 && top <= 375
		assert.Equal(t, expected, IsCaught(o, r), "receptacle top %d", top)
	}

	r.Pos.Y = 376
	assert.False(t, IsCaught(o, r))
	r.Pos.Y = 349
	assert.False(t, IsCaught(o, r))
	r.Pos.Y = 350
	assert.True(t, IsCaught(o, r))
	r.Pos.Y = 375
	assert.True(t, IsCaught(o, r))
}

func TestIsCaught_HorizontalContainment(t *testing.T) {
	r := Receptacle{Pos: Pt{100, 360}, Size: Pt{80, 70}}
	o := FallingObject{Size: Pt{40, 50}}

	// Edges touching count as inside.
	o.Pos = Pt{100, 350}
	assert.True(t, IsCaught(o, r))
	o.Pos = Pt{140, 350}
	assert.True(t, IsCaught(o, r))

	// Sticking out on either side does not.
	o.Pos = Pt{99, 350}
	assert.False(t, IsCaught(o, r))
	o.Pos = Pt{141, 350}
	assert.False(t, IsCaught(o, r))

	// An object wider than the receptacle is never caught.
	o = FallingObject{Pos: Pt{90, 350}, Size: Pt{100, 50}}
	assert.False(t, IsCaught(o, r))
}
