package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGenerator_WeightedSpawn(t *testing.T) {
	g := NewGenerator(DefaultParams(), NewRand(0))
	n := 100000
	nBenign := 0
	for range n {
		if !g.Spawn().Hazard {
			nBenign++
		}
	}
	ratio := float64(nBenign) / float64(n)
	assert.InDelta(t, 0.75, ratio, 0.01)
	assert.Equal(t, int64(n), g.SpawnCount())
}

func TestGenerator_WeightsDecideVariant(t *testing.T) {
	p := DefaultParams()
	p.BenignWeight = 0
	p.HazardWeight = 5
	g := NewGenerator(p, NewRand(3))
	for range 1000 {
		o := g.Spawn()
		require.True(t, o.Hazard)
		require.Equal(t, int64(1), o.VariantIdx)
		require.Equal(t, p.HazardSize, o.Size)
	}

	p.BenignWeight = 0
	p.HazardWeight = 0
	g = NewGenerator(p, NewRand(3))
	assert.Panics(t, func() { g.Spawn() })
}

func TestGenerator_SpawnPositionIsAboveScreen(t *testing.T) {
	p := DefaultParams()
	g := NewGenerator(p, NewRand(11))
	for range 10000 {
		o := g.Spawn()
		require.GreaterOrEqual(t, o.Pos.X, p.SpawnMinX)
		require.Less(t, o.Pos.X, p.SpawnMaxX)
		require.GreaterOrEqual(t, o.Pos.Y, p.SpawnMinY)
		require.Less(t, o.Pos.Y, p.SpawnMaxY)
		require.Equal(t, o, g.Active)
	}
}

func TestGenerator_AdvanceAndVisible(t *testing.T) {
	g := NewGenerator(DefaultParams(), NewRand(0))
	g.Spawn()
	g.Active.Pos = Pt{100, -27}

	g.Advance(7)
	assert.Equal(t, Pt{100, -20}, g.Active.Pos)
	_, ok := g.Visible()
	assert.False(t, ok)

	g.Advance(1)
	o, ok := g.Visible()
	assert.True(t, ok)
	assert.Equal(t, g.Active, o)
}

func TestGenerator_SameSeedSameObjects(t *testing.T) {
	g1 := NewGenerator(DefaultParams(), NewRand(42))
	g2 := NewGenerator(DefaultParams(), NewRand(42))
	for range 100 {
		assert.Equal(t, g1.Spawn(), g2.Spawn())
	}
}
