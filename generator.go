package main

import "fmt"

// Variant describes a kind of falling object. Variants never change once
// they are configured. The Gui maps Name to an image.
type Variant struct {
	Name   string
	Hazard bool
	Weight int64
	Size   Pt
}

// FallingObject is the one object that is currently falling.
type FallingObject struct {
	VariantIdx int64
	Hazard     bool
	Pos        Pt
	Size       Pt
}

func (o FallingObject) Bounds() Rectangle {
	return RectangleAt(o.Pos, o.Size)
}

// Generator spawns falling objects and moves the active one down.
// There is always exactly one active object once Spawn has been called.
type Generator struct {
	Variants []Variant
	Speed    int64
	// SpawnMinX and SpawnMaxX give the interval [SpawnMinX, SpawnMaxX) for the
	// X coordinate of a new object.
	SpawnMinX int64
	SpawnMaxX int64
	// SpawnMinY and SpawnMaxY give the interval [SpawnMinY, SpawnMaxY) for the
	// Y coordinate of a new object. Both are negative so that objects start
	// above the visible area.
	SpawnMinY int64
	SpawnMaxY int64
	// VisibleY is the Y coordinate an object must exceed before Visible
	// reports it.
	VisibleY int64
	Active   FallingObject
	NSpawned int64
	rand     Rand
}

func NewGenerator(p Params, rand Rand) (g Generator) {
	g.Variants = []Variant{
		{Name: "ball", Hazard: false, Weight: p.BenignWeight, Size: p.BenignSize},
		{Name: "spiky-ball", Hazard: true, Weight: p.HazardWeight, Size: p.HazardSize},
	}
	g.Speed = p.FallSpeed
	g.SpawnMinX = p.SpawnMinX
	g.SpawnMaxX = p.SpawnMaxX
	g.SpawnMinY = p.SpawnMinY
	g.SpawnMaxY = p.SpawnMaxY
	g.VisibleY = p.VisibleY
	g.rand = rand
	return
}

// ChooseVariant picks the index of a variant. A variant with weight W is
// picked with probability W / (sum of all weights).
func (g *Generator) ChooseVariant() int64 {
	total := int64(0)
	for _, v := range g.Variants {
		total += v.Weight
	}
	if total <= 0 {
		panic(fmt.Errorf("variant weights must add up to a positive number, "+
			"got %d", total))
	}

	r := g.rand.RInt(0, total-1)
	for i, v := range g.Variants {
		if r < v.Weight {
			return int64(i)
		}
		r -= v.Weight
	}
	// Unreachable as long as the weights are not negative.
	panic(fmt.Errorf("negative variant weight in %v", g.Variants))
}

// Spawn replaces the active object with a new one, placed at a random
// position above the screen.
func (g *Generator) Spawn() FallingObject {
	idx := g.ChooseVariant()
	v := g.Variants[idx]
	g.Active = FallingObject{
		VariantIdx: idx,
		Hazard:     v.Hazard,
		Pos: Pt{
			g.rand.RInt(g.SpawnMinX, g.SpawnMaxX-1),
			g.rand.RInt(g.SpawnMinY, g.SpawnMaxY-1),
		},
		Size: v.Size,
	}
	g.NSpawned++
	return g.Active
}

// Advance moves the active object down by speed pixels.
func (g *Generator) Advance(speed int64) {
	g.Active.Pos.Y += speed
}

// Visible returns the active object only if it has entered the screen.
func (g *Generator) Visible() (FallingObject, bool) {
	if g.Active.Pos.Y > g.VisibleY {
		return g.Active, true
	}
	return FallingObject{}, false
}

func (g *Generator) SpawnCount() int64 {
	return g.NSpawned
}
