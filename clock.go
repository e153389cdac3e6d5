package main

// FrameClock converts frames into elapsed milliseconds. Ebitengine paces
// Update() at a fixed number of ticks per second, so the time between two
// frames is 1000/tps ms. That is rarely a whole number, so the clock hands
// out the remainder over time: 60 ticks always add up to exactly 1000 ms at
// 60 TPS.
type FrameClock struct {
	TPS    int64
	NTicks int64
}

func NewFrameClock(tps int64) FrameClock {
	if tps <= 0 {
		panic("frame clock needs a positive TPS")
	}
	return FrameClock{TPS: tps}
}

// Tick marks the start of a new frame and returns how many milliseconds
// passed since the previous one.
func (c *FrameClock) Tick() int64 {
	before := c.NTicks * 1000 / c.TPS
	c.NTicks++
	after := c.NTicks * 1000 / c.TPS
	return after - before
}
