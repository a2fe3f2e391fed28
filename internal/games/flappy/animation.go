package flappy

import "time"

// wingCycle steps the wing through every phase on a fixed wall-clock
// interval. It drives the bird while waiting for the first flap.
type wingCycle struct {
	elapsed time.Duration
	phase   Phase
}

func (c *wingCycle) advance(dt, interval time.Duration) {
	c.elapsed += dt
	if c.elapsed >= interval {
		c.elapsed = 0
		c.phase = (c.phase + 1) % phaseCount
	}
}

// flapOverride forces the wing through up, mid and down for a short window
// after a flap, then hands control back to the velocity rule.
type flapOverride struct {
	active  bool
	elapsed time.Duration
}

func (o *flapOverride) start() {
	o.active = true
	o.elapsed = 0
}

func (o *flapOverride) cancel() {
	o.active = false
	o.elapsed = 0
}

func (o *flapOverride) advance(dt, window time.Duration) {
	if !o.active {
		return
	}
	o.elapsed += dt
	if o.elapsed >= window {
		o.cancel()
	}
}

// phase returns the forced phase and whether the override is in effect.
func (o flapOverride) phase(window time.Duration) (Phase, bool) {
	if !o.active || window <= 0 {
		return PhaseMid, false
	}
	step := Phase(int64(o.elapsed) * int64(phaseCount) / int64(window))
	if step >= phaseCount {
		step = phaseCount - 1
	}
	return step, true
}
