package core

import "time"

// DefaultDelay is the pause between generations when none is configured.
const DefaultDelay = 200 * time.Millisecond

// Pacer lets a frame-driven host advance the simulation once per fixed delay,
// independent of how often frames are drawn.
type Pacer struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer that fires once per delay. The first call to
// ShouldStep fires immediately.
func NewPacer(delay time.Duration) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetDelay(delay)
	p.accumulator = p.delay
	return p
}

// SetDelay changes the inter-generation delay. It is safe to call from the
// main loop.
func (p *Pacer) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	p.delay = delay
}

// Delay returns the configured inter-generation delay.
func (p *Pacer) Delay() time.Duration { return p.delay }

// ShouldStep reports whether the simulation should advance by one generation.
// Elapsed time beyond one delay is not banked, so a slow frame never causes a
// burst of catch-up generations.
func (p *Pacer) ShouldStep() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	p.accumulator += delta
	if p.accumulator >= p.delay {
		p.accumulator -= p.delay
		if p.accumulator > p.delay {
			p.accumulator = 0
		}
		return true
	}
	return false
}
