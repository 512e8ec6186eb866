package eyes

import "time"

// Rand is the randomness the scheduler draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// cycle is a repeating timer: fire, then wait interval plus a random
// share of variation.
type cycle struct {
	enabled   bool
	interval  time.Duration
	variation time.Duration
	next      time.Time
}

func (c *cycle) due(now time.Time) bool {
	return c.enabled && !now.Before(c.next)
}

func (c *cycle) schedule(now time.Time, rng Rand) {
	c.next = now.Add(c.interval + jitter(rng, c.variation))
}

// jitter returns a whole number of milliseconds in [0, variation].
func jitter(rng Rand, variation time.Duration) time.Duration {
	if variation <= 0 {
		return 0
	}
	steps := int(variation / time.Millisecond)
	return time.Duration(rng.Intn(steps+1)) * time.Millisecond
}

type shotEdge int

const (
	shotIdle shotEdge = iota
	shotStarted
	shotEnded
)

// oneShot is a shake that switches itself off after duration. pending marks
// that the next step starts the effect rather than checking for its end.
type oneShot struct {
	active   bool
	pending  bool
	start    time.Time
	duration time.Duration
}

func newOneShot(d time.Duration) oneShot {
	return oneShot{pending: true, duration: d}
}

func (o *oneShot) trigger() {
	o.active = true
}

func (o *oneShot) step(now time.Time) shotEdge {
	if !o.active {
		return shotIdle
	}
	if o.pending {
		o.start = now
		o.pending = false
		return shotStarted
	}
	if !now.Before(o.start.Add(o.duration)) {
		o.pending = true
		o.active = false
		return shotEnded
	}
	return shotIdle
}

// flicker displaces both eyes by ±amplitude, flipping sign every frame.
type flicker struct {
	enabled   bool
	alternate bool
	amplitude int
}

func (f *flicker) offset() int {
	if !f.enabled {
		return 0
	}
	d := -f.amplitude
	if f.alternate {
		d = f.amplitude
	}
	f.alternate = !f.alternate
	return d
}

// runMacros fires whatever timers are due. Laugh is handled before confused
// so a confused shake wins any clash on the flicker state.
func (e *Engine) runMacros(now time.Time) {
	if e.blinker.due(now) {
		e.Blink()
		e.blinker.schedule(now, e.rand)
		e.log.Debug("auto blink", "next", e.blinker.next.Sub(now))
	}

	switch e.laugh.step(now) {
	case shotStarted:
		e.SetVFlicker(true, laughAmplitude)
		e.log.Debug("laugh started", "duration", e.laugh.duration)
	case shotEnded:
		e.SetVFlicker(false, 0)
		e.log.Debug("laugh ended")
	}

	switch e.confused.step(now) {
	case shotStarted:
		e.SetHFlicker(true, confusedAmplitude)
		e.log.Debug("confused started", "duration", e.confused.duration)
	case shotEnded:
		e.SetHFlicker(false, 0)
		e.log.Debug("confused ended")
	}

	if e.idle.due(now) {
		l := &e.eyes[Left]
		l.X.Target = e.rand.Intn(max(e.ScreenConstraintX(), 0) + 1)
		l.Y.Target = e.rand.Intn(max(e.ScreenConstraintY(), 0) + 1)
		e.idle.schedule(now, e.rand)
		e.log.Debug("idle gaze", "x", l.X.Target, "y", l.Y.Target)
	}
}

func (e *Engine) applyFlicker() {
	if dx := e.hFlicker.offset(); dx != 0 {
		e.eyes[Left].X.Current += dx
		e.eyes[Right].X.Current += dx
	}
	if dy := e.vFlicker.offset(); dy != 0 {
		e.eyes[Left].Y.Current += dy
		e.eyes[Right].Y.Current += dy
	}
}
