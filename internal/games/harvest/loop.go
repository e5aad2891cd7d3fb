package harvest

import (
	"time"

	"github.com/vovakirdan/harvest-rush/internal/core"
)

// Clock turns frame driver timestamps into clamped deltas.
type Clock struct {
	maxStep float64
	last    time.Time
	primed  bool
}

// NewClock creates a clock that never reports more than maxStep seconds.
func NewClock(maxStep float64) *Clock {
	return &Clock{maxStep: maxStep}
}

// Delta returns the seconds since the previous call, clamped to [0, maxStep].
// The first call after a reset returns 0.
func (c *Clock) Delta(now time.Time) float64 {
	if !c.primed {
		c.last = now
		c.primed = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return core.ClampF(dt, 0, c.maxStep)
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.primed = false
}

// Frame runs one driver callback: the clock delta is computed, a pause edge
// in the input toggles pause, then one update pass runs.
func (c *Controller) Frame(now time.Time, in core.InputFrame) {
	if c.disposed {
		return
	}
	dt := c.clock.Delta(now)
	if in.Has(core.ActionPause) {
		c.TogglePause()
	}
	c.Step(dt, in)
}

// Step runs one update pass of dt seconds. It does nothing unless playing.
//
// Order: countdown, farmer movement, spawn interval smoothing, spawning,
// collection, level completion. A countdown reaching zero ends the run and
// skips the rest of the pass.
func (c *Controller) Step(dt float64, in core.InputFrame) {
	if c.disposed || c.state != StatePlaying {
		return
	}

	c.timeLeft = core.ClampF(c.timeLeft-dt, 0, c.cfg.Timing.TimeCap)
	if c.timeLeft <= 0 {
		c.endRun()
		return
	}
	c.runTime += dt

	c.farmer.HandleInput(in)
	c.farmer.Update(dt, c.cfg.Field, c.scarecrows)

	c.elapsed += dt
	c.spawnInterval = c.ramp.Next(c.spawnInterval, c.spawnBase, c.elapsed)

	c.crops = append(c.crops, c.spawner.Advance(dt, c.spawnInterval)...)

	c.collect()

	if c.score >= c.goal {
		c.nextLevel()
		return
	}

	c.sync()
}

// collect scores every crop under the farmer and prunes the dead ones.
func (c *Controller) collect() {
	live := c.crops[:0]
	for _, crop := range c.crops {
		if !crop.Dead && crop.Box.Overlaps(c.farmer.Box) {
			crop.Dead = true
			c.score += crop.Points
		}
		if !crop.Dead {
			live = append(live, crop)
		}
	}
	clear(c.crops[len(live):])
	c.crops = live
}

// Render hands every live entity to the surface: crops, then scarecrows,
// then the farmer on top.
func (c *Controller) Render(s Surface) {
	if s == nil {
		return
	}
	for _, crop := range c.crops {
		if crop.Dead {
			continue
		}
		s.Draw(Drawable{Kind: crop.Kind, Box: crop.Box})
	}
	for _, sc := range c.scarecrows {
		s.Draw(Drawable{Kind: KindScarecrow, Box: sc.Box})
	}
	s.Draw(c.farmer.Drawable())
}
