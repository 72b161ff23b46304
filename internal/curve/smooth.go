package curve

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/dshills/gesturekit/internal/dispatch"
	"github.com/dshills/gesturekit/internal/gesture"
)

// SmoothScroll eases a fixed scroll delta in over a duration. Used for
// programmatic animated scrolls rather than momentum.
type SmoothScroll struct {
	x, y     *gween.Tween
	duration float64
	last     gesture.Vec
	lastTime float64
	done     bool
}

var _ dispatch.Curve = (*SmoothScroll)(nil)

// NewSmoothScroll builds a curve covering delta over duration seconds.
func NewSmoothScroll(delta gesture.Vec, duration float64) *SmoothScroll {
	if duration <= 0 {
		duration = 0.25
	}
	c := &SmoothScroll{duration: duration}
	c.x = gween.New(0, float32(delta.X), float32(duration), ease.OutQuad)
	c.y = gween.New(0, float32(delta.Y), float32(duration), ease.OutQuad)
	return c
}

// Apply advances the curve to elapsed seconds and pushes the increment
// to s. It reports whether the curve is still active.
func (c *SmoothScroll) Apply(elapsed float64, s dispatch.Scroller) bool {
	if c.done {
		return false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	finished := elapsed >= c.duration
	if finished {
		elapsed = c.duration
	}

	sx, _ := c.x.Set(float32(elapsed))
	sy, _ := c.y.Set(float32(elapsed))
	sample := gesture.Vec{X: float64(sx), Y: float64(sy)}
	inc := sample.Add(c.last.Negate())

	if elapsed > c.lastTime {
		var vel gesture.Vec
		if dt := elapsed - c.lastTime; dt > 0 {
			vel = inc.Scale(1 / dt)
		}
		s.ScrollBy(inc, vel)
		c.last = sample
		c.lastTime = elapsed
	}

	if finished {
		c.done = true
		return false
	}
	return true
}
