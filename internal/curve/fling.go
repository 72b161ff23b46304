package curve

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/dshills/gesturekit/internal/dispatch"
	"github.com/dshills/gesturekit/internal/gesture"
)

// deceleration scales fling speed into a pre-clamp duration.
const deceleration = 1800.0

// Duration bounds in seconds. Touchscreen flings run slightly longer
// than touchpad ones.
const (
	touchscreenMinDuration = 0.35
	touchscreenMaxDuration = 1.5
	touchpadMinDuration    = 0.3
	touchpadMaxDuration    = 1.2
)

// Fling is a cubic ease-out momentum curve. Displacement follows
// p(t) = D*(1-(1-t/T)^3), so the initial slope is 3D/T; D is chosen per
// axis as v*T/3 to make the curve launch at exactly the fling velocity
// and decay to rest at T.
type Fling struct {
	x, y     *gween.Tween
	total    gesture.Vec
	duration float64

	last     gesture.Vec
	lastTime float64
	done     bool
}

var _ dispatch.Curve = (*Fling)(nil)

// NewFling builds a momentum curve for the given fling velocity.
// cumulative is distance this fling already covered elsewhere; the
// curve skips past it instead of replaying it.
func NewFling(device gesture.Device, velocity, cumulative gesture.Vec) *Fling {
	minD, maxD := touchpadMinDuration, touchpadMaxDuration
	if device == gesture.DeviceTouchscreen {
		minD, maxD = touchscreenMinDuration, touchscreenMaxDuration
	}

	speed := math.Sqrt(velocity.LengthSquared())
	duration := speed / deceleration
	if duration < minD {
		duration = minD
	}
	if duration > maxD {
		duration = maxD
	}

	total := velocity.Scale(duration / 3)
	f := &Fling{
		total:    total,
		duration: duration,
		last:     cumulative,
	}
	f.x = gween.New(0, float32(total.X), float32(duration), ease.OutCubic)
	f.y = gween.New(0, float32(total.Y), float32(duration), ease.OutCubic)
	return f
}

// Apply advances the curve to elapsed seconds since fling start and
// pushes the resulting increment to s. It reports whether the curve is
// still active.
func (f *Fling) Apply(elapsed float64, s dispatch.Scroller) bool {
	if f.done {
		return false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	finished := elapsed >= f.duration
	if finished {
		elapsed = f.duration
	}

	sx, _ := f.x.Set(float32(elapsed))
	sy, _ := f.y.Set(float32(elapsed))

	var inc gesture.Vec
	inc.X, f.last.X = axisIncrement(f.last.X, float64(sx), f.total.X)
	inc.Y, f.last.Y = axisIncrement(f.last.Y, float64(sy), f.total.Y)

	if elapsed > f.lastTime {
		s.ScrollBy(inc, f.velocityAt(elapsed))
		f.lastTime = elapsed
	}

	if finished {
		f.done = true
		return false
	}
	return true
}

// velocityAt is the analytic derivative of the displacement curve.
func (f *Fling) velocityAt(elapsed float64) gesture.Vec {
	r := 1 - elapsed/f.duration
	scale := 3 / f.duration * r * r
	return f.total.Scale(scale)
}

// axisIncrement yields the displacement delta for one axis. While the
// sample is still behind the already-covered distance (a resumed
// fling), the increment is held at zero and last is not advanced.
func axisIncrement(last, sample, total float64) (inc, newLast float64) {
	inc = sample - last
	if inc != 0 && total != 0 && math.Signbit(inc) != math.Signbit(total) {
		return 0, last
	}
	return inc, sample
}
