package dispatch

import (
	"github.com/dshills/gesturekit/internal/gesture"
	"github.com/dshills/gesturekit/internal/scroll"
)

// Flings below this squared speed are too slow to be worth boosting.
const minBoostFlingSpeedSquared = 350 * 350

// Touch scrolls below this squared speed interrupt rather than sustain
// an active fling.
const minBoostTouchScrollSpeedSquared = 150 * 150

// Window after which a deferred fling cancellation takes effect if no
// animation ticks, scrolls or flings of sufficient velocity arrive.
// Android native views default to 40ms; slightly more absorbs small
// delivery delays.
const flingBoostTimeout = 0.05

// ShouldBoostFling reports whether a new fling's velocity should be
// added to the current fling instead of replacing it: both must point
// in the same general direction and both must exceed the minimum boost
// speed.
func ShouldBoostFling(current, next gesture.Vec) bool {
	if current.Dot(next) <= 0 {
		return false
	}
	if current.LengthSquared() < minBoostFlingSpeedSquared {
		return false
	}
	if next.LengthSquared() < minBoostFlingSpeedSquared {
		return false
	}
	return true
}

// ShouldSuppressScrollForBoosting reports whether a scroll update that
// arrived while a fling cancellation is deferred should be swallowed as
// part of the fling rather than start a new scroll sequence.
func ShouldSuppressScrollForBoosting(current, scrollDelta gesture.Vec, timeSinceLastBoost, timeSinceLastAnimate float64) bool {
	if current.Dot(scrollDelta) <= 0 {
		return false
	}
	if timeSinceLastAnimate > flingBoostTimeout {
		return false
	}
	if timeSinceLastBoost < 0.001 {
		return true
	}
	velocity := scrollDelta.Scale(1 / timeSinceLastBoost)
	return velocity.LengthSquared() >= minBoostTouchScrollSpeedSquared
}

// filterForFlingBoosting intercepts gesture events that interact with
// an active fling's boosting window. A true return means the event was
// consumed by the fling (disposition Handled).
func (d *Dispatcher) filterForFlingBoosting(ev gesture.Event) bool {
	if !ev.Kind().IsGesture() {
		return false
	}
	if d.flingCurve == nil {
		return false
	}

	if fc, ok := ev.(gesture.FlingCancel); ok {
		if fc.PreventBoosting {
			return false
		}
		if d.flingVelocity.LengthSquared() < minBoostFlingSpeedSquared {
			return false
		}
		d.deferredFlingCancelTime = fc.Time + flingBoostTimeout
		return true
	}

	// A fling without a deferred cancel is free spinning; nothing to
	// filter.
	if d.deferredFlingCancelTime == 0 {
		return false
	}

	if ev.When() > d.deferredFlingCancelTime {
		d.cancelFling()
		return false
	}

	// Gestures from a different source immediately interrupt the fling.
	if p, ok := ev.(gesture.Pointer); ok && p.Info().Device != d.flingParams.Device {
		d.cancelFling()
		return false
	}

	switch e := ev.(type) {
	case gesture.ScrollBegin:
		inputType := scroll.InputTypeTouchscreen
		if d.flingParams.Device == gesture.DeviceTouchpad {
			inputType = scroll.InputTypeNonBubbling
		}
		if !d.target.IsCurrentlyScrollingLayerAt(e.Pos, inputType) {
			d.cancelFling()
			return false
		}
		d.extendBoostTimeout(e)
		return true

	case gesture.ScrollUpdate:
		var lastBoostTime float64
		if d.lastBoostEvent != nil {
			lastBoostTime = d.lastBoostEvent.When()
		}
		timeSinceBoost := e.Time - lastBoostTime
		timeSinceAnimate := e.Time - d.lastAnimateTime
		if timeSinceAnimate < 0 {
			timeSinceAnimate = 0
		}
		if ShouldSuppressScrollForBoosting(d.flingVelocity, e.Delta, timeSinceBoost, timeSinceAnimate) {
			d.extendBoostTimeout(e)
			return true
		}
		d.cancelFling()
		return false

	case gesture.ScrollEnd:
		// Drop the boost event first so no synthetic ScrollBegin is
		// replayed for a sequence the user just ended.
		d.lastBoostEvent = nil
		d.cancelFling()
		return true

	case gesture.FlingStart:
		boosted := d.flingParams.Modifiers == e.Modifiers &&
			ShouldBoostFling(d.flingVelocity, e.Velocity)
		if boosted {
			d.flingVelocity = d.flingVelocity.Add(e.Velocity)
		} else {
			d.flingVelocity = e.Velocity
		}

		velocity := d.flingVelocity
		d.deferredFlingCancelTime = 0
		d.disallowHorizontalFling = velocity.X == 0
		d.disallowVerticalFling = velocity.Y == 0
		d.lastBoostEvent = nil
		d.flingCurve = d.client.CreateFlingCurve(e.Device, velocity, gesture.Vec{})
		d.flingParams.StartTime = e.Time
		d.flingParams.Delta = velocity
		d.flingParams.Point = e.Pos
		d.flingParams.GlobalPoint = e.GlobalPos

		if boosted {
			d.logger.Debug("fling boosted vx=%v vy=%v", velocity.X, velocity.Y)
		} else {
			d.logger.Debug("fling replaced vx=%v vy=%v", velocity.X, velocity.Y)
		}

		// The client expects balanced calls between a consumed fling
		// start and DidStopFlinging.
		d.client.DidStopFlinging()
		return true

	default:
		// Any other gesture completes the deferred cancellation.
		d.cancelFling()
		return false
	}
}

func (d *Dispatcher) extendBoostTimeout(ev gesture.Event) {
	d.deferredFlingCancelTime = ev.When() + flingBoostTimeout
	d.lastBoostEvent = ev
}
