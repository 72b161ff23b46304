package dispatch

import (
	"math"

	"github.com/dshills/gesturekit/internal/gesture"
	"github.com/dshills/gesturekit/internal/scroll"
)

// An event timestamp further than this from the first animation tick is
// too stale to anchor the fling; the curve re-anchors to the tick.
const maxSecondsFromFlingTimestampToFirstAnimate = 2.0 / 60.0

func (d *Dispatcher) handleFlingStart(e gesture.FlingStart) Disposition {
	state := scroll.StateForGesture(e)

	var status scroll.Status
	switch e.Device {
	case gesture.DeviceTouchpad:
		if e.TargetViewport {
			status = d.target.RootScrollBegin(state, scroll.InputTypeNonBubbling)
		} else {
			status = d.target.ScrollBegin(state, scroll.InputTypeNonBubbling)
		}
	case gesture.DeviceTouchscreen:
		if !d.scrollActive {
			status = scroll.Status{
				Thread:            scroll.ThreadOnMain,
				MainThreadReasons: scroll.ReasonContinuingMainThreadScroll,
			}
		} else {
			status = d.target.FlingScrollBegin()
		}
	default:
		panic("dispatch: fling start from an uninitialized device")
	}

	switch status.Thread {
	case scroll.ThreadOnTarget:
		if e.Device == gesture.DeviceTouchpad {
			// Wheel flings re-begin the scroll per tick; close the
			// probe sequence immediately.
			end := state
			end.IsEnding = true
			d.target.ScrollEnd(end)
		}

		d.flingVelocity = e.Velocity
		d.flingCurve = d.client.CreateFlingCurve(e.Device, e.Velocity, gesture.Vec{})
		d.disallowHorizontalFling = e.Velocity.X == 0
		d.disallowVerticalFling = e.Velocity.Y == 0

		// The timestamp only kickstarts the animation if sufficiently
		// close to the first Animate tick.
		d.flingAnimationStarted = false
		d.flingParams = FlingParameters{
			StartTime:   e.Time,
			Delta:       e.Velocity,
			Point:       e.Pos,
			GlobalPoint: e.GlobalPos,
			Modifiers:   e.Modifiers,
			Device:      e.Device,
		}
		d.logger.Debug("fling started vx=%v vy=%v", e.Velocity.X, e.Velocity.Y)
		d.target.SetNeedsAnimateInput()
		return Handled

	case scroll.ThreadIgnored:
		d.scrollActive = false
		if e.Device == gesture.DeviceTouchpad {
			// Still hand the curve to the main thread in case a
			// handler registers before the fling is over.
			return DidNotHandle
		}
		return Dropped

	default:
		d.scrollActive = false
		d.flingMayBeActiveOnMain = true
		d.client.DidStartFlinging()
		return DidNotHandle
	}
}

func (d *Dispatcher) handleFlingCancel(gesture.FlingCancel) Disposition {
	if d.cancelFling() {
		return Handled
	}
	if !d.flingMayBeActiveOnMain {
		return Dropped
	}
	return DidNotHandle
}

// cancelFling discards all fling session state. It reports whether a
// fling was actually active; cancelling an inactive fling is a no-op.
func (d *Dispatcher) cancelFling() bool {
	if d.cancelFlingWithoutNotify() {
		d.client.DidStopFlinging()
		return true
	}
	return false
}

// cancelFlingWithoutNotify is cancelFling for handoffs where the fling
// keeps going elsewhere and the client must not observe a stop.
func (d *Dispatcher) cancelFlingWithoutNotify() bool {
	had := d.flingCurve != nil
	if had && d.flingParams.Device == gesture.DeviceTouchscreen {
		d.target.ScrollEnd(scroll.State{IsEnding: true})
	}

	d.flingCurve = nil
	d.flingAnimationStarted = false
	d.scrollActive = false
	d.flingVelocity = gesture.Vec{}
	d.flingParams = FlingParameters{}

	if d.deferredFlingCancelTime != 0 {
		d.deferredFlingCancelTime = 0

		last := d.lastBoostEvent
		d.lastBoostEvent = nil
		if last != nil {
			if k := last.Kind(); k == gesture.KindScrollBegin || k == gesture.KindScrollUpdate {
				// Boosting swallowed the original; replay a begin so
				// the target does not lose the scroll sequence.
				d.HandleEvent(synthesizeScrollBegin(last))
			}
		}
	}

	return had
}

// synthesizeScrollBegin builds a hint-less scroll begin from a gesture
// that boosting suppressed.
func synthesizeScrollBegin(ev gesture.Event) gesture.ScrollBegin {
	base := gesture.Base{Time: ev.When()}
	if p, ok := ev.(gesture.Pointer); ok {
		base = p.Info()
	}
	return gesture.ScrollBegin{Base: base}
}

// Animate advances the active fling by one tick. It must be invoked
// serially with HandleEvent by the host scheduler.
func (d *Dispatcher) Animate(now float64) {
	if d.flingCurve == nil {
		return
	}
	d.lastAnimateTime = now

	if d.deferredFlingCancelTime != 0 && now > d.deferredFlingCancelTime {
		d.cancelFling()
		return
	}

	d.client.DidAnimateForInput()

	if !d.flingAnimationStarted {
		d.flingAnimationStarted = true
		// Guard against invalid, future or stale start times; fling
		// event and animation timestamps need not be compatible.
		if d.flingParams.StartTime == 0 ||
			now <= d.flingParams.StartTime ||
			now >= d.flingParams.StartTime+maxSecondsFromFlingTimestampToFirstAnimate {
			d.flingParams.StartTime = now
			d.target.SetNeedsAnimateInput()
			return
		}
	}

	active := d.flingCurve.Apply(now-d.flingParams.StartTime, d)

	if d.disallowHorizontalFling && d.disallowVerticalFling {
		active = false
	}

	if active {
		d.target.SetNeedsAnimateInput()
	} else {
		d.logger.Debug("fling over")
		d.cancelFling()
	}
}

// ScrollBy receives one fling curve increment, masking saturated axes
// and routing by source device. It implements Scroller.
func (d *Dispatcher) ScrollBy(increment, velocity gesture.Vec) bool {
	var clippedInc, clippedVel gesture.Vec
	if !d.disallowHorizontalFling {
		clippedInc.X = increment.X
		clippedVel.X = velocity.X
	}
	if !d.disallowVerticalFling {
		clippedInc.Y = increment.Y
		clippedVel.Y = velocity.Y
	}

	d.flingVelocity = clippedVel

	// A zero increment with residual velocity keeps the fling alive.
	if clippedInc.IsZero() {
		return !clippedVel.IsZero()
	}

	didScroll := false
	applied := clippedInc
	switch d.flingParams.Device {
	case gesture.DeviceTouchpad:
		didScroll = d.touchpadFlingScroll(clippedInc)
	case gesture.DeviceTouchscreen:
		applied = clippedInc.Negate()
		result := d.target.ScrollBy(scroll.State{
			Delta:             applied,
			Velocity:          clippedVel,
			IsInInertialPhase: true,
		})
		d.handleOverscroll(d.flingParams.Point, result)
		didScroll = result.DidScroll
	default:
		return false
	}

	if didScroll {
		d.flingParams.CumulativeScroll = d.flingParams.CumulativeScroll.Add(applied)
	}

	// A trivial time delta between ticks can yield an increment too
	// small to scroll; that must not terminate the fling.
	if math.Abs(clippedInc.X) < scrollEpsilon && math.Abs(clippedInc.Y) < scrollEpsilon {
		return true
	}
	return didScroll
}

// touchpadFlingScroll forwards one touchpad fling increment as a
// synthetic precise wheel event, handing the fling to the main thread
// if the target stops handling its wheels.
func (d *Dispatcher) touchpadFlingScroll(increment gesture.Vec) bool {
	var disposition Disposition
	props := d.target.GetEventListenerProperties(scroll.ListenerClassWheel)
	switch props {
	case scroll.ListenerBlocking, scroll.ListenerBlockingAndPassive:
		disposition = DidNotHandle
	default:
		wheel := gesture.Wheel{
			Base: gesture.Base{
				Pos:       d.flingParams.Point,
				GlobalPos: d.flingParams.GlobalPoint,
				Time:      d.now(),
				Device:    gesture.DeviceTouchpad,
				Modifiers: d.flingParams.Modifiers,
			},
			Delta:         increment,
			PreciseDeltas: true,
		}
		disposition = d.scrollByWheel(wheel, props)
		if disposition == HandledNonBlocking {
			d.client.DispatchNonBlockingEventToMainThread(wheel)
		}
	}

	switch disposition {
	case Handled, HandledNonBlocking:
		return true
	case DidNotHandle:
		// The target stopped handling wheels mid-fling (e.g. the fling
		// moved "under" a subarea this thread cannot scroll). Transfer
		// the curve and the remaining animation to the main thread.
		d.logger.Debug("fling transferred to main thread")
		d.client.TransferActiveWheelFlingAnimation(d.flingParams)
		d.flingMayBeActiveOnMain = true
		d.client.DidStartFlinging()
		d.cancelFlingWithoutNotify()
	}
	return false
}

// MainThreadHasStoppedFlinging clears the suspicion that a transferred
// or main-routed fling is still running.
func (d *Dispatcher) MainThreadHasStoppedFlinging() {
	d.flingMayBeActiveOnMain = false
	d.client.DidStopFlinging()
}
