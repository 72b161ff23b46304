package dispatch

import (
	"github.com/dshills/gesturekit/internal/gesture"
	"github.com/dshills/gesturekit/internal/scroll"
)

func (d *Dispatcher) handleTouchStart(e gesture.TouchStart) Disposition {
	result := Dropped
	for _, pt := range e.Points {
		if pt.State != gesture.TouchStatePressed {
			continue
		}
		if d.target.DoTouchEventsBlockScrollAt(pt.Pos) {
			result = DidNotHandle
			break
		}
	}

	if result == Dropped {
		switch d.target.GetEventListenerProperties(scroll.ListenerClassTouchStartOrMove) {
		case scroll.ListenerPassive, scroll.ListenerBlockingAndPassive:
			result = HandledNonBlocking
		case scroll.ListenerBlocking:
			// The blocking-region scan above already missed, so no
			// blocking handler covers these points.
			result = Dropped
		default:
			result = Dropped
		}
	}

	// Fold into the sequence verdict: once any point needs main-thread
	// delivery, every later touch move in the sequence does too.
	if !d.touchResultSet {
		d.touchStartResult = result
	} else {
		d.touchStartResult = mergeTouchResult(d.touchStartResult, result)
	}
	d.touchResultSet = true

	// A drop verdict for the start must not discard the whole sequence
	// when an end/cancel listener exists. Checked after the sequence
	// verdict is recorded so touch moves are not forwarded needlessly.
	if result == Dropped &&
		d.target.GetEventListenerProperties(scroll.ListenerClassTouchEndOrCancel) != scroll.ListenerNone {
		result = HandledNonBlocking
	}

	return result
}

func (d *Dispatcher) handleTouchMove(gesture.TouchMove) Disposition {
	if d.touchResultSet {
		return d.touchStartResult
	}
	return DidNotHandle
}

func (d *Dispatcher) handleTouchEnd(e gesture.TouchEnd) Disposition {
	if len(e.Points) == 1 {
		d.touchStartResult = Handled
		d.touchResultSet = false
	}
	return DidNotHandle
}
