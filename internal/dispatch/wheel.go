package dispatch

import (
	"github.com/dshills/gesturekit/internal/gesture"
	"github.com/dshills/gesturekit/internal/scroll"
)

// handleWheel classifies a wheel tick by the target's wheel listeners.
// Scroll application for real wheel events happens wherever the event
// is routed; only synthetic fling wheels scroll here (scrollByWheel).
func (d *Dispatcher) handleWheel(e gesture.Wheel) Disposition {
	// A discrete wheel notch must not leave runaway momentum behind.
	// Only cancel when a fling is active so an in-progress touch scroll
	// is not disrupted.
	if !e.PreciseDeltas && d.flingCurve != nil {
		d.cancelFling()
	}

	switch d.target.GetEventListenerProperties(scroll.ListenerClassWheel) {
	case scroll.ListenerPassive:
		return HandledNonBlocking
	case scroll.ListenerBlocking, scroll.ListenerBlockingAndPassive:
		return DidNotHandle
	default:
		return Dropped
	}
}

// scrollByWheel applies a wheel event directly to the target as a
// transactional begin/by/end. Used for the synthetic wheel events a
// touchpad fling generates per tick.
func (d *Dispatcher) scrollByWheel(e gesture.Wheel, props scroll.ListenerProperties) Disposition {
	if e.ByPage {
		// Page-based scrolling is not implemented on this thread.
		return DidNotHandle
	}

	var delta gesture.Vec
	if e.Rails != gesture.RailsVertical {
		delta.X = -e.Delta.X
	}
	if e.Rails != gesture.RailsHorizontal {
		delta.Y = -e.Delta.Y
	}

	begin := scroll.State{Position: e.Pos, IsBeginning: true}
	status := d.target.ScrollBegin(begin, scroll.InputTypeWheel)
	switch status.Thread {
	case scroll.ThreadOnTarget:
		result := d.target.ScrollBy(scroll.State{Position: e.Pos, Delta: delta})
		d.handleOverscroll(e.Pos, result)
		d.target.ScrollEnd(scroll.State{IsEnding: true})

		if result.DidScroll {
			if props == scroll.ListenerPassive {
				return HandledNonBlocking
			}
			return Handled
		}
		return Dropped
	case scroll.ThreadIgnored:
		// Scrollability can be momentarily out of sync; route to the
		// main thread instead of dropping.
		return DidNotHandle
	default:
		return DidNotHandle
	}
}
