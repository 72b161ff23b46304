package scroll

import (
	"fmt"

	"github.com/dshills/gesturekit/internal/gesture"
)

// State is the normalized scroll intent derived from one input event.
type State struct {
	// Position is the event position in surface coordinates.
	Position gesture.Vec

	// Delta is the scroll delta to apply, in content coordinates
	// (platform deltas are negated: dragging content up scrolls down).
	Delta gesture.Vec

	// Velocity is the instantaneous scroll velocity, if known.
	Velocity gesture.Vec

	// IsBeginning marks the first state of a scroll sequence.
	IsBeginning bool

	// IsEnding marks the last state of a scroll sequence.
	IsEnding bool

	// IsInInertialPhase marks momentum (fling) scrolling.
	IsInInertialPhase bool
}

// StateForGesture builds the State for a scroll-lifecycle gesture
// event. It is a pure function with no retained state.
//
// Only scroll begin/update/end, fling start and fling cancel events
// have a scroll state; any other kind is a caller contract violation
// and panics.
func StateForGesture(ev gesture.Event) State {
	switch e := ev.(type) {
	case gesture.ScrollBegin:
		return State{
			Position:    e.Pos,
			IsBeginning: true,
			// An inertial-phase begin indicates a fling handoff from
			// the platform (macOS momentum phase).
			IsInInertialPhase: e.Inertial,
		}
	case gesture.FlingStart:
		return State{
			Velocity:          e.Velocity,
			IsInInertialPhase: true,
		}
	case gesture.ScrollUpdate:
		return State{
			Delta:             e.Delta.Negate(),
			Velocity:          e.Velocity,
			IsInInertialPhase: e.Inertial,
		}
	case gesture.ScrollEnd:
		return State{IsEnding: true}
	case gesture.FlingCancel:
		return State{IsEnding: true}
	default:
		panic(fmt.Sprintf("scroll: no state for %s event", ev.Kind()))
	}
}
