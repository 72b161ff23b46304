package dispatch

import (
	"github.com/dshills/gesturekit/internal/gesture"
)

// Scroller receives per-tick scroll increments from an animating fling
// curve.
type Scroller interface {
	// ScrollBy applies one curve increment with its instantaneous
	// velocity. It reports whether the target consumed any of it.
	ScrollBy(increment, velocity gesture.Vec) bool
}

// Curve converts elapsed fling time into scroll increments.
type Curve interface {
	// Apply advances the curve to elapsed seconds since the fling
	// started, pushing the resulting increment to s. It reports whether
	// the curve is still active.
	Apply(elapsed float64, s Scroller) bool
}

// FlingParameters snapshots the gesture that started the active fling.
// It survives as long as the fling curve does and is handed to the
// client when a wheel fling transfers to the main thread.
type FlingParameters struct {
	// StartTime is the fling gesture timestamp in seconds.
	StartTime float64
	// Delta is the initial fling velocity.
	Delta gesture.Vec
	// Point is the fling anchor in viewport coordinates.
	Point gesture.Vec
	// GlobalPoint is the fling anchor in screen coordinates.
	GlobalPoint gesture.Vec
	// Modifiers carries the keyboard modifiers held at fling start.
	Modifiers gesture.Modifier
	// Device is the source device of the fling.
	Device gesture.Device
	// CumulativeScroll is the total distance scrolled by this fling so
	// far.
	CumulativeScroll gesture.Vec
}

// Client is the host embedding a Dispatcher. All methods are invoked on
// the dispatcher's owning goroutine.
type Client interface {
	// CreateFlingCurve builds the momentum curve for a fling of the
	// given velocity. cumulative is the distance already covered when a
	// fling is resumed or transferred.
	CreateFlingCurve(device gesture.Device, velocity, cumulative gesture.Vec) Curve

	// DidOverscroll reports scroll delta the target could not consume.
	DidOverscroll(accumulated, unused gesture.Vec, flingVelocity gesture.Vec, point gesture.Vec)

	// DidStartFlinging and DidStopFlinging bracket the lifetime of an
	// active fling, on any device and on either thread.
	DidStartFlinging()
	DidStopFlinging()

	// DidAnimateForInput marks the current frame as driven by input.
	DidAnimateForInput()

	// TransferActiveWheelFlingAnimation hands a touchpad fling to the
	// main thread when the target stops handling its wheel events.
	TransferActiveWheelFlingAnimation(params FlingParameters)

	// DispatchNonBlockingEventToMainThread forwards an event the target
	// consumed but the main thread must still observe.
	DispatchNonBlockingEventToMainThread(ev gesture.Event)
}
