package scroll

import (
	"time"

	"github.com/dshills/gesturekit/internal/gesture"
)

// Thread reports where a scroll sequence will be handled.
type Thread uint8

const (
	// ThreadUnknown means the target could not classify the scroll.
	ThreadUnknown Thread = iota
	// ThreadOnTarget means the target accepted the scroll and will
	// handle it on the dispatch thread.
	ThreadOnTarget
	// ThreadOnMain means the scroll must be re-delivered on the main
	// application thread.
	ThreadOnMain
	// ThreadIgnored means nothing scrollable was hit.
	ThreadIgnored
)

// String returns a string representation of the thread.
func (t Thread) String() string {
	switch t {
	case ThreadOnTarget:
		return "on-target"
	case ThreadOnMain:
		return "on-main"
	case ThreadIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// InputType classifies the input driving a scroll sequence.
type InputType uint8

const (
	// InputTypeWheel is wheel or touchpad driven scrolling.
	InputTypeWheel InputType = iota
	// InputTypeTouchscreen is direct touch driven scrolling.
	InputTypeTouchscreen
	// InputTypeNonBubbling is a fling-started scroll that must not
	// bubble to enclosing scrollers.
	InputTypeNonBubbling
)

// String returns a string representation of the input type.
func (t InputType) String() string {
	switch t {
	case InputTypeTouchscreen:
		return "touchscreen"
	case InputTypeNonBubbling:
		return "non-bubbling"
	default:
		return "wheel"
	}
}

// InputTypeForDevice maps a gesture source device to the scroll input
// type used when beginning a scroll on the target.
func InputTypeForDevice(d gesture.Device) InputType {
	if d == gesture.DeviceTouchpad {
		return InputTypeWheel
	}
	return InputTypeTouchscreen
}

// MainThreadReason is a bitmask of reasons a scroll was forced to the
// main thread.
type MainThreadReason uint32

const (
	// ReasonNotScrollingOnMain means no main-thread forcing applies.
	ReasonNotScrollingOnMain MainThreadReason = 0
	// ReasonContinuingMainThreadScroll continues a sequence the main
	// thread already owns.
	ReasonContinuingMainThreadScroll MainThreadReason = 1 << iota
	// ReasonPageBasedScrolling marks page-unit scrolling, which the
	// dispatch thread does not implement.
	ReasonPageBasedScrolling
	// ReasonHandlingScrollFromMainThread marks a scroll already being
	// handled on the main thread.
	ReasonHandlingScrollFromMainThread
)

// Status is the target's verdict on beginning a scroll sequence.
type Status struct {
	// Thread reports where the sequence will be handled.
	Thread Thread

	// MainThreadReasons explains a ThreadOnMain verdict.
	MainThreadReasons MainThreadReason
}

// Result reports the outcome of applying a scroll delta.
type Result struct {
	// DidScroll reports whether any scrolling occurred.
	DidScroll bool

	// DidOverscrollRoot reports whether the root scroller saturated.
	DidOverscrollRoot bool

	// UnusedDelta is the portion of the requested delta that could not
	// be applied.
	UnusedDelta gesture.Vec

	// AccumulatedOverscroll is the total overscroll accumulated by the
	// root scroller during the current sequence.
	AccumulatedOverscroll gesture.Vec
}

// ListenerClass selects which event listener registration to query.
type ListenerClass uint8

const (
	// ListenerClassWheel is mouse wheel listeners.
	ListenerClassWheel ListenerClass = iota
	// ListenerClassTouchStartOrMove is touch start/move listeners.
	ListenerClassTouchStartOrMove
	// ListenerClassTouchEndOrCancel is touch end/cancel listeners.
	ListenerClassTouchEndOrCancel
)

// ListenerProperties describes the listeners registered on the target
// for a given class.
type ListenerProperties uint8

const (
	// ListenerNone means no listener is registered.
	ListenerNone ListenerProperties = iota
	// ListenerPassive means only passive listeners are registered.
	ListenerPassive
	// ListenerBlocking means a blocking listener is registered.
	ListenerBlocking
	// ListenerBlockingAndPassive means both kinds are registered.
	ListenerBlockingAndPassive
)

// String returns a string representation of the listener properties.
func (p ListenerProperties) String() string {
	switch p {
	case ListenerPassive:
		return "passive"
	case ListenerBlocking:
		return "blocking"
	case ListenerBlockingAndPassive:
		return "blocking-and-passive"
	default:
		return "none"
	}
}

// Target is the abstract surface that owns scroll offsets and accepts
// scroll/pinch mutations. All methods are called from the single
// goroutine that owns the dispatcher.
type Target interface {
	// ScrollBegin begins a scroll sequence at state's position.
	ScrollBegin(state State, inputType InputType) Status

	// RootScrollBegin begins a scroll sequence against the root
	// viewport regardless of what lies under the position.
	RootScrollBegin(state State, inputType InputType) Status

	// FlingScrollBegin continues the active scroll sequence as a fling.
	FlingScrollBegin() Status

	// ScrollBy applies state's delta to the current scroller.
	ScrollBy(state State) Result

	// ScrollEnd terminates the active scroll sequence.
	ScrollEnd(state State)

	// ScrollAnimatedBegin begins an animated (smooth) scroll sequence.
	ScrollAnimatedBegin(point gesture.Vec) Status

	// ScrollAnimated applies delta as an animated scroll. The delay is
	// the elapsed time between event creation and dispatch, used to
	// shorten the animation accordingly.
	ScrollAnimated(point gesture.Vec, delta gesture.Vec, delay time.Duration) Status

	// PinchGestureBegin begins a pinch-zoom sequence.
	PinchGestureBegin()

	// PinchGestureUpdate applies an incremental scale about anchor.
	PinchGestureUpdate(scale float64, anchor gesture.Vec)

	// PinchGestureEnd terminates the pinch-zoom sequence.
	PinchGestureEnd()

	// GetEventListenerProperties reports listeners registered for the
	// given class.
	GetEventListenerProperties(class ListenerClass) ListenerProperties

	// DoTouchEventsBlockScrollAt reports whether a touch at point hits
	// a region whose handlers may block scrolling.
	DoTouchEventsBlockScrollAt(point gesture.Vec) bool

	// IsCurrentlyScrollingLayerAt reports whether the layer under
	// point is the one owning the active scroll sequence.
	IsCurrentlyScrollingLayerAt(point gesture.Vec, inputType InputType) bool

	// IsCurrentlyScrollingViewport reports whether the active scroll
	// sequence targets the root viewport.
	IsCurrentlyScrollingViewport() bool

	// MouseDown notifies the target of a primary button press
	// (scrollbar capture).
	MouseDown()

	// MouseUp notifies the target of a primary button release.
	MouseUp()

	// MouseMoveAt notifies the target of pointer movement.
	MouseMoveAt(point gesture.Vec)

	// MouseLeave notifies the target that the pointer left the surface.
	MouseLeave()

	// SetNeedsAnimateInput asks the host scheduler for another
	// animation tick on the dispatch thread.
	SetNeedsAnimateInput()
}
