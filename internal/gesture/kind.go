package gesture

// Kind identifies the concrete type of an input event.
type Kind uint8

const (
	// KindNone indicates no event.
	KindNone Kind = iota
	// KindMouseWheel is a mouse wheel tick.
	KindMouseWheel
	// KindScrollBegin starts a scroll gesture sequence.
	KindScrollBegin
	// KindScrollUpdate continues an active scroll gesture.
	KindScrollUpdate
	// KindScrollEnd terminates a scroll gesture sequence.
	KindScrollEnd
	// KindPinchBegin starts a pinch gesture sequence.
	KindPinchBegin
	// KindPinchUpdate continues an active pinch gesture.
	KindPinchUpdate
	// KindPinchEnd terminates a pinch gesture sequence.
	KindPinchEnd
	// KindFlingStart launches a momentum scroll.
	KindFlingStart
	// KindFlingCancel stops an active momentum scroll.
	KindFlingCancel
	// KindTouchStart reports newly pressed touch points.
	KindTouchStart
	// KindTouchMove reports moved touch points.
	KindTouchMove
	// KindTouchEnd reports released touch points.
	KindTouchEnd
	// KindMouseDown is a mouse button press.
	KindMouseDown
	// KindMouseUp is a mouse button release.
	KindMouseUp
	// KindMouseMove is a mouse movement.
	KindMouseMove
	// KindMouseLeave reports the pointer leaving the surface.
	KindMouseLeave
	// KindKey is a keyboard event.
	KindKey
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMouseWheel:
		return "mouse-wheel"
	case KindScrollBegin:
		return "scroll-begin"
	case KindScrollUpdate:
		return "scroll-update"
	case KindScrollEnd:
		return "scroll-end"
	case KindPinchBegin:
		return "pinch-begin"
	case KindPinchUpdate:
		return "pinch-update"
	case KindPinchEnd:
		return "pinch-end"
	case KindFlingStart:
		return "fling-start"
	case KindFlingCancel:
		return "fling-cancel"
	case KindTouchStart:
		return "touch-start"
	case KindTouchMove:
		return "touch-move"
	case KindTouchEnd:
		return "touch-end"
	case KindMouseDown:
		return "mouse-down"
	case KindMouseUp:
		return "mouse-up"
	case KindMouseMove:
		return "mouse-move"
	case KindMouseLeave:
		return "mouse-leave"
	case KindKey:
		return "key"
	default:
		return "none"
	}
}

// IsGesture reports whether the kind belongs to the gesture stream
// (scroll, pinch and fling lifecycle events).
func (k Kind) IsGesture() bool {
	return k >= KindScrollBegin && k <= KindFlingCancel
}
