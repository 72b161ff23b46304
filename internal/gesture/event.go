package gesture

// Event is implemented by every input event type.
type Event interface {
	// Kind identifies the concrete event type.
	Kind() Kind

	// When returns the event timestamp in monotonic seconds.
	When() float64
}

// Pointer is implemented by events that carry pointer metadata (all
// gesture-stream events plus wheel and mouse events). It gives generic
// access to the shared Base without a type switch.
type Pointer interface {
	Event

	// Info returns the shared pointer metadata.
	Info() Base
}

// Base carries the fields shared by all pointer-derived events.
type Base struct {
	// Pos is the event position in surface coordinates.
	Pos Vec

	// GlobalPos is the event position in screen coordinates.
	GlobalPos Vec

	// Time is the event timestamp in monotonic seconds.
	Time float64

	// Device is the hardware source of the event.
	Device Device

	// Modifiers are the keyboard modifiers held during the event.
	Modifiers Modifier
}

// When returns the event timestamp in monotonic seconds.
func (b Base) When() float64 { return b.Time }

// Info returns the shared pointer metadata.
func (b Base) Info() Base { return b }

// ScrollBegin starts a scroll gesture sequence.
type ScrollBegin struct {
	Base

	// DeltaHint estimates the direction and magnitude of the upcoming
	// scroll. Synthesized begins carry a zero hint.
	DeltaHint Vec

	// DeltaHintUnits are the units of DeltaHint.
	DeltaHintUnits Units

	// TargetViewport requests the scroll target the root viewport.
	TargetViewport bool

	// Inertial marks a begin that is part of a momentum phase.
	Inertial bool
}

// Kind returns KindScrollBegin.
func (ScrollBegin) Kind() Kind { return KindScrollBegin }

// ScrollUpdate continues an active scroll gesture.
type ScrollUpdate struct {
	Base

	// Delta is the scroll delta since the previous update, in the
	// platform's reported sign convention.
	Delta Vec

	// Velocity is the instantaneous scroll velocity, if known.
	Velocity Vec

	// DeltaUnits are the units of Delta.
	DeltaUnits Units

	// Inertial marks an update that is part of a momentum phase.
	Inertial bool
}

// Kind returns KindScrollUpdate.
func (ScrollUpdate) Kind() Kind { return KindScrollUpdate }

// ScrollEnd terminates a scroll gesture sequence.
type ScrollEnd struct {
	Base

	// DeltaUnits are the units the ended sequence scrolled in.
	DeltaUnits Units
}

// Kind returns KindScrollEnd.
func (ScrollEnd) Kind() Kind { return KindScrollEnd }

// PinchBegin starts a pinch gesture sequence.
type PinchBegin struct {
	Base
}

// Kind returns KindPinchBegin.
func (PinchBegin) Kind() Kind { return KindPinchBegin }

// PinchUpdate continues an active pinch gesture.
type PinchUpdate struct {
	Base

	// Scale is the incremental scale factor since the previous update.
	Scale float64

	// ZoomDisabled marks an update on content that forbids zooming.
	ZoomDisabled bool
}

// Kind returns KindPinchUpdate.
func (PinchUpdate) Kind() Kind { return KindPinchUpdate }

// PinchEnd terminates a pinch gesture sequence.
type PinchEnd struct {
	Base
}

// Kind returns KindPinchEnd.
func (PinchEnd) Kind() Kind { return KindPinchEnd }

// FlingStart launches a momentum scroll with the given velocity.
type FlingStart struct {
	Base

	// Velocity is the launch velocity in pixels per second.
	Velocity Vec

	// TargetViewport requests the fling target the root viewport.
	TargetViewport bool
}

// Kind returns KindFlingStart.
func (FlingStart) Kind() Kind { return KindFlingStart }

// FlingCancel stops an active momentum scroll.
type FlingCancel struct {
	Base

	// PreventBoosting forces immediate cancellation instead of holding
	// the fling open for a possible boost.
	PreventBoosting bool
}

// Kind returns KindFlingCancel.
func (FlingCancel) Kind() Kind { return KindFlingCancel }

// Wheel is a mouse wheel tick.
type Wheel struct {
	Base

	// Delta is the wheel delta in pixels.
	Delta Vec

	// PreciseDeltas marks deltas from a precise device (touchpad);
	// imprecise deltas are discrete wheel notches.
	PreciseDeltas bool

	// ByPage requests page-based scrolling.
	ByPage bool

	// Rails restricts the delta to a single axis.
	Rails Rails
}

// Kind returns KindMouseWheel.
func (Wheel) Kind() Kind { return KindMouseWheel }

// TouchStart reports a touch sequence gaining pressed points.
type TouchStart struct {
	// Time is the event timestamp in monotonic seconds.
	Time float64

	// Points are all current touch points.
	Points []TouchPoint
}

// Kind returns KindTouchStart.
func (TouchStart) Kind() Kind { return KindTouchStart }

// When returns the event timestamp in monotonic seconds.
func (t TouchStart) When() float64 { return t.Time }

// TouchMove reports touch points moving.
type TouchMove struct {
	// Time is the event timestamp in monotonic seconds.
	Time float64

	// Points are all current touch points.
	Points []TouchPoint
}

// Kind returns KindTouchMove.
func (TouchMove) Kind() Kind { return KindTouchMove }

// When returns the event timestamp in monotonic seconds.
func (t TouchMove) When() float64 { return t.Time }

// TouchEnd reports a touch sequence losing points.
type TouchEnd struct {
	// Time is the event timestamp in monotonic seconds.
	Time float64

	// Points are all current touch points, including released ones.
	Points []TouchPoint
}

// Kind returns KindTouchEnd.
func (TouchEnd) Kind() Kind { return KindTouchEnd }

// When returns the event timestamp in monotonic seconds.
func (t TouchEnd) When() float64 { return t.Time }

// MouseAction is the type of mouse (non-wheel) action.
type MouseAction uint8

const (
	// MouseActionDown is a button press.
	MouseActionDown MouseAction = iota
	// MouseActionUp is a button release.
	MouseActionUp
	// MouseActionMove is pointer movement.
	MouseActionMove
	// MouseActionLeave is the pointer leaving the surface.
	MouseActionLeave
)

// String returns a string representation of the action.
func (a MouseAction) String() string {
	switch a {
	case MouseActionUp:
		return "up"
	case MouseActionMove:
		return "move"
	case MouseActionLeave:
		return "leave"
	default:
		return "down"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	// MouseButtonNone indicates no button.
	MouseButtonNone MouseButton = iota
	// MouseButtonLeft is the primary button.
	MouseButtonLeft
	// MouseButtonMiddle is the middle button.
	MouseButtonMiddle
	// MouseButtonRight is the secondary button.
	MouseButtonRight
)

// String returns a string representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Mouse is a non-wheel mouse event.
type Mouse struct {
	Base

	// Action is the mouse action.
	Action MouseAction

	// Button is the button involved, if any.
	Button MouseButton
}

// Kind returns the kind matching the mouse action.
func (m Mouse) Kind() Kind {
	switch m.Action {
	case MouseActionUp:
		return KindMouseUp
	case MouseActionMove:
		return KindMouseMove
	case MouseActionLeave:
		return KindMouseLeave
	default:
		return KindMouseDown
	}
}

// Key is a keyboard event. The dispatch core only needs its existence:
// typing stops an in-flight fling.
type Key struct {
	// Time is the event timestamp in monotonic seconds.
	Time float64

	// Modifiers are the keyboard modifiers held during the event.
	Modifiers Modifier
}

// Kind returns KindKey.
func (Key) Kind() Kind { return KindKey }

// When returns the event timestamp in monotonic seconds.
func (k Key) When() float64 { return k.Time }
