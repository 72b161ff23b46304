package gesture

// Device identifies the hardware source of a gesture.
type Device uint8

const (
	// DeviceUninitialized indicates the source device was never set.
	// Reaching the fling path with it is a caller contract violation.
	DeviceUninitialized Device = iota
	// DeviceTouchpad indicates a touchpad (wheel-equivalent) source.
	DeviceTouchpad
	// DeviceTouchscreen indicates a direct touchscreen source.
	DeviceTouchscreen
)

// String returns a string representation of the device.
func (d Device) String() string {
	switch d {
	case DeviceTouchpad:
		return "touchpad"
	case DeviceTouchscreen:
		return "touchscreen"
	default:
		return "uninitialized"
	}
}

// Units describes how scroll deltas are expressed.
type Units uint8

const (
	// UnitsPrecisePixels are exact pixel deltas from a precise device.
	UnitsPrecisePixels Units = iota
	// UnitsPixels are coarse pixel deltas (e.g. wheel notches scaled to
	// pixels); eligible for animated smoothing.
	UnitsPixels
	// UnitsPage expresses deltas in visible-viewport pages.
	UnitsPage
)

// String returns a string representation of the units.
func (u Units) String() string {
	switch u {
	case UnitsPixels:
		return "pixels"
	case UnitsPage:
		return "page"
	default:
		return "precise-pixels"
	}
}

// Rails restricts wheel deltas to a single axis.
type Rails uint8

const (
	// RailsFree applies both delta components.
	RailsFree Rails = iota
	// RailsHorizontal locks scrolling to the horizontal axis.
	RailsHorizontal
	// RailsVertical locks scrolling to the vertical axis.
	RailsVertical
)

// String returns a string representation of the rails mode.
func (r Rails) String() string {
	switch r {
	case RailsHorizontal:
		return "horizontal"
	case RailsVertical:
		return "vertical"
	default:
		return "free"
	}
}

// Modifier is a bitmask of keyboard modifiers held during an event.
type Modifier uint8

const (
	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key.
	ModCtrl
	// ModAlt indicates the Alt key.
	ModAlt
	// ModMeta indicates the Meta/Command key.
	ModMeta
)

// Has reports whether all modifiers in m are set.
func (mod Modifier) Has(m Modifier) bool {
	return mod&m == m
}

// TouchState describes the lifecycle state of a single touch point.
type TouchState uint8

const (
	// TouchStateUndefined indicates an unset state.
	TouchStateUndefined TouchState = iota
	// TouchStatePressed is a newly pressed point.
	TouchStatePressed
	// TouchStateMoved is a point that moved since the last event.
	TouchStateMoved
	// TouchStateStationary is a point that did not move.
	TouchStateStationary
	// TouchStateReleased is a lifted point.
	TouchStateReleased
	// TouchStateCancelled is a point cancelled by the platform.
	TouchStateCancelled
)

// String returns a string representation of the touch state.
func (s TouchState) String() string {
	switch s {
	case TouchStatePressed:
		return "pressed"
	case TouchStateMoved:
		return "moved"
	case TouchStateStationary:
		return "stationary"
	case TouchStateReleased:
		return "released"
	case TouchStateCancelled:
		return "cancelled"
	default:
		return "undefined"
	}
}

// TouchPoint is one contact point within a touch event.
type TouchPoint struct {
	// Pos is the point position in surface coordinates.
	Pos Vec

	// State is the point's lifecycle state.
	State TouchState
}
