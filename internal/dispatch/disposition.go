package dispatch

// Disposition is the classification verdict for one input event.
type Disposition int

const (
	// Handled means the event was consumed on this thread; no further
	// routing is needed.
	Handled Disposition = iota
	// HandledNonBlocking means the event was consumed here but must
	// still be forwarded to the main thread without blocking on it.
	HandledNonBlocking
	// DidNotHandle means the event must be forwarded to the main
	// thread, which may block on it.
	DidNotHandle
	// Dropped means the event is discarded entirely.
	Dropped
)

// String returns the name of the disposition.
func (d Disposition) String() string {
	switch d {
	case Handled:
		return "handled"
	case HandledNonBlocking:
		return "handled-non-blocking"
	case DidNotHandle:
		return "did-not-handle"
	case Dropped:
		return "dropped"
	}
	return "unknown"
}

// mergeTouchResult folds one per-point verdict into the running verdict
// for a multi-point touch event. DidNotHandle dominates, then
// HandledNonBlocking, then Dropped.
func mergeTouchResult(current, point Disposition) Disposition {
	rank := func(d Disposition) int {
		switch d {
		case DidNotHandle:
			return 2
		case HandledNonBlocking:
			return 1
		default:
			return 0
		}
	}
	if rank(point) > rank(current) {
		return point
	}
	return current
}
