package dispatch

import (
	"math"
	"time"

	"github.com/dshills/gesturekit/internal/gesture"
	"github.com/dshills/gesturekit/internal/log"
	"github.com/dshills/gesturekit/internal/pacing"
	"github.com/dshills/gesturekit/internal/scroll"
)

// The portion of a requested fling increment at or past this overscroll
// saturates the axis and disables further fling scroll along it.
const flingOverscrollThreshold = 1.0

// Increments below this magnitude on both axes keep the fling alive
// without scrolling; a trivial time delta between ticks must not
// terminate the fling early.
const scrollEpsilon = 0.1

// Stats exposes the dispatcher's session counters.
type Stats struct {
	// ScrollUpdates counts scroll updates handled since creation.
	ScrollUpdates uint64

	// PinchUpdates counts pinch updates in the current pinch sequence;
	// it resets to zero when the sequence ends.
	PinchUpdates uint64
}

// Dispatcher classifies input events against a scroll target, owning
// the gesture session state and the active fling.
//
// A Dispatcher must be driven by the single goroutine that owns its
// Target; HandleEvent and Animate are never safe to call concurrently.
type Dispatcher struct {
	target scroll.Target
	client Client
	pacer  *pacing.Predictor
	logger *log.Logger
	now    func() float64

	smoothScrollEnabled bool

	// Gesture session flags.
	scrollActive            bool
	pinchActive             bool
	flingMayBeActiveOnMain  bool
	disallowHorizontalFling bool
	disallowVerticalFling   bool
	flingAnimationStarted   bool

	// Fling session state. A non-nil curve implies flingParams holds a
	// snapshot consistent with the curve's source device.
	flingCurve    Curve
	flingParams   FlingParameters
	flingVelocity gesture.Vec

	// Fling boosting state.
	deferredFlingCancelTime float64
	lastBoostEvent          gesture.Event
	lastAnimateTime         float64

	// Touch sequence state.
	touchStartResult Disposition
	touchResultSet   bool

	stats Stats
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPredictor enables frame pacing on scroll and pinch updates.
func WithPredictor(p *pacing.Predictor) Option {
	return func(d *Dispatcher) {
		d.pacer = p
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger.WithComponent("dispatch")
		}
	}
}

// WithSmoothScroll enables animated scrolling for coarse pixel deltas.
func WithSmoothScroll(enabled bool) Option {
	return func(d *Dispatcher) {
		d.smoothScrollEnabled = enabled
	}
}

// WithClock overrides the monotonic clock used for synthetic event
// timestamps and animated-scroll delays.
func WithClock(now func() float64) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// New creates a Dispatcher driving target and reporting to client.
func New(target scroll.Target, client Client, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		target: target,
		client: client,
		logger: log.Null,
		now: func() float64 {
			return float64(time.Now().UnixNano()) / float64(time.Second)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Stats returns the session counters.
func (d *Dispatcher) Stats() Stats {
	return d.stats
}

// FlingActive reports whether a fling curve is currently animating.
func (d *Dispatcher) FlingActive() bool {
	return d.flingCurve != nil
}

// HandleEvent classifies one input event, applying any side effects to
// the target, and returns its disposition.
func (d *Dispatcher) HandleEvent(ev gesture.Event) Disposition {
	disposition := d.classify(ev)
	if disposition == HandledNonBlocking {
		d.client.DispatchNonBlockingEventToMainThread(ev)
	}
	d.logger.Debug("%s -> %s", ev.Kind(), disposition)
	return disposition
}

func (d *Dispatcher) classify(ev gesture.Event) Disposition {
	if d.filterForFlingBoosting(ev) {
		return Handled
	}

	switch e := ev.(type) {
	case gesture.Wheel:
		return d.handleWheel(e)
	case gesture.ScrollBegin:
		return d.handleScrollBegin(e)
	case gesture.ScrollUpdate:
		return d.handleScrollUpdate(e)
	case gesture.ScrollEnd:
		return d.handleScrollEnd(e)
	case gesture.PinchBegin:
		return d.handlePinchBegin(e)
	case gesture.PinchUpdate:
		return d.handlePinchUpdate(e)
	case gesture.PinchEnd:
		return d.handlePinchEnd(e)
	case gesture.FlingStart:
		return d.handleFlingStart(e)
	case gesture.FlingCancel:
		return d.handleFlingCancel(e)
	case gesture.TouchStart:
		return d.handleTouchStart(e)
	case gesture.TouchMove:
		return d.handleTouchMove(e)
	case gesture.TouchEnd:
		return d.handleTouchEnd(e)
	case gesture.Mouse:
		return d.handleMouse(e)
	case gesture.Key:
		// Typing stops an in-flight fling. Only cancel when one is
		// active so an in-progress touch scroll is not disrupted.
		if d.flingCurve != nil {
			d.cancelFling()
		}
		return DidNotHandle
	default:
		return DidNotHandle
	}
}

func (d *Dispatcher) handleScrollBegin(e gesture.ScrollBegin) Disposition {
	if d.scrollActive {
		d.cancelFling()
	}

	state := scroll.StateForGesture(e)
	var status scroll.Status
	switch {
	case e.DeltaHintUnits == gesture.UnitsPage:
		// Page-based scrolling is not implemented on this thread.
		status = scroll.Status{
			Thread:            scroll.ThreadOnMain,
			MainThreadReasons: scroll.ReasonPageBasedScrolling,
		}
	case e.TargetViewport:
		status = d.target.RootScrollBegin(state, scroll.InputTypeForDevice(e.Device))
	case d.shouldAnimate(e.DeltaHintUnits != gesture.UnitsPixels):
		status = d.target.ScrollAnimatedBegin(e.Pos)
	default:
		status = d.target.ScrollBegin(state, scroll.InputTypeForDevice(e.Device))
	}

	switch status.Thread {
	case scroll.ThreadOnTarget:
		d.scrollActive = true
		return Handled
	case scroll.ThreadIgnored:
		return Dropped
	default:
		return DidNotHandle
	}
}

func (d *Dispatcher) handleScrollUpdate(e gesture.ScrollUpdate) Disposition {
	if d.pacer != nil {
		d.pacer.Throttle()
	}
	d.stats.ScrollUpdates++

	if !d.scrollActive && !d.pinchActive {
		return DidNotHandle
	}

	if d.shouldAnimate(e.DeltaUnits != gesture.UnitsPixels) {
		delay := time.Duration((d.now() - e.Time) * float64(time.Second))
		if delay < 0 {
			delay = 0
		}
		switch d.target.ScrollAnimated(e.Pos, e.Delta.Negate(), delay).Thread {
		case scroll.ThreadOnTarget:
			return Handled
		case scroll.ThreadIgnored:
			return Dropped
		default:
			return DidNotHandle
		}
	}

	result := d.target.ScrollBy(scroll.StateForGesture(e))
	d.handleOverscroll(e.Pos, result)
	if result.DidScroll {
		return Handled
	}
	return Dropped
}

func (d *Dispatcher) handleScrollEnd(e gesture.ScrollEnd) Disposition {
	if d.shouldAnimate(e.DeltaUnits != gesture.UnitsPixels) {
		// An animated scroll emits its own end when the animation
		// completes.
	} else {
		d.target.ScrollEnd(scroll.StateForGesture(e))
	}
	if !d.scrollActive {
		return DidNotHandle
	}
	d.scrollActive = false
	return Handled
}

func (d *Dispatcher) handlePinchBegin(e gesture.PinchBegin) Disposition {
	// A touchpad pinch arrives as ctrl-wheel on the main thread; when a
	// wheel listener exists the main thread must see the sequence.
	if e.Device == gesture.DeviceTouchpad &&
		d.target.GetEventListenerProperties(scroll.ListenerClassWheel) != scroll.ListenerNone {
		return DidNotHandle
	}
	d.target.PinchGestureBegin()
	d.pinchActive = true
	return Handled
}

func (d *Dispatcher) handlePinchUpdate(e gesture.PinchUpdate) Disposition {
	if !d.pinchActive {
		return DidNotHandle
	}
	if d.pacer != nil {
		d.pacer.ThrottlePinch()
	}
	d.stats.PinchUpdates++

	if e.ZoomDisabled {
		return Dropped
	}
	d.target.PinchGestureUpdate(e.Scale, e.Pos)
	return Handled
}

func (d *Dispatcher) handlePinchEnd(gesture.PinchEnd) Disposition {
	if !d.pinchActive {
		return DidNotHandle
	}
	d.pinchActive = false
	d.stats.PinchUpdates = 0
	d.target.PinchGestureEnd()
	return Handled
}

func (d *Dispatcher) handleMouse(e gesture.Mouse) Disposition {
	switch e.Action {
	case gesture.MouseActionDown:
		// Scrollbar capture check only.
		if e.Button == gesture.MouseButtonLeft {
			d.target.MouseDown()
		}
	case gesture.MouseActionUp:
		if e.Button == gesture.MouseButtonLeft {
			d.target.MouseUp()
		}
	case gesture.MouseActionMove:
		d.target.MouseMoveAt(e.Pos)
	case gesture.MouseActionLeave:
		d.target.MouseLeave()
	}
	return DidNotHandle
}

// shouldAnimate reports whether a scroll with the given delta precision
// goes through the animated (smooth) path.
func (d *Dispatcher) shouldAnimate(precise bool) bool {
	return d.smoothScrollEnabled && !precise
}

// handleOverscroll reports unconsumed scroll delta to the client and
// saturates fling axes that hit a scroll boundary.
func (d *Dispatcher) handleOverscroll(point gesture.Vec, result scroll.Result) {
	if !result.DidOverscrollRoot {
		return
	}
	d.client.DidOverscroll(result.AccumulatedOverscroll, result.UnusedDelta, d.flingVelocity.Negate(), point)

	if d.flingCurve == nil {
		return
	}
	if math.Abs(result.AccumulatedOverscroll.X) >= flingOverscrollThreshold {
		d.disallowHorizontalFling = true
	}
	if math.Abs(result.AccumulatedOverscroll.Y) >= flingOverscrollThreshold {
		d.disallowVerticalFling = true
	}
}
