package app

import (
	"time"

	"github.com/dshills/gesturekit/internal/curve"
	"github.com/dshills/gesturekit/internal/gesture"
	"github.com/dshills/gesturekit/internal/scroll"
)

// unitsPerCell converts terminal cells to gesture coordinate units so
// deltas and velocities are comparable to the pipeline's thresholds.
const unitsPerCell = 10.0

// smoothScrollDuration is the nominal animated-scroll length; the
// event's queueing delay is subtracted per scroll.
const smoothScrollDuration = 0.25

const (
	minZoom = 0.25
	maxZoom = 4.0
)

// Pane is a scrollable text surface. It implements scroll.Target over a
// fixed buffer of lines, with zoom state for pinch gestures. All
// methods run on the loop goroutine that owns the dispatcher.
type Pane struct {
	lines  []string
	offset gesture.Vec
	zoom   float64

	width  int
	height int

	scrolling  bool
	pinching   bool
	mouseDown  bool
	cursor     gesture.Vec
	overscroll gesture.Vec

	anim      *curve.SmoothScroll
	animStart float64

	requestAnimate func()
}

// NewPane creates a pane over the given lines.
func NewPane(lines []string) *Pane {
	return &Pane{
		lines:          lines,
		zoom:           1.0,
		requestAnimate: func() {},
	}
}

// SetSize updates the viewport dimensions in cells.
func (p *Pane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.offset = p.clampOffset(p.offset)
}

// TopRow is the first visible line index.
func (p *Pane) TopRow() int {
	return int(p.offset.Y / unitsPerCell)
}

// LeftCol is the first visible column index.
func (p *Pane) LeftCol() int {
	return int(p.offset.X / unitsPerCell)
}

// Zoom is the current pinch-zoom factor.
func (p *Pane) Zoom() float64 {
	return p.zoom
}

func (p *Pane) maxOffset() gesture.Vec {
	var m gesture.Vec
	if rows := len(p.lines) - p.height; rows > 0 {
		m.Y = float64(rows) * unitsPerCell
	}
	longest := 0
	for _, line := range p.lines {
		if len(line) > longest {
			longest = len(line)
		}
	}
	if cols := longest - p.width; cols > 0 {
		m.X = float64(cols) * unitsPerCell
	}
	return m
}

func (p *Pane) clampOffset(o gesture.Vec) gesture.Vec {
	m := p.maxOffset()
	if o.X < 0 {
		o.X = 0
	}
	if o.X > m.X {
		o.X = m.X
	}
	if o.Y < 0 {
		o.Y = 0
	}
	if o.Y > m.Y {
		o.Y = m.Y
	}
	return o
}

// ScrollBegin begins a scroll sequence. An empty pane has nothing to
// scroll, so the sequence is ignored.
func (p *Pane) ScrollBegin(state scroll.State, inputType scroll.InputType) scroll.Status {
	if len(p.lines) == 0 {
		return scroll.Status{Thread: scroll.ThreadIgnored}
	}
	p.scrolling = true
	p.overscroll = gesture.Vec{}
	return scroll.Status{Thread: scroll.ThreadOnTarget}
}

// RootScrollBegin is ScrollBegin; the pane is its own viewport.
func (p *Pane) RootScrollBegin(state scroll.State, inputType scroll.InputType) scroll.Status {
	return p.ScrollBegin(state, inputType)
}

// FlingScrollBegin continues the active scroll as a fling.
func (p *Pane) FlingScrollBegin() scroll.Status {
	if !p.scrolling {
		return scroll.Status{Thread: scroll.ThreadIgnored}
	}
	return scroll.Status{Thread: scroll.ThreadOnTarget}
}

// ScrollBy applies a content-space delta, clamping at the buffer edges
// and accumulating the unconsumed remainder as overscroll.
func (p *Pane) ScrollBy(state scroll.State) scroll.Result {
	requested := p.offset.Add(state.Delta)
	clamped := p.clampOffset(requested)
	unused := requested.Add(clamped.Negate())

	didScroll := clamped != p.offset
	p.offset = clamped

	res := scroll.Result{DidScroll: didScroll}
	if !unused.IsZero() {
		p.overscroll = p.overscroll.Add(unused)
		res.DidOverscrollRoot = true
		res.UnusedDelta = unused
		res.AccumulatedOverscroll = p.overscroll
	}
	return res
}

// ScrollEnd terminates the scroll sequence.
func (p *Pane) ScrollEnd(state scroll.State) {
	p.scrolling = false
	p.overscroll = gesture.Vec{}
}

// ScrollAnimatedBegin begins an animated scroll sequence.
func (p *Pane) ScrollAnimatedBegin(point gesture.Vec) scroll.Status {
	return p.ScrollBegin(scroll.State{Position: point, IsBeginning: true}, scroll.InputTypeWheel)
}

// ScrollAnimated eases delta in over the nominal duration, shortened by
// the time the event already spent queued.
func (p *Pane) ScrollAnimated(point gesture.Vec, delta gesture.Vec, delay time.Duration) scroll.Status {
	if len(p.lines) == 0 {
		return scroll.Status{Thread: scroll.ThreadIgnored}
	}
	p.anim = curve.NewSmoothScroll(delta, smoothScrollDuration-delay.Seconds())
	p.animStart = 0
	p.requestAnimate()
	return scroll.Status{Thread: scroll.ThreadOnTarget}
}

// Animate advances the active smooth-scroll curve, if any. Called from
// the loop's animation tick alongside the dispatcher's Animate.
func (p *Pane) Animate(now float64) {
	if p.anim == nil {
		return
	}
	if p.animStart == 0 {
		p.animStart = now
	}
	if p.anim.Apply(now-p.animStart, paneScroller{p}) {
		p.requestAnimate()
		return
	}
	p.anim = nil
	p.animStart = 0
	p.scrolling = false
}

// PinchGestureBegin begins a pinch-zoom sequence.
func (p *Pane) PinchGestureBegin() {
	p.pinching = true
}

// PinchGestureUpdate applies an incremental scale factor.
func (p *Pane) PinchGestureUpdate(scale float64, anchor gesture.Vec) {
	p.zoom *= scale
	if p.zoom < minZoom {
		p.zoom = minZoom
	}
	if p.zoom > maxZoom {
		p.zoom = maxZoom
	}
}

// PinchGestureEnd terminates the pinch-zoom sequence.
func (p *Pane) PinchGestureEnd() {
	p.pinching = false
}

// GetEventListenerProperties reports no listeners; the pane has no
// script handlers to defer to.
func (p *Pane) GetEventListenerProperties(scroll.ListenerClass) scroll.ListenerProperties {
	return scroll.ListenerNone
}

// DoTouchEventsBlockScrollAt reports false; nothing blocks scrolling.
func (p *Pane) DoTouchEventsBlockScrollAt(gesture.Vec) bool {
	return false
}

// IsCurrentlyScrollingLayerAt reports whether the active scroll covers
// point. The pane is a single layer, so any point qualifies while a
// scroll is active.
func (p *Pane) IsCurrentlyScrollingLayerAt(point gesture.Vec, inputType scroll.InputType) bool {
	return p.scrolling
}

// IsCurrentlyScrollingViewport reports whether the viewport scrolls.
func (p *Pane) IsCurrentlyScrollingViewport() bool {
	return p.scrolling
}

// MouseDown records a primary button press.
func (p *Pane) MouseDown() {
	p.mouseDown = true
}

// MouseUp records a primary button release.
func (p *Pane) MouseUp() {
	p.mouseDown = false
}

// MouseMoveAt records the pointer position for the status line.
func (p *Pane) MouseMoveAt(point gesture.Vec) {
	p.cursor = point
}

// MouseLeave clears the pointer position.
func (p *Pane) MouseLeave() {
	p.cursor = gesture.Vec{}
}

// SetNeedsAnimateInput forwards the dispatcher's tick request to the
// host loop.
func (p *Pane) SetNeedsAnimateInput() {
	p.requestAnimate()
}

// paneScroller feeds smooth-scroll curve increments back into the pane.
type paneScroller struct {
	p *Pane
}

func (s paneScroller) ScrollBy(increment, velocity gesture.Vec) bool {
	return s.p.ScrollBy(scroll.State{Delta: increment, Velocity: velocity}).DidScroll
}
