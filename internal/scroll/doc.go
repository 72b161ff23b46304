// Package scroll defines the contract between the gesture dispatcher
// and the surface it scrolls.
//
// The Target interface abstracts the scroll/pinch surface (a
// compositor layer tree, a viewport, or the demo's text pane). The
// dispatcher never sees past it. State is the transient per-event
// record handed to the target; it is built fresh for every event and
// never persisted across calls.
package scroll
