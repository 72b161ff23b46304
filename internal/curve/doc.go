// Package curve provides momentum and smooth-scroll curves that feed
// per-tick increments to a dispatch.Scroller.
package curve
