// Package dispatch classifies input events against a scroll/pinch
// target and drives fling animation between events.
//
// A Dispatcher is owned by a single goroutine, the one that owns its
// Target. HandleEvent and Animate must be called serially from that
// goroutine; the Dispatcher requests animation ticks through its Client
// and carries no internal locking.
package dispatch
