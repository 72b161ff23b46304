// Package sched runs the single goroutine that owns a dispatcher and
// its target. Input events are posted as tasks and executed serially;
// animation ticks are coalesced onto the same goroutine so they never
// interleave with event handling.
package sched
