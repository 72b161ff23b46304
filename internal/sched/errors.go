package sched

import "errors"

// Loop errors.
var (
	// ErrAlreadyRunning is returned by Start on a running loop.
	ErrAlreadyRunning = errors.New("loop already running")

	// ErrNotRunning is returned when posting to a stopped loop.
	ErrNotRunning = errors.New("loop not running")

	// ErrQueueFull is returned when the task queue is saturated.
	ErrQueueFull = errors.New("task queue full")
)
