// Package gesture defines the input event model consumed by the
// dispatch pipeline.
//
// Every platform input event is represented by a concrete type
// implementing Event. Each type carries only the payload valid for its
// kind, so a scroll update cannot be misread as a fling and vice
// versa. Events are immutable values: once constructed they are owned
// by the dispatch call for its duration and never mutated.
//
// Positions, deltas and velocities use Vec, a float64 2-vector.
// Timestamps are monotonic seconds (see Event.When); they are compared
// and subtracted but never interpreted as wall-clock time.
package gesture
