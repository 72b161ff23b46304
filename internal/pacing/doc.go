// Package pacing implements the adaptive frame-pacing predictor.
//
// During scroll and pinch gestures the dispatcher trades input latency
// for a target perceived frame rate: an externally supplied "speed"
// scalar is mapped to a target fps through a pluggable regression
// model, and the fps is converted into a blocking sleep inserted
// before each update is applied.
//
// The model is carried as an opaque string inside a Config and may be
// replaced at any time from another goroutine. Prediction takes a
// copy-on-read snapshot and parses it fresh per call; a replacement
// can therefore race one in-flight prediction at most, and never
// corrupts it. Do not "optimize" this into a cached live model handle.
package pacing
