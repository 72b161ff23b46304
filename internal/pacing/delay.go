package pacing

import "time"

// FPS bounds for throttled gestures.
const (
	// MinFPS is the lowest frame rate the predictor will target.
	MinFPS = 10
	// MaxFPS is the unthrottled frame rate.
	MaxFPS = 60
)

// DelayFor converts a target frame rate into the blocking delay
// inserted before each scroll/pinch update.
//
// This is an empirically calibrated lookup table, not a derivable
// formula: each band linearly interpolates between two measured
// calibration points so that the effective inter-frame interval tracks
// the target fps on real devices. Reproduce the breakpoints and
// coefficients exactly; do not try to reconcile or smooth them.
func DelayFor(fps int) time.Duration {
	f := float64(fps)
	var us float64

	switch {
	case fps >= 1 && fps <= 9:
		us = 1e6/f - 16667
	case fps >= 10 && fps <= 15:
		us = 1e6/f - 16667 + (f-10)*1667*0.75
	case fps > 15 && fps < 20:
		us = 1e6/f - 16667 + (f-10)*1667*0.6
	case fps >= 20 && fps <= 30:
		us = 24997 + 1667*(30-f)
	case fps > 30 && fps <= 41:
		us = 16663 + 1667*(41-f)*0.5
	case fps > 41 && fps <= 44:
		us = 16246 + 1667*(44-f)*0.5
	case fps == 45:
		us = 15412
	case fps > 45 && fps <= 52:
		us = 11245 + 1667*(52-f)*0.5
	case fps == 55:
		us = 12912
	case fps == 60:
		us = 0
	default:
		us = 12912 + 1667*(55-f)*0.5
	}

	if us < 0 {
		us = 0
	}
	return time.Duration(us) * time.Microsecond
}
