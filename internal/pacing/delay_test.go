package pacing

import (
	"testing"
	"time"
)

func TestDelayForCalibrationPoints(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{10, 83333 * time.Microsecond},
		{15, 56250 * time.Microsecond},
		{20, 41667 * time.Microsecond},
		{30, 24997 * time.Microsecond},
		{31, 24998 * time.Microsecond},
		{41, 16663 * time.Microsecond},
		{42, 17913 * time.Microsecond},
		{44, 16246 * time.Microsecond},
		{45, 15412 * time.Microsecond},
		{46, 16246 * time.Microsecond},
		{52, 11245 * time.Microsecond},
		{53, 14579 * time.Microsecond},
		{55, 12912 * time.Microsecond},
		{60, 0},
	}

	for _, tt := range tests {
		t.Run(time.Duration(tt.fps).String(), func(t *testing.T) {
			if got := DelayFor(tt.fps); got != tt.want {
				t.Errorf("DelayFor(%d) = %v, want %v", tt.fps, got, tt.want)
			}
		})
	}
}

func TestDelayForZeroAtMaxFPS(t *testing.T) {
	if got := DelayFor(MaxFPS); got != 0 {
		t.Errorf("DelayFor(%d) = %v, want 0", MaxFPS, got)
	}
}

// Within every calibration band the delay must not increase as fps
// increases; the bands themselves are allowed to be discontinuous.
func TestDelayForMonotonicWithinBands(t *testing.T) {
	bands := []struct {
		name     string
		from, to int
	}{
		{"1-9", 1, 9},
		{"10-15", 10, 15},
		{"16-19", 16, 19},
		{"20-30", 20, 30},
		{"31-41", 31, 41},
		{"42-44", 42, 44},
		{"46-52", 46, 52},
		{"53-54", 53, 54},
		{"56-59", 56, 59},
	}

	for _, band := range bands {
		t.Run(band.name, func(t *testing.T) {
			prev := DelayFor(band.from)
			for fps := band.from + 1; fps <= band.to; fps++ {
				cur := DelayFor(fps)
				if cur > prev {
					t.Errorf("DelayFor(%d) = %v > DelayFor(%d) = %v", fps, cur, fps-1, prev)
				}
				prev = cur
			}
		})
	}
}

func TestDelayForNeverNegative(t *testing.T) {
	for fps := 1; fps <= 120; fps++ {
		if got := DelayFor(fps); got < 0 {
			t.Errorf("DelayFor(%d) = %v, want >= 0", fps, got)
		}
	}
}
