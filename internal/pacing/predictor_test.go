package pacing

import (
	"testing"
	"time"
)

func newTestPredictor(model string, speed int, opts ...PredictorOption) (*Predictor, *Config) {
	cfg := NewConfig()
	cfg.Update(model, 0, speed)
	return NewPredictor(cfg, nil, opts...), cfg
}

func TestPredictNoModel(t *testing.T) {
	p, _ := newTestPredictor("", 0)
	if got := p.Predict(4); got != MaxFPS {
		t.Errorf("Predict() with no model = %d, want %d", got, MaxFPS)
	}
}

func TestPredictStopSentinel(t *testing.T) {
	p, cfg := newTestPredictor("function predict(speed) return 30 end", 0)
	if got := p.Predict(4); got != 30 {
		t.Fatalf("Predict() = %d, want 30", got)
	}
	cfg.Update(ModelSentinelStop, 0, 0)
	if got := p.Predict(4); got != MaxFPS {
		t.Errorf("Predict() after stop = %d, want %d", got, MaxFPS)
	}
}

func TestPredictDegradesOnBadModel(t *testing.T) {
	tests := []struct {
		name  string
		model string
	}{
		{"unknown format", "garbage bytes"},
		{"malformed svr", "svm_type epsilon_svr\ngamma nope\nrho 0\nSV\n1 1:1"},
		{"lua runtime failure", "function predict(speed) error('x') end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPredictor(tt.model, 0)
			if got := p.Predict(4); got != MaxFPS {
				t.Errorf("Predict() = %d, want %d", got, MaxFPS)
			}
		})
	}
}

func TestPredictCeilAndClamp(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  int
	}{
		{"ceil fractional", "function predict(speed) return 14.2 end", 15},
		{"exact integer", "function predict(speed) return 45 end", 45},
		{"clamp low", "function predict(speed) return 1 end", MinFPS},
		{"clamp negative", "function predict(speed) return -20 end", MinFPS},
		{"clamp high", "function predict(speed) return 240 end", MaxFPS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPredictor(tt.model, 0)
			if got := p.Predict(4); got != tt.want {
				t.Errorf("Predict() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPredictPassesSpeedToModel(t *testing.T) {
	p, _ := newTestPredictor("function predict(speed) return speed * 10 end", 0)
	if got := p.Predict(3.5); got != 35 {
		t.Errorf("Predict(3.5) = %d, want 35", got)
	}
}

func TestPredictReferenceModelInRange(t *testing.T) {
	p, _ := newTestPredictor(referenceModel, 0)
	for _, speed := range []float64{0.5, 1, 2, 4, 8, 16, 28} {
		got := p.Predict(speed)
		if got < MinFPS || got > MaxFPS {
			t.Errorf("Predict(%v) = %d, want within [%d, %d]", speed, got, MinFPS, MaxFPS)
		}
	}
	// The shipped model exists to throttle default-speed scrolls.
	if got := p.Predict(float64(DefaultSpeed) / DefaultSpeedDivisor); got >= MaxFPS {
		t.Errorf("Predict(default speed) = %d, want below %d", got, MaxFPS)
	}
}

func TestThrottlePinchUsesRawSpeed(t *testing.T) {
	var slept []time.Duration
	record := func(d time.Duration) { slept = append(slept, d) }

	// The pinch path skips speed normalization: speed 30 reaches the
	// model as-is instead of 30/50.
	p, _ := newTestPredictor("function predict(speed) return speed end", 30, WithSleep(record))
	if got := p.ThrottlePinch(); got != DelayFor(30) {
		t.Errorf("ThrottlePinch() = %v, want %v", got, DelayFor(30))
	}
	if len(slept) != 1 || slept[0] != DelayFor(30) {
		t.Errorf("sleep calls = %v, want one call of %v", slept, DelayFor(30))
	}
}

func TestThrottlePinchNoModel(t *testing.T) {
	var slept []time.Duration
	record := func(d time.Duration) { slept = append(slept, d) }

	p, _ := newTestPredictor("", 200, WithSleep(record))
	if got := p.ThrottlePinch(); got != 0 {
		t.Errorf("ThrottlePinch() = %v, want 0", got)
	}
	if len(slept) != 0 {
		t.Errorf("sleep called %d times with no model, want 0", len(slept))
	}
}

func TestThrottle(t *testing.T) {
	var slept []time.Duration
	record := func(d time.Duration) { slept = append(slept, d) }

	p, _ := newTestPredictor("function predict(speed) return 30 end", 0, WithSleep(record))
	got := p.Throttle()
	want := DelayFor(30)
	if got != want {
		t.Errorf("Throttle() = %v, want %v", got, want)
	}
	if len(slept) != 1 || slept[0] != want {
		t.Errorf("sleep calls = %v, want one call of %v", slept, want)
	}
}

func TestThrottleNoSleepAtMaxFPS(t *testing.T) {
	var slept []time.Duration
	record := func(d time.Duration) { slept = append(slept, d) }

	p, _ := newTestPredictor("", 0, WithSleep(record))
	if got := p.Throttle(); got != 0 {
		t.Errorf("Throttle() = %v, want 0", got)
	}
	if len(slept) != 0 {
		t.Errorf("sleep called %d times at max fps, want 0", len(slept))
	}
}

func TestThrottleUsesNormalizedSpeed(t *testing.T) {
	var slept []time.Duration
	record := func(d time.Duration) { slept = append(slept, d) }

	// speed 500 / divisor 50 = 10, model maps it straight to fps.
	p, _ := newTestPredictor("function predict(speed) return speed end", 500, WithSleep(record))
	if got := p.Throttle(); got != DelayFor(10) {
		t.Errorf("Throttle() = %v, want %v", got, DelayFor(10))
	}
}
