package pacing

import (
	"errors"
	"testing"
)

func TestLuaModelPredict(t *testing.T) {
	tests := []struct {
		name   string
		source string
		speed  float64
		want   float64
	}{
		{
			name:   "function prefix",
			source: "function predict(speed) return 30 + speed end",
			speed:  2,
			want:   32,
		},
		{
			name:   "comment prefix",
			source: "-- linear ramp\nfunction predict(speed) return speed * 10 end",
			speed:  4.5,
			want:   45,
		},
		{
			name:   "local prefix",
			source: "local base = 20\nfunction predict(speed) return base + speed end",
			speed:  5,
			want:   25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(tt.source)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			got, err := m.Predict(tt.speed)
			if err != nil {
				t.Fatalf("Predict() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Predict(%v) = %v, want %v", tt.speed, got, tt.want)
			}
		})
	}
}

func TestLuaModelErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{
			name:    "syntax error",
			source:  "function predict(speed return end",
			wantErr: ErrMalformedModel,
		},
		{
			name:    "no predict function",
			source:  "function estimate(speed) return 60 end",
			wantErr: ErrModelInference,
		},
		{
			name:    "runtime error",
			source:  "function predict(speed) error('boom') end",
			wantErr: ErrMalformedModel,
		},
		{
			name:    "non-numeric result",
			source:  "function predict(speed) return 'fast' end",
			wantErr: ErrModelInference,
		},
		{
			name:    "chunk loading removed",
			source:  "-- hostile\nfunction predict(speed) return loadstring('return 1')() end",
			wantErr: ErrMalformedModel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(tt.source)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if _, err := m.Predict(1); !errors.Is(err, tt.wantErr) {
				t.Errorf("Predict() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// A fresh interpreter state per prediction means one call cannot leak
// globals into the next.
func TestLuaModelStateIsolation(t *testing.T) {
	m, err := Load("function predict(speed)\n  if seen then return -1 end\n  seen = true\n  return speed\nend")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := m.Predict(7)
		if err != nil {
			t.Fatalf("Predict() call %d error: %v", i, err)
		}
		if got != 7 {
			t.Fatalf("Predict() call %d = %v, want 7", i, got)
		}
	}
}
