package pacing

import (
	"errors"
	"math"
	"time"

	"github.com/dshills/gesturekit/internal/log"
)

// Predictor maps interaction speed to a target frame rate and applies
// the matching pacing delay. It is stateless apart from the Config it
// reads snapshots from, so a single Predictor may serve one dispatcher
// for its whole lifetime.
type Predictor struct {
	cfg    *Config
	logger *log.Logger
	sleep  func(time.Duration)
}

// PredictorOption configures a Predictor.
type PredictorOption func(*Predictor)

// WithSleep overrides the blocking sleep used by Throttle. Tests and
// hosts that cannot afford a true sleep on the dispatch goroutine
// inject a stub here.
func WithSleep(fn func(time.Duration)) PredictorOption {
	return func(p *Predictor) {
		if fn != nil {
			p.sleep = fn
		}
	}
}

// NewPredictor creates a Predictor reading model/speed snapshots from
// cfg.
func NewPredictor(cfg *Config, logger *log.Logger, opts ...PredictorOption) *Predictor {
	if logger == nil {
		logger = log.Null
	}
	p := &Predictor{
		cfg:    cfg,
		logger: logger.WithComponent("pacing"),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict maps speed to a target frame rate using a snapshot of the
// configured model. With no model (or the "stop" sentinel) it returns
// MaxFPS. A model that fails to parse or evaluate also degrades to
// MaxFPS: pacing is a soft optimization, and disabling it is always
// safe.
func (p *Predictor) Predict(speed float64) int {
	m, err := Load(p.cfg.Model())
	if err != nil {
		if !errors.Is(err, ErrNoModel) {
			p.logger.Warn("model rejected, pacing disabled: %v", err)
		}
		return MaxFPS
	}

	if carrier, ok := m.(interface{ Probability() bool }); ok && carrier.Probability() {
		p.logger.Debug("model supports probability estimates, disabled in prediction")
	}

	raw, err := m.Predict(speed)
	if err != nil {
		p.logger.Warn("prediction failed, pacing disabled: %v", err)
		return MaxFPS
	}

	fps := int(math.Ceil(raw))
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return fps
}

// Throttle predicts the target frame rate from the current normalized
// speed and blocks the calling goroutine for the matching delay. It
// returns the delay applied. Must be called on the goroutine that owns
// the scroll target.
func (p *Predictor) Throttle() time.Duration {
	fps := p.Predict(p.cfg.NormalizedSpeed())
	d := DelayFor(fps)
	if d > 0 {
		p.sleep(d)
	}
	p.logger.Debug("throttle fps=%d delay=%v", fps, d)
	return d
}

// ThrottlePinch is Throttle for pinch updates, which feed the model the
// raw speed scalar rather than the scroll-normalized one.
func (p *Predictor) ThrottlePinch() time.Duration {
	fps := p.Predict(float64(p.cfg.Speed()))
	d := DelayFor(fps)
	if d > 0 {
		p.sleep(d)
	}
	p.logger.Debug("pinch throttle fps=%d delay=%v", fps, d)
	return d
}
