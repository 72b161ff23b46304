package pacing

import "errors"

// Pacing errors.
var (
	// ErrNoModel indicates no model is configured (empty or the "stop"
	// sentinel). Prediction falls back to the unthrottled frame rate.
	ErrNoModel = errors.New("no pacing model configured")

	// ErrUnknownModelFormat indicates the model text matches no
	// registered format.
	ErrUnknownModelFormat = errors.New("unknown pacing model format")

	// ErrMalformedModel indicates the model text could not be parsed.
	ErrMalformedModel = errors.New("malformed pacing model")

	// ErrModelInference indicates the model does not support
	// regression inference.
	ErrModelInference = errors.New("model does not support regression inference")

	// ErrInvalidConfigMessage indicates a pacing config message that
	// is not valid JSON.
	ErrInvalidConfigMessage = errors.New("invalid pacing config message")
)
