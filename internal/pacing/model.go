package pacing

import "strings"

// ModelSentinelStop disables pacing when set as the model string.
const ModelSentinelStop = "stop"

// Model maps an interaction speed to a raw frames-per-second estimate.
// Implementations must be safe to discard after a single prediction;
// Load is called per prediction on a snapshot of the model string.
type Model interface {
	Predict(speed float64) (float64, error)
}

// Load parses a serialized model. The format is sniffed from the first
// non-blank line:
//
//   - "svm_type ..." loads an epsilon-SVR text model (libsvm format)
//   - a Lua comment, "function" or "local" loads a Lua model defining
//     predict(speed)
//
// An empty string or the "stop" sentinel returns ErrNoModel.
func Load(text string) (Model, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == ModelSentinelStop {
		return nil, ErrNoModel
	}

	first := trimmed
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	first = strings.TrimSpace(first)

	switch {
	case strings.HasPrefix(first, "svm_type"):
		return parseSVR(trimmed)
	case strings.HasPrefix(first, "--"),
		strings.HasPrefix(first, "function"),
		strings.HasPrefix(first, "local"):
		return luaModel{source: text}, nil
	default:
		return nil, ErrUnknownModelFormat
	}
}
