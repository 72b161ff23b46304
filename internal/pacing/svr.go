package pacing

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// svrModel is a single-feature support vector regression model in the
// libsvm text format: a header (svm_type, kernel_type, gamma, rho,
// total_sv, ...) followed by an "SV" section of one
// "coefficient index:value" line per support vector.
type svrModel struct {
	svmType     string
	kernel      string
	gamma       float64
	rho         float64
	coefs       []float64
	vectors     []float64
	probability bool
}

func parseSVR(text string) (*svrModel, error) {
	m := &svrModel{kernel: "rbf"}

	scanner := bufio.NewScanner(strings.NewReader(text))
	inSV := false
	totalSV := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !inSV {
			fields := strings.Fields(line)
			key := fields[0]
			switch key {
			case "SV":
				inSV = true
				continue
			case "svm_type":
				if len(fields) < 2 {
					return nil, fmt.Errorf("%w: bare svm_type", ErrMalformedModel)
				}
				m.svmType = fields[1]
			case "kernel_type":
				if len(fields) < 2 {
					return nil, fmt.Errorf("%w: bare kernel_type", ErrMalformedModel)
				}
				m.kernel = fields[1]
			case "gamma":
				v, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: gamma %q", ErrMalformedModel, fields[1])
				}
				m.gamma = v
			case "rho":
				v, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: rho %q", ErrMalformedModel, fields[1])
				}
				m.rho = v
			case "total_sv":
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: total_sv %q", ErrMalformedModel, fields[1])
				}
				totalSV = n
			case "probA", "probB":
				m.probability = true
			case "nr_class", "degree", "coef0", "nr_sv", "label":
				// Header fields the single-feature regression does not use.
			default:
				return nil, fmt.Errorf("%w: unknown header %q", ErrMalformedModel, key)
			}
			continue
		}

		coef, sv, err := parseSupportVector(line)
		if err != nil {
			return nil, err
		}
		m.coefs = append(m.coefs, coef)
		m.vectors = append(m.vectors, sv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModel, err)
	}

	if m.svmType != "epsilon_svr" && m.svmType != "nu_svr" {
		return nil, fmt.Errorf("%w: svm_type %q", ErrModelInference, m.svmType)
	}
	if m.kernel != "rbf" && m.kernel != "linear" {
		return nil, fmt.Errorf("%w: kernel_type %q", ErrModelInference, m.kernel)
	}
	if len(m.coefs) == 0 {
		return nil, fmt.Errorf("%w: no support vectors", ErrMalformedModel)
	}
	if totalSV >= 0 && totalSV != len(m.coefs) {
		return nil, fmt.Errorf("%w: total_sv %d but %d vectors", ErrMalformedModel, totalSV, len(m.coefs))
	}

	return m, nil
}

// parseSupportVector parses one "coefficient index:value" line. Only
// the first feature is used; the model is one-dimensional.
func parseSupportVector(line string) (coef, sv float64, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: support vector %q", ErrMalformedModel, line)
	}
	coef, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: coefficient %q", ErrMalformedModel, fields[0])
	}
	idx, val, ok := strings.Cut(fields[1], ":")
	if !ok || idx == "" {
		return 0, 0, fmt.Errorf("%w: feature %q", ErrMalformedModel, fields[1])
	}
	sv, err = strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: feature value %q", ErrMalformedModel, val)
	}
	return coef, sv, nil
}

// Predict evaluates the regression decision function at speed.
func (m *svrModel) Predict(speed float64) (float64, error) {
	var sum float64
	switch m.kernel {
	case "linear":
		for i, c := range m.coefs {
			sum += c * speed * m.vectors[i]
		}
	default: // rbf
		for i, c := range m.coefs {
			d := speed - m.vectors[i]
			sum += c * math.Exp(-m.gamma*d*d)
		}
	}
	return sum - m.rho, nil
}

// Probability reports whether the model carries probability estimate
// parameters. They are never used for prediction.
func (m *svrModel) Probability() bool {
	return m.probability
}
