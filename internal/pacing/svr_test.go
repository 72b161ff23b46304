package pacing

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// referenceModel is the production epsilon-SVR model shipped for webview
// scroll pacing. Kept verbatim as a parser fixture.
const referenceModel = `svm_type epsilon_svr
kernel_type rbf
gamma 0.1
nr_class 2
total_sv 31
rho -30.064
SV
-375.1906993292752 1:0.4
-1000 1:0.5
76.88789430911002 1:0.9
1000 1:1
1000 1:1.1
1000 1:1.3
-1000 1:1.5
-1000 1:2
152.4244333825901 1:2.8
-658.9273041510949 1:3.6
1000 1:4
110.2583412231241 1:4.8
-1000 1:5.6
1000 1:6
-1000 1:6.8
497.4609352251786 1:7.6
1000 1:8
-1000 1:8.8
-816.4934305923082 1:9.6
1000 1:10
471.5388027392294 1:11
-1000 1:12
771.8231997159018 1:13
-276.2898550887135 1:14
36.63110800575065 1:16
6.134237008088796 1:18
-13.2777632498265 1:20
16.39637833119732 1:21
-2.474188188578108 1:23
3.300645387053644 1:25
-0.202734727425062 1:28`

func TestParseSVRReferenceModel(t *testing.T) {
	m, err := parseSVR(referenceModel)
	if err != nil {
		t.Fatalf("parseSVR() error: %v", err)
	}

	if m.svmType != "epsilon_svr" {
		t.Errorf("svmType = %q, want epsilon_svr", m.svmType)
	}
	if m.kernel != "rbf" {
		t.Errorf("kernel = %q, want rbf", m.kernel)
	}
	if m.gamma != 0.1 {
		t.Errorf("gamma = %v, want 0.1", m.gamma)
	}
	if m.rho != -30.064 {
		t.Errorf("rho = %v, want -30.064", m.rho)
	}
	if len(m.coefs) != 31 || len(m.vectors) != 31 {
		t.Fatalf("got %d coefs / %d vectors, want 31", len(m.coefs), len(m.vectors))
	}
	if m.coefs[0] != -375.1906993292752 || m.vectors[0] != 0.4 {
		t.Errorf("first SV = (%v, %v), want (-375.1906993292752, 0.4)", m.coefs[0], m.vectors[0])
	}
	if m.Probability() {
		t.Error("Probability() = true, want false")
	}

	got, err := m.Predict(4.0)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("Predict(4.0) = %v, want finite", got)
	}
}

func TestSVRPredictRBF(t *testing.T) {
	model := `svm_type epsilon_svr
kernel_type rbf
gamma 1
total_sv 1
rho 0
SV
2 1:0`

	m, err := parseSVR(model)
	if err != nil {
		t.Fatalf("parseSVR() error: %v", err)
	}

	tests := []struct {
		speed float64
		want  float64
	}{
		{0, 2},
		{1, 2 * math.Exp(-1)},
		{-1, 2 * math.Exp(-1)},
	}
	for _, tt := range tests {
		got, err := m.Predict(tt.speed)
		if err != nil {
			t.Fatalf("Predict(%v) error: %v", tt.speed, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Predict(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestSVRPredictLinear(t *testing.T) {
	model := `svm_type nu_svr
kernel_type linear
total_sv 2
rho 1
SV
2 1:3
-1 1:4`

	m, err := parseSVR(model)
	if err != nil {
		t.Fatalf("parseSVR() error: %v", err)
	}
	// 2*5*3 + (-1)*5*4 - 1
	got, err := m.Predict(5)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if got != 9 {
		t.Errorf("Predict(5) = %v, want 9", got)
	}
}

func TestSVRProbabilityFlag(t *testing.T) {
	model := `svm_type epsilon_svr
kernel_type rbf
gamma 1
probA 0.5
rho 0
SV
1 1:1`

	m, err := parseSVR(model)
	if err != nil {
		t.Fatalf("parseSVR() error: %v", err)
	}
	if !m.Probability() {
		t.Error("Probability() = false, want true")
	}
}

func TestParseSVRErrors(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		wantErr error
	}{
		{
			name:    "unknown header",
			model:   "svm_type epsilon_svr\nwhatever 1\nSV\n1 1:1",
			wantErr: ErrMalformedModel,
		},
		{
			name:    "classification type",
			model:   "svm_type c_svc\nkernel_type rbf\ngamma 1\nrho 0\nSV\n1 1:1",
			wantErr: ErrModelInference,
		},
		{
			name:    "unsupported kernel",
			model:   "svm_type epsilon_svr\nkernel_type polynomial\ngamma 1\nrho 0\nSV\n1 1:1",
			wantErr: ErrModelInference,
		},
		{
			name:    "no support vectors",
			model:   "svm_type epsilon_svr\nkernel_type rbf\ngamma 1\nrho 0\nSV",
			wantErr: ErrMalformedModel,
		},
		{
			name:    "total_sv mismatch",
			model:   "svm_type epsilon_svr\nkernel_type rbf\ngamma 1\ntotal_sv 3\nrho 0\nSV\n1 1:1",
			wantErr: ErrMalformedModel,
		},
		{
			name:    "bad gamma",
			model:   "svm_type epsilon_svr\ngamma abc\nrho 0\nSV\n1 1:1",
			wantErr: ErrMalformedModel,
		},
		{
			name:    "bad support vector",
			model:   "svm_type epsilon_svr\nkernel_type rbf\ngamma 1\nrho 0\nSV\nnope",
			wantErr: ErrMalformedModel,
		},
		{
			name:    "missing feature separator",
			model:   "svm_type epsilon_svr\nkernel_type rbf\ngamma 1\nrho 0\nSV\n1 1",
			wantErr: ErrMalformedModel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSVR(tt.model)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseSVR() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSniffsSVR(t *testing.T) {
	m, err := Load(referenceModel)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, ok := m.(*svrModel); !ok {
		t.Fatalf("Load() returned %T, want *svrModel", m)
	}

	// Leading blank lines must not confuse format sniffing.
	m, err = Load("\n\n" + referenceModel)
	if err != nil {
		t.Fatalf("Load() with leading blanks error: %v", err)
	}
	if _, ok := m.(*svrModel); !ok {
		t.Fatalf("Load() returned %T, want *svrModel", m)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	if _, err := Load("PK\x03\x04 not a model"); !errors.Is(err, ErrUnknownModelFormat) {
		t.Errorf("Load() error = %v, want %v", err, ErrUnknownModelFormat)
	}
}

func TestLoadNoModel(t *testing.T) {
	for _, text := range []string{"", "   ", "stop", " stop \n"} {
		if _, err := Load(text); !errors.Is(err, ErrNoModel) {
			t.Errorf("Load(%q) error = %v, want %v", strings.TrimSpace(text), err, ErrNoModel)
		}
	}
}
