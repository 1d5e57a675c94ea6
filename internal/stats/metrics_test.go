package stats

import (
	"math"
	"testing"
)

// uniformData spreads n samples evenly across [0, 1) so every bin
// receives an identical count.
func uniformData(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = (float64(i) + 0.5) / float64(n)
	}
	return data
}

func TestEntropyUniform(t *testing.T) {
	got := Entropy(uniformData(10000))
	want := math.Log2(entropyBins)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("Entropy(uniform) = %.4f, want %.4f", got, want)
	}
}

func TestEntropyDegenerate(t *testing.T) {
	constant := make([]float64, 1000)
	for i := range constant {
		constant[i] = 0.5
	}
	if got := Entropy(constant); got != 0 {
		t.Errorf("Entropy(constant) = %v, want 0", got)
	}
	if got := Entropy(nil); got != 0 {
		t.Errorf("Entropy(nil) = %v, want 0", got)
	}
}

func TestChiSquaredUniform(t *testing.T) {
	chi2, p := ChiSquared(uniformData(10000))
	if chi2 > 1e-9 {
		t.Errorf("chi2 = %v, want 0 for an exactly uniform sample", chi2)
	}
	if p < 0.999 {
		t.Errorf("p = %v, want ~1 for an exactly uniform sample", p)
	}
}

func TestChiSquaredSkewed(t *testing.T) {
	constant := make([]float64, 1000)
	for i := range constant {
		constant[i] = 0.25
	}
	chi2, p := ChiSquared(constant)
	if chi2 < 1000 {
		t.Errorf("chi2 = %v, want a large statistic when all mass sits in one bin", chi2)
	}
	if p > 1e-6 {
		t.Errorf("p = %v, want ~0 when all mass sits in one bin", p)
	}
}

func TestAutocorrelationAlternating(t *testing.T) {
	data := make([]float64, 1000)
	for i := range data {
		data[i] = float64(i % 2)
	}
	if corr := Autocorrelation(data, 1); corr > -0.9 {
		t.Errorf("Autocorrelation(alternating, 1) = %v, want near -1", corr)
	}
}

func TestAutocorrelationEdgeCases(t *testing.T) {
	if got := Autocorrelation([]float64{0.5}, 1); got != 0 {
		t.Errorf("Autocorrelation(short series) = %v, want 0", got)
	}
	constant := []float64{0.3, 0.3, 0.3, 0.3}
	if got := Autocorrelation(constant, 1); got != 0 {
		t.Errorf("Autocorrelation(zero variance) = %v, want 0", got)
	}
}

func TestAnalyzeSeededSource(t *testing.T) {
	m := Analyze(SeededSamples(5000, 42))
	if m.Entropy < 6.4 {
		t.Errorf("Entropy = %v, want near %v for a healthy PRNG", m.Entropy, idealEntropy)
	}
	if m.ChiSquared < 40 || m.ChiSquared > 200 {
		t.Errorf("ChiSquared = %v, want near the 99 degrees of freedom", m.ChiSquared)
	}
	if m.Correlation > 0.1 {
		t.Errorf("Correlation = %v, want near 0", m.Correlation)
	}
	if m.PValue < 0 || m.PValue > 1 {
		t.Errorf("PValue = %v, want a probability", m.PValue)
	}
}

func TestAnalyzeFlagsSawtooth(t *testing.T) {
	// A repeating ramp has a perfectly uniform histogram but extreme
	// serial correlation, so only the autocorrelation arm can catch it.
	data := make([]float64, 2000)
	for i := range data {
		data[i] = float64(i%100) / 100
	}
	m := Analyze(data)
	if m.Passes {
		t.Error("Analyze passed a sawtooth stream")
	}
	if m.Correlation < corrCeiling {
		t.Errorf("Correlation = %v, want above %v", m.Correlation, corrCeiling)
	}
}
