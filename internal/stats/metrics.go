package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	entropyBins  = 100
	idealEntropy = 6.64 // log2(100)

	// Thresholds for the pass/fail verdict on a source.
	pValueFloor = 0.05
	corrCeiling = 0.05
	corrLag     = 1
)

// Metrics holds the randomness quality measurements for one sample set.
type Metrics struct {
	Entropy     float64
	ChiSquared  float64
	PValue      float64
	Correlation float64
	Passes      bool
}

// Analyze computes every metric for data and applies the pass/fail
// verdict: the chi-squared test must not reject uniformity and the
// lag-1 autocorrelation must stay near zero.
func Analyze(data []float64) Metrics {
	chi2, p := ChiSquared(data)
	corr := math.Abs(Autocorrelation(data, corrLag))
	return Metrics{
		Entropy:     Entropy(data),
		ChiSquared:  chi2,
		PValue:      p,
		Correlation: corr,
		Passes:      p > pValueFloor && corr < corrCeiling,
	}
}

// Entropy returns the Shannon entropy of data binned into 100 buckets,
// in bits. A perfectly uniform source approaches log2(100) = 6.64.
func Entropy(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	bins := binCounts(data, entropyBins)
	total := float64(len(data))
	entropy := 0.0
	for _, count := range bins {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// ChiSquared tests data against the uniform distribution over 100 bins
// and returns the statistic together with its p-value under the
// chi-squared distribution with 99 degrees of freedom.
func ChiSquared(data []float64) (chi2, pValue float64) {
	if len(data) == 0 {
		return 0, 1
	}
	bins := binCounts(data, entropyBins)
	expected := float64(len(data)) / entropyBins
	for _, observed := range bins {
		diff := float64(observed) - expected
		chi2 += diff * diff / expected
	}
	dist := distuv.ChiSquared{K: entropyBins - 1}
	return chi2, dist.Survival(chi2)
}

// Autocorrelation returns the correlation between data and itself
// shifted by lag. Values near zero indicate successive samples do not
// predict each other.
func Autocorrelation(data []float64, lag int) float64 {
	if len(data) <= lag {
		return 0
	}
	mean := 0.0
	for _, x := range data {
		mean += x
	}
	mean /= float64(len(data))

	numerator := 0.0
	for i := 0; i < len(data)-lag; i++ {
		numerator += (data[i] - mean) * (data[i+lag] - mean)
	}
	denominator := 0.0
	for _, x := range data {
		d := x - mean
		denominator += d * d
	}
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func binCounts(data []float64, n int) []int {
	bins := make([]int, n)
	for _, x := range data {
		i := int(x * float64(n))
		if i >= n {
			i = n - 1
		}
		bins[i]++
	}
	return bins
}
