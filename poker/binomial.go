package poker

import "math"

// Binomial returns C(n, k) as an exact product-ratio. Out-of-range
// pairs (k < 0 or k > n) have zero ways and return 0 rather than
// erroring, so partition sums can call it unconditionally.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result *= float64(n-k+i) / float64(i)
	}
	return result
}

// LogBinomial returns log C(n, k), or -Inf when there are zero ways.
// Unlike Binomial it stays finite for coefficients far beyond float64
// range, so it is the form used wherever only a final log-count or
// log-probability is needed.
func LogBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	var sum float64
	for i := 1; i <= k; i++ {
		sum += math.Log(float64(n-k+i)) - math.Log(float64(i))
	}
	return sum
}
