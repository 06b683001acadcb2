package poker

import (
	"math"
	"testing"
)

func TestBinomial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n, k int
		want float64
	}{
		{"52 choose 5", 52, 5, 2598960},
		{"13 choose 5", 13, 5, 1287},
		{"4 choose 2", 4, 2, 6},
		{"choose zero", 17, 0, 1},
		{"choose all", 9, 9, 1},
		{"zero choose zero", 0, 0, 1},
		{"k negative", 10, -1, 0},
		{"k exceeds n", 4, 5, 0},
		{"n negative", -3, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Binomial(tt.n, tt.k); got != tt.want {
				t.Errorf("Binomial(%d, %d) = %v, want %v", tt.n, tt.k, got, tt.want)
			}
		})
	}
}

func TestLogBinomialMatchesBinomial(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 30; n++ {
		for k := 0; k <= n; k++ {
			exact := Binomial(n, k)
			got := math.Exp(LogBinomial(n, k))
			if math.Abs(got-exact) > 1e-6*exact+1e-9 {
				t.Errorf("exp(LogBinomial(%d, %d)) = %v, want %v", n, k, got, exact)
			}
		}
	}
}

func TestLogBinomialSentinels(t *testing.T) {
	t.Parallel()
	if got := LogBinomial(5, 6); !math.IsInf(got, -1) {
		t.Errorf("LogBinomial(5, 6) = %v, want -Inf", got)
	}
	if got := LogBinomial(5, -1); !math.IsInf(got, -1) {
		t.Errorf("LogBinomial(5, -1) = %v, want -Inf", got)
	}
	if got := LogBinomial(12, 0); got != 0 {
		t.Errorf("LogBinomial(12, 0) = %v, want 0", got)
	}
}

func TestLogBinomialLargeArguments(t *testing.T) {
	t.Parallel()
	// C(2000, 1000) overflows float64 outright; the log form must
	// stay finite and positive.
	got := LogBinomial(2000, 1000)
	if math.IsInf(got, 0) || math.IsNaN(got) || got <= 0 {
		t.Errorf("LogBinomial(2000, 1000) = %v, want a finite positive value", got)
	}
	if exact := Binomial(2000, 1000); !math.IsInf(exact, 1) {
		// Documents the overflow the log form exists to avoid.
		t.Errorf("Binomial(2000, 1000) = %v, expected +Inf overflow", exact)
	}
}
