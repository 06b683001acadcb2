// Package poker counts distinguishable card hands drawable from
// generalized decks, combinatorially and in log space. It supports
// analysis of games beyond standard 52-card poker: variable rank and
// suit counts and wild cards. Counts of each hand category can be
// compared to rank categories by rarity.
package poker

import "math"

// DefaultHandSize is the draw size used when a constructor is given a
// non-positive size.
const DefaultHandSize = 5

// HandType is a category of hands with a combinatorial counting rule.
// Implementations are immutable parameter records; LogCount is pure
// and safe for concurrent use. Configurations with zero ways return
// -Inf, never an error, so results always combine arithmetically.
type HandType interface {
	// HandSize returns the number of cards drawn per hand.
	HandSize() int

	// LogCount returns the natural log of the number of
	// distinguishable hands of this type drawable from d.
	LogCount(d Deck) float64
}

// Count returns the number of hands of type t drawable from d.
func Count(t HandType, d Deck) float64 {
	return math.Exp(t.LogCount(d))
}

// LogProbability returns the log-count of t against d. With normalize
// set, the result is shifted down by the log of the total number of
// unordered draws of t's hand size, making it a log-probability.
func LogProbability(t HandType, d Deck, normalize bool) float64 {
	logCount := t.LogCount(d)
	if !normalize {
		return logCount
	}
	return logCount - logTotalDraws(d, t.HandSize())
}

// logTotalDraws is log C(totalCards, size) computed with the same
// shifted sums as LogBinomial, so normalized probabilities agree with
// the primitive to floating-point precision.
func logTotalDraws(d Deck, size int) float64 {
	total := d.TotalCards()
	if size < 0 || size > total {
		return math.Inf(-1)
	}
	var sum float64
	for i := 1; i <= size; i++ {
		sum += math.Log(float64(total-size+i)) - math.Log(float64(i))
	}
	return sum
}

// normalizeSize applies the DefaultHandSize fallback used by all the
// hand type constructors.
func normalizeSize(size int) int {
	if size <= 0 {
		return DefaultHandSize
	}
	return size
}
