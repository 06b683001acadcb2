package poker

import "math"

// KOfAKind counts hands where exactly K cards share one rank, not "at
// least K". The remaining cards are filled one suit each from the
// other ranks. A second rank reaching the same multiplicity is
// deliberately not excluded; the classical poker counts this engine
// is validated against use the same simplification.
type KOfAKind struct {
	K    int
	Size int
}

// NewKOfAKind returns an exact k-of-a-kind counter for hands of the
// given size; size <= 0 selects DefaultHandSize.
func NewKOfAKind(k, size int) KOfAKind {
	return KOfAKind{K: k, Size: normalizeSize(size)}
}

// HandSize returns the number of cards drawn per hand.
func (t KOfAKind) HandSize() int { return t.Size }

// LogCount returns the log of the number of hands with exactly K
// copies of one rank. Wild cards may stand in for any of the K
// copies; each split between wilds and suited cards is counted in
// exact arithmetic and only the accumulated sum moves to log space.
func (t KOfAKind) LogCount(d Deck) float64 {
	if t.K > d.Suits+d.Wild || t.K > t.Size {
		return math.Inf(-1)
	}

	if d.Wild == 0 {
		// Pure log space: rank to copy, suits for the copies, then
		// the remaining cards from the other ranks, one suit each.
		copies := math.Log(float64(d.Ranks)) + LogBinomial(d.Suits, t.K)
		return copies + LogBinomial(d.Ranks-1, t.Size-t.K) +
			float64(t.Size-t.K)*math.Log(float64(d.Suits))
	}

	// Partition the K copies between w wild cards and K-w suited
	// cards. The partitions mix additively, so each term stays exact.
	fill := Binomial(d.Ranks-1, t.Size-t.K) *
		math.Pow(float64(d.Suits), float64(t.Size-t.K))
	var sum float64
	for w := 0; w <= min(d.Wild, t.K-1); w++ {
		ways := Binomial(d.Wild, w) * float64(d.Ranks) * Binomial(d.Suits, t.K-w)
		sum += ways * fill
	}
	if d.Wild >= t.K {
		// All K copies wild; no rank is chosen since wild cards
		// carry none.
		sum += Binomial(d.Wild, t.K)
	}
	return math.Log(sum)
}
