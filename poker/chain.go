package poker

// KOfAKindChain counts hands with several simultaneous exact
// multiplicity groups: Ks of [3, 2] is a full house, [2, 2] is two
// pair. Hand size left over after the listed groups is filled by
// multiplicity-1 singles. Wild cards are ignored; the chain formula
// has no wild partition (known limitation shared with the straight
// and flush counters).
type KOfAKindChain struct {
	Ks   []int
	Size int
}

// NewKOfAKindChain returns a counter for the given multiplicity
// multiset; size <= 0 selects DefaultHandSize.
func NewKOfAKindChain(ks []int, size int) KOfAKindChain {
	return KOfAKindChain{Ks: ks, Size: normalizeSize(size)}
}

// HandSize returns the number of cards drawn per hand.
func (t KOfAKindChain) HandSize() int { return t.Size }

// LogCount sums, per multiplicity group, the ways to pick the group's
// ranks from the ranks not yet committed and a suit set for each of
// those ranks. The product is commutative, so group order does not
// matter. Chains that overflow the hand size come out as -Inf via the
// negative singles count.
func (t KOfAKindChain) LogCount(d Deck) float64 {
	// multiplicity -> number of ranks needed at that multiplicity
	groups := make(map[int]int)
	used := 0
	for _, k := range t.Ks {
		groups[k]++
		used += k
	}
	groups[1] += t.Size - used

	var sum float64
	chosen := 0
	for mult, ranks := range groups {
		sum += LogBinomial(d.Ranks-chosen, ranks) +
			float64(ranks)*LogBinomial(d.Suits, mult)
		chosen += ranks
	}
	return sum
}
