package poker

import "math"

// startingPositions returns how many low ranks a run of size
// consecutive ranks can start from. The ace-loop convention adds one
// wraparound start where the top rank plays low.
func startingPositions(d Deck, size int, aceLoop bool) int {
	n := d.Ranks - size + 1
	if aceLoop {
		n++
	}
	return n
}

// StraightFlush counts runs of consecutive ranks all in one suit.
// Wild cards are ignored (known limitation).
type StraightFlush struct {
	AceLoop bool
	Size    int
}

// NewStraightFlush returns a straight flush counter; size <= 0
// selects DefaultHandSize.
func NewStraightFlush(aceLoop bool, size int) StraightFlush {
	return StraightFlush{AceLoop: aceLoop, Size: normalizeSize(size)}
}

// HandSize returns the number of cards drawn per hand.
func (t StraightFlush) HandSize() int { return t.Size }

// LogCount returns log(startingPositions * suits).
func (t StraightFlush) LogCount(d Deck) float64 {
	positions := startingPositions(d, t.Size, t.AceLoop)
	if positions <= 0 {
		return math.Inf(-1)
	}
	return math.Log(float64(positions * d.Suits))
}

// Straight counts runs of consecutive ranks, one suit per card, suits
// otherwise free. With AvoidStraightFlush the monochrome runs are
// subtracted so straights and straight flushes stay disjoint. Wild
// cards are ignored (known limitation).
type Straight struct {
	AvoidStraightFlush bool
	AceLoop            bool
	Size               int
}

// NewStraight returns a straight counter; size <= 0 selects
// DefaultHandSize.
func NewStraight(avoidStraightFlush, aceLoop bool, size int) Straight {
	return Straight{
		AvoidStraightFlush: avoidStraightFlush,
		AceLoop:            aceLoop,
		Size:               normalizeSize(size),
	}
}

// HandSize returns the number of cards drawn per hand.
func (t Straight) HandSize() int { return t.Size }

// LogCount counts suits^size suit assignments per starting position,
// minus the suits monochrome ones when straight flushes are excluded.
func (t Straight) LogCount(d Deck) float64 {
	positions := startingPositions(d, t.Size, t.AceLoop)
	if positions <= 0 {
		return math.Inf(-1)
	}
	if t.AvoidStraightFlush {
		perPosition := math.Pow(float64(d.Suits), float64(t.Size)) - float64(d.Suits)
		return math.Log(float64(positions) * perPosition)
	}
	return math.Log(float64(positions)) + float64(t.Size)*math.Log(float64(d.Suits))
}

// Flush counts hands all in one suit, ranks otherwise free. With
// AvoidStraightFlush each suit's straight flushes are subtracted
// first. Wild cards are ignored (known limitation).
type Flush struct {
	AvoidStraightFlush bool
	AceLoop            bool
	Size               int
}

// NewFlush returns a flush counter; size <= 0 selects DefaultHandSize.
func NewFlush(avoidStraightFlush, aceLoop bool, size int) Flush {
	return Flush{
		AvoidStraightFlush: avoidStraightFlush,
		AceLoop:            aceLoop,
		Size:               normalizeSize(size),
	}
}

// HandSize returns the number of cards drawn per hand.
func (t Flush) HandSize() int { return t.Size }

// LogCount counts C(ranks, size) same-suit rank selections per suit.
func (t Flush) LogCount(d Deck) float64 {
	if t.AvoidStraightFlush {
		positions := startingPositions(d, t.Size, t.AceLoop)
		perSuit := Binomial(d.Ranks, t.Size) - float64(positions)
		if perSuit <= 0 {
			return math.Inf(-1)
		}
		return math.Log(float64(d.Suits) * perSuit)
	}
	return math.Log(float64(d.Suits)) + LogBinomial(d.Ranks, t.Size)
}

// HighCard is the catch-all worst category. It has no counting rule
// of its own; LogCount is +Inf, a sentinel meaning "the remainder
// after every other category", so it always ranks most common.
type HighCard struct {
	Size int
}

// NewHighCard returns the catch-all category; size <= 0 selects
// DefaultHandSize.
func NewHighCard(size int) HighCard {
	return HighCard{Size: normalizeSize(size)}
}

// HandSize returns the number of cards drawn per hand.
func (t HighCard) HandSize() int { return t.Size }

// LogCount always returns +Inf; see the type comment.
func (t HighCard) LogCount(Deck) float64 {
	return math.Inf(1)
}
