package poker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardCategories() []HandType {
	return []HandType{
		NewStraightFlush(true, 5),
		NewKOfAKind(4, 5),
		NewKOfAKindChain([]int{3, 2}, 5),
		NewFlush(true, true, 5),
		NewStraight(true, true, 5),
		NewKOfAKind(3, 5),
		NewKOfAKindChain([]int{2, 2}, 5),
		NewKOfAKind(2, 5),
	}
}

func TestLogProbabilityMatchesLogBinomial(t *testing.T) {
	t.Parallel()
	decks := []Deck{StandardDeck(), NewDeck(13, 4, 2), NewDeck(9, 6, 0)}
	for _, deck := range decks {
		total := LogBinomial(deck.TotalCards(), 5)
		for _, hand := range standardCategories() {
			want := hand.LogCount(deck) - total
			got := LogProbability(hand, deck, true)
			assert.InDelta(t, want, got, 1e-9)
		}
	}
}

func TestLogProbabilityUnnormalized(t *testing.T) {
	t.Parallel()
	deck := StandardDeck()
	hand := NewFlush(true, true, 5)
	assert.Equal(t, hand.LogCount(deck), LogProbability(hand, deck, false))
}

func TestCategoriesSumToTotalDraws(t *testing.T) {
	t.Parallel()
	// The eight counted categories plus the 1,302,540 "nothing" hands
	// partition all C(52, 5) draws.
	deck := StandardDeck()
	sum := 0.0
	for _, hand := range standardCategories() {
		count := Count(hand, deck)
		require.False(t, math.IsInf(count, 0))
		sum += math.Round(count)
	}
	assert.Equal(t, float64(2598960), sum+1302540)
}

func TestCountsWithinSanityBound(t *testing.T) {
	t.Parallel()
	decks := []Deck{StandardDeck(), NewDeck(13, 4, 2), NewDeck(20, 5, 1)}
	for _, deck := range decks {
		bound := Binomial(deck.TotalCards(), 5)
		for _, hand := range standardCategories() {
			count := Count(hand, deck)
			assert.GreaterOrEqual(t, count, 0.0)
			assert.LessOrEqualf(t, count, bound, "%#v on %+v", hand, deck)
		}
	}
}

func TestDeckDerivedFields(t *testing.T) {
	t.Parallel()
	deck := NewDeck(13, 4, 2)
	assert.Equal(t, 52, deck.NonWild())
	assert.Equal(t, 54, deck.TotalCards())

	fresh := deck.NewDeck()
	assert.Equal(t, deck, fresh)

	standard := StandardDeck()
	assert.Equal(t, 52, standard.TotalCards())
}
