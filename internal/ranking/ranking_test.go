package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavraj575/poker-variant-generator/poker"
)

func TestRankStandardDeck(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Name: "one pair", Type: poker.NewKOfAKind(2, 5)},
		{Name: "high card", Type: poker.NewHighCard(5)},
		{Name: "straight flush", Type: poker.NewStraightFlush(true, 5)},
		{Name: "full house", Type: poker.NewKOfAKindChain([]int{3, 2}, 5)},
		{Name: "flush", Type: poker.NewFlush(true, true, 5)},
	}

	results := Rank(poker.StandardDeck(), entries)
	require.Len(t, results, len(entries))

	var names []string
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"straight flush", "full house", "flush", "one pair", "high card",
	}, names)

	// Rarest category first, catch-all sentinel last.
	assert.False(t, results[0].Impossible)
	assert.True(t, results[len(results)-1].CatchAll)
}

func TestRankFlagsImpossibleEntries(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Name: "one pair", Type: poker.NewKOfAKind(2, 5)},
		{Name: "five of a kind", Type: poker.NewKOfAKind(5, 5)},
	}

	// Without wilds a four-suit deck cannot supply five copies.
	results := Rank(poker.StandardDeck(), entries)
	require.Len(t, results, 2)
	assert.Equal(t, "five of a kind", results[0].Name)
	assert.True(t, results[0].Impossible)
	assert.Zero(t, results[0].Count)
	assert.False(t, results[1].Impossible)
	assert.Positive(t, results[1].Probability)
}

func TestRankProbabilityIsNormalized(t *testing.T) {
	t.Parallel()
	deck := poker.StandardDeck()
	entries := []Entry{{Name: "flush", Type: poker.NewFlush(true, true, 5)}}

	results := Rank(deck, entries)
	require.Len(t, results, 1)
	want := results[0].Count / poker.Binomial(deck.TotalCards(), 5)
	assert.InEpsilon(t, want, results[0].Probability, 1e-9)
}
