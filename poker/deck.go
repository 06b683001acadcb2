package poker

// Standard deck parameters, used as defaults throughout.
const (
	StandardRanks = 13
	StandardSuits = 4
)

// Deck describes a generalized card pool: Ranks distinct ranks, Suits
// suits per rank, and Wild rank-less wild cards. Decks are plain
// values; copy freely, never mutate.
type Deck struct {
	Ranks int
	Suits int
	Wild  int
}

// NewDeck creates a deck with the given parameters.
func NewDeck(ranks, suits, wild int) Deck {
	return Deck{Ranks: ranks, Suits: suits, Wild: wild}
}

// StandardDeck returns the usual 52-card deck with no wild cards.
func StandardDeck() Deck {
	return NewDeck(StandardRanks, StandardSuits, 0)
}

// NewDeck returns a fresh deck with the same parameters, for callers
// that want their own instance rather than sharing one.
func (d Deck) NewDeck() Deck {
	return NewDeck(d.Ranks, d.Suits, d.Wild)
}

// NonWild returns the number of suited cards in the deck.
func (d Deck) NonWild() int {
	return d.Ranks * d.Suits
}

// TotalCards returns the full deck size including wild cards.
func (d Deck) TotalCards() int {
	return d.NonWild() + d.Wild
}
