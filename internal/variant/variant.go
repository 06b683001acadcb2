// Package variant loads game variant definitions: a deck plus the
// hand categories played over it, written as HCL files.
package variant

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pranavraj575/poker-variant-generator/internal/ranking"
	"github.com/pranavraj575/poker-variant-generator/poker"
)

// Config is a parsed variant file, which may define several variants.
type Config struct {
	Variants []Variant `hcl:"variant,block"`
}

// Variant defines one game: a deck, a hand size and the hand
// categories to count.
type Variant struct {
	Name     string       `hcl:"name,label"`
	HandSize int          `hcl:"hand_size,optional"`
	Deck     DeckConfig   `hcl:"deck,block"`
	Hands    []HandConfig `hcl:"hand,block"`
}

// DeckConfig holds the deck parameters of a variant.
type DeckConfig struct {
	Ranks int `hcl:"ranks"`
	Suits int `hcl:"suits"`
	Wild  int `hcl:"wild,optional"`
}

// HandConfig names one hand category. Type selects the counting rule;
// the remaining attributes apply only to some types.
type HandConfig struct {
	Name               string `hcl:"name,label"`
	Type               string `hcl:"type"`
	K                  *int   `hcl:"k,optional"`
	Of                 []int  `hcl:"of,optional"`
	AvoidStraightFlush *bool  `hcl:"avoid_straight_flush,optional"`
	AceLoop            *bool  `hcl:"ace_loop,optional"`
}

// Load parses and validates a variant file.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", path, diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", path, diags.Error())
	}

	for i := range config.Variants {
		if err := config.Variants[i].validate(); err != nil {
			return nil, fmt.Errorf("variant %q: %w", config.Variants[i].Name, err)
		}
	}
	return &config, nil
}

// Variant returns the named variant, or the only one when name is
// empty and the file defines a single variant.
func (c *Config) Variant(name string) (*Variant, error) {
	if name == "" {
		if len(c.Variants) != 1 {
			return nil, fmt.Errorf("file defines %d variants, pick one with --variant", len(c.Variants))
		}
		return &c.Variants[0], nil
	}
	for i := range c.Variants {
		if c.Variants[i].Name == name {
			return &c.Variants[i], nil
		}
	}
	return nil, fmt.Errorf("no variant named %q", name)
}

func (v *Variant) validate() error {
	if v.HandSize < 0 {
		return fmt.Errorf("hand_size cannot be negative, got %d", v.HandSize)
	}
	if v.Deck.Ranks < 1 || v.Deck.Suits < 1 {
		return fmt.Errorf("deck needs at least one rank and one suit, got %d/%d",
			v.Deck.Ranks, v.Deck.Suits)
	}
	if v.Deck.Wild < 0 {
		return fmt.Errorf("wild count cannot be negative, got %d", v.Deck.Wild)
	}
	if len(v.Hands) == 0 {
		return fmt.Errorf("variant defines no hands")
	}
	for _, h := range v.Hands {
		if _, err := h.build(v.size()); err != nil {
			return fmt.Errorf("hand %q: %w", h.Name, err)
		}
	}
	return nil
}

func (v *Variant) size() int {
	if v.HandSize == 0 {
		return poker.DefaultHandSize
	}
	return v.HandSize
}

// BuildDeck returns the variant's deck.
func (v *Variant) BuildDeck() poker.Deck {
	return poker.NewDeck(v.Deck.Ranks, v.Deck.Suits, v.Deck.Wild)
}

// Entries converts the variant's hand list into ranking entries.
func (v *Variant) Entries() ([]ranking.Entry, error) {
	entries := make([]ranking.Entry, 0, len(v.Hands))
	for _, h := range v.Hands {
		hand, err := h.build(v.size())
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", h.Name, err)
		}
		entries = append(entries, ranking.Entry{Name: h.Name, Type: hand})
	}
	return entries, nil
}

func (h HandConfig) build(size int) (poker.HandType, error) {
	switch h.Type {
	case "high-card":
		return poker.NewHighCard(size), nil
	case "kind":
		if h.K == nil {
			return nil, fmt.Errorf("type %q requires k", h.Type)
		}
		return poker.NewKOfAKind(*h.K, size), nil
	case "chain":
		if len(h.Of) == 0 {
			return nil, fmt.Errorf("type %q requires of", h.Type)
		}
		return poker.NewKOfAKindChain(h.Of, size), nil
	case "straight":
		return poker.NewStraight(boolOr(h.AvoidStraightFlush, true), boolOr(h.AceLoop, true), size), nil
	case "flush":
		return poker.NewFlush(boolOr(h.AvoidStraightFlush, true), boolOr(h.AceLoop, true), size), nil
	case "straight-flush":
		return poker.NewStraightFlush(boolOr(h.AceLoop, true), size), nil
	default:
		return nil, fmt.Errorf("unknown hand type %q", h.Type)
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Default returns the built-in standard poker variant used when no
// file is given.
func Default() *Variant {
	kind := func(k int) *int { return &k }
	return &Variant{
		Name:     "standard",
		HandSize: poker.DefaultHandSize,
		Deck:     DeckConfig{Ranks: poker.StandardRanks, Suits: poker.StandardSuits},
		Hands: []HandConfig{
			{Name: "straight flush", Type: "straight-flush"},
			{Name: "four of a kind", Type: "kind", K: kind(4)},
			{Name: "full house", Type: "chain", Of: []int{3, 2}},
			{Name: "flush", Type: "flush"},
			{Name: "straight", Type: "straight"},
			{Name: "three of a kind", Type: "kind", K: kind(3)},
			{Name: "two pair", Type: "chain", Of: []int{2, 2}},
			{Name: "one pair", Type: "kind", K: kind(2)},
			{Name: "high card", Type: "high-card"},
		},
	}
}
