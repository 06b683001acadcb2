package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pranavraj575/poker-variant-generator/internal/ranking"
	"github.com/pranavraj575/poker-variant-generator/internal/variant"
)

// RankCmd ranks a variant's hand categories from rarest to most
// common. Without a file it uses the built-in standard poker variant.
type RankCmd struct {
	File    string `arg:"" optional:"" help:"Variant definition file (HCL)"`
	Variant string `help:"Variant name when the file defines several"`
}

func (c *RankCmd) Run(logger *log.Logger) error {
	v := variant.Default()
	if c.File != "" {
		config, err := variant.Load(c.File)
		if err != nil {
			return err
		}
		v, err = config.Variant(c.Variant)
		if err != nil {
			return err
		}
		logger.Debug("loaded variant file", "file", c.File, "variant", v.Name)
	}

	deck := v.BuildDeck()
	entries, err := v.Entries()
	if err != nil {
		return err
	}

	start := time.Now()
	results := ranking.Rank(deck, entries)
	logger.Debug("ranked categories",
		"variant", v.Name,
		"categories", len(results),
		"deck_size", deck.TotalCards(),
		"duration", time.Since(start))

	fmt.Printf("%s\n\n", headerStyle.Render(
		fmt.Sprintf("%s: %d ranks x %d suits + %d wild", v.Name,
			deck.Ranks, deck.Suits, deck.Wild)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("rank"),
		headerStyle.Render("hand"),
		headerStyle.Render("count"),
		headerStyle.Render("probability"))

	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			i+1,
			categoryStyle.Render(r.Name),
			countStyle.Render(formatResultCount(r)),
			percentStyle.Render(formatProbability(r)))
	}
	w.Flush()
	return nil
}

func formatResultCount(r ranking.Result) string {
	switch {
	case r.CatchAll:
		return "remainder"
	case r.Impossible:
		return "0"
	default:
		return formatCount(r.Count)
	}
}

func formatProbability(r ranking.Result) string {
	switch {
	case r.CatchAll:
		return "."
	case r.Impossible:
		return "0%"
	default:
		return fmt.Sprintf("%.4f%%", r.Probability*100)
	}
}
