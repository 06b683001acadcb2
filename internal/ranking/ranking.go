// Package ranking orders hand categories by how rarely they are drawn
// from a given deck, the primary use of the counting engine.
package ranking

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pranavraj575/poker-variant-generator/poker"
)

// Entry is a named hand category to rank.
type Entry struct {
	Name string
	Type poker.HandType
}

// Result is one ranked category. Count and Probability are derived
// from LogCount at the reporting boundary; the sentinel flags mark
// entries whose log-count is not a finite figure.
type Result struct {
	Name        string
	LogCount    float64
	Count       float64
	Probability float64

	// Impossible marks zero-way configurations (-Inf log-count).
	Impossible bool
	// CatchAll marks the +Inf remainder sentinel (high card). Its
	// Count and Probability are not meaningful figures and must not
	// be summed with the finite categories.
	CatchAll bool
}

// Rank evaluates every entry against deck and returns the categories
// sorted rarest first, with impossible entries leading and the
// catch-all trailing. Counters are pure values, so entries are
// evaluated concurrently.
func Rank(deck poker.Deck, entries []Entry) []Result {
	results := make([]Result, len(entries))
	var g errgroup.Group
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			logCount := entry.Type.LogCount(deck)
			results[i] = Result{
				Name:        entry.Name,
				LogCount:    logCount,
				Count:       math.Exp(logCount),
				Probability: math.Exp(poker.LogProbability(entry.Type, deck, true)),
				Impossible:  math.IsInf(logCount, -1),
				CatchAll:    math.IsInf(logCount, 1),
			}
			return nil
		})
	}
	// Counters cannot fail; the group is only a join point.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].LogCount < results[j].LogCount
	})
	return results
}
