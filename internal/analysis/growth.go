// Package analysis profiles how the expansion grows with order: how many
// bracket constructions each order costs and how far simplification collapses
// the result. Simplified counts staying far below the raw bracket count is
// the sign that canonical-form detection is actually working.
package analysis

import (
	"github.com/maksli/vanvleck/internal/term"
	"github.com/maksli/vanvleck/internal/vanvleck"
)

// OrderGrowth is one row of a growth profile.
type OrderGrowth struct {
	// Order is the perturbative order n.
	Order int
	// RawBrackets counts bracket nodes constructed while computing this
	// order (including work on not-yet-cached lower entries).
	RawBrackets uint64
	// KTerms is the term count of the simplified K(n).
	KTerms int
	// STerms is the term count of the simplified S(n).
	STerms int
}

// Growth computes K(n) and S(n) for n = 1..maxOrder on a fresh traversal of
// e and reports per-order cost and result sizes. It resets the package-wide
// operation counters.
func Growth(e *vanvleck.Expansion, maxOrder int) ([]OrderGrowth, error) {
	term.ResetStats()
	out := make([]OrderGrowth, 0, maxOrder)
	for n := 1; n <= maxOrder; n++ {
		before := term.Stats().Brackets
		k, err := e.K(n)
		if err != nil {
			return nil, err
		}
		s, err := e.S(n)
		if err != nil {
			return nil, err
		}
		out = append(out, OrderGrowth{
			Order:       n,
			RawBrackets: term.Stats().Brackets - before,
			KTerms:      len(k),
			STerms:      len(s),
		})
	}
	return out, nil
}
