package vanvleck

import (
	"errors"

	"github.com/maksli/vanvleck/internal/term"
)

// Domain errors for the recursion engine.
var (
	// ErrHamiltonianNotSet indicates K(0,0) was requested before the base
	// Hamiltonian was seeded. Fatal to the current computation: seed and
	// retry.
	ErrHamiltonianNotSet = errors.New("vanvleck: base Hamiltonian not set")
)

type key struct{ n, k int }

// Expansion is one problem instance: the base Hamiltonian plus the memo
// tables for generators and Kamiltonian contributions. Every computed entry
// is simplified before it is cached, and cache entries are write-once.
type Expansion struct {
	gen map[int]term.Collection
	kam map[key]term.Collection
}

// New returns an Expansion seeded with the base Hamiltonian h as K(0,0).
// h is not validated: the caller decides which static and rotating leaves
// the problem contains.
func New(h term.Collection) *Expansion {
	e := NewEmpty()
	e.kam[key{0, 0}] = h
	return e
}

// NewEmpty returns an Expansion with no base Hamiltonian. Any call that
// reaches K(0,0) fails with ErrHamiltonianNotSet until SetHamiltonian seeds
// it.
func NewEmpty() *Expansion {
	return &Expansion{
		gen: make(map[int]term.Collection),
		kam: make(map[key]term.Collection),
	}
}

// SetHamiltonian drops all cached entries and seeds h as K(0,0). Stale
// higher-order entries derived from a previous Hamiltonian must never
// survive a reseed.
func (e *Expansion) SetHamiltonian(h term.Collection) {
	e.Clear()
	e.kam[key{0, 0}] = h
}

// Clear empties both memo tables, including the base case.
func (e *Expansion) Clear() {
	e.gen = make(map[int]term.Collection)
	e.kam = make(map[key]term.Collection)
}

// Kamiltonian returns the k-th frequency-order contribution to the n-th
// order effective Hamiltonian:
//
//	K(0,0) = H                          (seeded)
//	K(0,1) = dS(1)/dt
//	K(n,1) = dS(n+1)/dt + {{S(n), K(0,0)}}
//	K(n,k) = (1/k) Σ_{m=0}^{n-1} {{S(n-m), K(m,k-1)}}   for 1 < k ≤ n+1
//	K(n,k) = ∅                          for k > n+1, k = 0 with n > 0,
//	                                    or negative arguments
//
// The empty cases are cheap and recomputed each time; everything else is
// simplified and cached.
func (e *Expansion) Kamiltonian(n, k int) (term.Collection, error) {
	if n < 0 || k < 0 || k > n+1 {
		return term.Collection{}, nil
	}
	if c, ok := e.kam[key{n, k}]; ok {
		return c, nil
	}
	if n == 0 && k == 0 {
		return nil, ErrHamiltonianNotSet
	}
	if k == 0 {
		// Only the base Hamiltonian carries a zero-frequency-order piece.
		return term.Collection{}, nil
	}

	var acc term.Collection
	if k == 1 {
		next, err := e.Generator(n + 1)
		if err != nil {
			return nil, err
		}
		acc = next.TimeDerivative(term.N(1))
		if n != 0 {
			sn, err := e.Generator(n)
			if err != nil {
				return nil, err
			}
			h, err := e.Kamiltonian(0, 0)
			if err != nil {
				return nil, err
			}
			acc = acc.Add(sn.Bracket(h, term.N(1)))
		}
	} else {
		factor := term.F(1, int64(k))
		for m := 0; m < n; m++ {
			g, err := e.Generator(n - m)
			if err != nil {
				return nil, err
			}
			km, err := e.Kamiltonian(m, k-1)
			if err != nil {
				return nil, err
			}
			acc = acc.Add(g.Bracket(km, factor))
		}
	}

	out := acc.Simplify()
	e.kam[key{n, k}] = out
	return out, nil
}

// Generator returns the n-th order generator S(n) of the canonical
// transformation:
//
//	S(0) = ∅
//	S(1) = ∫ R[ -K(0,0) ] dt
//	S(n) = ∫ R[ -{{S(n-1), K(0,0)}} - Σ_{k=2}^{n} K(n-1,k) ] dt
//
// where R extracts the rotating part. Results are simplified and cached.
func (e *Expansion) Generator(n int) (term.Collection, error) {
	if n <= 0 {
		return term.Collection{}, nil
	}
	if c, ok := e.gen[n]; ok {
		return c, nil
	}

	h, err := e.Kamiltonian(0, 0)
	if err != nil {
		return nil, err
	}

	var acc term.Collection
	if n == 1 {
		acc = h.Scale(term.N(-1))
	} else {
		prev, err := e.Generator(n - 1)
		if err != nil {
			return nil, err
		}
		acc = prev.Bracket(h, term.N(-1))
		for k := 2; k <= n; k++ {
			km, err := e.Kamiltonian(n-1, k)
			if err != nil {
				return nil, err
			}
			acc = acc.Add(km.Scale(term.N(-1)))
		}
	}

	rotating, err := acc.ExtractRotating(term.N(1)).TimeIntegrate(term.N(1))
	if err != nil {
		return nil, err
	}
	out := rotating.Simplify()
	e.gen[n] = out
	return out, nil
}

// K returns the full n-th order effective Hamiltonian: the simplified sum of
// K(n,k) over k = 0..n+1.
func (e *Expansion) K(n int) (term.Collection, error) {
	var acc term.Collection
	for k := 0; k <= n+1; k++ {
		c, err := e.Kamiltonian(n, k)
		if err != nil {
			return nil, err
		}
		acc = acc.Add(c)
	}
	return acc.Simplify(), nil
}

// S is an alias for Generator.
func (e *Expansion) S(n int) (term.Collection, error) {
	return e.Generator(n)
}
