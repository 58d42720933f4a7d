package term

import (
	"math/big"
	"strconv"
	"strings"
)

// Term is a single node of a bracket tree. A Term with no children is a leaf:
// one harmonic of the base Hamiltonian, either static (secular) or rotating.
// An internal node represents a generalized Poisson bracket of its two
// children. Terms are immutable by convention: operators return new nodes and
// share sub-trees, they never modify one in place.
type Term struct {
	// Rotating classifies the term: false means static/secular
	// (frequency-independent), true means oscillating.
	Rotating bool

	// Coeff is the multiplicative scalar factor. Never nil.
	Coeff *big.Rat

	// FreqPower counts accumulated 1/(imω) factors: time integrations minus
	// time derivatives applied to this node. Negative values indicate a
	// derivative applied to an unintegrated term and are diagnosed, not fatal.
	FreqPower int

	// Left and Right are the bracket arguments. Both nil for a leaf, both
	// set for an internal node.
	Left  *Term
	Right *Term

	// Weight is the number of leaf harmonics in this sub-tree. It is the
	// cheap pre-filter for structural comparison.
	Weight int

	// Footprint is a human-readable derivation label. Debug only: equality
	// is structural (see Compare), never footprint-based.
	Footprint string
}

// N returns the exact rational n/1.
func N(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// F returns the exact rational p/q.
func F(p, q int64) *big.Rat {
	if q == 0 {
		panic("term: denominator is zero")
	}
	return new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))
}

var ratOne = big.NewRat(1, 1)

// NewLeaf builds a base-Hamiltonian harmonic with the given classification
// and coefficient.
func NewLeaf(rotating bool, coeff *big.Rat) *Term {
	t := &Term{
		Rotating: rotating,
		Coeff:    new(big.Rat).Set(coeff),
		Weight:   1,
	}
	t.Footprint = footprint(t.Rotating, t.FreqPower, t.Left, t.Right)
	return t
}

// IsLeaf reports whether t is a base harmonic rather than a bracket node.
func (t *Term) IsLeaf() bool { return t.Left == nil }

// Clone returns a shallow copy of t with its own coefficient value.
// Children are shared; they are never mutated.
func (t *Term) Clone() *Term {
	c := *t
	c.Coeff = new(big.Rat).Set(t.Coeff)
	return &c
}

// Scaled returns a clone of t with the coefficient multiplied by factor.
func (t *Term) Scaled(factor *big.Rat) *Term {
	c := t.Clone()
	c.Coeff.Mul(c.Coeff, factor)
	return c
}

// withRotating returns a clone of t with the classification forced and the
// footprint rebuilt.
func (t *Term) withRotating(rotating bool) *Term {
	c := t.Clone()
	c.Rotating = rotating
	c.Footprint = footprint(c.Rotating, c.FreqPower, c.Left, c.Right)
	return c
}

// withFreqPower returns a clone of t carrying the given frequency power.
// Used by the static-node symmetry rule in Compare.
func (t *Term) withFreqPower(power int) *Term {
	c := t.Clone()
	c.FreqPower = power
	c.Footprint = footprint(c.Rotating, c.FreqPower, c.Left, c.Right)
	return c
}

// TotalFreqPower sums the frequency-denominator powers over the whole
// sub-tree. This is the net 1/(mω) order of the term as rendered.
func (t *Term) TotalFreqPower() int {
	if t == nil {
		return 0
	}
	return t.FreqPower + t.Left.TotalFreqPower() + t.Right.TotalFreqPower()
}

// footprint rebuilds the debug label bottom-up: bracket markers around the
// children, a trailing 0 for secular nodes, /p for a nonzero frequency power.
func footprint(rotating bool, power int, left, right *Term) string {
	var b strings.Builder
	if left == nil {
		b.WriteString("H")
	} else {
		b.WriteString("[")
		b.WriteString(left.Footprint)
		b.WriteString(",")
		b.WriteString(right.Footprint)
		b.WriteString("]")
	}
	if !rotating {
		b.WriteString("0")
	}
	if power != 0 {
		b.WriteString("/")
		b.WriteString(strconv.Itoa(power))
	}
	return b.String()
}
