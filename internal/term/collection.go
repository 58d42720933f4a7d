package term

import "math/big"

// Collection is an ordered multiset of terms. Order is insertion order: it
// carries no mathematical meaning but keeps output deterministic. There is no
// uniqueness constraint before Simplify.
type Collection []*Term

// Add concatenates two collections. No simplification happens here; callers
// invoke Simplify explicitly when a canonical minimal form is required.
func (c Collection) Add(other Collection) Collection {
	out := make(Collection, 0, len(c)+len(other))
	out = append(out, c...)
	out = append(out, other...)
	return out
}

// Scale clones every term with the coefficient multiplied by factor.
func (c Collection) Scale(factor *big.Rat) Collection {
	out := make(Collection, len(c))
	for i, t := range c {
		out[i] = t.Scaled(factor)
	}
	return out
}

// Bracket applies the bracket operator pairwise between the two collections
// and concatenates the results.
func (c Collection) Bracket(other Collection, factor *big.Rat) Collection {
	var out Collection
	for _, a := range c {
		for _, b := range other {
			out = append(out, Bracket(a, b, factor)...)
		}
	}
	return out
}

// TimeDerivative lifts the derivative operator pointwise.
func (c Collection) TimeDerivative(factor *big.Rat) Collection {
	var out Collection
	for _, t := range c {
		out = append(out, TimeDerivative(t, factor)...)
	}
	return out
}

// ExtractRotating lifts the rotating-part operator pointwise.
func (c Collection) ExtractRotating(factor *big.Rat) Collection {
	var out Collection
	for _, t := range c {
		out = append(out, ExtractRotating(t, factor)...)
	}
	return out
}

// TimeIntegrate lifts the integration operator pointwise. The first secular
// term aborts the whole collection.
func (c Collection) TimeIntegrate(factor *big.Rat) (Collection, error) {
	var out Collection
	for _, t := range c {
		g, err := TimeIntegrate(t, factor)
		if err != nil {
			return nil, err
		}
		out = append(out, g...)
	}
	return out, nil
}

// Simplify folds structurally equivalent terms together and drops zero
// coefficients. One left-to-right pass: each surviving term absorbs every
// later term it matches. This is O(n²) comparisons and the dominant cost at
// high order; the O(1) pre-checks in Compare do the pruning.
func (c Collection) Simplify() Collection {
	out := make(Collection, 0, len(c))
	used := make([]bool, len(c))
	for i, t := range c {
		if used[i] {
			continue
		}
		acc := t
		for j := i + 1; j < len(c); j++ {
			if used[j] {
				continue
			}
			if merged, ok := CombineIfEqual(acc, c[j]); ok {
				acc = merged
				used[j] = true
			}
		}
		if acc.Coeff.Sign() != 0 {
			out = append(out, acc)
		}
	}
	return out
}
