package term

import "math/big"

// Bracket models the generalized Poisson bracket {{a, b}} scaled by factor.
//
// The result depends on the classification of the arguments:
//
//   - static with rotating (either order): one rotating node
//   - static with static: one static node
//   - rotating with rotating: a static (time-averaged) node and a rotating
//     node — the zero-frequency and non-zero-frequency components of the
//     product of two harmonics
//
// The node coefficient is factor·a.Coeff·b.Coeff; the node's own frequency
// power starts at zero, the children keep theirs.
func Bracket(a, b *Term, factor *big.Rat) Collection {
	stats.Brackets++

	coeff := new(big.Rat).Mul(a.Coeff, b.Coeff)
	coeff.Mul(coeff, factor)

	rot := &Term{
		Rotating: true,
		Coeff:    coeff,
		Left:     a,
		Right:    b,
		Weight:   a.Weight + b.Weight,
	}
	rot.Footprint = footprint(rot.Rotating, rot.FreqPower, rot.Left, rot.Right)

	switch {
	case a.Rotating != b.Rotating:
		return Collection{rot}
	case !a.Rotating:
		return Collection{rot.withRotating(false)}
	default:
		return Collection{rot.withRotating(false), rot}
	}
}

// TimeDerivative applies d/dt scaled by factor. The derivative of a static
// term vanishes. A rotating term loses one frequency-denominator power; the
// normal path lands on exactly zero (integrate-then-differentiate), anything
// else is diagnosed and kept.
func TimeDerivative(a *Term, factor *big.Rat) Collection {
	stats.Derivatives++
	if !a.Rotating {
		return nil
	}
	d := a.Scaled(factor)
	d.FreqPower--
	d.Footprint = footprint(d.Rotating, d.FreqPower, d.Left, d.Right)
	if d.FreqPower != 0 {
		warnf("term: time derivative left residual frequency power %d on %s", d.FreqPower, d.Footprint)
	}
	return Collection{d}
}

// ExtractRotating keeps the oscillating part of a term: static terms vanish,
// rotating terms pass through (by reference when factor is 1, as a scaled
// clone otherwise).
func ExtractRotating(a *Term, factor *big.Rat) Collection {
	if !a.Rotating {
		return nil
	}
	if factor.Cmp(ratOne) == 0 {
		return Collection{a}
	}
	return Collection{a.Scaled(factor)}
}

// TimeIntegrate applies ∫dt scaled by factor. Integrating a static term is a
// hard error (secular growth). A rotating term gains one
// frequency-denominator power; landing on exactly zero is diagnosed and kept.
func TimeIntegrate(a *Term, factor *big.Rat) (Collection, error) {
	stats.Integrations++
	if !a.Rotating {
		return nil, ErrSecularTerm
	}
	g := a.Scaled(factor)
	g.FreqPower++
	g.Footprint = footprint(g.Rotating, g.FreqPower, g.Left, g.Right)
	if g.FreqPower == 0 {
		warnf("term: time integration reached zero frequency power on %s", g.Footprint)
	}
	return Collection{g}, nil
}
