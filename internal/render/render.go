// Package render turns terms and collections into display strings: plain
// text, LaTeX, and lipgloss-styled terminal output. It reads the core's
// public fields only and never mutates a term.
package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/maksli/vanvleck/internal/term"
)

// Text renders a term as plain text, e.g. "-1/2 {V/(mω), V}". Static leaves
// print as H0, rotating leaves as V; an element with accumulated frequency
// power p carries a /(mω)^p suffix.
func Text(t *term.Term) string {
	return coeffText(t.Coeff) + body(t)
}

// CollectionText renders a collection as a " + " joined sum, or "0" when it
// is empty.
func CollectionText(c term.Collection) string {
	if len(c) == 0 {
		return "0"
	}
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = Text(t)
	}
	return strings.Join(parts, " + ")
}

func body(t *term.Term) string {
	var s string
	if t.IsLeaf() {
		if t.Rotating {
			s = "V"
		} else {
			s = "H0"
		}
	} else {
		s = "{" + body(t.Left) + ", " + body(t.Right) + "}"
	}
	switch {
	case t.FreqPower == 1:
		s += "/(mω)"
	case t.FreqPower != 0:
		s += fmt.Sprintf("/(mω)^%d", t.FreqPower)
	}
	return s
}

func coeffText(r *big.Rat) string {
	one := big.NewRat(1, 1)
	if r.Cmp(one) == 0 {
		return ""
	}
	if r.Cmp(new(big.Rat).Neg(one)) == 0 {
		return "-"
	}
	return r.RatString() + " "
}

// LaTeX renders a term for typesetting: coefficients as \frac{p}{q}, brackets
// as \left\{ ... \right\}, frequency denominators as (m\omega)^{p}.
func LaTeX(t *term.Term) string {
	return coeffLaTeX(t.Coeff) + bodyLaTeX(t)
}

// CollectionLaTeX renders a collection as a sum, or "0" when it is empty.
func CollectionLaTeX(c term.Collection) string {
	if len(c) == 0 {
		return "0"
	}
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = LaTeX(t)
	}
	return strings.Join(parts, " + ")
}

func bodyLaTeX(t *term.Term) string {
	var s string
	if t.IsLeaf() {
		if t.Rotating {
			s = "H_{m}"
		} else {
			s = "H_{0}"
		}
	} else {
		s = `\left\{ ` + bodyLaTeX(t.Left) + ", " + bodyLaTeX(t.Right) + ` \right\}`
	}
	switch {
	case t.FreqPower == 1:
		s = `\frac{` + s + `}{m\omega}`
	case t.FreqPower != 0:
		s = fmt.Sprintf(`\frac{%s}{(m\omega)^{%d}}`, s, t.FreqPower)
	}
	return s
}

func coeffLaTeX(r *big.Rat) string {
	one := big.NewRat(1, 1)
	if r.Cmp(one) == 0 {
		return ""
	}
	if r.Cmp(new(big.Rat).Neg(one)) == 0 {
		return "-"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(r)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf(`%s\frac{%s}{%s}`, sign, v.Num().String(), v.Denom().String())
}
