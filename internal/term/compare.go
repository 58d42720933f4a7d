package term

// Compare determines whether two trees represent the same bracket structure,
// and with which relative sign. It returns 0 for no match, +1 for a match,
// -1 for a match with opposite sign (the bracket is anti-symmetric:
// {{x,y}} = -{{y,x}}).
//
// Alignments tried in order: direct children, crossed children (negated),
// and for static nodes the same two alignments with the children's frequency
// powers swapped (direct negated, crossed not). The weight/rotating/power
// triple is checked first so non-candidates are rejected in O(1).
func Compare(a, b *Term) int {
	stats.Compares++
	return compare(a, b)
}

func compare(a, b *Term) int {
	switch {
	case a == nil && b == nil:
		return 1
	case a == nil || b == nil:
		return 0
	}
	if a.Weight != b.Weight || a.Rotating != b.Rotating || a.FreqPower != b.FreqPower {
		return 0
	}
	if a.Left == nil || b.Left == nil {
		if a.Left == nil && b.Left == nil {
			return 1
		}
		return 0
	}

	if s1 := compare(a.Left, b.Left); s1 != 0 {
		if s2 := compare(a.Right, b.Right); s2 != 0 {
			return s1 * s2
		}
	}
	if s1 := compare(a.Left, b.Right); s1 != 0 {
		if s2 := compare(a.Right, b.Left); s2 != 0 {
			return -s1 * s2
		}
	}

	// A static bracket's sub-terms are not canonically ordered by denominator
	// power, so the children's powers may additionally be swapped.
	if !a.Rotating && a.Left.FreqPower != a.Right.FreqPower {
		al := a.Left.withFreqPower(a.Right.FreqPower)
		ar := a.Right.withFreqPower(a.Left.FreqPower)
		if s1 := compare(al, b.Left); s1 != 0 {
			if s2 := compare(ar, b.Right); s2 != 0 {
				return -s1 * s2
			}
		}
		if s1 := compare(al, b.Right); s1 != 0 {
			if s2 := compare(ar, b.Left); s2 != 0 {
				return s1 * s2
			}
		}
	}

	return 0
}

// CombineIfEqual folds b into a when the two terms are structurally
// equivalent. On a match it returns a clone of a with coefficient
// a.Coeff + sign·b.Coeff and true; otherwise it returns a unchanged and
// false.
func CombineIfEqual(a, b *Term) (*Term, bool) {
	s := Compare(a, b)
	if s == 0 {
		return a, false
	}
	stats.Combines++
	m := a.Clone()
	if s > 0 {
		m.Coeff.Add(m.Coeff, b.Coeff)
	} else {
		m.Coeff.Sub(m.Coeff, b.Coeff)
	}
	return m, true
}
