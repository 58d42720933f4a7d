package vanvleck_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/maksli/vanvleck/internal/term"
	"github.com/maksli/vanvleck/internal/vanvleck"
)

// monochromatic is the canonical test problem: one static and one rotating
// harmonic, both with unit coefficient.
func monochromatic() term.Collection {
	return term.Collection{
		term.NewLeaf(false, term.N(1)),
		term.NewLeaf(true, term.N(1)),
	}
}

var _ = Describe("Expansion", func() {
	var exp *vanvleck.Expansion

	BeforeEach(func() {
		exp = vanvleck.New(monochromatic())
	})

	Describe("base case", func() {
		It("returns the seeded Hamiltonian for K(0,0)", func() {
			h := monochromatic()
			got, err := vanvleck.New(h).Kamiltonian(0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(2))
			Expect(got[0]).To(BeIdenticalTo(h[0]))
			Expect(got[1]).To(BeIdenticalTo(h[1]))
		})

		It("fails when no Hamiltonian was set", func() {
			empty := vanvleck.NewEmpty()
			_, err := empty.Kamiltonian(0, 0)
			Expect(err).To(MatchError(vanvleck.ErrHamiltonianNotSet))

			_, err = empty.Generator(1)
			Expect(err).To(MatchError(vanvleck.ErrHamiltonianNotSet))
		})

		It("fails again after Clear", func() {
			_, err := exp.K(1)
			Expect(err).NotTo(HaveOccurred())

			exp.Clear()
			_, err = exp.Kamiltonian(0, 0)
			Expect(err).To(MatchError(vanvleck.ErrHamiltonianNotSet))
		})

		It("recovers after SetHamiltonian", func() {
			exp.Clear()
			exp.SetHamiltonian(monochromatic())
			got, err := exp.Kamiltonian(0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(2))
		})
	})

	Describe("trivial regions", func() {
		It("returns empty collections outside the triangle", func() {
			for _, nk := range [][2]int{{0, 2}, {1, 3}, {2, 9}, {-1, 0}, {0, -1}} {
				got, err := exp.Kamiltonian(nk[0], nk[1])
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(BeEmpty())
			}
		})

		It("returns empty K(n,0) for n > 0", func() {
			for n := 1; n <= 3; n++ {
				got, err := exp.Kamiltonian(n, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(BeEmpty())
			}
		})

		It("returns an empty zeroth-order generator", func() {
			got, err := exp.Generator(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())

			got, err = exp.Generator(-2)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})
	})

	Describe("first order", func() {
		It("builds S(1) as the integrated rotating part of -H", func() {
			s1, err := exp.S(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(s1).To(HaveLen(1))

			got := s1[0]
			Expect(got.Rotating).To(BeTrue())
			Expect(got.IsLeaf()).To(BeTrue())
			Expect(got.FreqPower).To(Equal(1))
			Expect(got.Coeff.Cmp(term.N(-1))).To(BeZero())
		})

		It("collapses K(1) to the single secular self-bracket", func() {
			k1, err := exp.K(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(k1).To(HaveLen(1))

			got := k1[0]
			Expect(got.Rotating).To(BeFalse())
			Expect(got.Coeff.Cmp(term.F(-1, 2))).To(BeZero())
			Expect(got.TotalFreqPower()).To(Equal(1))
			Expect(got.Weight).To(Equal(2))
			Expect(got.Left.IsLeaf()).To(BeTrue())
			Expect(got.Right.IsLeaf()).To(BeTrue())
			Expect(got.Left.Rotating).To(BeTrue())
			Expect(got.Right.Rotating).To(BeTrue())
		})

		It("reduces K(0) to the static harmonic", func() {
			k0, err := exp.K(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(k0).To(HaveLen(1))
			Expect(k0[0].Rotating).To(BeFalse())
			Expect(k0[0].IsLeaf()).To(BeTrue())
		})
	})

	Describe("memoization", func() {
		It("performs no algebra on a repeated call", func() {
			first, err := exp.S(3)
			Expect(err).NotTo(HaveOccurred())

			term.ResetStats()
			second, err := exp.S(3)
			Expect(err).NotTo(HaveOccurred())

			Expect(term.Stats()).To(Equal(term.OpStats{}))
			Expect(second).To(HaveLen(len(first)))
			for i := range first {
				Expect(second[i]).To(BeIdenticalTo(first[i]))
			}
		})

		It("keeps independent expansions independent", func() {
			other := vanvleck.New(term.Collection{term.NewLeaf(true, term.N(2))})

			k1, err := exp.K(1)
			Expect(err).NotTo(HaveOccurred())
			o1, err := other.K(1)
			Expect(err).NotTo(HaveOccurred())

			// H = 2V quadruples the self-bracket coefficient.
			Expect(k1[0].Coeff.Cmp(term.F(-1, 2))).To(BeZero())
			Expect(o1[0].Coeff.Cmp(term.N(-2))).To(BeZero())
		})
	})

	Describe("higher orders", func() {
		It("produces non-empty simplified collections through order 4", func() {
			prev := 0
			for n := 1; n <= 4; n++ {
				kn, err := exp.K(n)
				Expect(err).NotTo(HaveOccurred())
				Expect(len(kn)).To(BeNumerically(">=", prev), "K(%d) shrank", n)
				prev = len(kn)

				sn, err := exp.S(n)
				Expect(err).NotTo(HaveOccurred())
				Expect(sn).NotTo(BeEmpty())
				for _, t := range sn {
					Expect(t.Rotating).To(BeTrue(), "generators hold rotating terms only")
				}
			}
		})
	})
})

var _ = Describe("package-level convenience API", func() {
	AfterEach(func() {
		vanvleck.ClearCaches()
	})

	It("mirrors the Expansion methods on a default instance", func() {
		vanvleck.SetHamiltonian(monochromatic())

		s1, err := vanvleck.S(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(s1).To(HaveLen(1))

		k11, err := vanvleck.Kamiltonian(1, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(k11).NotTo(BeEmpty())

		g2, err := vanvleck.Generator(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(g2).NotTo(BeEmpty())

		k1, err := vanvleck.K(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(k1).To(HaveLen(1))
	})

	It("fails before SetHamiltonian", func() {
		vanvleck.ClearCaches()
		_, err := vanvleck.K(1)
		Expect(err).To(MatchError(vanvleck.ErrHamiltonianNotSet))
	})
})
