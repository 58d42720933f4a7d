package term

import (
	"errors"
	"fmt"
	"testing"
)

func TestBracketCaseTable(t *testing.T) {
	static := NewLeaf(false, N(2))
	rotating := NewLeaf(true, N(3))

	tests := []struct {
		name     string
		a, b     *Term
		terms    int
		rotating []bool
	}{
		{"static with rotating", static, rotating, 1, []bool{true}},
		{"rotating with static", rotating, static, 1, []bool{true}},
		{"static with static", static, static, 1, []bool{false}},
		{"rotating with rotating", rotating, rotating, 2, []bool{false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bracket(tt.a, tt.b, F(1, 2))
			if len(got) != tt.terms {
				t.Fatalf("expected %d terms, got %d", tt.terms, len(got))
			}
			for i, r := range got {
				if r.Rotating != tt.rotating[i] {
					t.Errorf("term %d: rotating = %v, want %v", i, r.Rotating, tt.rotating[i])
				}
				if r.Weight != tt.a.Weight+tt.b.Weight {
					t.Errorf("term %d: weight = %d", i, r.Weight)
				}
				if r.FreqPower != 0 {
					t.Errorf("term %d: power = %d", i, r.FreqPower)
				}
				if r.Left != tt.a || r.Right != tt.b {
					t.Errorf("term %d: children not shared", i)
				}
			}
		})
	}
}

func TestBracketCoefficient(t *testing.T) {
	a := NewLeaf(true, N(2))
	b := NewLeaf(true, N(3))

	got := Bracket(a, b, F(1, 2))
	if len(got) != 2 {
		t.Fatalf("expected 2 terms, got %d", len(got))
	}
	for i, r := range got {
		if r.Coeff.Cmp(N(3)) != 0 {
			t.Errorf("term %d: coefficient = %s, want 3", i, r.Coeff.RatString())
		}
	}
}

func TestTimeDerivativeOfStaticVanishes(t *testing.T) {
	got := TimeDerivative(NewLeaf(false, N(1)), N(1))
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d terms", len(got))
	}
}

func TestDerivativeOfIntegralRestoresTerm(t *testing.T) {
	leaf := NewLeaf(true, F(3, 2))

	integrated, err := TimeIntegrate(leaf, N(1))
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if integrated[0].FreqPower != 1 {
		t.Fatalf("integrated power = %d, want 1", integrated[0].FreqPower)
	}

	back := TimeDerivative(integrated[0], N(1))
	if len(back) != 1 {
		t.Fatalf("expected 1 term, got %d", len(back))
	}
	if back[0].FreqPower != 0 {
		t.Errorf("power = %d, want 0", back[0].FreqPower)
	}
	if back[0].Coeff.Cmp(leaf.Coeff) != 0 {
		t.Errorf("coefficient = %s, want %s", back[0].Coeff.RatString(), leaf.Coeff.RatString())
	}
	if Compare(back[0], leaf) != 1 {
		t.Error("round trip should be structurally equal to the original")
	}
}

func TestExtractRotating(t *testing.T) {
	if got := ExtractRotating(NewLeaf(false, N(1)), N(1)); len(got) != 0 {
		t.Errorf("static term should vanish, got %d terms", len(got))
	}

	leaf := NewLeaf(true, N(2))
	got := ExtractRotating(leaf, N(1))
	if len(got) != 1 || got[0] != leaf {
		t.Error("factor 1 should pass the same reference through")
	}

	scaled := ExtractRotating(leaf, N(3))
	if len(scaled) != 1 || scaled[0] == leaf {
		t.Fatal("non-unit factor should clone")
	}
	if scaled[0].Coeff.Cmp(N(6)) != 0 {
		t.Errorf("coefficient = %s, want 6", scaled[0].Coeff.RatString())
	}
}

func TestTimeIntegrateStaticFails(t *testing.T) {
	_, err := TimeIntegrate(NewLeaf(false, N(1)), N(1))
	if !errors.Is(err, ErrSecularTerm) {
		t.Errorf("expected ErrSecularTerm, got %v", err)
	}
}

func TestDerivativeWarnsOnResidualPower(t *testing.T) {
	var warnings []string
	SetWarnHandler(func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})
	defer SetWarnHandler(nil)

	got := TimeDerivative(NewLeaf(true, N(1)), N(1))
	if len(got) != 1 || got[0].FreqPower != -1 {
		t.Fatalf("expected one term at power -1, got %+v", got)
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(warnings))
	}
}

func TestIntegrationWarnsOnZeroPower(t *testing.T) {
	var warnings []string
	SetWarnHandler(func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})
	defer SetWarnHandler(nil)

	leaf := NewLeaf(true, N(1))
	leaf.FreqPower = -1

	got, err := TimeIntegrate(leaf, N(1))
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if got[0].FreqPower != 0 {
		t.Fatalf("power = %d, want 0", got[0].FreqPower)
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(warnings))
	}
}
