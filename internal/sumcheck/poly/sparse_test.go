package poly

import (
	"testing"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
)

func degreeTwoExample(t *testing.T, f field.Field) *Sparse {
	t.Helper()
	g, err := NewSparse(f, 2, []Monomial{
		{Coeff: f.NewElement(20), Term: Term{0: 2}},
		{Coeff: f.NewElement(5), Term: Term{0: 2, 1: 1}},
		{Coeff: f.NewElement(29), Term: Term{0: 1, 1: 1}},
		{Coeff: f.NewElement(62), Term: Term{0: 2, 1: 2}},
		{Coeff: f.NewElement(90), Term: Term{0: 1, 1: 2}},
		{Coeff: f.NewElement(88), Term: Term{1: 2}},
	})
	if err != nil {
		t.Fatalf("failed to build polynomial: %v", err)
	}
	return g
}

func linearExample(t *testing.T, f field.Field) *Sparse {
	t.Helper()
	g, err := NewSparse(f, 2, []Monomial{
		{Coeff: f.NewElement(24), Term: Term{0: 1}},
		{Coeff: f.NewElement(15), Term: Term{0: 1, 1: 1}},
		{Coeff: f.NewElement(35), Term: Term{1: 1}},
	})
	if err != nil {
		t.Fatalf("failed to build polynomial: %v", err)
	}
	return g
}

func TestSparseHypercubeSum(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)

	t.Run("degree-2 reference scenario", func(t *testing.T) {
		g := degreeTwoExample(t, f)
		evals := g.EnumerateHypercube()
		want := []int64{0, 20, 88, 3} // g(0,0),g(1,0),g(0,1),g(1,1) mod 97
		for i, w := range want {
			if !evals[i].Equal(f.NewElement(w)) {
				t.Errorf("g at point %d = %s, want %d", i, evals[i], w)
			}
		}
		sum := g.SumOverHypercube()
		if !sum.Equal(f.NewElement(14)) {
			t.Errorf("claim = %s, want 14", sum)
		}
	})

	t.Run("linear reference scenario", func(t *testing.T) {
		g := linearExample(t, f)
		sum := g.SumOverHypercube()
		if !sum.Equal(f.NewElement(36)) {
			t.Errorf("claim = %s, want 36", sum)
		}
	})
}

func TestSparseIsMultilinear(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)

	if !linearExample(t, f).IsMultilinear() {
		t.Error("linear example should be multilinear")
	}
	if degreeTwoExample(t, f).IsMultilinear() {
		t.Error("degree-2 example should not be multilinear")
	}
}

func TestFixVariablesReducesArity(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)
	g := linearExample(t, f)

	fixed, err := g.FixVariables([]field.Element{f.NewElement(1)})
	if err != nil {
		t.Fatalf("FixVariables failed: %v", err)
	}
	if fixed.NumVars() != 1 {
		t.Fatalf("fixed arity = %d, want 1", fixed.NumVars())
	}

	// g(1, x1) = 24 + 15x1 + 35x1 = 24 + 50x1
	for _, x1 := range []int64{0, 1, 42} {
		got := fixed.Evaluate([]field.Element{f.NewElement(x1)})
		want := g.Evaluate([]field.Element{f.NewElement(1), f.NewElement(x1)})
		if !got.Equal(want) {
			t.Errorf("fixed(x1=%d) = %s, want %s", x1, got, want)
		}
	}
}

func TestToUnivariateMatchesHypercubeSum(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)
	g := degreeTwoExample(t, f)

	uni, err := g.ToUnivariate()
	if err != nil {
		t.Fatalf("ToUnivariate failed: %v", err)
	}

	// Σ_{p∈{0,1}} g(x0,p) evaluated at x0=0 and x0=1 should match the
	// hypercube evaluations summed over the second variable.
	for _, x0 := range []int64{0, 1} {
		want := f.Zero()
		for _, x1 := range []int64{0, 1} {
			want = want.Add(g.Evaluate([]field.Element{f.NewElement(x0), f.NewElement(x1)}))
		}
		got := uni.Eval(f.NewElement(x0))
		if !got.Equal(want) {
			t.Errorf("to_univariate(%d) = %s, want %s", x0, got, want)
		}
	}

	sumAtZeroOne := uni.EvalAtZero().Add(uni.EvalAtOne())
	if !sumAtZeroOne.Equal(g.SumOverHypercube()) {
		t.Errorf("g_0(0)+g_0(1) = %s, want claim %s", sumAtZeroOne, g.SumOverHypercube())
	}
}

func TestEvaluateArityMismatchPanics(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)
	g := linearExample(t, f)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on arity mismatch")
		}
	}()
	g.Evaluate([]field.Element{f.Zero()})
}
