package poly

import (
	"fmt"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
)

// Term is the set of (variable, power) factors of a monomial, keyed by
// variable index. A variable absent from the map does not appear in the
// term (power 0).
type Term map[int]uint

// Monomial is a coefficient paired with a Term.
type Monomial struct {
	Coeff field.Element
	Term  Term
}

// Sparse is a multivariate polynomial over F represented as a sum of
// monomials. Evaluation at x in F^n is Σ coeff * Π x[var]^power.
type Sparse struct {
	f        field.Field
	numVars  int
	monomial []Monomial
}

// NewSparse builds a sparse multivariate polynomial in numVars variables
// from a list of monomials. Every variable index referenced by a term must
// be < numVars.
func NewSparse(f field.Field, numVars int, monomials []Monomial) (*Sparse, error) {
	for _, m := range monomials {
		for v := range m.Term {
			if v < 0 || v >= numVars {
				return nil, fmt.Errorf("poly: term references variable %d outside [0,%d)", v, numVars)
			}
		}
	}
	cp := make([]Monomial, len(monomials))
	copy(cp, monomials)
	return &Sparse{f: f, numVars: numVars, monomial: cp}, nil
}

// NumVars reports the polynomial's arity.
func (p *Sparse) NumVars() int { return p.numVars }

// Field returns the field this polynomial is defined over.
func (p *Sparse) Field() field.Field { return p.f }

// Monomials returns a copy of the underlying monomial list.
func (p *Sparse) Monomials() []Monomial {
	cp := make([]Monomial, len(p.monomial))
	copy(cp, p.monomial)
	return cp
}

// MaxPower returns the maximum power any single variable appears with
// across all terms; a multilinear polynomial has MaxPower <= 1.
func (p *Sparse) MaxPower() uint {
	var maxP uint
	for _, m := range p.monomial {
		for _, pw := range m.Term {
			if pw > maxP {
				maxP = pw
			}
		}
	}
	return maxP
}

// IsMultilinear reports whether every variable appears with power at most
// 1 in every term.
func (p *Sparse) IsMultilinear() bool { return p.MaxPower() <= 1 }

// Evaluate computes g(x) for x in F^n.
func (p *Sparse) Evaluate(x []field.Element) field.Element {
	if len(x) != p.numVars {
		panic("poly: evaluation point arity mismatch")
	}
	sum := p.f.Zero()
	for _, m := range p.monomial {
		term := m.Coeff
		for v, pw := range m.Term {
			factor := x[v]
			for i := uint(0); i < pw; i++ {
				term = term.Mul(factor)
			}
		}
		sum = sum.Add(term)
	}
	return sum
}

// EnumerateHypercube returns g(x) for every x in {0,1}^n, in the
// hypercube's little-endian integer order.
func (p *Sparse) EnumerateHypercube() []field.Element {
	it := Hypercube(p.f, p.numVars)
	out := make([]field.Element, 0, it.Len())
	for {
		x, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p.Evaluate(x))
	}
}

// SumOverHypercube computes Σ_{x ∈ {0,1}^n} g(x).
func (p *Sparse) SumOverHypercube() field.Element {
	sum := p.f.Zero()
	for _, v := range p.EnumerateHypercube() {
		sum = sum.Add(v)
	}
	return sum
}

// FixVariables substitutes the prefix of variables 0..len(prefix)-1 with
// concrete field values, returning a polynomial of arity n-len(prefix)
// whose remaining variable indices are shifted down by len(prefix).
func (p *Sparse) FixVariables(prefix []field.Element) (*Sparse, error) {
	k := len(prefix)
	if k > p.numVars {
		return nil, fmt.Errorf("poly: fixing %d variables exceeds arity %d", k, p.numVars)
	}
	out := make([]Monomial, 0, len(p.monomial))
	for _, m := range p.monomial {
		coeff := m.Coeff
		remaining := Term{}
		for v, pw := range m.Term {
			if v < k {
				factor := prefix[v]
				for i := uint(0); i < pw; i++ {
					coeff = coeff.Mul(factor)
				}
				continue
			}
			remaining[v-k] = pw
		}
		out = append(out, Monomial{Coeff: coeff, Term: remaining})
	}
	return NewSparse(p.f, p.numVars-k, out)
}

// ToUnivariate reduces g to the univariate polynomial in x_0 obtained by
// summing over all but the first variable:
// Σ_{p ∈ {0,1}^{n-1}} g(x_0, p).
func (p *Sparse) ToUnivariate() (*Univariate, error) {
	if p.numVars == 0 {
		return nil, fmt.Errorf("poly: ToUnivariate requires at least one variable")
	}
	coeffs := map[uint]field.Element{}
	it := Hypercube(p.f, p.numVars-1)
	for {
		tail, ok := it.Next()
		if !ok {
			break
		}
		for _, m := range p.monomial {
			coeff := m.Coeff
			var x0Power uint
			for v, pw := range m.Term {
				if v == 0 {
					x0Power = pw
					continue
				}
				factor := tail[v-1]
				for i := uint(0); i < pw; i++ {
					coeff = coeff.Mul(factor)
				}
			}
			if existing, ok := coeffs[x0Power]; ok {
				coeffs[x0Power] = existing.Add(coeff)
			} else {
				coeffs[x0Power] = coeff
			}
		}
	}
	return NewUnivariateFromMap(p.f, coeffs), nil
}
