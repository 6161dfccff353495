package poly

import (
	"fmt"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
)

// MLETable holds the 2^n evaluations of a multilinear polynomial over
// {0,1}^n, indexed by the integer whose bits encode the point (bit 0 is
// variable 0). Entries beyond the current logical length are dead after a
// Fold and must not be read.
type MLETable struct {
	f          field.Field
	numVars    int
	values     []field.Element
	logicalLen int
}

// NewMLETable builds the MLE table of a multilinear g by evaluating it
// over the Boolean hypercube. Returns an error if g is not multilinear.
func NewMLETable(g *Sparse) (*MLETable, error) {
	if !g.IsMultilinear() {
		return nil, fmt.Errorf("poly: MLE table requires a multilinear polynomial")
	}
	values := g.EnumerateHypercube()
	return &MLETable{
		f:          g.Field(),
		numVars:    g.NumVars(),
		values:     values,
		logicalLen: len(values),
	}, nil
}

// Len returns the table's current logical length (2^(n-rounds folded)).
func (t *MLETable) Len() int { return t.logicalLen }

// Get returns the value at logical index b (0 <= b < Len()).
func (t *MLETable) Get(b int) field.Element {
	if b < 0 || b >= t.logicalLen {
		panic("poly: MLE table index out of range")
	}
	return t.values[b]
}

// Sum returns the sum of all currently-live table entries.
func (t *MLETable) Sum() field.Element {
	sum := t.f.Zero()
	for i := 0; i < t.logicalLen; i++ {
		sum = sum.Add(t.values[i])
	}
	return sum
}

// Fold replaces the length-2^k table by a length-2^(k-1) table after
// fixing the lowest remaining variable to r: entry b becomes
// table[2b]*(1-r) + table[2b+1]*r. Performed in place; the read index 2b
// is always >= the write index b, so a single bottom-up pass is safe.
func (t *MLETable) Fold(r field.Element) {
	if t.logicalLen <= 1 {
		panic("poly: cannot fold a table of length <= 1")
	}
	one := t.f.One()
	oneMinusR := one.Sub(r)
	half := t.logicalLen / 2
	for b := 0; b < half; b++ {
		lo := t.values[2*b]
		hi := t.values[2*b+1]
		t.values[b] = lo.Mul(oneMinusR).Add(hi.Mul(r))
	}
	t.logicalLen = half
}

// SumEvenOdd returns (Σ_{b} table[2b], Σ_{b} table[2b+1]) over the current
// logical range [0, Len()) viewed as pairs split on the lowest live
// variable, so p0+p1 == Sum(). For a singleton table both values are zero.
func (t *MLETable) SumEvenOdd() (field.Element, field.Element) {
	if t.logicalLen%2 != 0 && t.logicalLen != 1 {
		panic("poly: SumEvenOdd requires an even-length or singleton table")
	}
	p0, p1 := t.f.Zero(), t.f.Zero()
	half := t.logicalLen / 2
	for b := 0; b < half; b++ {
		p0 = p0.Add(t.values[2*b])
		p1 = p1.Add(t.values[2*b+1])
	}
	return p0, p1
}
