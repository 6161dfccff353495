package protocols

import (
	"sync"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/poly"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/transcript"
)

// ProductOracle evaluates Π_i g_i(x) from k individual factor oracles, the
// final-round check the PML verifier needs.
type ProductOracle struct {
	factors []Oracle
}

// NewProductOracle wraps k factor oracles of identical arity.
func NewProductOracle(factors ...Oracle) (*ProductOracle, error) {
	if len(factors) == 0 {
		return nil, invalidInput("pml: product oracle requires at least one factor")
	}
	n := factors[0].NumVars()
	for i, f := range factors {
		if f.NumVars() != n {
			return nil, invalidInput("pml: factor %d has arity %d, want %d", i, f.NumVars(), n)
		}
	}
	return &ProductOracle{factors: factors}, nil
}

// NumVars returns the common arity of the wrapped factors.
func (o *ProductOracle) NumVars() int { return o.factors[0].NumVars() }

// Evaluate computes Π_i factors[i].Evaluate(x).
func (o *ProductOracle) Evaluate(x []field.Element) field.Element {
	result := o.factors[0].Evaluate(x)
	for _, factor := range o.factors[1:] {
		result = result.Mul(factor.Evaluate(x))
	}
	return result
}

// PMLProver implements the product-of-multilinears Sum-Check prover: one
// MLE table per factor, folded independently each round, sending k+1
// evaluation points per round.
type PMLProver struct {
	f          field.Field
	n          int
	k          int
	tables     []*poly.MLETable
	claim      field.Element
	challenges []field.Element
	round      int
	workers    int
}

// NewPMLProver constructs a prover from k multilinear factors of identical
// arity, computing the claim H = Σ_b Π_i g_i(b).
func NewPMLProver(factors []*poly.Sparse) (*PMLProver, error) {
	if len(factors) == 0 {
		return nil, invalidInput("pml prover: requires at least one factor")
	}
	n := factors[0].NumVars()
	tables := make([]*poly.MLETable, len(factors))
	for i, g := range factors {
		if g.NumVars() != n {
			return nil, invalidInput("pml prover: factor %d has arity %d, want %d", i, g.NumVars(), n)
		}
		t, err := poly.NewMLETable(g)
		if err != nil {
			return nil, err
		}
		tables[i] = t
	}

	f := factors[0].Field()
	claim := f.Zero()
	length := tables[0].Len()
	for b := 0; b < length; b++ {
		term := tables[0].Get(b)
		for i := 1; i < len(tables); i++ {
			term = term.Mul(tables[i].Get(b))
		}
		claim = claim.Add(term)
	}

	return &PMLProver{
		f:       f,
		n:       n,
		k:       len(factors),
		tables:  tables,
		claim:   claim,
		workers: 1,
	}, nil
}

// Claim returns H, fixed at construction.
func (p *PMLProver) Claim() field.Element { return p.claim }

// NumVars returns n. NumFactors returns k.
func (p *PMLProver) NumVars() int    { return p.n }
func (p *PMLProver) NumFactors() int { return p.k }

// SetWorkers configures the number of goroutines used to split the
// per-round subcube summation across. The split is an embarrassingly
// parallel reduction: associative, commutative field addition makes the
// result bit-identical to the sequential path regardless of how the range
// is divided. workers <= 1 means sequential.
func (p *PMLProver) SetWorkers(workers int) {
	if workers < 1 {
		workers = 1
	}
	p.workers = workers
}

// Round folds every factor's table with rPrev (skipped at j == 0) and
// returns the k+1 evaluations (s_0, ..., s_k) of the round's degree-k
// univariate at points 0..k.
func (p *PMLProver) Round(rPrev field.Element, j int) ([]field.Element, error) {
	if j != p.round {
		return nil, invalidInput("pml prover: expected round %d, got %d", p.round, j)
	}
	if j >= p.n {
		return nil, invalidInput("pml prover: no rounds remain past n=%d", p.n)
	}
	if j > 0 {
		p.challenges = append(p.challenges, rPrev)
		for _, t := range p.tables {
			t.Fold(rPrev)
		}
	}

	points := make([]field.Element, p.k+1)
	if p.workers <= 1 {
		for t := 0; t <= p.k; t++ {
			points[t] = p.evalPointSequential(t)
		}
	} else {
		var wg sync.WaitGroup
		for t := 0; t <= p.k; t++ {
			t := t
			wg.Add(1)
			go func() {
				defer wg.Done()
				points[t] = p.evalPointParallel(t)
			}()
		}
		wg.Wait()
	}
	p.round++
	return points, nil
}

// evalPointSequential computes s_t = Σ_b Π_i (T_i[2b]*(1-t) + T_i[2b+1]*t)
// for the integer evaluation point t, summing in index order.
func (p *PMLProver) evalPointSequential(t int) field.Element {
	tElem := p.f.NewElement(int64(t))
	oneMinusT := p.f.One().Sub(tElem)
	half := p.tables[0].Len() / 2

	sum := p.f.Zero()
	for b := 0; b < half; b++ {
		term := p.f.One()
		for _, table := range p.tables {
			lo := table.Get(2 * b)
			hi := table.Get(2*b + 1)
			term = term.Mul(lo.Mul(oneMinusT).Add(hi.Mul(tElem)))
		}
		sum = sum.Add(term)
	}
	return sum
}

// evalPointParallel computes the same sum as evalPointSequential, but
// splits the subcube range across p.workers goroutines and combines
// partial sums with a final sequential reduction. Field addition is
// associative and commutative, so the result is bit-identical regardless
// of how the range is split.
func (p *PMLProver) evalPointParallel(t int) field.Element {
	tElem := p.f.NewElement(int64(t))
	oneMinusT := p.f.One().Sub(tElem)
	half := p.tables[0].Len() / 2
	if half == 0 {
		return p.f.Zero()
	}

	workers := p.workers
	if workers > half {
		workers = half
	}
	partials := make([]field.Element, workers)
	chunk := (half + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > half {
			end = half
		}
		if start >= end {
			partials[w] = p.f.Zero()
			continue
		}
		w := w
		start, end := start, end
		wg.Add(1)
		go func() {
			defer wg.Done()
			sum := p.f.Zero()
			for b := start; b < end; b++ {
				term := p.f.One()
				for _, table := range p.tables {
					lo := table.Get(2 * b)
					hi := table.Get(2*b + 1)
					term = term.Mul(lo.Mul(oneMinusT).Add(hi.Mul(tElem)))
				}
				sum = sum.Add(term)
			}
			partials[w] = sum
		}()
	}
	wg.Wait()

	total := p.f.Zero()
	for _, part := range partials {
		if part != nil {
			total = total.Add(part)
		}
	}
	return total
}

// PMLVerifier implements the product-of-multilinears Sum-Check verifier,
// reconstructing the round's degree-k univariate from k+1 samples by
// Lagrange interpolation.
type PMLVerifier struct {
	f          field.Field
	n          int
	k          int
	expect     field.Element
	oracle     Oracle
	challenges []field.Element
	round      int
}

// NewPMLVerifier constructs a verifier for k factors of arity n.
func NewPMLVerifier(f field.Field, n, k int, claim field.Element, oracle Oracle) *PMLVerifier {
	return &PMLVerifier{f: f, n: n, k: k, expect: claim, oracle: oracle}
}

// Challenges returns the challenges accepted so far, in order.
func (v *PMLVerifier) Challenges() []field.Element {
	cp := make([]field.Element, len(v.challenges))
	copy(cp, v.challenges)
	return cp
}

// Round consumes round-j's (k+1)-length message, checks s_0+s_1 == expect,
// samples r_j, interpolates the round univariate at r_j, and either
// updates expect and returns r_j, or (on the last round) performs the
// final oracle check and returns a Verdict.
func (v *PMLVerifier) Round(points []field.Element, src transcript.Source) (field.Element, *Verdict, error) {
	j := v.round
	if j >= v.n {
		return nil, nil, invalidInput("pml verifier: no rounds remain past n=%d", v.n)
	}
	if len(points) != v.k+1 {
		return nil, nil, invalidInput("pml verifier: expected %d evaluation points, got %d", v.k+1, len(points))
	}

	sum := points[0].Add(points[1])
	if !sum.Equal(v.expect) {
		return nil, nil, claimMismatch(j, v.expect, sum)
	}

	r, err := src.Draw(v.f)
	if err != nil {
		return nil, nil, err
	}
	v.challenges = append(v.challenges, r)

	value, err := poly.LagrangeEval(v.f, points, r)
	if err != nil {
		return nil, nil, err
	}

	if j < v.n-1 {
		v.expect = value
		v.round++
		return r, nil, nil
	}

	if v.oracle == nil {
		return nil, nil, missingOracle()
	}
	oracleVal := v.oracle.Evaluate(v.challenges)
	v.round++
	if !value.Equal(oracleVal) {
		return nil, nil, claimMismatch(j, oracleVal, value)
	}
	return nil, &Verdict{Accept: true}, nil
}
