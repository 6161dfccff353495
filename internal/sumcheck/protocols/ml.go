package protocols

import (
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/poly"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/transcript"
)

// MLProver implements the multilinear Sum-Check prover: it materialises
// the MLE table once and folds it in place each round, sending only
// (p0, p1) per round instead of a full univariate.
type MLProver struct {
	f          field.Field
	n          int
	table      *poly.MLETable
	claim      field.Element
	challenges []field.Element
	round      int
}

// NewMLProver constructs a prover from a multilinear g, materialising its
// MLE table and setting the claim to the table's total sum.
func NewMLProver(g *poly.Sparse) (*MLProver, error) {
	table, err := poly.NewMLETable(g)
	if err != nil {
		return nil, err
	}
	return &MLProver{
		f:     g.Field(),
		n:     g.NumVars(),
		table: table,
		claim: table.Sum(),
	}, nil
}

// Claim returns H, fixed at construction.
func (p *MLProver) Claim() field.Element { return p.claim }

// NumVars returns n.
func (p *MLProver) NumVars() int { return p.n }

// Round folds the table with rPrev (skipped at j == 0) and returns the
// round's (p0, p1) pair, with p0 + p1 equal to the sum of the folded table.
func (p *MLProver) Round(rPrev field.Element, j int) (field.Element, field.Element, error) {
	if j != p.round {
		return nil, nil, invalidInput("ml prover: expected round %d, got %d", p.round, j)
	}
	if j >= p.n {
		return nil, nil, invalidInput("ml prover: no rounds remain past n=%d", p.n)
	}
	if j > 0 {
		p.challenges = append(p.challenges, rPrev)
		p.table.Fold(rPrev)
	}
	p0, p1 := p.table.SumEvenOdd()
	p.round++
	return p0, p1, nil
}

// MLVerifier implements the multilinear Sum-Check verifier.
type MLVerifier struct {
	f          field.Field
	n          int
	expect     field.Element
	oracle     Oracle
	challenges []field.Element
	round      int
}

// NewMLVerifier constructs a verifier with expect initialised to claim.
func NewMLVerifier(f field.Field, n int, claim field.Element, oracle Oracle) *MLVerifier {
	return &MLVerifier{f: f, n: n, expect: claim, oracle: oracle}
}

// Challenges returns the challenges accepted so far, in order.
func (v *MLVerifier) Challenges() []field.Element {
	cp := make([]field.Element, len(v.challenges))
	copy(cp, v.challenges)
	return cp
}

// Round consumes round-j's (p0, p1) message, checks p0+p1 == expect,
// samples r_j, and either updates expect and returns r_j, or (on the last
// round) performs the final oracle check and returns a Verdict.
func (v *MLVerifier) Round(p0, p1 field.Element, src transcript.Source) (field.Element, *Verdict, error) {
	j := v.round
	if j >= v.n {
		return nil, nil, invalidInput("ml verifier: no rounds remain past n=%d", v.n)
	}

	sum := p0.Add(p1)
	if !sum.Equal(v.expect) {
		return nil, nil, claimMismatch(j, v.expect, sum)
	}

	r, err := src.Draw(v.f)
	if err != nil {
		return nil, nil, err
	}
	v.challenges = append(v.challenges, r)
	affine := p0.Add(r.Mul(p1.Sub(p0)))

	if j < v.n-1 {
		v.expect = affine
		v.round++
		return r, nil, nil
	}

	if v.oracle == nil {
		return nil, nil, missingOracle()
	}
	oracleVal := v.oracle.Evaluate(v.challenges)
	v.round++
	if !affine.Equal(oracleVal) {
		return nil, nil, claimMismatch(j, oracleVal, affine)
	}
	return nil, &Verdict{Accept: true}, nil
}
