package protocols

import (
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/poly"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/transcript"
)

// Oracle is the read-only final-round evaluation capability every variant's
// verifier needs: evaluate the original polynomial(s) at the accumulated
// challenge vector.
type Oracle interface {
	Evaluate(x []field.Element) field.Element
	NumVars() int
}

// Verdict is the verifier's terminal accept/reject decision.
type Verdict struct {
	Accept bool
}

// NaiveProver implements the naive Sum-Check prover: each round it sends a
// full univariate in x_0, obtained by fixing all prior challenges and
// summing over the remaining Boolean hypercube.
type NaiveProver struct {
	f          field.Field
	n          int
	claim      field.Element
	current    *poly.Sparse
	challenges []field.Element
	round      int
}

// NewNaiveProver constructs a prover from g, computing the claim H = Σ g(x)
// over the Boolean hypercube.
func NewNaiveProver(g *poly.Sparse) *NaiveProver {
	return &NaiveProver{
		f:       g.Field(),
		n:       g.NumVars(),
		claim:   g.SumOverHypercube(),
		current: g,
	}
}

// Claim returns H, fixed at construction.
func (p *NaiveProver) Claim() field.Element { return p.claim }

// NumVars returns n.
func (p *NaiveProver) NumVars() int { return p.n }

// Round advances the prover from READY(j) to READY(j+1), returning the
// round-j univariate. rPrev is ignored when j == 0.
func (p *NaiveProver) Round(rPrev field.Element, j int) (*poly.Univariate, error) {
	if j != p.round {
		return nil, invalidInput("naive prover: expected round %d, got %d", p.round, j)
	}
	if j >= p.n {
		return nil, invalidInput("naive prover: no rounds remain past n=%d", p.n)
	}
	if j > 0 {
		p.challenges = append(p.challenges, rPrev)
		fixed, err := p.current.FixVariables([]field.Element{rPrev})
		if err != nil {
			return nil, err
		}
		p.current = fixed
	}
	univariate, err := p.current.ToUnivariate()
	if err != nil {
		return nil, err
	}
	p.round++
	return univariate, nil
}

// NaiveVerifier implements the naive Sum-Check verifier.
type NaiveVerifier struct {
	f          field.Field
	n          int
	claim      field.Element
	oracle     Oracle
	challenges []field.Element
	prevRound  *poly.Univariate
	round      int
}

// NewNaiveVerifier constructs a verifier holding a read-only oracle
// reference and the initial claim.
func NewNaiveVerifier(f field.Field, n int, claim field.Element, oracle Oracle) *NaiveVerifier {
	return &NaiveVerifier{f: f, n: n, claim: claim, oracle: oracle}
}

// Challenges returns the challenges accepted so far, in order.
func (v *NaiveVerifier) Challenges() []field.Element {
	cp := make([]field.Element, len(v.challenges))
	copy(cp, v.challenges)
	return cp
}

// Round consumes round-j's univariate message. On all but the last round
// it samples and returns the next challenge; on the last round it performs
// the final oracle check and returns a Verdict instead.
func (v *NaiveVerifier) Round(msg *poly.Univariate, src transcript.Source) (field.Element, *Verdict, error) {
	j := v.round
	if j >= v.n {
		return nil, nil, invalidInput("naive verifier: no rounds remain past n=%d", v.n)
	}

	var expected field.Element
	if j == 0 {
		expected = v.claim
	} else {
		expected = v.prevRound.Eval(v.challenges[len(v.challenges)-1])
	}
	actualSum := msg.EvalAtZero().Add(msg.EvalAtOne())
	if !actualSum.Equal(expected) {
		return nil, nil, claimMismatch(j, expected, actualSum)
	}

	if j == v.n-1 {
		if v.oracle == nil {
			return nil, nil, missingOracle()
		}
		r, err := src.Draw(v.f)
		if err != nil {
			return nil, nil, err
		}
		v.challenges = append(v.challenges, r)
		final := msg.Eval(r)
		oracleVal := v.oracle.Evaluate(v.challenges)
		if !final.Equal(oracleVal) {
			return nil, nil, claimMismatch(j, oracleVal, final)
		}
		v.round++
		return nil, &Verdict{Accept: true}, nil
	}

	r, err := src.Draw(v.f)
	if err != nil {
		return nil, nil, err
	}
	v.challenges = append(v.challenges, r)
	v.prevRound = msg
	v.round++
	return r, nil, nil
}
