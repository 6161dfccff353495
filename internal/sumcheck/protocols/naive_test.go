package protocols

import (
	"errors"
	"testing"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/poly"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/transcript"
)

func degreeTwoExample(t *testing.T, f field.Field) *poly.Sparse {
	t.Helper()
	g, err := poly.NewSparse(f, 2, []poly.Monomial{
		{Coeff: f.NewElement(20), Term: poly.Term{0: 2}},
		{Coeff: f.NewElement(5), Term: poly.Term{0: 2, 1: 1}},
		{Coeff: f.NewElement(29), Term: poly.Term{0: 1, 1: 1}},
		{Coeff: f.NewElement(62), Term: poly.Term{0: 2, 1: 2}},
		{Coeff: f.NewElement(90), Term: poly.Term{0: 1, 1: 2}},
		{Coeff: f.NewElement(88), Term: poly.Term{1: 2}},
	})
	if err != nil {
		t.Fatalf("failed to build polynomial: %v", err)
	}
	return g
}

func driveNaive(t *testing.T, g *poly.Sparse, claim field.Element, src transcript.Source) (*Verdict, error) {
	t.Helper()
	prover := NewNaiveProver(g)
	verifier := NewNaiveVerifier(g.Field(), g.NumVars(), claim, g)

	var challenge field.Element
	for j := 0; j < g.NumVars(); j++ {
		msg, err := prover.Round(challenge, j)
		if err != nil {
			return nil, err
		}
		next, verdict, err := verifier.Round(msg, src)
		if err != nil {
			return nil, err
		}
		if verdict != nil {
			return verdict, nil
		}
		challenge = next
	}
	t.Fatal("driver exited loop without a verdict")
	return nil, nil
}

func TestNaiveHonestProofAccepts(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)
	g := degreeTwoExample(t, f)
	prover := NewNaiveProver(g)

	if !prover.Claim().Equal(f.NewElement(14)) {
		t.Fatalf("claim = %s, want 14", prover.Claim())
	}

	verdict, err := driveNaive(t, g, prover.Claim(), transcript.NewChannel("naive-accept"))
	if err != nil {
		t.Fatalf("protocol failed: %v", err)
	}
	if !verdict.Accept {
		t.Error("expected acceptance for honest prover")
	}
}

func TestNaiveWrongClaimRejectsAtRoundZero(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)
	g := degreeTwoExample(t, f)
	prover := NewNaiveProver(g)
	wrongClaim := prover.Claim().Add(f.NewElement(1))

	_, err := driveNaive(t, g, wrongClaim, transcript.NewChannel("naive-reject"))
	if err == nil {
		t.Fatal("expected claim mismatch error")
	}
	var scErr *SumCheckError
	if !errors.As(err, &scErr) || scErr.Code != ErrClaimMismatch {
		t.Errorf("expected ErrClaimMismatch, got %v", err)
	}
}

// loggingSource wraps a Source and records every value it hands out, so
// tests can check the verifier's recorded challenge list matches what the
// randomness source actually returned, in order.
type loggingSource struct {
	inner transcript.Source
	drawn []field.Element
}

func (s *loggingSource) Draw(f field.Field) (field.Element, error) {
	v, err := s.inner.Draw(f)
	if err != nil {
		return nil, err
	}
	s.drawn = append(s.drawn, v)
	return v, nil
}

func TestNaiveChallengesRecordedInOrder(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)
	g := degreeTwoExample(t, f)
	prover := NewNaiveProver(g)
	verifier := NewNaiveVerifier(f, g.NumVars(), prover.Claim(), g)
	src := &loggingSource{inner: transcript.NewFixedSequenceSource(5, 19)}

	var challenge field.Element
	for j := 0; j < g.NumVars(); j++ {
		msg, err := prover.Round(challenge, j)
		if err != nil {
			t.Fatalf("prover round %d failed: %v", j, err)
		}
		next, verdict, err := verifier.Round(msg, src)
		if err != nil {
			t.Fatalf("verifier round %d failed: %v", j, err)
		}
		if verdict == nil {
			challenge = next
		}
	}

	got := verifier.Challenges()
	if len(got) != g.NumVars() {
		t.Fatalf("recorded %d challenges, want %d", len(got), g.NumVars())
	}
	if len(src.drawn) != g.NumVars() {
		t.Fatalf("source drew %d values, want %d", len(src.drawn), g.NumVars())
	}
	for i := range got {
		if !got[i].Equal(src.drawn[i]) {
			t.Errorf("challenge %d = %s, want %s", i, got[i], src.drawn[i])
		}
	}
}
