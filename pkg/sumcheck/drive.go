package sumcheck

import "github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"

// DriveNaive runs the naive Sum-Check protocol between prover and verifier
// to completion over src, alternating prover.Round -> verifier.Round
// exactly n times, and returns the final verdict.
func DriveNaive(prover *NaiveProver, verifier *NaiveVerifier, src Source) (*Verdict, error) {
	var challenge field.Element
	for j := 0; j < prover.NumVars(); j++ {
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
	return nil, missingOracleIfUnreached()
}

// DriveML runs the multilinear Sum-Check protocol to completion.
func DriveML(prover *MLProver, verifier *MLVerifier, src Source) (*Verdict, error) {
	var challenge field.Element
	for j := 0; j < prover.NumVars(); j++ {
		p0, p1, err := prover.Round(challenge, j)
		if err != nil {
			return nil, err
		}
		next, verdict, err := verifier.Round(p0, p1, src)
		if err != nil {
			return nil, err
		}
		if verdict != nil {
			return verdict, nil
		}
		challenge = next
	}
	return nil, missingOracleIfUnreached()
}

// DrivePML runs the product-of-multilinears Sum-Check protocol to
// completion.
func DrivePML(prover *PMLProver, verifier *PMLVerifier, src Source) (*Verdict, error) {
	var challenge field.Element
	for j := 0; j < prover.NumVars(); j++ {
		points, err := prover.Round(challenge, j)
		if err != nil {
			return nil, err
		}
		next, verdict, err := verifier.Round(points, src)
		if err != nil {
			return nil, err
		}
		if verdict != nil {
			return verdict, nil
		}
		challenge = next
	}
	return nil, missingOracleIfUnreached()
}

// missingOracleIfUnreached is only reachable for n == 0, where the loop
// body never runs; n == 0 has no rounds and no claim to check, so this is
// a programming error in the caller rather than a protocol outcome.
func missingOracleIfUnreached() error {
	return invalidInputErr("cannot drive a 0-variable Sum-Check to a verdict")
}
