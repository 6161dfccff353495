// Package sumcheck is the public API for the Sum-Check interactive proof
// library: naive, multilinear (ML) and product-of-multilinears (PML)
// variants of the protocol that proves a claimed scalar H equals
// Σ_{x ∈ {0,1}^n} g(x) for an n-variate polynomial g over a finite field F.
//
// # Quick start
//
// Naive variant, proving and verifying a sparse multivariate polynomial:
//
//	g, _ := sumcheck.NewSparse(f, 2, monomials)
//	prover := sumcheck.NewNaiveProver(g)
//	verifier := sumcheck.NewNaiveVerifier(f, g.NumVars(), prover.Claim(), g)
//	verdict, err := sumcheck.DriveNaive(prover, verifier, source)
//
// ML and PML variants follow the same construct → drive shape with
// sumcheck.NewMLProver/NewMLVerifier and NewPMLProver/NewPMLVerifier, and
// DriveML/DrivePML.
//
// # Architecture
//
//   - pkg/sumcheck: public API (this package)
//   - internal/sumcheck/field: the algebraic field contract and a
//     big.Int-backed prime field implementation
//   - internal/sumcheck/poly: Boolean hypercube enumeration, sparse
//     multivariate/univariate polynomials, MLE evaluation tables, Lagrange
//     interpolation
//   - internal/sumcheck/transcript: the verifier's randomness oracle
//   - internal/sumcheck/protocols: the three prover/verifier state machines
//
// Implementation details in internal/ can change without breaking this
// package's surface.
package sumcheck
