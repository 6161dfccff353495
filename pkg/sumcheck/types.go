package sumcheck

import (
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/poly"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/protocols"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/transcript"
)

// Field is a finite field: zero, one, small-integer embedding and uniform
// sampling. See internal/sumcheck/field for the full algebraic contract.
type Field = field.Field

// FieldElement is a value in a Field.
type FieldElement = field.Element

// PrimeField is the default big.Int-backed field implementation.
type PrimeField = field.PrimeField

// DefaultField is the p = 97 field used by this repository's reference
// scenarios.
var DefaultField = field.DefaultField

// Term, Monomial and Sparse are the sparse multivariate polynomial types
// the naive prover/verifier operate on.
type (
	Term       = poly.Term
	Monomial   = poly.Monomial
	Sparse     = poly.Sparse
	Univariate = poly.Univariate
	MLETable   = poly.MLETable
)

// NewSparse, NewPrimeFieldUint64 and LagrangeEval re-export the polynomial
// substrate's constructors for callers that build polynomials directly
// against this package rather than internal/sumcheck/poly.
var (
	NewSparse           = poly.NewSparse
	NewPrimeFieldUint64 = field.NewPrimeFieldUint64
	LagrangeEval        = poly.LagrangeEval
	Hypercube           = poly.Hypercube
)

// Source is the verifier's randomness oracle.
type Source = transcript.Source

// Channel is the SHA3-backed default randomness oracle.
type Channel = transcript.Channel

// NewChannel constructs a default Channel seeded from label.
var NewChannel = transcript.NewChannel

// FixedSequenceSource replays a deterministic challenge sequence; useful
// for reproducing a specific round-by-round trace in tests.
type FixedSequenceSource = transcript.FixedSequenceSource

var NewFixedSequenceSource = transcript.NewFixedSequenceSource

// Oracle is the read-only final-round evaluation capability every
// variant's verifier needs.
type Oracle = protocols.Oracle

// Verdict is a verifier's terminal accept/reject decision.
type Verdict = protocols.Verdict

// ProductOracle combines k factor oracles into the Π_i g_i(x) oracle the
// PML verifier's final round needs.
type ProductOracle = protocols.ProductOracle

var NewProductOracle = protocols.NewProductOracle

// Naive Sum-Check.
type (
	NaiveProver   = protocols.NaiveProver
	NaiveVerifier = protocols.NaiveVerifier
)

var (
	NewNaiveProver   = protocols.NewNaiveProver
	NewNaiveVerifier = protocols.NewNaiveVerifier
)

// Multilinear Sum-Check.
type (
	MLProver   = protocols.MLProver
	MLVerifier = protocols.MLVerifier
)

var (
	NewMLProver   = protocols.NewMLProver
	NewMLVerifier = protocols.NewMLVerifier
)

// Product-of-multilinears Sum-Check.
type (
	PMLProver   = protocols.PMLProver
	PMLVerifier = protocols.PMLVerifier
)

var (
	NewPMLProver   = protocols.NewPMLProver
	NewPMLVerifier = protocols.NewPMLVerifier
)
