package sumcheck

import "github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/protocols"

// SumCheckError is the error type every verifier Round returns on
// rejection; see internal/sumcheck/protocols for the code taxonomy.
type SumCheckError = protocols.SumCheckError

// ErrorCode identifies the kind of Sum-Check protocol failure.
type ErrorCode = protocols.ErrorCode

// Error codes a caller can match with errors.Is.
const (
	ErrClaimMismatch = protocols.ErrClaimMismatch
	ErrMissingOracle = protocols.ErrMissingOracle
	ErrInvalidInput  = protocols.ErrInvalidInput
	ErrInvalidConfig = protocols.ErrInvalidConfig
)

func invalidInputErr(msg string) error {
	return &SumCheckError{Code: ErrInvalidInput, Message: msg}
}
