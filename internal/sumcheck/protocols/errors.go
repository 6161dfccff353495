package protocols

import "fmt"

// ErrorCode identifies the kind of Sum-Check protocol failure.
type ErrorCode int

const (
	// ErrUnknown is the zero value, never returned deliberately.
	ErrUnknown ErrorCode = iota

	// ErrClaimMismatch means a round's expected-sum check (or the final
	// oracle check) failed: the proof is rejected.
	ErrClaimMismatch

	// ErrMissingOracle means a verifier without an oracle reference
	// reached the final round and cannot perform the oracle check.
	ErrMissingOracle

	// ErrInvalidInput covers construction-time misuse: mismatched PML
	// factor arities, an empty factor list, a round index out of order or
	// past n, etc.
	ErrInvalidInput

	// ErrInvalidConfig covers a malformed Config: an unusable modulus, an
	// unknown variant, an empty hash label, or a PML factor count the
	// field characteristic can't support.
	ErrInvalidConfig
)

// SumCheckError is the error type returned by verifier rounds and by
// construction-time validation. It carries the expected/actual field
// values as diagnostic payload when a round check fails.
type SumCheckError struct {
	Code     ErrorCode
	Message  string
	Expected fmt.Stringer
	Actual   fmt.Stringer
	Cause    error
}

// Error renders the failure, including expected/actual when present.
func (e *SumCheckError) Error() string {
	switch {
	case e.Expected != nil && e.Actual != nil:
		return fmt.Sprintf("sumcheck error [%d]: %s (expected %s, got %s)", e.Code, e.Message, e.Expected, e.Actual)
	case e.Cause != nil:
		return fmt.Sprintf("sumcheck error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	default:
		return fmt.Sprintf("sumcheck error [%d]: %s", e.Code, e.Message)
	}
}

// Unwrap exposes the underlying cause, if any.
func (e *SumCheckError) Unwrap() error { return e.Cause }

// Is allows errors.Is(err, &SumCheckError{Code: ErrClaimMismatch}) matching
// by code alone.
func (e *SumCheckError) Is(target error) bool {
	t, ok := target.(*SumCheckError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func claimMismatch(round int, expected, actual fmt.Stringer) *SumCheckError {
	return &SumCheckError{
		Code:     ErrClaimMismatch,
		Message:  fmt.Sprintf("round %d: claimed sum does not match expected value", round),
		Expected: expected,
		Actual:   actual,
	}
}

func missingOracle() *SumCheckError {
	return &SumCheckError{Code: ErrMissingOracle, Message: "verifier has no oracle reference for the final round"}
}

func invalidInput(format string, args ...interface{}) *SumCheckError {
	return &SumCheckError{Code: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// InvalidConfig builds an ErrInvalidConfig-coded error for callers outside
// this package, e.g. pkg/sumcheck's Config.Validate.
func InvalidConfig(format string, args ...interface{}) *SumCheckError {
	return &SumCheckError{Code: ErrInvalidConfig, Message: fmt.Sprintf(format, args...)}
}
