// Package transcript supplies the verifier's randomness oracle: a
// SHA3-backed Fiat-Shamir-flavoured channel for production use, and a
// deterministic replay source for tests. Verifiers accept this as an
// injectable dependency rather than calling a global RNG, so tests can
// substitute a fixed challenge sequence.
package transcript

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
)

// Source is the verifier's injectable randomness oracle: draw() -> F.
type Source interface {
	Draw(f field.Field) (field.Element, error)
}

// Channel is a Fiat-Shamir-style transcript: each Draw hashes the running
// state forward, and Send folds external data into it. Sum-Check uses it
// purely interactively (the Send half of the transcript is unused here), so
// the challenge sequence depends only on the seed label; it is the same
// type a later non-interactive transform would reuse.
type Channel struct {
	state []byte
}

// NewChannel creates a channel seeded from label, folding it through SHA3-256.
func NewChannel(label string) *Channel {
	h := sha3.Sum256([]byte(label))
	return &Channel{state: h[:]}
}

// Send folds external data into the transcript state, e.g. a round message
// a caller wants reflected in subsequent challenges.
func (c *Channel) Send(data []byte) {
	c.state = hash(append(append([]byte(nil), c.state...), data...))
}

// Draw derives the next field element from the running state and advances
// it, satisfying the Source interface.
func (c *Channel) Draw(f field.Field) (field.Element, error) {
	modulus := f.Characteristic()
	stateInt := new(big.Int).SetBytes(c.state)
	value := new(big.Int).Mod(stateInt, modulus)
	c.state = hash(c.state)
	return f.NewElementFromBigInt(value), nil
}

func hash(data []byte) []byte {
	h := sha3.Sum256(data)
	return h[:]
}

// FixedSequenceSource replays a predetermined sequence of challenges,
// embedded as small integers, for deterministic tests.
type FixedSequenceSource struct {
	values []int64
	next   int
}

// NewFixedSequenceSource builds a Source that returns values[0], values[1],
// ... in order, erroring once exhausted.
func NewFixedSequenceSource(values ...int64) *FixedSequenceSource {
	return &FixedSequenceSource{values: values}
}

// Draw returns the next value in the configured sequence.
func (s *FixedSequenceSource) Draw(f field.Field) (field.Element, error) {
	if s.next >= len(s.values) {
		return nil, fmt.Errorf("transcript: fixed sequence exhausted after %d draws", s.next)
	}
	v := s.values[s.next]
	s.next++
	return f.NewElement(v), nil
}
