package sumcheck

import (
	"math/big"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/protocols"
)

// Variant selects which Sum-Check protocol a driver (e.g. cmd/sumcheck-demo)
// runs.
type Variant string

const (
	VariantNaive Variant = "naive"
	VariantML    Variant = "ml"
	VariantPML   Variant = "pml"
)

// Config configures which field and protocol variant a Sum-Check run uses,
// via a DefaultConfig/WithX/Validate/Clone builder.
type Config struct {
	// FieldModulus is the prime characteristic of the working field.
	FieldModulus *big.Int

	// Variant selects naive, ML or PML.
	Variant Variant

	// HashLabel seeds the default SHA3 randomness oracle.
	HashLabel string

	// PMLFactors is the number of multilinear factors, only meaningful
	// when Variant == VariantPML.
	PMLFactors int
}

// DefaultConfig returns the configuration backing this repository's
// reference scenarios: p = 97, ML variant.
func DefaultConfig() *Config {
	return &Config{
		FieldModulus: big.NewInt(97),
		Variant:      VariantML,
		HashLabel:    "sumcheck-mle",
		PMLFactors:   2,
	}
}

// Validate checks the configuration is well-formed, returning a
// SumCheckError coded ErrInvalidConfig on failure so callers can match it
// with errors.Is the same way they match protocol-round failures.
func (c *Config) Validate() error {
	if c.FieldModulus == nil || c.FieldModulus.Cmp(big.NewInt(2)) <= 0 {
		return protocols.InvalidConfig("field modulus must be greater than 2")
	}
	switch c.Variant {
	case VariantNaive, VariantML, VariantPML:
	default:
		return protocols.InvalidConfig("unknown variant %q", c.Variant)
	}
	if c.Variant == VariantPML {
		if c.PMLFactors < 1 {
			return protocols.InvalidConfig("PML requires at least 1 factor, got %d", c.PMLFactors)
		}
		if c.FieldModulus.Cmp(big.NewInt(int64(c.PMLFactors))) <= 0 {
			return protocols.InvalidConfig("field characteristic must exceed k=%d for PML interpolation", c.PMLFactors)
		}
	}
	if c.HashLabel == "" {
		return protocols.InvalidConfig("hash label must not be empty")
	}
	return nil
}

// WithFieldModulus sets the field modulus.
func (c *Config) WithFieldModulus(modulus *big.Int) *Config {
	c.FieldModulus = new(big.Int).Set(modulus)
	return c
}

// WithVariant sets the protocol variant.
func (c *Config) WithVariant(v Variant) *Config {
	c.Variant = v
	return c
}

// WithHashLabel sets the transcript seed label.
func (c *Config) WithHashLabel(label string) *Config {
	c.HashLabel = label
	return c
}

// WithPMLFactors sets the number of PML factors.
func (c *Config) WithPMLFactors(k int) *Config {
	c.PMLFactors = k
	return c
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	return &Config{
		FieldModulus: new(big.Int).Set(c.FieldModulus),
		Variant:      c.Variant,
		HashLabel:    c.HashLabel,
		PMLFactors:   c.PMLFactors,
	}
}

// Field builds the PrimeField this configuration describes.
func (c *Config) Field() (*PrimeField, error) {
	return NewPrimeFieldUint64(c.FieldModulus.Uint64())
}
