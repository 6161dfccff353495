// Package field defines the algebraic contract Sum-Check is built on and
// provides a prime-field implementation of it for didactic and test use.
package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Element is a value in a finite field. Sum-Check itself only needs
// addition, subtraction and multiplication; Inv is required solely by the
// PML verifier's Lagrange interpolation over small integer differences.
type Element interface {
	Add(Element) Element
	Sub(Element) Element
	Mul(Element) Element
	Neg() Element
	Inv() (Element, error)
	Equal(Element) bool
	IsZero() bool
	IsOne() bool
	String() string
}

// Field mints elements and reports the algebraic constants a Sum-Check
// implementation needs: zero, one, small-integer embedding and uniform
// sampling.
type Field interface {
	Zero() Element
	One() Element
	NewElement(v int64) Element
	NewElementFromBigInt(v *big.Int) Element
	RandomElement(r io.Reader) (Element, error)
	Characteristic() *big.Int
}

// PrimeField is a finite field of prime characteristic p, backed by
// big.Int. It is the default field used throughout this repository (the
// reference Sum-Check scenarios use p = 97) and the field the test suite
// builds its scenarios in.
type PrimeField struct {
	modulus *big.Int
}

// PrimeElement is an element of a PrimeField.
type PrimeElement struct {
	field *PrimeField
	value *big.Int
}

// NewPrimeField creates a prime field with the given modulus. The modulus
// is not checked for primality; callers are expected to supply a prime.
func NewPrimeField(modulus *big.Int) (*PrimeField, error) {
	if modulus.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("field: modulus must be greater than 2")
	}
	return &PrimeField{modulus: new(big.Int).Set(modulus)}, nil
}

// NewPrimeFieldUint64 creates a prime field from a uint64 modulus.
func NewPrimeFieldUint64(modulus uint64) (*PrimeField, error) {
	return NewPrimeField(new(big.Int).SetUint64(modulus))
}

// Characteristic returns a copy of the field modulus.
func (f *PrimeField) Characteristic() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// NewElement embeds a small integer into the field.
func (f *PrimeField) NewElement(v int64) Element {
	return f.elementFromBigInt(big.NewInt(v))
}

// NewElementFromBigInt creates a field element from an arbitrary big.Int.
func (f *PrimeField) NewElementFromBigInt(v *big.Int) Element {
	return f.elementFromBigInt(v)
}

func (f *PrimeField) elementFromBigInt(v *big.Int) *PrimeElement {
	normalized := new(big.Int).Mod(v, f.modulus)
	if normalized.Sign() < 0 {
		normalized.Add(normalized, f.modulus)
	}
	return &PrimeElement{field: f, value: normalized}
}

// Zero returns the additive identity.
func (f *PrimeField) Zero() Element { return f.NewElement(0) }

// One returns the multiplicative identity.
func (f *PrimeField) One() Element { return f.NewElement(1) }

// RandomElement draws a uniformly distributed field element from r.
func (f *PrimeField) RandomElement(r io.Reader) (Element, error) {
	v, err := rand.Int(r, f.modulus)
	if err != nil {
		return nil, fmt.Errorf("field: failed to sample random element: %w", err)
	}
	return f.elementFromBigInt(v), nil
}

// Big returns a copy of the element's representative in [0, modulus).
func (e *PrimeElement) Big() *big.Int {
	return new(big.Int).Set(e.value)
}

func (e *PrimeElement) sameField(other Element) *PrimeElement {
	o, ok := other.(*PrimeElement)
	if !ok || o.field.modulus.Cmp(e.field.modulus) != 0 {
		panic("field: operand from a different field")
	}
	return o
}

// Add performs field addition.
func (e *PrimeElement) Add(other Element) Element {
	o := e.sameField(other)
	return e.field.elementFromBigInt(new(big.Int).Add(e.value, o.value))
}

// Sub performs field subtraction.
func (e *PrimeElement) Sub(other Element) Element {
	o := e.sameField(other)
	return e.field.elementFromBigInt(new(big.Int).Sub(e.value, o.value))
}

// Mul performs field multiplication.
func (e *PrimeElement) Mul(other Element) Element {
	o := e.sameField(other)
	return e.field.elementFromBigInt(new(big.Int).Mul(e.value, o.value))
}

// Neg returns the additive inverse of e.
func (e *PrimeElement) Neg() Element {
	return e.field.elementFromBigInt(new(big.Int).Neg(e.value))
}

// Inv returns the multiplicative inverse of e via the extended Euclidean
// algorithm. Sum-Check itself never divides; this exists for Lagrange
// interpolation in the PML verifier.
func (e *PrimeElement) Inv() (Element, error) {
	if e.value.Sign() == 0 {
		return nil, fmt.Errorf("field: cannot invert zero")
	}
	inv := new(big.Int).ModInverse(e.value, e.field.modulus)
	if inv == nil {
		return nil, fmt.Errorf("field: %s has no inverse mod %s", e.value, e.field.modulus)
	}
	return e.field.elementFromBigInt(inv), nil
}

// Equal reports whether e and other represent the same field element.
func (e *PrimeElement) Equal(other Element) bool {
	o, ok := other.(*PrimeElement)
	if !ok || o.field.modulus.Cmp(e.field.modulus) != 0 {
		return false
	}
	return e.value.Cmp(o.value) == 0
}

// IsZero reports whether e is the additive identity.
func (e *PrimeElement) IsZero() bool { return e.value.Sign() == 0 }

// IsOne reports whether e is the multiplicative identity.
func (e *PrimeElement) IsOne() bool { return e.value.Cmp(big.NewInt(1)) == 0 }

// String renders the element's canonical representative.
func (e *PrimeElement) String() string { return e.value.String() }

// DefaultField is the p = 97 field used by this repository's worked
// examples and reference test scenarios.
var DefaultField, _ = NewPrimeFieldUint64(97)
