package field

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestPrimeFieldArithmetic(t *testing.T) {
	f, err := NewPrimeFieldUint64(97)
	if err != nil {
		t.Fatalf("failed to build field: %v", err)
	}

	t.Run("AddWraps", func(t *testing.T) {
		a := f.NewElement(90)
		b := f.NewElement(10)
		got := a.Add(b)
		want := f.NewElement(3) // 100 mod 97
		if !got.Equal(want) {
			t.Errorf("90+10 = %s, want %s", got, want)
		}
	})

	t.Run("SubWrapsNegative", func(t *testing.T) {
		a := f.NewElement(5)
		b := f.NewElement(10)
		got := a.Sub(b)
		want := f.NewElement(92) // -5 mod 97
		if !got.Equal(want) {
			t.Errorf("5-10 = %s, want %s", got, want)
		}
	})

	t.Run("MulWraps", func(t *testing.T) {
		a := f.NewElement(50)
		b := f.NewElement(3)
		got := a.Mul(b)
		want := f.NewElement(53) // 150 mod 97
		if !got.Equal(want) {
			t.Errorf("50*3 = %s, want %s", got, want)
		}
	})

	t.Run("InvRoundTrips", func(t *testing.T) {
		a := f.NewElement(13)
		inv, err := a.Inv()
		if err != nil {
			t.Fatalf("Inv failed: %v", err)
		}
		if !a.Mul(inv).IsOne() {
			t.Errorf("13 * inv(13) != 1")
		}
	})

	t.Run("InvZeroErrors", func(t *testing.T) {
		if _, err := f.Zero().Inv(); err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("ZeroAndOne", func(t *testing.T) {
		if !f.Zero().IsZero() {
			t.Error("Zero() is not zero")
		}
		if !f.One().IsOne() {
			t.Error("One() is not one")
		}
	})

	t.Run("Characteristic", func(t *testing.T) {
		if f.Characteristic().Cmp(big.NewInt(97)) != 0 {
			t.Errorf("characteristic = %s, want 97", f.Characteristic())
		}
	})
}

func TestNewPrimeFieldRejectsSmallModulus(t *testing.T) {
	if _, err := NewPrimeField(big.NewInt(2)); err == nil {
		t.Error("expected error for modulus <= 2")
	}
}

func TestRandomElementIsInRange(t *testing.T) {
	f, _ := NewPrimeFieldUint64(97)
	for i := 0; i < 20; i++ {
		e, err := f.RandomElement(rand.Reader)
		if err != nil {
			t.Fatalf("RandomElement failed: %v", err)
		}
		v := e.(*PrimeElement).Big()
		if v.Sign() < 0 || v.Cmp(big.NewInt(97)) >= 0 {
			t.Errorf("random element %s out of range [0,97)", v)
		}
	}
}
