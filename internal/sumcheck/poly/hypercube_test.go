package poly

import (
	"testing"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
)

func TestHypercubeEnumeratesInBitOrder(t *testing.T) {
	f, _ := field.NewPrimeFieldUint64(97)

	t.Run("n=2", func(t *testing.T) {
		points := All(f, 2)
		if len(points) != 4 {
			t.Fatalf("got %d points, want 4", len(points))
		}
		want := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
		for i, p := range points {
			b0 := 0
			if p[0].IsOne() {
				b0 = 1
			}
			b1 := 0
			if p[1].IsOne() {
				b1 = 1
			}
			if b0 != want[i][0] || b1 != want[i][1] {
				t.Errorf("point %d = (%d,%d), want (%d,%d)", i, b0, b1, want[i][0], want[i][1])
			}
		}
	})

	t.Run("n=0 yields one empty point", func(t *testing.T) {
		points := All(f, 0)
		if len(points) != 1 || len(points[0]) != 0 {
			t.Fatalf("n=0 hypercube: got %v, want one empty point", points)
		}
	})

	t.Run("restartable only via new iterator", func(t *testing.T) {
		it := Hypercube(f, 1)
		if _, ok := it.Next(); !ok {
			t.Fatal("expected first point")
		}
		if _, ok := it.Next(); !ok {
			t.Fatal("expected second point")
		}
		if _, ok := it.Next(); ok {
			t.Fatal("expected exhaustion after 2^1 points")
		}
	})
}
