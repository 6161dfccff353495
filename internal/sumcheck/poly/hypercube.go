package poly

import "github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"

// HypercubeIter lazily enumerates the 2^n points of {0,1}^n, in increasing
// integer order of their little-endian bit encoding (bit 0 is variable 0).
// It is single-use: once exhausted, construct a new one to restart.
type HypercubeIter struct {
	f       field.Field
	numVars int
	next    uint64
	total   uint64
}

// Hypercube returns an iterator over {0,1}^numVars. For numVars == 0 it
// yields exactly one, empty, point.
func Hypercube(f field.Field, numVars int) *HypercubeIter {
	return &HypercubeIter{f: f, numVars: numVars, next: 0, total: uint64(1) << uint(numVars)}
}

// Len reports the total number of points this iterator will yield.
func (h *HypercubeIter) Len() int { return int(h.total) }

// Next returns the next point and true, or nil and false once exhausted.
func (h *HypercubeIter) Next() ([]field.Element, bool) {
	if h.next >= h.total {
		return nil, false
	}
	point := bitsToPoint(h.f, h.next, h.numVars)
	h.next++
	return point, true
}

func bitsToPoint(f field.Field, bits uint64, numVars int) []field.Element {
	point := make([]field.Element, numVars)
	for i := 0; i < numVars; i++ {
		if (bits>>uint(i))&1 == 1 {
			point[i] = f.One()
		} else {
			point[i] = f.Zero()
		}
	}
	return point
}

// All drains the iterator into a slice. Convenience for small n; large n
// should use Next in a loop to avoid materialising 2^n vectors.
func All(f field.Field, numVars int) [][]field.Element {
	it := Hypercube(f, numVars)
	out := make([][]field.Element, 0, it.Len())
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}
