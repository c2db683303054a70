// Package intersect implements intersection kernels for sorted uint32
// sets: scalar merge baselines, vectorized block kernels in branch and
// branchless variants at 128, 256 and 512-bit model widths, kernels over
// the base-and-state representation, and k-set reduction strategies.
//
// All kernels share one contract: inputs are strictly increasing slices
// borrowed from the caller, the output slice must hold at least
// min(len(a), len(b)) elements, and the return value is the count
// written. Kernels never allocate, never retain references, and are safe
// to call concurrently on disjoint buffers. Sortedness and output
// capacity are not checked; violating either yields undefined output.
package intersect

import "github.com/mhr3/cruce/bsr"

// TwoSet intersects two sorted sets into out and returns the number of
// elements written.
type TwoSet func(a, b, out []uint32) int

// BSRSet intersects two base-and-state sequences into out, whose Bases
// and States must be pre-sized to at least min(a.Len(), b.Len()) blocks.
// It returns the number of pairs written.
type BSRSet func(a, b, out bsr.BSR) int

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
