package intersect

import "github.com/mhr3/cruce/bsr"

// NaiveMerge is the classic zipper intersection: advance the pointer at
// the smaller value, emit once and advance both on a match. It is the
// correctness reference for every other kernel in the package.
func NaiveMerge(a, b, out []uint32) int {
	ia, ib := 0, 0
	count := 0

	for ia < len(a) && ib < len(b) {
		va, vb := a[ia], b[ib]
		switch {
		case va < vb:
			ia++
		case vb < va:
			ib++
		default:
			out[count] = va
			count++
			ia++
			ib++
		}
	}
	return count
}

// BranchlessMerge computes the same intersection with the hard to
// predict less-than branches folded into arithmetic index updates, after
// Inoue, Ohara and Taura, "Faster Set Intersection with SIMD
// instructions by Reducing Branch Mispredictions" (VLDB 2014).
func BranchlessMerge(a, b, out []uint32) int {
	ia, ib := 0, 0
	count := 0

	for ia < len(a) && ib < len(b) {
		va, vb := a[ia], b[ib]

		if va == vb {
			out[count] = va
			count++
			ia++
			ib++
		} else {
			ia += boolToInt(va < vb)
			ib += boolToInt(vb < va)
		}
	}
	return count
}

// MergeBSR intersects two base-and-state sequences by zipper merge over
// the bases and a bitwise AND of the states on each base match. Pairs
// whose combined state is zero are dropped.
func MergeBSR(a, b, out bsr.BSR) int {
	ia, ib := 0, 0
	count := 0

	for ia < len(a.Bases) && ib < len(b.Bases) {
		ba, bb := a.Bases[ia], b.Bases[ib]

		if ba == bb {
			if s := a.States[ia] & b.States[ib]; s != 0 {
				out.Bases[count] = ba
				out.States[count] = s
				count++
			}
			ia++
			ib++
		} else {
			ia += boolToInt(ba < bb)
			ib += boolToInt(bb < ba)
		}
	}
	return count
}
