package intersect

import (
	"math/bits"

	"github.com/mhr3/cruce/bsr"
)

// Shuffling kernels compare two blocks all-pairs by testing the a block
// against every cyclic rotation of the b block, after Katsov's SSE
// intersection (2012). The OR of the per-rotation equality masks marks
// the a lanes to compact into the output.

func shuffling4[A advancer, C compactor](a, b, out []uint32) int {
	var (
		adv  A
		comp C
	)
	stA, stB := len(a)&^3, len(b)&^3

	ia, ib := 0, 0
	count := 0
	for ia < stA && ib < stB {
		va := a[ia : ia+4 : ia+4]
		vb := b[ib : ib+4 : ib+4]

		// Rotation r matches a lane j against b lane (j+r)&3.
		var mask uint32
		mask |= eqBit(va[0], vb[0]) | eqBit(va[1], vb[1])<<1 | eqBit(va[2], vb[2])<<2 | eqBit(va[3], vb[3])<<3
		mask |= eqBit(va[0], vb[1]) | eqBit(va[1], vb[2])<<1 | eqBit(va[2], vb[3])<<2 | eqBit(va[3], vb[0])<<3
		mask |= eqBit(va[0], vb[2]) | eqBit(va[1], vb[3])<<1 | eqBit(va[2], vb[0])<<2 | eqBit(va[3], vb[1])<<3
		mask |= eqBit(va[0], vb[3]) | eqBit(va[1], vb[0])<<1 | eqBit(va[2], vb[1])<<2 | eqBit(va[3], vb[2])<<3

		count += comp.compact(out[count:], va, mask)

		da, db := adv.advance(va[3], vb[3], 4)
		ia += da
		ib += db
	}
	return count + BranchlessMerge(a[ia:], b[ib:], out[count:])
}

// shufflingWide is the same skeleton at 8 or 16 lanes. w must be a
// power of two.
func shufflingWide[A advancer, C compactor](w int, a, b, out []uint32) int {
	var (
		adv  A
		comp C
	)
	stA, stB := (len(a)/w)*w, (len(b)/w)*w

	ia, ib := 0, 0
	count := 0
	for ia < stA && ib < stB {
		va := a[ia : ia+w : ia+w]
		vb := b[ib : ib+w : ib+w]

		var mask uint32
		for r := 0; r < w; r++ {
			for j := 0; j < w; j++ {
				mask |= eqBit(va[j], vb[(j+r)&(w-1)]) << j
			}
		}

		count += comp.compact(out[count:], va, mask)

		da, db := adv.advance(va[w-1], vb[w-1], w)
		ia += da
		ib += db
	}
	return count + BranchlessMerge(a[ia:], b[ib:], out[count:])
}

func shuffling8[A advancer, C compactor](a, b, out []uint32) int {
	return shufflingWide[A, C](8, a, b, out)
}

// The 16-lane tier compacts arithmetically only, modelling the
// compress-store available at that width.
func shuffling16[A advancer](a, b, out []uint32) int {
	return shufflingWide[A, bitPack](16, a, b, out)
}

// shufflingBSRWide matches bases exactly like the array form; a lane
// contributes only when its base matches and the AND of the two state
// words is non-zero.
func shufflingBSRWide[A advancer](w int, a, b, out bsr.BSR) int {
	var adv A
	stA, stB := (a.Len()/w)*w, (b.Len()/w)*w

	ia, ib := 0, 0
	count := 0
	var states [16]uint64
	for ia < stA && ib < stB {
		var mask uint32
		for r := 0; r < w; r++ {
			for j := 0; j < w; j++ {
				jb := ib + (j+r)&(w-1)
				if a.Bases[ia+j] == b.Bases[jb] {
					if s := a.States[ia+j] & b.States[jb]; s != 0 {
						states[j] = s
						mask |= 1 << j
					}
				}
			}
		}

		for m := mask; m != 0; m &= m - 1 {
			j := bits.TrailingZeros32(m)
			out.Bases[count] = a.Bases[ia+j]
			out.States[count] = states[j]
			count++
		}

		da, db := adv.advance(a.Bases[ia+w-1], b.Bases[ib+w-1], w)
		ia += da
		ib += db
	}
	return count + MergeBSR(a.Slice(ia), b.Slice(ib), out.Slice(count))
}

func shufflingBSR4[A advancer](a, b, out bsr.BSR) int {
	return shufflingBSRWide[A](4, a, b, out)
}

func shufflingBSR8[A advancer](a, b, out bsr.BSR) int {
	return shufflingBSRWide[A](8, a, b, out)
}

func shufflingBSR16[A advancer](a, b, out bsr.BSR) int {
	return shufflingBSRWide[A](16, a, b, out)
}
