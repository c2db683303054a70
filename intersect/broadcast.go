package intersect

import (
	"math/bits"

	"github.com/mhr3/cruce/bsr"
)

// Broadcast kernels splat each element of the b block across a full
// vector and compare it against the whole a block, trading the rotation
// step of the shuffling family for one compare per element.

func broadcast4[A advancer, C compactor](a, b, out []uint32) int {
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

		var mask uint32
		for j := 0; j < 4; j++ {
			s := vb[j]
			mask |= eqBit(va[0], s) | eqBit(va[1], s)<<1 | eqBit(va[2], s)<<2 | eqBit(va[3], s)<<3
		}

		count += comp.compact(out[count:], va, mask)

		da, db := adv.advance(va[3], vb[3], 4)
		ia += da
		ib += db
	}
	return count + BranchlessMerge(a[ia:], b[ib:], out[count:])
}

func broadcastWide[A advancer, C compactor](w int, a, b, out []uint32) int {
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
		for j := 0; j < w; j++ {
			s := vb[j]
			for i := 0; i < w; i++ {
				mask |= eqBit(va[i], s) << i
			}
		}

		count += comp.compact(out[count:], va, mask)

		da, db := adv.advance(va[w-1], vb[w-1], w)
		ia += da
		ib += db
	}
	return count + BranchlessMerge(a[ia:], b[ib:], out[count:])
}

func broadcast8[A advancer, C compactor](a, b, out []uint32) int {
	return broadcastWide[A, C](8, a, b, out)
}

func broadcast16[A advancer](a, b, out []uint32) int {
	return broadcastWide[A, bitPack](16, a, b, out)
}

func broadcastBSRWide[A advancer](w int, a, b, out bsr.BSR) int {
	var adv A
	stA, stB := (a.Len()/w)*w, (b.Len()/w)*w

	ia, ib := 0, 0
	count := 0
	var states [16]uint64
	for ia < stA && ib < stB {
		var mask uint32
		for j := 0; j < w; j++ {
			base, state := b.Bases[ib+j], b.States[ib+j]
			for i := 0; i < w; i++ {
				if a.Bases[ia+i] == base {
					if s := a.States[ia+i] & state; s != 0 {
						states[i] = s
						mask |= 1 << i
					}
				}
			}
		}

		for m := mask; m != 0; m &= m - 1 {
			i := bits.TrailingZeros32(m)
			out.Bases[count] = a.Bases[ia+i]
			out.States[count] = states[i]
			count++
		}

		da, db := adv.advance(a.Bases[ia+w-1], b.Bases[ib+w-1], w)
		ia += da
		ib += db
	}
	return count + MergeBSR(a.Slice(ia), b.Slice(ib), out.Slice(count))
}

func broadcastBSR4[A advancer](a, b, out bsr.BSR) int {
	return broadcastBSRWide[A](4, a, b, out)
}

func broadcastBSR8[A advancer](a, b, out bsr.BSR) int {
	return broadcastBSRWide[A](8, a, b, out)
}

func broadcastBSR16[A advancer](a, b, out bsr.BSR) int {
	return broadcastBSRWide[A](16, a, b, out)
}
