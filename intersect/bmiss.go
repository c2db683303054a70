package intersect

import "math/bits"

// Block-miss kernels, after Inoue et al. Rather than paying the full
// all-pairs compare on every block pair, they first run a cheap filter
// over the low bytes of both blocks and skip pairs that cannot contain
// a match. Port of the pkumod GraphSetIntersection kernels.

// BMissUint is the stable 4-lane block-miss entry
// (intersect_bmiss_uint_b4).
func BMissUint(a, b, out []uint32) int {
	return bmissUint[advBranchless](a, b, out)
}

// BMissSTTNI is the stable 8-lane entry using the packed halfword
// equal-any filter (intersect_bmiss_uint_sttni_b8).
func BMissSTTNI(a, b, out []uint32) int {
	return bmissSTTNI[advBranchless](a, b, out)
}

func bmissUint[A advancer](a, b, out []uint32) int {
	var adv A
	stA, stB := len(a)&^3, len(b)&^3

	ia, ib := 0, 0
	count := 0
	for ia < stA && ib < stB {
		va := a[ia : ia+4 : ia+4]
		vb := b[ib : ib+4 : ib+4]

		// Filter on byte planes 0 and 1: any pair with equal low
		// halfwords is a candidate block pair.
		hit := false
		for i := 0; i < 4 && !hit; i++ {
			h := uint16(va[i])
			hit = h == uint16(vb[0]) || h == uint16(vb[1]) || h == uint16(vb[2]) || h == uint16(vb[3])
		}

		if hit {
			// Word check: full-width all-pairs verify.
			for i := 0; i < 4; i++ {
				v := va[i]
				if v == vb[0] || v == vb[1] || v == vb[2] || v == vb[3] {
					out[count] = v
					count++
				}
			}
		}

		da, db := adv.advance(va[3], vb[3], 4)
		ia += da
		ib += db
	}
	return count + BranchlessMerge(a[ia:], b[ib:], out[count:])
}

// bmissSTTNI fixes the block size at 8 and filters with a packed
// low-halfword equal-any comparison over both blocks, then verifies
// each candidate a lane against the full b block.
func bmissSTTNI[A advancer](a, b, out []uint32) int {
	var adv A
	stA, stB := len(a)&^7, len(b)&^7

	ia, ib := 0, 0
	count := 0
	for ia < stA && ib < stB {
		va := a[ia : ia+8 : ia+8]
		vb := b[ib : ib+8 : ib+8]

		var r uint32
		for i := 0; i < 8; i++ {
			h := uint16(va[i])
			for j := 0; j < 8; j++ {
				if h == uint16(vb[j]) {
					r |= 1 << i
					break
				}
			}
		}

		for ; r != 0; r &= r - 1 {
			v := va[bits.TrailingZeros32(r)]
			if v == vb[0] || v == vb[1] || v == vb[2] || v == vb[3] ||
				v == vb[4] || v == vb[5] || v == vb[6] || v == vb[7] {
				out[count] = v
				count++
			}
		}

		da, db := adv.advance(va[7], vb[7], 8)
		ia += da
		ib += db
	}
	return count + BranchlessMerge(a[ia:], b[ib:], out[count:])
}
