package intersect

import "github.com/mhr3/cruce/bsr"

// QFilter kernels, after Han, Zou and Yu (SIGMOD '18), ported from the
// pkumod GraphSetIntersection reference. Two 4-lane windows slide over
// the inputs; the low bytes of each window form a signature whose
// all-pairs comparison indexes byteCheckMaskDict. Most window pairs
// resolve to "no match" and skip the full compare entirely; single
// matches drive one shuffle-directed compare per lane.

// QFilterUint is the stable array entry (intersect_qfilter_uint_b4).
// On an ambiguous signature it refines over byte planes 1 to 3 until
// the match order is known.
func QFilterUint(a, b, out []uint32) int {
	return qfilterUint[advBranchless](a, b, out)
}

// QFilterUintV2 (intersect_qfilter_uint_b4_v2) replaces the plane
// refinement with a direct all-rotations compare, which is cheaper than
// up to three more signature rounds.
func QFilterUintV2(a, b, out []uint32) int {
	return qfilterUintV2[advBranchless](a, b, out)
}

// QFilterBSR is the stable base-and-state entry
// (intersect_qfilter_bsr_b4): the same windowed filter over the bases,
// with matching pairs merged by ANDing their state words.
func QFilterBSR(a, b, out bsr.BSR) int {
	return qfilterBSR[advBranchless](a, b, out)
}

// QFilterBSRV2 (intersect_qfilter_bsr_b4_v2) is the all-rotations
// variant over base-and-state input.
func QFilterBSRV2(a, b, out bsr.BSR) int {
	return qfilterBSRV2[advBranchless](a, b, out)
}

// byteCheckMask builds the 16-bit signature mask for one byte plane:
// bit 4i+j is set when byte `plane` of va[i] equals that of vb[j].
func byteCheckMask(va, vb []uint32, plane uint) uint32 {
	shift := 8 * plane
	var mask uint32
	for i := 0; i < 4; i++ {
		ba := uint8(va[i] >> shift)
		m := eqBit(uint32(ba), uint32(uint8(vb[0]>>shift))) |
			eqBit(uint32(ba), uint32(uint8(vb[1]>>shift)))<<1 |
			eqBit(uint32(ba), uint32(uint8(vb[2]>>shift)))<<2 |
			eqBit(uint32(ba), uint32(uint8(vb[3]>>shift)))<<3
		mask |= m << (4 * i)
	}
	return mask
}

func qfilterUint[A advancer](a, b, out []uint32) int {
	var adv A
	stA, stB := len(a)&^3, len(b)&^3

	ia, ib := 0, 0
	count := 0
	for ia < stA && ib < stB {
		va := a[ia : ia+4 : ia+4]
		vb := b[ib : ib+4 : ib+4]

		bc := byteCheckMask(va, vb, 0)
		order := int(byteCheckMaskDict[bc])
		for plane := uint(1); plane <= 3 && order == msMultiMatch; plane++ {
			bc &= byteCheckMask(va, vb, plane)
			order = int(byteCheckMaskDict[bc])
		}
		// A multi-match surviving all four planes would need b to
		// repeat a value, which a valid set never does.
		if order >= 0 {
			sh := &matchShuffleDict[order]
			for i := 0; i < 4; i++ {
				if va[i] == vb[sh[i]] {
					out[count] = va[i]
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

func qfilterUintV2[A advancer](a, b, out []uint32) int {
	var adv A
	stA, stB := len(a)&^3, len(b)&^3

	ia, ib := 0, 0
	count := 0
	for ia < stA && ib < stB {
		va := a[ia : ia+4 : ia+4]
		vb := b[ib : ib+4 : ib+4]

		bc := byteCheckMask(va, vb, 0)
		order := int(byteCheckMaskDict[bc])
		switch {
		case order > 0:
			sh := &matchShuffleDict[order]
			for i := 0; i < 4; i++ {
				if va[i] == vb[sh[i]] {
					out[count] = va[i]
					count++
				}
			}
		case order != msNoMatch:
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

func qfilterBSR[A advancer](a, b, out bsr.BSR) int {
	var adv A
	stA, stB := a.Len()&^3, b.Len()&^3

	ia, ib := 0, 0
	count := 0
	for ia < stA && ib < stB {
		va := a.Bases[ia : ia+4 : ia+4]
		vb := b.Bases[ib : ib+4 : ib+4]

		bc := byteCheckMask(va, vb, 0)
		order := int(byteCheckMaskDict[bc])
		for plane := uint(1); plane <= 3 && order == msMultiMatch; plane++ {
			bc &= byteCheckMask(va, vb, plane)
			order = int(byteCheckMaskDict[bc])
		}
		if order >= 0 {
			sh := &matchShuffleDict[order]
			for i := 0; i < 4; i++ {
				j := int(sh[i])
				if va[i] == vb[j] {
					if s := a.States[ia+i] & b.States[ib+j]; s != 0 {
						out.Bases[count] = va[i]
						out.States[count] = s
						count++
					}
				}
			}
		}

		da, db := adv.advance(va[3], vb[3], 4)
		ia += da
		ib += db
	}
	return count + MergeBSR(a.Slice(ia), b.Slice(ib), out.Slice(count))
}

func qfilterBSRV2[A advancer](a, b, out bsr.BSR) int {
	var adv A
	stA, stB := a.Len()&^3, b.Len()&^3

	ia, ib := 0, 0
	count := 0
	for ia < stA && ib < stB {
		va := a.Bases[ia : ia+4 : ia+4]
		vb := b.Bases[ib : ib+4 : ib+4]

		bc := byteCheckMask(va, vb, 0)
		order := int(byteCheckMaskDict[bc])
		switch {
		case order > 0:
			sh := &matchShuffleDict[order]
			for i := 0; i < 4; i++ {
				j := int(sh[i])
				if va[i] == vb[j] {
					if s := a.States[ia+i] & b.States[ib+j]; s != 0 {
						out.Bases[count] = va[i]
						out.States[count] = s
						count++
					}
				}
			}
		case order != msNoMatch:
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					if va[i] == vb[j] {
						if s := a.States[ia+i] & b.States[ib+j]; s != 0 {
							out.Bases[count] = va[i]
							out.States[count] = s
							count++
						}
						break
					}
				}
			}
		}

		da, db := adv.advance(va[3], vb[3], 4)
		ia += da
		ib += db
	}
	return count + MergeBSR(a.Slice(ia), b.Slice(ib), out.Slice(count))
}
