package intersect

import "math/bits"

// The vector kernels are built from two orthogonal block operations: a
// pointer-advance strategy (branch or branchless) and a match-compaction
// strategy (table-driven or computed). Each kernel is instantiated per
// combination through type parameters, so the choice is fixed at the
// call site and the hot loop carries no dynamic dispatch.

// advancer decides how far each side moves after a block comparison.
// aMax and bMax are the largest elements of the two blocks just
// compared, w the block width in lanes.
type advancer interface {
	advance(aMax, bMax uint32, w int) (da, db int)
}

// advBranch keeps the data-dependent comparison as a conditional
// branch, the profitable choice when one side predictably trails.
type advBranch struct{}

func (advBranch) advance(aMax, bMax uint32, w int) (int, int) {
	switch {
	case aMax < bMax:
		return w, 0
	case bMax < aMax:
		return 0, w
	}
	return w, w
}

// advBranchless folds the comparison into arithmetic so the advance
// never mispredicts.
type advBranchless struct{}

func (advBranchless) advance(aMax, bMax uint32, w int) (int, int) {
	return w * boolToInt(aMax <= bMax), w * boolToInt(bMax <= aMax)
}

// compactor moves the lanes of v selected by mask to the front of dst
// and returns how many it moved. v holds one block, mask bit i selects
// lane i.
type compactor interface {
	compact(dst, v []uint32, mask uint32) int
}

// lutPack4 compacts a 4-lane block through the precomputed shuffle
// table, the analogue of a table-indexed byte shuffle.
type lutPack4 struct{}

func (lutPack4) compact(dst, v []uint32, mask uint32) int {
	sh := &shuffleMask4[mask]
	n := bits.OnesCount32(mask)
	for i := 0; i < n; i++ {
		dst[i] = v[sh[i]]
	}
	return n
}

// lutPack8 is the 8-lane table variant.
type lutPack8 struct{}

func (lutPack8) compact(dst, v []uint32, mask uint32) int {
	sh := &shuffleMask8[mask]
	n := bits.OnesCount32(mask)
	for i := 0; i < n; i++ {
		dst[i] = v[sh[i]]
	}
	return n
}

// bitPack compacts by iterating the set bits of the mask, the analogue
// of a computed compress-store. Works for any lane count; the 16-lane
// kernels use it exclusively.
type bitPack struct{}

func (bitPack) compact(dst, v []uint32, mask uint32) int {
	n := 0
	for m := mask; m != 0; m &= m - 1 {
		dst[n] = v[bits.TrailingZeros32(m)]
		n++
	}
	return n
}

func eqBit(x, y uint32) uint32 {
	if x == y {
		return 1
	}
	return 0
}
