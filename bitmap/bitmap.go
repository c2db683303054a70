// Package bitmap adapts roaring bitmaps to the kernel layer's sorted
// array and base-and-state representations, for callers whose sets
// already live in compressed bitmap form. Unlike the kernels, the
// adapters allocate.
package bitmap

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/mhr3/cruce/bsr"
	"github.com/mhr3/cruce/intersect"
)

// FromArray builds a bitmap from a sorted set.
func FromArray(vals []uint32) *roaring.Bitmap {
	bm := roaring.New()
	bm.AddMany(vals)
	return bm
}

// ToArray appends the bitmap's members in ascending order to dst.
func ToArray(bm *roaring.Bitmap, dst []uint32) []uint32 {
	bm.Iterate(func(x uint32) bool {
		dst = append(dst, x)
		return true
	})
	return dst
}

// FromBSR builds a bitmap from a base-and-state sequence.
func FromBSR(b bsr.BSR) *roaring.Bitmap {
	bm := roaring.New()
	var block [bsr.BlockWidth]uint32
	for i, base := range b.Bases {
		high := base << bsr.Shift
		n := 0
		for s := b.States[i]; s != 0; s &= s - 1 {
			block[n] = high | uint32(bits.TrailingZeros64(s))
			n++
		}
		bm.AddMany(block[:n])
	}
	return bm
}

// ToBSR encodes the bitmap's members as base-and-state blocks.
func ToBSR(bm *roaring.Bitmap) bsr.BSR {
	out := bsr.WithCapacity(int(bm.GetCardinality()/bsr.BlockWidth) + 1)
	bm.Iterate(func(x uint32) bool {
		base := x >> bsr.Shift
		bit := uint64(1) << (x & bsr.Mask)
		if n := out.Len(); n > 0 && out.Bases[n-1] == base {
			out.States[n-1] |= bit
		} else {
			out.Append(base, bit)
		}
		return true
	})
	return out
}

// Intersect materializes both bitmaps as sorted arrays and routes them
// through the best available array kernel, writing the result to out
// and returning the count. out must hold at least the smaller
// cardinality.
func Intersect(a, b *roaring.Bitmap, out []uint32) int {
	av := ToArray(a, make([]uint32, 0, int(a.GetCardinality())))
	bv := ToArray(b, make([]uint32, 0, int(b.GetCardinality())))
	return intersect.Intersect(av, bv, out)
}
