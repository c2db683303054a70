package intersect

import "github.com/mhr3/cruce/bsr"

// Intersect picks a kernel for the given input shape once per call:
// galloping under heavy skew, otherwise the widest shuffling kernel the
// processor admits.
func Intersect(a, b, out []uint32) int {
	n, m := len(a), len(b)
	if n > m {
		n, m = m, n
	}
	if n == 0 {
		return 0
	}
	if m >= n*gallopRatio {
		return Galloping(a, b, out)
	}
	switch MaxTier() {
	case TierAVX512:
		return shuffling16[advBranchless](a, b, out)
	case TierAVX2:
		return shuffling8[advBranchless, lutPack8](a, b, out)
	case TierSSE:
		return shuffling4[advBranchless, lutPack4](a, b, out)
	}
	return BranchlessMerge(a, b, out)
}

// IntersectBSR is the base-and-state counterpart of Intersect.
func IntersectBSR(a, b, out bsr.BSR) int {
	n, m := a.Len(), b.Len()
	if n > m {
		n, m = m, n
	}
	if n == 0 {
		return 0
	}
	if m >= n*gallopRatio {
		return GallopingBSR(a, b, out)
	}
	if MaxTier() >= TierSSE {
		return QFilterBSR(a, b, out)
	}
	return MergeBSR(a, b, out)
}
