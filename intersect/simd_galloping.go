package intersect

import "github.com/mhr3/cruce/bsr"

// Vectorized galloping, after Lemire et al. The gallop and binary
// search operate on whole blocks of 32 vectors, comparing only each
// block's last element; once the target block is found, a quartering
// step narrows it to 8 vectors and an OR-tree membership test replaces
// the scalar probe.

// vecsPerBound is the number of vectors spanned by one gallop stride.
const vecsPerBound = 32

func simdGallopingSSE(a, b, out []uint32) int {
	return simdGalloping(4, a, b, out)
}

func simdGallopingAVX2(a, b, out []uint32) int {
	return simdGalloping(8, a, b, out)
}

func simdGallopingAVX512(a, b, out []uint32) int {
	return simdGalloping(16, a, b, out)
}

func simdGalloping(w int, a, b, out []uint32) int {
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	bound := w * vecsPerBound
	count := 0
	for len(small) > 0 && len(large) >= bound {
		target := small[0]
		blk := gallopWide(target, large, bound)

		if large[(blk+1)*bound-1] < target {
			// Everything in large is below the target; the tail is
			// shorter than one bound.
			large = large[(blk+1)*bound:]
			if len(small) >= bound {
				small, large = large, small
				continue
			}
			break
		}

		large = large[blk*bound:]

		vec := reduceSearchBound(target, large, bound)
		if blockContains(target, large[w*vec:w*(vec+8)]) {
			out[count] = target
			count++
		}
		small = small[1:]
	}
	return count + BranchlessMerge(small, large, out[count:])
}

// gallopWide returns the index of the first block of `bound` elements
// whose last element is >= target, galloping in block strides before
// the binary search.
func gallopWide(target uint32, large []uint32, bound int) int {
	upper := 0
	if large[bound-1] < target {
		offset := 1
		for (offset+1)*bound-1 < len(large) && large[(offset+1)*bound-1] < target {
			offset *= 2
		}
		upper = offset
	}

	lo := upper / 2
	hi := min(len(large)/bound-1, upper)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if large[(mid+1)*bound-1] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// reduceSearchBound quarters the found block, returning the vector
// index of the 8-vector span holding the target's position.
func reduceSearchBound(target uint32, large []uint32, bound int) int {
	if large[bound/2-1] >= target {
		if large[bound/4-1] < target {
			return vecsPerBound / 4
		}
		return 0
	}
	if large[bound*3/4-1] < target {
		return vecsPerBound * 3 / 4
	}
	return vecsPerBound / 2
}

// blockContains is the OR-tree membership test over 8 vectors worth of
// elements.
func blockContains(target uint32, blk []uint32) bool {
	hits := 0
	for _, v := range blk {
		hits += boolToInt(v == target)
	}
	return hits != 0
}

func simdGallopingBSRSSE(a, b, out bsr.BSR) int {
	return simdGallopingBSR(4, a, b, out)
}

func simdGallopingBSRAVX2(a, b, out bsr.BSR) int {
	return simdGallopingBSR(8, a, b, out)
}

func simdGallopingBSRAVX512(a, b, out bsr.BSR) int {
	return simdGallopingBSR(16, a, b, out)
}

// simdGallopingBSR gallops over the bases with a single-vector bound; a
// base hit ANDs the state words.
func simdGallopingBSR(w int, a, b, out bsr.BSR) int {
	small, large := a, b
	if small.Len() > large.Len() {
		small, large = large, small
	}

	count := 0
	for small.Len() > 0 && large.Len() >= w {
		target, state := small.Bases[0], small.States[0]
		blk := gallopWide(target, large.Bases, w)

		if large.Bases[(blk+1)*w-1] < target {
			large = large.Slice((blk + 1) * w)
			if small.Len() >= w {
				small, large = large, small
				continue
			}
			break
		}

		large = large.Slice(blk * w)

		for j := 0; j < w; j++ {
			if large.Bases[j] == target {
				if s := state & large.States[j]; s != 0 {
					out.Bases[count] = target
					out.States[count] = s
					count++
				}
				break
			}
		}
		small = small.Slice(1)
	}
	return count + MergeBSR(small, large, out.Slice(count))
}
