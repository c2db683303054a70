package intersect

import "github.com/mhr3/cruce/bsr"

// Galloping intersects by searching each element of the smaller set in
// the larger one: exponential probing (1, 2, 4, ...) from the last found
// position brackets a window, then a binary search inside it. Average
// cost O(|small| log(|large|/|small|)), which wins over merging once the
// size ratio is heavily skewed.
func Galloping(a, b, out []uint32) int {
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}
	if len(small) == 0 {
		return 0
	}

	base := 0
	count := 0

	for _, target := range small {
		offset := 1
		for base+offset < len(large) && large[base+offset] <= target {
			offset *= 2
		}

		lo := offset / 2
		hi := min(len(large)-1, base+offset)

		base = binarySearch(large, target, lo, hi)

		if base < len(large) && large[base] == target {
			out[count] = target
			count++
		}
	}
	return count
}

// gallopingInplace filters small down to its intersection with large,
// writing survivors to the front of small. Used by the k-set reduction,
// which shrinks one working buffer step by step.
func gallopingInplace(small, large []uint32) int {
	base := 0
	count := 0

	for _, target := range small {
		offset := 1
		for base+offset < len(large) && large[base+offset] <= target {
			offset *= 2
		}

		lo := offset / 2
		hi := min(len(large)-1, base+offset)

		base = binarySearch(large, target, lo, hi)

		if base < len(large) && large[base] == target {
			small[count] = target
			count++
		}
	}
	return count
}

// GallopingBSR gallops over the bases of the larger sequence; a base hit
// ANDs the two state words and emits the pair when the result is
// non-zero.
func GallopingBSR(a, b, out bsr.BSR) int {
	small, large := a, b
	if len(large.Bases) < len(small.Bases) {
		small, large = large, small
	}
	if len(small.Bases) == 0 || len(large.Bases) == 0 {
		return 0
	}

	idx := 0
	count := 0

	for i, target := range small.Bases {
		offset := 1
		for idx+offset < len(large.Bases) && large.Bases[idx+offset] <= target {
			offset *= 2
		}

		lo := offset / 2
		hi := min(len(large.Bases)-1, idx+offset)

		idx = binarySearch(large.Bases, target, lo, hi)

		if idx < len(large.Bases) && large.Bases[idx] == target {
			if s := small.States[i] & large.States[idx]; s != 0 {
				out.Bases[count] = target
				out.States[count] = s
				count++
			}
		}
	}
	return count
}

// binarySearch finds target within set[lo..hi] (closed interval) and
// returns its index, or the insertion point when absent. hi may be -1
// for an empty window.
func binarySearch(set []uint32, target uint32, lo, hi int) int {
	for lo <= hi {
		mid := lo + (hi-lo)/2
		actual := set[mid]

		switch {
		case actual < target:
			lo = mid + 1
		case actual > target:
			hi = mid - 1
		default:
			return mid
		}
	}
	return lo
}
