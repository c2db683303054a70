package intersect

// BaezaYates intersects by recursive divide and conquer, after
// Baeza-Yates and Salinger, "Fast Intersection Algorithms for Sorted
// Sequences" (2010): the median of the smaller set is binary-searched in
// the larger, both halves recurse, and the median is emitted when found.
// On balanced inputs the recursion degenerates to merge-like work; on
// skewed or clustered inputs whole subranges are discarded per probe.
func BaezaYates(a, b, out []uint32) int {
	return baezaYates(a, b, out, 0)
}

func baezaYates(small, large, out []uint32, count int) int {
	if len(small) == 0 || len(large) == 0 {
		return count
	}
	if len(small) > len(large) {
		small, large = large, small
	}

	mid := len(small) / 2
	target := small[mid]

	part := binarySearch(large, target, 0, len(large)-1)

	count = baezaYates(small[:mid], large[:part], out, count)

	if part >= len(large) {
		return count
	}

	if large[part] == target {
		out[count] = target
		count++
	}

	return baezaYates(small[mid+1:], large[part:], out, count)
}
