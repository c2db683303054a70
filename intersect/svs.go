package intersect

// K-set reduction: a two-set kernel applied pairwise, shrinking the
// working result each step. Every entry point short-circuits the moment
// an intermediate result is empty; later sets are never read.

// gallopRatio is the size skew beyond which galloping beats a linear
// merge.
const gallopRatio = 32

// SVS reduces the sets sequentially with kernel. out and scratch are
// caller-owned working buffers, each at least as large as the smaller
// of the first two sets (callers typically order sets smallest-first);
// the result always ends up in out.
func SVS(kernel TwoSet, sets [][]uint32, out, scratch []uint32) int {
	switch len(sets) {
	case 0:
		return 0
	case 1:
		return copy(out, sets[0])
	}

	count := kernel(sets[0], sets[1], out)
	cur, next := out, scratch
	for _, set := range sets[2:] {
		if count == 0 {
			return 0
		}
		count = kernel(cur[:count], set, next)
		cur, next = next, cur
	}
	if count > 0 && &cur[0] != &out[0] {
		copy(out, cur[:count])
	}
	return count
}

// SVSGalloping reduces with the galloping kernel, filtering the working
// result in place so no scratch buffer is needed.
func SVSGalloping(sets [][]uint32, out []uint32) int {
	switch len(sets) {
	case 0:
		return 0
	case 1:
		return copy(out, sets[0])
	}

	count := Galloping(sets[0], sets[1], out)
	for _, set := range sets[2:] {
		if count == 0 {
			return 0
		}
		count = gallopingInplace(out[:count], set)
	}
	return count
}

// SVSAdaptive re-picks the kernel at every reduction step: galloping
// once the next set dwarfs the working result, branchless merge while
// the sizes stay comparable.
func SVSAdaptive(sets [][]uint32, out, scratch []uint32) int {
	switch len(sets) {
	case 0:
		return 0
	case 1:
		return copy(out, sets[0])
	}

	count := adaptivePair(sets[0], sets[1], out)
	cur, next := out, scratch
	for _, set := range sets[2:] {
		if count == 0 {
			return 0
		}
		if len(set) >= count*gallopRatio {
			count = gallopingInplace(cur[:count], set)
		} else {
			count = BranchlessMerge(cur[:count], set, next)
			cur, next = next, cur
		}
	}
	if count > 0 && &cur[0] != &out[0] {
		copy(out, cur[:count])
	}
	return count
}

func adaptivePair(a, b, out []uint32) int {
	n, m := len(a), len(b)
	if n > m {
		n, m = m, n
	}
	if m >= n*gallopRatio {
		return Galloping(a, b, out)
	}
	return BranchlessMerge(a, b, out)
}

// BaezaYatesK is the SVS reduction fixed to the recursive
// divide-and-conquer kernel.
func BaezaYatesK(sets [][]uint32, out, scratch []uint32) int {
	return SVS(BaezaYates, sets, out, scratch)
}

// SmallAdaptive intersects k sets element-wise, after Demaine,
// López-Ortiz and Munro (ALENEX 2001): each element of the smallest set
// is galloped through every other set, and the search positions persist
// across elements so each set is scanned at most once. pos is caller
// scratch of length at least len(sets).
func SmallAdaptive(sets [][]uint32, out []uint32, pos []int) int {
	switch len(sets) {
	case 0:
		return 0
	case 1:
		return copy(out, sets[0])
	}

	drv := 0
	for i, set := range sets {
		if len(set) < len(sets[drv]) {
			drv = i
		}
	}
	for i := range sets {
		pos[i] = 0
	}

	count := 0
outer:
	for _, element := range sets[drv] {
		for i, set := range sets {
			if i == drv {
				continue
			}

			base := pos[i]
			offset := 1
			for base+offset < len(set) && set[base+offset] <= element {
				offset *= 2
			}

			lo := base
			hi := min(len(set)-1, base+offset)

			found := binarySearch(set, element, lo, hi)
			pos[i] = found

			if found >= len(set) || set[found] != element {
				continue outer
			}
		}
		out[count] = element
		count++
	}
	return count
}
