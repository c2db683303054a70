package intersect

// Scalar precursors of the block-miss kernels: compare fixed-size blocks
// all-pairs so the compare count per advance is constant, then let the
// branchless merge finish the remainders. They exist as the scalar
// baselines the vector block kernels are measured against.

func bmissScalar3x(a, b, out []uint32) int {
	const s = 3
	count := 0

	for len(a) >= s && len(b) >= s {
		if a[0] == b[0] || a[0] == b[1] || a[0] == b[2] {
			out[count] = a[0]
			count++
		}
		if a[1] == b[0] || a[1] == b[1] || a[1] == b[2] {
			out[count] = a[1]
			count++
		}
		if a[2] == b[0] || a[2] == b[1] || a[2] == b[2] {
			out[count] = a[2]
			count++
		}

		a, b = bmissAdvance(a, b, s)
	}
	return count + BranchlessMerge(a, b, out[count:])
}

func bmissScalar4x(a, b, out []uint32) int {
	const s = 4
	count := 0

	for len(a) >= s && len(b) >= s {
		if a[0] == b[0] || a[0] == b[1] || a[0] == b[2] || a[0] == b[3] {
			out[count] = a[0]
			count++
		}
		if a[1] == b[0] || a[1] == b[1] || a[1] == b[2] || a[1] == b[3] {
			out[count] = a[1]
			count++
		}
		if a[2] == b[0] || a[2] == b[1] || a[2] == b[2] || a[2] == b[3] {
			out[count] = a[2]
			count++
		}
		if a[3] == b[0] || a[3] == b[1] || a[3] == b[2] || a[3] == b[3] {
			out[count] = a[3]
			count++
		}

		a, b = bmissAdvance(a, b, s)
	}
	return count + BranchlessMerge(a, b, out[count:])
}

func bmissAdvance(a, b []uint32, s int) ([]uint32, []uint32) {
	l, r := a[s-1], b[s-1]
	return a[s*boolToInt(l <= r):], b[s*boolToInt(r <= l):]
}
