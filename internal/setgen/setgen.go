// Package setgen builds sorted duplicate-free uint32 sets for tests and
// benchmarks. It is not a statistical dataset generator; it only
// produces valid inputs with controllable size and overlap.
package setgen

import (
	"encoding/binary"
	"math/rand"

	"github.com/segmentio/asm/qsort"
)

// Normalize sorts vals ascending and drops duplicates, reusing the
// input's backing array. The sort runs over big-endian 4-byte records so
// byte order equals numeric order.
func Normalize(vals []uint32) []uint32 {
	if len(vals) < 2 {
		return vals
	}

	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(buf[4*i:], v)
	}
	qsort.Sort(buf, 4, nil)

	out := vals[:0]
	var last uint32
	for i := range vals {
		v := binary.BigEndian.Uint32(buf[4*i:])
		if len(out) == 0 || v != last {
			out = append(out, v)
			last = v
		}
	}
	return out
}

// Uniform returns a sorted set of exactly n distinct values below max.
// Panics if the range cannot hold n distinct values.
func Uniform(rng *rand.Rand, n int, max uint32) []uint32 {
	if n < 0 || uint64(n) > uint64(max) {
		panic("setgen: range too small for requested size")
	}

	vals := make([]uint32, 0, n)
	seen := make(map[uint32]struct{}, n)
	for len(vals) < n {
		v := rng.Uint32() % max
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		vals = append(vals, v)
	}
	return Normalize(vals)
}

// Pair returns two sorted sets of the given sizes sharing roughly
// selectivity*min(sizeA, sizeB) common values.
func Pair(rng *rand.Rand, sizeA, sizeB int, selectivity float64, max uint32) (a, b []uint32) {
	small := sizeA
	if sizeB < small {
		small = sizeB
	}
	k := int(selectivity * float64(small))

	common := Uniform(rng, k, max)

	a = fill(rng, append(make([]uint32, 0, sizeA), common...), sizeA, max)
	b = fill(rng, append(make([]uint32, 0, sizeB), common...), sizeB, max)
	return a, b
}

// fill tops vals up to exactly n distinct sorted values below max.
func fill(rng *rand.Rand, vals []uint32, n int, max uint32) []uint32 {
	if uint64(n) > uint64(max) {
		panic("setgen: range too small for requested size")
	}
	for {
		for len(vals) < n {
			vals = append(vals, rng.Uint32()%max)
		}
		vals = Normalize(vals)
		if len(vals) >= n {
			return vals[:n]
		}
	}
}

// Runs returns a sorted set of about n values laid out as consecutive
// runs of runLen values, giving dense blocks under base-and-state
// encoding.
func Runs(rng *rand.Rand, n, runLen int, max uint32) []uint32 {
	if runLen < 1 {
		runLen = 1
	}

	vals := make([]uint32, 0, n)
	for len(vals) < n {
		start := rng.Uint32() % max
		for i := 0; i < runLen && len(vals) < n; i++ {
			v := start + uint32(i)
			if v < max {
				vals = append(vals, v)
			}
		}
	}
	return Normalize(vals)
}
