package intersect

import (
	"math/rand"
	"testing"

	"github.com/mhr3/cruce/bsr"
	"github.com/mhr3/cruce/internal/setgen"
)

var mergeCases = []struct {
	name string
	a, b []uint32
	want []uint32
}{
	{name: "both empty", a: nil, b: nil, want: nil},
	{name: "left empty", a: nil, b: []uint32{1, 2, 3}, want: nil},
	{name: "right empty", a: []uint32{1, 2, 3}, b: nil, want: nil},
	{name: "disjoint", a: []uint32{1, 3, 5}, b: []uint32{2, 4, 6}, want: nil},
	{name: "identical", a: []uint32{1, 2, 3}, b: []uint32{1, 2, 3}, want: []uint32{1, 2, 3}},
	{name: "subset", a: []uint32{2, 4}, b: []uint32{1, 2, 3, 4, 5}, want: []uint32{2, 4}},
	{name: "partial", a: []uint32{1, 2, 3, 4, 5}, b: []uint32{2, 4, 6, 8}, want: []uint32{2, 4}},
	{name: "ends only", a: []uint32{0, 9, 4294967295}, b: []uint32{0, 5, 4294967295}, want: []uint32{0, 4294967295}},
	{name: "single common", a: []uint32{7}, b: []uint32{1, 7, 9}, want: []uint32{7}},
	{name: "skewed", a: []uint32{100}, b: []uint32{1, 2, 3, 50, 100, 200, 300, 400, 500}, want: []uint32{100}},
}

// runTwo invokes a two-set kernel with a fresh, exactly-sized output
// buffer.
func runTwo(k TwoSet, a, b []uint32) []uint32 {
	out := make([]uint32, min(len(a), len(b)))
	n := k(a, b, out)
	return out[:n]
}

// runBSR runs a base-and-state kernel on the encodings of a and b and
// decodes the result back to a sorted array.
func runBSR(t *testing.T, k BSRSet, a, b []uint32) []uint32 {
	t.Helper()

	ea, eb := bsr.FromSorted(a), bsr.FromSorted(b)
	n := min(ea.Len(), eb.Len())
	out := bsr.BSR{Bases: make([]uint32, n), States: make([]uint64, n)}

	res := out.Truncate(k(ea, eb, out))
	if err := res.Valid(); err != nil {
		t.Fatalf("kernel produced invalid BSR: %v", err)
	}

	vals, err := res.ToSorted(nil)
	if err != nil {
		t.Fatalf("decoding kernel result: %v", err)
	}
	return vals
}

func equalSets(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNaiveMergeAgainstMap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		a, b := setgen.Pair(rng, 200, 300, 0.4, 1<<14)

		members := make(map[uint32]bool, len(a))
		for _, v := range a {
			members[v] = true
		}
		var want []uint32
		for _, v := range b {
			if members[v] {
				want = append(want, v)
			}
		}

		if got := runTwo(NaiveMerge, a, b); !equalSets(got, want) {
			t.Fatalf("NaiveMerge(%v, %v) = %v, want %v", a, b, got, want)
		}
	}
}

func TestScalarKernels(t *testing.T) {
	scalars := map[string]TwoSet{
		"NaiveMerge":      NaiveMerge,
		"BranchlessMerge": BranchlessMerge,
		"Galloping":       Galloping,
		"BaezaYates":      BaezaYates,
		"bmissScalar3x":   bmissScalar3x,
		"bmissScalar4x":   bmissScalar4x,
	}
	for name, k := range scalars {
		t.Run(name, func(t *testing.T) {
			for _, tc := range mergeCases {
				if got := runTwo(k, tc.a, tc.b); !equalSets(got, tc.want) {
					t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
				}
			}
		})
	}
}

func TestIdentityAndEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := setgen.Uniform(rng, 500, 1<<16)

	for _, k := range Registry() {
		if k.Two == nil {
			continue
		}
		if got := runTwo(k.Two, a, a); !equalSets(got, a) {
			t.Errorf("%s: intersect(A, A) != A", k.Name)
		}
		if got := runTwo(k.Two, a, nil); len(got) != 0 {
			t.Errorf("%s: intersect(A, empty) = %v, want empty", k.Name, got)
		}
		if got := runTwo(k.Two, nil, a); len(got) != 0 {
			t.Errorf("%s: intersect(empty, A) = %v, want empty", k.Name, got)
		}
	}
}

func TestCommutativityAndSizeBound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, b := setgen.Pair(rng, 600, 150, 0.5, 1<<15)

	for _, k := range Registry() {
		if k.Two == nil {
			continue
		}
		ab := runTwo(k.Two, a, b)
		ba := runTwo(k.Two, b, a)
		if !equalSets(ab, ba) {
			t.Errorf("%s: intersect(A, B) != intersect(B, A)", k.Name)
		}
		if len(ab) > min(len(a), len(b)) {
			t.Errorf("%s: result size %d exceeds min input size %d", k.Name, len(ab), min(len(a), len(b)))
		}
	}

	// Equality holds exactly when one set contains the other.
	sub := a[:50]
	for _, k := range Registry() {
		if k.Two == nil {
			continue
		}
		if got := runTwo(k.Two, sub, a); len(got) != len(sub) {
			t.Errorf("%s: subset intersection has size %d, want %d", k.Name, len(got), len(sub))
		}
	}
}

func TestIntersectDispatch(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, shape := range []struct{ na, nb int }{
		{0, 100}, {100, 100}, {10, 5000}, {5000, 10}, {1000, 1500},
	} {
		a, b := setgen.Pair(rng, max(shape.na, 1), max(shape.nb, 1), 0.3, 1<<18)
		if shape.na == 0 {
			a = nil
		}
		want := runTwo(NaiveMerge, a, b)
		if got := runTwo(Intersect, a, b); !equalSets(got, want) {
			t.Errorf("Intersect(|a|=%d, |b|=%d) = %d elems, want %d", len(a), len(b), len(got), len(want))
		}
	}
}

func TestIntersectBSRDispatch(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := setgen.Runs(rng, 800, 40, 1<<16)
	b := setgen.Runs(rng, 600, 40, 1<<16)

	want := runTwo(NaiveMerge, a, b)
	got := runBSR(t, IntersectBSR, a, b)
	if !equalSets(got, want) {
		t.Errorf("IntersectBSR: got %d elems, want %d", len(got), len(want))
	}
}
