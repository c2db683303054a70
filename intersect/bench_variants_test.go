package intersect

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/mhr3/cruce/bsr"
	"github.com/mhr3/cruce/internal/setgen"
)

var benchSink int

func BenchmarkTwoSetKernels(b *testing.B) {
	rng := rand.New(rand.NewSource(42))

	shapes := []struct {
		name     string
		na, nb   int
		sel      float64
		universe uint32
	}{
		{"balanced-4k", 4096, 4096, 0.3, 1 << 18},
		{"balanced-64k", 65536, 65536, 0.3, 1 << 22},
		{"skew-32x", 2048, 65536, 0.5, 1 << 22},
		{"skew-1024x", 64, 65536, 0.5, 1 << 22},
	}

	for _, shape := range shapes {
		setA, setB := setgen.Pair(rng, shape.na, shape.nb, shape.sel, shape.universe)
		out := make([]uint32, min(len(setA), len(setB)))

		for _, k := range Registry() {
			if k.Two == nil {
				continue
			}
			b.Run(shape.name+"/"+k.Name, func(b *testing.B) {
				b.SetBytes(int64(4 * (len(setA) + len(setB))))
				for i := 0; i < b.N; i++ {
					benchSink = k.Two(setA, setB, out)
				}
			})
		}
	}
}

func BenchmarkBSRKernels(b *testing.B) {
	rng := rand.New(rand.NewSource(43))

	for _, runLen := range []int{4, 16, 48} {
		setA := setgen.Runs(rng, 32768, runLen, 1<<21)
		setB := setgen.Runs(rng, 32768, runLen, 1<<21)
		ea, eb := bsr.FromSorted(setA), bsr.FromSorted(setB)

		n := min(ea.Len(), eb.Len())
		out := bsr.BSR{Bases: make([]uint32, n), States: make([]uint64, n)}

		for _, k := range Registry() {
			if k.BSR == nil {
				continue
			}
			b.Run("run"+strconv.Itoa(runLen)+"/"+k.Name, func(b *testing.B) {
				b.SetBytes(int64(12 * (ea.Len() + eb.Len())))
				for i := 0; i < b.N; i++ {
					benchSink = k.BSR(ea, eb, out)
				}
			})
		}
	}
}

func BenchmarkKSet(b *testing.B) {
	rng := rand.New(rand.NewSource(44))

	sets := make([][]uint32, 5)
	for i := range sets {
		sets[i] = setgen.Uniform(rng, 2048<<i, 1<<22)
	}
	out := make([]uint32, len(sets[0]))
	scratch := make([]uint32, len(sets[0]))
	pos := make([]int, len(sets))

	b.Run("svs_qfilter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = SVS(QFilterUint, sets, out, scratch)
		}
	})
	b.Run("svs_galloping", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = SVSGalloping(sets, out)
		}
	})
	b.Run("svs_adaptive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = SVSAdaptive(sets, out, scratch)
		}
	})
	b.Run("small_adaptive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = SmallAdaptive(sets, out, pos)
		}
	})
	b.Run("baezayates_k", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = BaezaYatesK(sets, out, scratch)
		}
	})
}
