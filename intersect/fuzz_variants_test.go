package intersect

import (
	"encoding/binary"
	"testing"
)

// fuzzSet decodes bytes into a strictly increasing set: consecutive
// 16-bit words are deltas, offset by one so values never repeat.
func fuzzSet(data []byte) []uint32 {
	vals := make([]uint32, 0, len(data)/2)
	var last uint32
	for i := 0; i+1 < len(data); i += 2 {
		next := last + uint32(binary.LittleEndian.Uint16(data[i:])) + 1
		if next < last {
			break
		}
		last = next
		vals = append(vals, last)
	}
	return vals
}

// FuzzKernelsAllVariants checks every registry kernel against the
// scalar merge reference on arbitrary valid inputs.
func FuzzKernelsAllVariants(f *testing.F) {
	f.Add([]byte{}, []byte{})
	f.Add([]byte{0, 0, 1, 0, 2, 0}, []byte{0, 0, 3, 0})
	f.Add([]byte{1, 0, 1, 0, 1, 0, 1, 0}, []byte{2, 0, 2, 0})
	f.Add(make([]byte, 64), make([]byte, 130))
	f.Add(make([]byte, 1024), []byte{5, 1})

	f.Fuzz(func(t *testing.T, rawA, rawB []byte) {
		a, b := fuzzSet(rawA), fuzzSet(rawB)
		want := runTwo(NaiveMerge, a, b)

		for _, k := range Registry() {
			var got []uint32
			if k.Two != nil {
				got = runTwo(k.Two, a, b)
			} else {
				got = runBSR(t, k.BSR, a, b)
			}
			if !equalSets(got, want) {
				t.Fatalf("%s(|a|=%d, |b|=%d) = %v, want %v", k.Name, len(a), len(b), got, want)
			}
		}
	})
}
