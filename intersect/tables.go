package intersect

// Lookup tables shared by the vector kernels. All of them are built
// once at process start and are read-only afterwards, so kernels may
// index them freely from any goroutine.

// shuffleMask4[m] front-packs the lane indices of a 4-lane block whose
// bit is set in m. shuffleMask8 is the 8-lane equivalent.
var (
	shuffleMask4 [16][4]uint8
	shuffleMask8 [256][8]uint8
)

// Byte-check outcomes. Any non-negative dictionary value is four packed
// 2-bit b-lane offsets, one per a-lane.
const (
	msMultiMatch = -1
	msNoMatch    = -2
)

// byteCheckMaskDict maps the 16-bit all-pairs byte signature mask of
// two 4-lane blocks (bit 4i+j set when byte i of a matches byte j of b)
// to msNoMatch, msMultiMatch, or packed single-match offsets.
var byteCheckMaskDict [1 << 16]int16

// matchShuffleDict unpacks an offset word into per-lane b indices,
// mirroring the word shuffle the offsets would drive.
var matchShuffleDict [256][4]uint8

func init() {
	for m := range shuffleMask4 {
		n := 0
		for lane := 0; lane < 4; lane++ {
			if m&(1<<lane) != 0 {
				shuffleMask4[m][n] = uint8(lane)
				n++
			}
		}
	}
	for m := range shuffleMask8 {
		n := 0
		for lane := 0; lane < 8; lane++ {
			if m&(1<<lane) != 0 {
				shuffleMask8[m][n] = uint8(lane)
				n++
			}
		}
	}

	for m := range byteCheckMaskDict {
		byteCheckMaskDict[m] = int16(byteCheckOrder(m))
	}
	for off := range matchShuffleDict {
		for lane := 0; lane < 4; lane++ {
			matchShuffleDict[off][lane] = uint8(off >> (2 * lane) & 3)
		}
	}
}

// byteCheckOrder classifies one signature mask. Each nibble i of the
// mask is the comparison of a-lane i's byte against all four b bytes.
func byteCheckOrder(mask int) int {
	packed := 0
	none := true
	for i := 0; i < 4; i++ {
		off := nibbleOffset(mask >> (4 * i) & 0xf)
		switch off {
		case msMultiMatch:
			return msMultiMatch
		case msNoMatch:
			// Lanes without a candidate point at themselves; the
			// full-word compare rejects them.
			off = i
		default:
			none = false
		}
		packed |= off << (2 * i)
	}
	if none {
		return msNoMatch
	}
	return packed
}

func nibbleOffset(n int) int {
	switch n {
	case 0:
		return msNoMatch
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	}
	return msMultiMatch
}
