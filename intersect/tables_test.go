package intersect

import "testing"

func TestShuffleMaskTables(t *testing.T) {
	cases := []struct {
		mask uint32
		want []uint8
	}{
		{0b0000, nil},
		{0b0001, []uint8{0}},
		{0b1010, []uint8{1, 3}},
		{0b1111, []uint8{0, 1, 2, 3}},
	}
	for _, tc := range cases {
		got := shuffleMask4[tc.mask][:len(tc.want)]
		for i, lane := range tc.want {
			if got[i] != lane {
				t.Errorf("shuffleMask4[%#b] = %v, want %v", tc.mask, got, tc.want)
				break
			}
		}
	}

	if got := shuffleMask8[0b10000001]; got[0] != 0 || got[1] != 7 {
		t.Errorf("shuffleMask8[0b10000001] = %v, want front-packed [0 7]", got[:2])
	}
}

func TestByteCheckMaskDict(t *testing.T) {
	if got := byteCheckMaskDict[0]; got != msNoMatch {
		t.Errorf("dict[0] = %d, want msNoMatch", got)
	}

	// a0 matches b0 only; the other lanes point at themselves.
	want := int16(0<<0 | 1<<2 | 2<<4 | 3<<6)
	if got := byteCheckMaskDict[0x0001]; got != want {
		t.Errorf("dict[0x0001] = %d, want %d", got, want)
	}
	if sh := matchShuffleDict[want]; sh != [4]uint8{0, 1, 2, 3} {
		t.Errorf("matchShuffleDict[%d] = %v, want [0 1 2 3]", want, sh)
	}

	// a0's byte matches both b0 and b1.
	if got := byteCheckMaskDict[0x0003]; got != msMultiMatch {
		t.Errorf("dict[0x0003] = %d, want msMultiMatch", got)
	}

	// Each a lane matching its own b lane packs the identity order.
	diag := 0x1 | 0x2<<4 | 0x4<<8 | 0x8<<12
	if got := byteCheckMaskDict[diag]; got != want {
		t.Errorf("dict[diagonal] = %d, want %d", got, want)
	}
}

func TestCompactorsAgree(t *testing.T) {
	v4 := []uint32{10, 20, 30, 40}
	for mask := uint32(0); mask < 16; mask++ {
		var lut, arith [4]uint32
		nl := lutPack4{}.compact(lut[:], v4, mask)
		na := bitPack{}.compact(arith[:], v4, mask)
		if nl != na || lut != arith {
			t.Fatalf("mask %#b: lut %v (%d) != computed %v (%d)", mask, lut[:nl], nl, arith[:na], na)
		}
	}

	v8 := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	for mask := uint32(0); mask < 256; mask++ {
		var lut, arith [8]uint32
		nl := lutPack8{}.compact(lut[:], v8, mask)
		na := bitPack{}.compact(arith[:], v8, mask)
		if nl != na || lut != arith {
			t.Fatalf("mask %#b: lut %v (%d) != computed %v (%d)", mask, lut[:nl], nl, arith[:na], na)
		}
	}
}
