// Package bsr implements the base and state representation of sorted
// uint32 sets: parallel arrays pairing each block base with a 64-bit
// state word whose bit i marks membership of base*64+i.
//
// The layout follows Han, Zou and Yu, "Speeding Up Set Intersections in
// Graph Algorithms using SIMD Instructions" (SIGMOD '18), widened from
// 32-bit to 64-bit state words so one block covers 64 consecutive values.
package bsr

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	// BlockWidth is the number of consecutive values covered by one state word.
	BlockWidth = 64
	// Shift converts a value to its block base.
	Shift = 6
	// Mask extracts a value's bit position within its block.
	Mask = BlockWidth - 1

	// MaxBase is the largest base whose block still decodes to uint32
	// values. Encoding never produces a larger base; hand-built
	// sequences may.
	MaxBase = 1<<(32-Shift) - 1
)

// ErrRange reports a block whose decoded values exceed the uint32 range.
var ErrRange = errors.New("bsr: base out of range")

// BSR holds a set as parallel base/state arrays. Bases are strictly
// increasing and every state word is non-zero. Both slices are owned by
// the caller; intersection kernels only borrow them.
type BSR struct {
	Bases  []uint32
	States []uint64
}

// New returns an empty representation.
func New() BSR {
	return BSR{}
}

// WithCapacity returns an empty representation with room for n blocks.
func WithCapacity(n int) BSR {
	return BSR{
		Bases:  make([]uint32, 0, n),
		States: make([]uint64, 0, n),
	}
}

// Len returns the number of blocks.
func (b BSR) Len() int { return len(b.Bases) }

// IsEmpty reports whether the set has no blocks.
func (b BSR) IsEmpty() bool { return len(b.Bases) == 0 }

// Cardinality returns the number of set members across all blocks.
func (b BSR) Cardinality() int {
	n := 0
	for _, s := range b.States {
		n += bits.OnesCount64(s)
	}
	return n
}

// Slice returns the representation advanced by off blocks, sharing the
// same backing arrays.
func (b BSR) Slice(off int) BSR {
	return BSR{Bases: b.Bases[off:], States: b.States[off:]}
}

// Truncate returns the first n blocks, sharing the same backing arrays.
func (b BSR) Truncate(n int) BSR {
	return BSR{Bases: b.Bases[:n], States: b.States[:n]}
}

// Append adds one block. The base must be greater than the last appended
// base and the state non-zero; both are the caller's responsibility.
func (b *BSR) Append(base uint32, state uint64) {
	b.Bases = append(b.Bases, base)
	b.States = append(b.States, state)
}

// Reset empties the representation, keeping capacity.
func (b *BSR) Reset() {
	b.Bases = b.Bases[:0]
	b.States = b.States[:0]
}

// Clone returns a deep copy.
func (b BSR) Clone() BSR {
	c := BSR{
		Bases:  make([]uint32, len(b.Bases)),
		States: make([]uint64, len(b.States)),
	}
	copy(c.Bases, b.Bases)
	copy(c.States, b.States)
	return c
}

// Equal reports whether two representations hold identical blocks.
func (b BSR) Equal(o BSR) bool {
	if len(b.Bases) != len(o.Bases) {
		return false
	}
	for i, base := range b.Bases {
		if base != o.Bases[i] || b.States[i] != o.States[i] {
			return false
		}
	}
	return true
}

// FromSorted encodes a strictly increasing value slice. Values sharing a
// base merge into one state word, so the result never holds two blocks
// with the same base. Encoding is total: every uint32 value is
// addressable at block width 64.
func FromSorted(vals []uint32) BSR {
	if len(vals) == 0 {
		return BSR{}
	}

	b := WithCapacity(1 + len(vals)/BlockWidth)
	b.Bases = append(b.Bases, vals[0]>>Shift)
	b.States = append(b.States, 1<<(vals[0]&Mask))

	for _, v := range vals[1:] {
		base := v >> Shift
		bit := uint64(1) << (v & Mask)

		if last := len(b.Bases) - 1; b.Bases[last] == base {
			b.States[last] |= bit
		} else {
			b.Bases = append(b.Bases, base)
			b.States = append(b.States, bit)
		}
	}
	return b
}

// ToSorted decodes the set back into ascending values appended to dst.
// A block with a base beyond MaxBase cannot decode into uint32 values
// and fails with ErrRange before anything past it is emitted.
func (b BSR) ToSorted(dst []uint32) ([]uint32, error) {
	for i, base := range b.Bases {
		if base > MaxBase {
			return dst, fmt.Errorf("%w: block %d base %d", ErrRange, i, base)
		}
		high := base << Shift
		state := b.States[i]
		for state != 0 {
			dst = append(dst, high|uint32(bits.TrailingZeros64(state)))
			state &= state - 1
		}
	}
	return dst, nil
}

// Valid checks the representation invariants: matching array lengths,
// strictly increasing bases within range, and no zero state words.
// Kernels never call this; it is a boundary check for hand-built input.
func (b BSR) Valid() error {
	if len(b.Bases) != len(b.States) {
		return fmt.Errorf("bsr: %d bases but %d states", len(b.Bases), len(b.States))
	}
	for i, base := range b.Bases {
		if base > MaxBase {
			return fmt.Errorf("%w: block %d base %d", ErrRange, i, base)
		}
		if i > 0 && b.Bases[i-1] >= base {
			return fmt.Errorf("bsr: bases not strictly increasing at block %d", i)
		}
		if b.States[i] == 0 {
			return fmt.Errorf("bsr: zero state at block %d", i)
		}
	}
	return nil
}
