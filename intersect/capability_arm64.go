//go:build arm64 && !noasm

package intersect

import "golang.org/x/sys/cpu"

func init() {
	// NEON is 128-bit; no wider tiers exist on arm64.
	hasTier128 = cpu.ARM64.HasASIMD
}
