package intersect

// Tier models the vector register width a kernel is written for. The
// processor is probed once at init by the per-arch capability file;
// nothing in the hot loops ever re-checks a feature flag.
type Tier uint8

const (
	TierScalar Tier = iota
	TierSSE         // 4 lanes, 128-bit
	TierAVX2        // 8 lanes, 256-bit
	TierAVX512      // 16 lanes, 512-bit
)

// Tier flags, set by the per-arch init.
var (
	hasTier128 bool
	hasTier256 bool
	hasTier512 bool
)

// Available reports whether the executing processor supports the tier.
func (t Tier) Available() bool {
	switch t {
	case TierScalar:
		return true
	case TierSSE:
		return hasTier128
	case TierAVX2:
		return hasTier256
	case TierAVX512:
		return hasTier512
	}
	return false
}

func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierSSE:
		return "sse"
	case TierAVX2:
		return "avx2"
	case TierAVX512:
		return "avx512"
	}
	return "unknown"
}

// MaxTier returns the widest available tier.
func MaxTier() Tier {
	switch {
	case hasTier512:
		return TierAVX512
	case hasTier256:
		return TierAVX2
	case hasTier128:
		return TierSSE
	}
	return TierScalar
}
