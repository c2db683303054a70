package intersect

import (
	"errors"
	"fmt"
)

// ErrUnknownKernel is returned by Lookup for a name the registry does
// not carry.
var ErrUnknownKernel = errors.New("intersect: unknown kernel")

// Kernel is one registry entry: a named intersection routine bound to
// the vector tier it models. Exactly one of Two and BSR is set.
type Kernel struct {
	Name string
	Tier Tier
	Two  TwoSet
	BSR  BSRSet
}

// The kernel table drivers dispatch over by configuration name. Names
// follow family_tier_variant; the _b4/_b8 entries keep the block-size
// suffix of their C ancestors.
var kernels = []Kernel{
	{Name: "naive_merge", Tier: TierScalar, Two: NaiveMerge},
	{Name: "branchless_merge", Tier: TierScalar, Two: BranchlessMerge},
	{Name: "galloping", Tier: TierScalar, Two: Galloping},
	{Name: "baezayates", Tier: TierScalar, Two: BaezaYates},
	{Name: "bmiss_scalar_3x", Tier: TierScalar, Two: bmissScalar3x},
	{Name: "bmiss_scalar_4x", Tier: TierScalar, Two: bmissScalar4x},

	{Name: "merge_bsr", Tier: TierScalar, BSR: MergeBSR},
	{Name: "galloping_bsr", Tier: TierScalar, BSR: GallopingBSR},

	{Name: "shuffling_sse_branch", Tier: TierSSE, Two: shuffling4[advBranch, lutPack4]},
	{Name: "shuffling_sse_branchless", Tier: TierSSE, Two: shuffling4[advBranchless, lutPack4]},
	{Name: "shuffling_sse_branch_comp", Tier: TierSSE, Two: shuffling4[advBranch, bitPack]},
	{Name: "shuffling_sse_branchless_comp", Tier: TierSSE, Two: shuffling4[advBranchless, bitPack]},
	{Name: "broadcast_sse_branch", Tier: TierSSE, Two: broadcast4[advBranch, lutPack4]},
	{Name: "broadcast_sse_branchless", Tier: TierSSE, Two: broadcast4[advBranchless, lutPack4]},
	{Name: "broadcast_sse_branch_comp", Tier: TierSSE, Two: broadcast4[advBranch, bitPack]},
	{Name: "broadcast_sse_branchless_comp", Tier: TierSSE, Two: broadcast4[advBranchless, bitPack]},

	{Name: "bmiss_uint_b4", Tier: TierSSE, Two: BMissUint},
	{Name: "bmiss_uint_b4_branch", Tier: TierSSE, Two: bmissUint[advBranch]},
	{Name: "bmiss_sttni_b8", Tier: TierSSE, Two: BMissSTTNI},
	{Name: "bmiss_sttni_b8_branch", Tier: TierSSE, Two: bmissSTTNI[advBranch]},

	{Name: "qfilter_uint_b4", Tier: TierSSE, Two: QFilterUint},
	{Name: "qfilter_uint_b4_branch", Tier: TierSSE, Two: qfilterUint[advBranch]},
	{Name: "qfilter_uint_b4_v2", Tier: TierSSE, Two: QFilterUintV2},
	{Name: "qfilter_uint_b4_v2_branch", Tier: TierSSE, Two: qfilterUintV2[advBranch]},

	{Name: "simd_galloping_sse", Tier: TierSSE, Two: simdGallopingSSE},

	{Name: "shuffling_sse_bsr", Tier: TierSSE, BSR: shufflingBSR4[advBranchless]},
	{Name: "shuffling_sse_bsr_branch", Tier: TierSSE, BSR: shufflingBSR4[advBranch]},
	{Name: "broadcast_sse_bsr", Tier: TierSSE, BSR: broadcastBSR4[advBranchless]},
	{Name: "broadcast_sse_bsr_branch", Tier: TierSSE, BSR: broadcastBSR4[advBranch]},
	{Name: "qfilter_bsr_b4", Tier: TierSSE, BSR: QFilterBSR},
	{Name: "qfilter_bsr_b4_branch", Tier: TierSSE, BSR: qfilterBSR[advBranch]},
	{Name: "qfilter_bsr_b4_v2", Tier: TierSSE, BSR: QFilterBSRV2},
	{Name: "qfilter_bsr_b4_v2_branch", Tier: TierSSE, BSR: qfilterBSRV2[advBranch]},
	{Name: "simd_galloping_sse_bsr", Tier: TierSSE, BSR: simdGallopingBSRSSE},

	{Name: "shuffling_avx2_branch", Tier: TierAVX2, Two: shuffling8[advBranch, lutPack8]},
	{Name: "shuffling_avx2_branchless", Tier: TierAVX2, Two: shuffling8[advBranchless, lutPack8]},
	{Name: "shuffling_avx2_branch_comp", Tier: TierAVX2, Two: shuffling8[advBranch, bitPack]},
	{Name: "shuffling_avx2_branchless_comp", Tier: TierAVX2, Two: shuffling8[advBranchless, bitPack]},
	{Name: "broadcast_avx2_branch", Tier: TierAVX2, Two: broadcast8[advBranch, lutPack8]},
	{Name: "broadcast_avx2_branchless", Tier: TierAVX2, Two: broadcast8[advBranchless, lutPack8]},
	{Name: "broadcast_avx2_branch_comp", Tier: TierAVX2, Two: broadcast8[advBranch, bitPack]},
	{Name: "broadcast_avx2_branchless_comp", Tier: TierAVX2, Two: broadcast8[advBranchless, bitPack]},
	{Name: "simd_galloping_avx2", Tier: TierAVX2, Two: simdGallopingAVX2},
	{Name: "shuffling_avx2_bsr", Tier: TierAVX2, BSR: shufflingBSR8[advBranchless]},
	{Name: "shuffling_avx2_bsr_branch", Tier: TierAVX2, BSR: shufflingBSR8[advBranch]},
	{Name: "broadcast_avx2_bsr", Tier: TierAVX2, BSR: broadcastBSR8[advBranchless]},
	{Name: "broadcast_avx2_bsr_branch", Tier: TierAVX2, BSR: broadcastBSR8[advBranch]},
	{Name: "simd_galloping_avx2_bsr", Tier: TierAVX2, BSR: simdGallopingBSRAVX2},

	{Name: "shuffling_avx512_branch", Tier: TierAVX512, Two: shuffling16[advBranch]},
	{Name: "shuffling_avx512_branchless", Tier: TierAVX512, Two: shuffling16[advBranchless]},
	{Name: "broadcast_avx512_branch", Tier: TierAVX512, Two: broadcast16[advBranch]},
	{Name: "broadcast_avx512_branchless", Tier: TierAVX512, Two: broadcast16[advBranchless]},
	{Name: "simd_galloping_avx512", Tier: TierAVX512, Two: simdGallopingAVX512},
	{Name: "shuffling_avx512_bsr", Tier: TierAVX512, BSR: shufflingBSR16[advBranchless]},
	{Name: "shuffling_avx512_bsr_branch", Tier: TierAVX512, BSR: shufflingBSR16[advBranch]},
	{Name: "broadcast_avx512_bsr", Tier: TierAVX512, BSR: broadcastBSR16[advBranchless]},
	{Name: "broadcast_avx512_bsr_branch", Tier: TierAVX512, BSR: broadcastBSR16[advBranch]},
	{Name: "simd_galloping_avx512_bsr", Tier: TierAVX512, BSR: simdGallopingBSRAVX512},
}

var kernelIndex = make(map[string]int, len(kernels))

func init() {
	for i, k := range kernels {
		kernelIndex[k.Name] = i
	}
}

// Registry returns a copy of the full kernel table, including kernels
// whose tier this processor does not support.
func Registry() []Kernel {
	out := make([]Kernel, len(kernels))
	copy(out, kernels)
	return out
}

// Lookup finds a kernel by registry name.
func Lookup(name string) (Kernel, error) {
	i, ok := kernelIndex[name]
	if !ok {
		return Kernel{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return kernels[i], nil
}

// Available returns the kernels whose tier the processor supports.
func Available() []Kernel {
	out := make([]Kernel, 0, len(kernels))
	for _, k := range kernels {
		if k.Tier.Available() {
			out = append(out, k)
		}
	}
	return out
}

// Must returns the named kernel and panics when the name is unknown or
// the kernel's tier is unsupported on this processor. An explicitly
// requested tier is never downgraded.
func Must(name string) Kernel {
	k, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	if !k.Tier.Available() {
		panic(fmt.Sprintf("intersect: kernel %q needs %s, processor tops out at %s", name, k.Tier, MaxTier()))
	}
	return k
}
