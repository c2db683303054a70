//go:build amd64 && !noasm

package intersect

import "golang.org/x/sys/cpu"

func init() {
	hasTier128 = cpu.X86.HasSSE41
	hasTier256 = cpu.X86.HasAVX2
	hasTier512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
}
