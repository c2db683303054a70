//go:build (!amd64 && !arm64) || noasm

package intersect

// No vector tiers beyond scalar on this target.
