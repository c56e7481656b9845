// Package cpuinfo reports CPU vector-extension support for diagnostic
// purposes. Nothing in this module branches on these flags: the engine
// has a single generic numeric path for every size, so there is no
// codelet dispatch decision for them to drive. They exist so callers
// can report what hardware a benchmark ran on, mirroring the feature
// bits the teacher collects ahead of a dispatch path it has not yet
// wired up.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the vector extensions available on the current
// CPU, plus the runtime architecture string.
type Features struct {
	Architecture string
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
}

// Detect reads the CPU feature bits for the current process.
// golang.org/x/sys/cpu's X86 and ARM64 variables are always defined
// (zero-valued on a non-matching architecture), so this needs no
// per-arch build tags.
func Detect() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
	}
}
