// SPDX-License-Identifier: MIT

package kernels

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Describe returns a short description of the kernel implementations and the SIMD
// features detected on this CPU (for logging and the CLI "kernels" command).
func Describe() string {
	var feats []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE41 {
			feats = append(feats, "SSE4.1")
		}
		if cpu.X86.HasAVX {
			feats = append(feats, "AVX")
		}
		if cpu.X86.HasAVX2 {
			feats = append(feats, "AVX2")
		}
		if cpu.X86.HasAVX512F {
			feats = append(feats, "AVX-512F")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "ASIMD")
		}
	}
	if len(feats) == 0 {
		feats = append(feats, "none")
	}

	return "int: Go generic; float32: vecf32+blas32; float64: vecf64+blas64 (" +
		runtime.GOARCH + " features: " + strings.Join(feats, ",") + ")"
}
