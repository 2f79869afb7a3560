// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merge

import (
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sys/cpu"
)

// DispatchLevel is the widest SIMD instruction set detected on this CPU.
// It names the target an Optimized kernel would be built for.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable SIMD, or SIMD disabled by env.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Width returns the vector register width in bytes, 0 for scalar.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchSSE2, DispatchNEON:
		return 16
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	case DispatchSVE:
		// Scalable; 16 bytes is the architectural minimum.
		return 16
	default:
		return 0
	}
}

var currentLevel = detectLevel()

// CurrentLevel returns the SIMD level detected at startup.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// NoSimdEnv reports whether BMPMERGE_NO_SIMD or HWY_NO_SIMD is set.
// Any non-empty value other than a false boolean counts as set.
func NoSimdEnv() bool {
	for _, key := range []string{"BMPMERGE_NO_SIMD", "HWY_NO_SIMD"} {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		if b, err := strconv.ParseBool(val); err == nil {
			if b {
				return true
			}
			continue
		}
		return true
	}
	return false
}

func detectLevel() DispatchLevel {
	if NoSimdEnv() {
		return DispatchScalar
	}
	switch runtime.GOARCH {
	case "amd64":
		switch {
		case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
			return DispatchAVX512
		case cpu.X86.HasAVX2:
			return DispatchAVX2
		case cpu.X86.HasSSE2:
			return DispatchSSE2
		}
	case "arm64":
		switch {
		case cpu.ARM64.HasSVE:
			return DispatchSVE
		case cpu.ARM64.HasASIMD:
			return DispatchNEON
		}
	}
	return DispatchScalar
}
