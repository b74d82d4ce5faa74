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

package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel identifies the instruction set the lane-vector kernels run on.
type DispatchLevel int

const (
	// DispatchScalar runs every kernel through its scalar fallback.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 is the amd64 baseline. It has no 32-bit lane multiply
	// (PMULLD arrived with SSE4.1), so integer kernels stay scalar.
	DispatchSSE2
	// DispatchAVX is amd64 with VEX-encoded 128-bit integer ops.
	DispatchAVX
	// DispatchAVX2 is 256-bit amd64.
	DispatchAVX2
	// DispatchAVX512 is 512-bit amd64.
	DispatchAVX512
	// DispatchNEON is 128-bit arm64 Advanced SIMD.
	DispatchNEON
)

// String returns the short lower-case name of the level.
func (l DispatchLevel) String() string {
	switch l {
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX:
		return "avx"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// Set once by the per-architecture init.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level selected at startup.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the selected target, e.g. "avx2".
func CurrentName() string {
	return currentName
}

// HasInt32x4Mul reports whether kernels should take their Int32x4 lane path
// at level. On amd64 built with GOEXPERIMENT=simd the lanes are XMM
// registers; elsewhere they are the portable four-register Int32x4.
func HasInt32x4Mul(level DispatchLevel) bool {
	switch level {
	case DispatchAVX, DispatchAVX2, DispatchAVX512, DispatchNEON:
		return true
	default:
		return false
	}
}

// NoSimdEnv reports whether HWY_NO_SIMD is set to a true value. It forces
// scalar mode regardless of what the CPU supports.
func NoSimdEnv() bool {
	v, ok := os.LookupEnv("HWY_NO_SIMD")
	if !ok {
		return false
	}
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		// Any non-boolean value still counts as "set".
		return true
	}
	return b
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
