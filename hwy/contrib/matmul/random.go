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

package matmul

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// MaxRandomValue is the exclusive upper bound of generated entries.
const MaxRandomValue = 100

// Process-wide source, seeded once from the wall clock. It is not safe for
// concurrent use; the benchmark is single-threaded.
var globalRand = NewRand(uint64(time.Now().UnixNano()))

// NewRand returns a deterministic generator for the given seed. Pass it to
// RandomFrom for reproducible matrices.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random returns a rows x cols matrix of integers drawn uniformly from
// [0, MaxRandomValue), consuming the process-wide source.
func Random(rows, cols int) Matrix {
	return RandomFrom(globalRand, rows, cols)
}

// RandomFrom is Random with an explicit source. Panics if rows or cols is
// not positive.
func RandomFrom(r *rand.Rand, rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matmul: invalid random shape %dx%d", rows, cols))
	}
	m := New(rows, cols)
	for i := range m {
		row := m[i]
		for j := range row {
			row[j] = int32(r.IntN(MaxRandomValue))
		}
	}
	return m
}
