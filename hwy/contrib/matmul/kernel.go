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

import "fmt"

// Func is the signature shared by all kernels.
type Func func(a, b Matrix) Matrix

// Kernel is a named multiplication algorithm.
type Kernel struct {
	Name string
	Fn   Func
}

// Kernel names.
const (
	NameNaive     = "naive"
	NameVec4      = "vec4"
	NameWinograd  = "winograd"
	NameVec4Trans = "vec4t"
)

// Registered kernels.
var (
	Naive          = Kernel{Name: NameNaive, Fn: MatMulNaive}
	Vec4           = Kernel{Name: NameVec4, Fn: MatMulVec4}
	Winograd       = Kernel{Name: NameWinograd, Fn: MatMulWinograd}
	Vec4Transposed = Kernel{Name: NameVec4Trans, Fn: MatMulVec4Transposed}
)

// Kernels returns every registered kernel. The first three, in order, are
// the ones the benchmark sweep reports.
func Kernels() []Kernel {
	return []Kernel{Naive, Vec4, Winograd, Vec4Transposed}
}

// Lookup returns the kernel registered under name.
func Lookup(name string) (Kernel, error) {
	for _, k := range Kernels() {
		if k.Name == name {
			return k, nil
		}
	}
	return Kernel{}, fmt.Errorf("matmul: unknown kernel %q", name)
}
