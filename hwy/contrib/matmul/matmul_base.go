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

// MatMulNaive computes C = A * B where:
//   - A is M x K
//   - B is K x N
//   - C is M x N
//
// It is the plain triple loop with no reordering or blocking, and serves as
// the reference the other kernels are checked against. Sums wrap on int32
// overflow.
//
// Panics if the shapes are not compatible (see CheckShapes).
func MatMulNaive(a, b Matrix) Matrix {
	mustCheckShapes("naive", a, b)

	m, k, n := a.Rows(), a.Cols(), b.Cols()
	c := New(m, n)
	for i := range m {
		aRow := a[i]
		cRow := c[i]
		for j := range n {
			for p := range k {
				cRow[j] += aRow[p] * b[p][j]
			}
		}
	}
	return c
}
