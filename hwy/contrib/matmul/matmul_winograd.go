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

// MatMulWinograd computes C = A * B using Winograd's inner-product identity.
//
// For even K, each dot product is rewritten as
//
//	sum_p (a[2p] + b[2p+1]) * (a[2p+1] + b[2p]) - rowFactor - colFactor
//
// where rowFactor = sum_p a[2p]*a[2p+1] depends only on the row of A and
// colFactor = sum_p b[2p]*b[2p+1] only on the column of B. Both are computed
// once in pre-passes, halving the multiplies in the main M*N*K loop. When K
// is odd the last term a[K-1]*b[K-1] is added back in a separate pass.
//
// Panics if the shapes are not compatible (see CheckShapes).
func MatMulWinograd(a, b Matrix) Matrix {
	mustCheckShapes("winograd", a, b)

	m, k := a.Rows(), a.Cols()
	kb, n := b.Rows(), b.Cols()
	half := k / 2

	rowFactor := make([]int32, m)
	for i := range m {
		aRow := a[i]
		var f int32
		for p := range half {
			f += aRow[2*p] * aRow[2*p+1]
		}
		rowFactor[i] = f
	}

	// Bounded by B's own row count. CheckShapes guarantees kb == k.
	colFactor := make([]int32, n)
	for j := range n {
		var f int32
		for p := range kb / 2 {
			f += b[2*p][j] * b[2*p+1][j]
		}
		colFactor[j] = f
	}

	c := New(m, n)
	for i := range m {
		aRow := a[i]
		cRow := c[i]
		for j := range n {
			sum := -rowFactor[i] - colFactor[j]
			for p := range half {
				sum += (aRow[2*p] + b[2*p+1][j]) * (aRow[2*p+1] + b[2*p][j])
			}
			cRow[j] = sum
		}
	}

	if k%2 != 0 {
		last := k - 1
		bLast := b[last]
		for i := range m {
			av := a[i][last]
			cRow := c[i]
			for j := range n {
				cRow[j] += av * bLast[j]
			}
		}
	}

	return c
}
