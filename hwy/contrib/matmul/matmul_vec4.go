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

import "github.com/ajroetker/go-matbench/hwy"

// MatMulVec4 computes C = A * B with 4-lane int32 vector arithmetic.
//
// For each output cell the K dimension is walked four elements at a time:
// the A side is a contiguous load from row i, the B side is gathered lane by
// lane from column j (B is row-major, so the column is strided). Products
// accumulate into a 4-lane partial sum that is reduced horizontally, and the
// 0-3 leftover elements are added by a scalar loop.
//
// The lane path runs on hwy.Int32x4: XMM registers (VPMULLD/VPADDD) on amd64
// builds with GOEXPERIMENT=simd, four independent register accumulators
// otherwise. At dispatch levels without a 32-bit lane multiply (scalar,
// sse2, or HWY_NO_SIMD set) the whole inner product runs through the scalar
// path.
//
// Panics if the shapes are not compatible (see CheckShapes).
func MatMulVec4(a, b Matrix) Matrix {
	mustCheckShapes("vec4", a, b)
	return matmulVec4Impl(a, b)
}

// matmulVec4Impl is selected at init time; see dispatch.go.
var matmulVec4Impl func(a, b Matrix) Matrix

func matmulVec4Lanes(a, b Matrix) Matrix {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	c := New(m, n)
	for i := range m {
		aRow := a[i]
		cRow := c[i]
		for j := range n {
			sum := hwy.BroadcastInt32x4(0)

			var p int
			for p = 0; p+hwy.Int32x4Lanes <= k; p += hwy.Int32x4Lanes {
				va := hwy.LoadInt32x4Slice(aRow[p:])
				vb := hwy.MakeInt32x4(b[p][j], b[p+1][j], b[p+2][j], b[p+3][j])
				sum = sum.Add(va.Mul(vb))
			}

			total := hwy.ReduceSumInt32x4(sum)

			// Scalar tail
			for ; p < k; p++ {
				total += aRow[p] * b[p][j]
			}
			cRow[j] = total
		}
	}
	return c
}

func matmulVec4Scalar(a, b Matrix) Matrix {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	c := New(m, n)
	for i := range m {
		aRow := a[i]
		cRow := c[i]
		for j := range n {
			var total int32
			for p := range k {
				total += aRow[p] * b[p][j]
			}
			cRow[j] = total
		}
	}
	return c
}

// MatMulVec4Transposed is MatMulVec4 with B transposed once up front, so
// both operands are read with contiguous 4-lane loads. It produces the same
// result; only the memory access pattern changes.
//
// Panics if the shapes are not compatible (see CheckShapes).
func MatMulVec4Transposed(a, b Matrix) Matrix {
	mustCheckShapes("vec4t", a, b)
	return matmulVec4TImpl(a, b.Transpose())
}

// matmulVec4TImpl takes B already transposed (N x K).
var matmulVec4TImpl func(a, bT Matrix) Matrix

func matmulVec4TLanes(a, bT Matrix) Matrix {
	m, k, n := a.Rows(), a.Cols(), bT.Rows()
	c := New(m, n)
	for i := range m {
		aRow := a[i]
		cRow := c[i]
		for j := range n {
			bRow := bT[j]
			sum := hwy.BroadcastInt32x4(0)

			var p int
			for p = 0; p+hwy.Int32x4Lanes <= k; p += hwy.Int32x4Lanes {
				va := hwy.LoadInt32x4Slice(aRow[p:])
				vb := hwy.LoadInt32x4Slice(bRow[p:])
				sum = sum.Add(va.Mul(vb))
			}

			total := hwy.ReduceSumInt32x4(sum)
			for ; p < k; p++ {
				total += aRow[p] * bRow[p]
			}
			cRow[j] = total
		}
	}
	return c
}

func matmulVec4TScalar(a, bT Matrix) Matrix {
	m, k, n := a.Rows(), a.Cols(), bT.Rows()
	c := New(m, n)
	for i := range m {
		aRow := a[i]
		cRow := c[i]
		for j := range n {
			bRow := bT[j][:k]
			var total int32
			for p, av := range aRow[:k] {
				total += av * bRow[p]
			}
			cRow[j] = total
		}
	}
	return c
}
