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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// Int32x4 is a 128-bit XMM vector of 4 int32 lanes. Add and Mul compile to
// VPADDD and VPMULLD, which need AVX; kernels only take this path at
// DispatchAVX and above.
type Int32x4 = archsimd.Int32x4

// BroadcastInt32x4 creates a vector with all lanes set to the given value.
func BroadcastInt32x4(v int32) Int32x4 {
	return archsimd.BroadcastInt32x4(v)
}

// LoadInt32x4Slice loads 4 contiguous int32 values from the front of s.
func LoadInt32x4Slice(s []int32) Int32x4 {
	return archsimd.LoadInt32x4Slice(s)
}

// MakeInt32x4 builds a vector from 4 scalars. The lanes are staged through
// a stack array and loaded with one vector load.
func MakeInt32x4(e0, e1, e2, e3 int32) Int32x4 {
	tmp := [4]int32{e0, e1, e2, e3}
	return archsimd.LoadInt32x4Slice(tmp[:])
}

// ReduceSumInt32x4 collapses the lanes into a scalar: the high half is added
// to the low half, then the two remaining lanes are added pairwise.
func ReduceSumInt32x4(v Int32x4) int32 {
	// Store vector to temp array and sum elements
	var tmp [4]int32
	v.StoreSlice(tmp[:])
	return (tmp[0] + tmp[2]) + (tmp[1] + tmp[3])
}
