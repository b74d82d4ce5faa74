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

//go:build !amd64 || !goexperiment.simd

package hwy

// Int32x4 is the portable 4 x int32 vector used when simd/archsimd is not
// available. It has the same method set as archsimd.Int32x4. The lanes are
// separate struct fields rather than an array so the compiler can keep each
// one in its own register; the four lanes then run as independent
// accumulator chains.
type Int32x4 struct {
	l0, l1, l2, l3 int32
}

// BroadcastInt32x4 creates a vector with all lanes set to the given value.
func BroadcastInt32x4(v int32) Int32x4 {
	return Int32x4{v, v, v, v}
}

// LoadInt32x4Slice loads 4 contiguous int32 values from the front of s.
// Panics if len(s) < 4.
func LoadInt32x4Slice(s []int32) Int32x4 {
	_ = s[3] // bounds check hint
	return Int32x4{s[0], s[1], s[2], s[3]}
}

// MakeInt32x4 builds a vector lane by lane. This is the gather used for
// non-contiguous sources such as a column of a row-major matrix.
func MakeInt32x4(e0, e1, e2, e3 int32) Int32x4 {
	return Int32x4{e0, e1, e2, e3}
}

// Add performs element-wise addition.
func (v Int32x4) Add(other Int32x4) Int32x4 {
	return Int32x4{v.l0 + other.l0, v.l1 + other.l1, v.l2 + other.l2, v.l3 + other.l3}
}

// Mul performs element-wise multiplication, keeping the low 32 bits of each
// product.
func (v Int32x4) Mul(other Int32x4) Int32x4 {
	return Int32x4{v.l0 * other.l0, v.l1 * other.l1, v.l2 * other.l2, v.l3 * other.l3}
}

// GetElem extracts the element at the given lane index.
func (v Int32x4) GetElem(lane uint8) int32 {
	switch lane {
	case 0:
		return v.l0
	case 1:
		return v.l1
	case 2:
		return v.l2
	default:
		return v.l3
	}
}

// StoreSlice stores the vector to the front of s.
func (v Int32x4) StoreSlice(s []int32) {
	_ = s[3]
	s[0], s[1], s[2], s[3] = v.l0, v.l1, v.l2, v.l3
}

// ReduceSumInt32x4 collapses the lanes into a scalar: the high half is added
// to the low half, then the two remaining lanes are added pairwise.
func ReduceSumInt32x4(v Int32x4) int32 {
	return (v.l0 + v.l2) + (v.l1 + v.l3)
}
