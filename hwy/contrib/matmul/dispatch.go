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

func init() {
	selectImpls(hwy.CurrentLevel())
}

// selectImpls binds the vector kernels to the path matching level: the
// Int32x4 lane path where the level has a 32-bit lane multiply, the scalar
// loop otherwise.
func selectImpls(level hwy.DispatchLevel) {
	if hwy.HasInt32x4Mul(level) {
		matmulVec4Impl = matmulVec4Lanes
		matmulVec4TImpl = matmulVec4TLanes
		return
	}
	matmulVec4Impl = matmulVec4Scalar
	matmulVec4TImpl = matmulVec4TScalar
}
