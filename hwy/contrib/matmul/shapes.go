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

// CheckShapes reports whether a * b is a valid product: both operands
// must be non-empty and rectangular, and a's column count must equal b's row
// count. The returned error wraps one of the package sentinels.
func CheckShapes(a, b Matrix) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	return nil
}

// mustCheckShapes panics with the CheckShapes error. Kernels call it on
// entry so a malformed operand fails with a message rather than an index
// panic deep in the inner loop.
func mustCheckShapes(kernel string, a, b Matrix) {
	if err := CheckShapes(a, b); err != nil {
		panic(fmt.Sprintf("matmul: %s: %v", kernel, err))
	}
}
