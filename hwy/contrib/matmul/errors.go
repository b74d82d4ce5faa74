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

import "errors"

// Sentinel errors returned by CheckShapes and Matrix.Validate. They are
// wrapped with the offending dimensions; match them with errors.Is.
var (
	// ErrEmpty is returned for a nil matrix or one with no rows.
	ErrEmpty = errors.New("matmul: empty matrix")

	// ErrBadShape is returned when a matrix has a zero-length row.
	ErrBadShape = errors.New("matmul: dimensions must be > 0")

	// ErrRagged is returned when rows of a matrix differ in length.
	ErrRagged = errors.New("matmul: rows have unequal length")

	// ErrDimensionMismatch is returned when the column count of the left
	// operand differs from the row count of the right operand.
	ErrDimensionMismatch = errors.New("matmul: dimension mismatch")
)
