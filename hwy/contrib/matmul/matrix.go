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
	"io"
	"strconv"
	"strings"
)

// Matrix is a dense row-major matrix of int32 values. A valid Matrix has at
// least one row, and every row has the same non-zero length.
//
// Kernels never mutate their operands; the result is always a fresh Matrix.
type Matrix [][]int32

// New returns a zeroed rows x cols matrix. The rows share one backing array.
// Panics if rows or cols is not positive.
func New(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matmul: invalid shape %dx%d", rows, cols))
	}
	data := make([]int32, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := New(n, n)
	for i := range n {
		m[i][i] = 1
	}
	return m
}

// FromRows copies rows into a new Matrix. It is a convenience for literals;
// the shape is not validated.
func FromRows(rows ...[]int32) Matrix {
	m := make(Matrix, len(rows))
	for i, r := range rows {
		m[i] = append([]int32(nil), r...)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate checks that m is non-empty and rectangular.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return ErrEmpty
	}
	cols := len(m[0])
	if cols == 0 {
		return fmt.Errorf("row 0 has no columns: %w", ErrBadShape)
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, row 0 has %d: %w", i, len(row), cols, ErrRagged)
		}
	}
	return nil
}

// Transpose returns a new cols x rows matrix with t[j][i] = m[i][j].
func (m Matrix) Transpose() Matrix {
	rows, cols := m.Rows(), m.Cols()
	t := New(cols, rows)
	for i, row := range m {
		for j, v := range row {
			t[j][i] = v
		}
	}
	return t
}

// Equal reports whether m and other have the same shape and elements.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Format writes m one row per line, each element followed by a space.
func (m Matrix) Format(w io.Writer) error {
	var sb strings.Builder
	for _, row := range m {
		sb.Reset()
		for _, v := range row {
			sb.WriteString(strconv.FormatInt(int64(v), 10))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// String returns the Format rendering of m.
func (m Matrix) String() string {
	var sb strings.Builder
	_ = m.Format(&sb)
	return sb.String()
}
