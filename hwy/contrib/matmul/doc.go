// Package matmul provides dense int32 matrix multiplication kernels that
// compute the same product by different routes:
//   - MatMulNaive - the reference triple loop
//   - MatMulVec4 - 4-lane vector inner products with a strided column gather
//   - MatMulVec4Transposed - MatMulVec4 over a pre-transposed B
//   - MatMulWinograd - Winograd's identity, half the multiplies per cell
//
// All kernels take A (M x K) and B (K x N) and return a new M x N Matrix.
// Operands are never modified. Use CheckShapes to validate operands up front;
// the kernels panic on incompatible shapes.
//
// # Example Usage
//
//	a := matmul.FromRows([]int32{1, 2}, []int32{3, 4})
//	b := matmul.FromRows([]int32{5, 6}, []int32{7, 8})
//	c := matmul.MatMulWinograd(a, b) // [[19 22] [43 50]]
package matmul
