package matmul

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-matbench/hwy"
	"github.com/stretchr/testify/require"
)

func sizeStr(n int) string {
	return fmt.Sprintf("%d", n)
}

func shapeStr(m, k, n int) string {
	return fmt.Sprintf("%dx%dx%d", m, k, n)
}

// referenceMatMul is an independent triple loop in i-p-j order.
func referenceMatMul(a, b Matrix) Matrix {
	m, k, n := len(a), len(a[0]), len(b[0])
	c := New(m, n)
	for i := range m {
		for p := range k {
			aip := a[i][p]
			for j := range n {
				c[i][j] += aip * b[p][j]
			}
		}
	}
	return c
}

// withScalarDispatch runs fn with the vector kernels bound to their scalar
// fallbacks, as if HWY_NO_SIMD were set.
func withScalarDispatch(t *testing.T, fn func()) {
	t.Helper()
	savedVec4, savedVec4T := matmulVec4Impl, matmulVec4TImpl
	t.Cleanup(func() {
		matmulVec4Impl, matmulVec4TImpl = savedVec4, savedVec4T
	})
	matmulVec4Impl = matmulVec4Scalar
	matmulVec4TImpl = matmulVec4TScalar
	fn()
}

func TestKernelsMatchReference(t *testing.T) {
	t.Logf("Dispatch level: %s", hwy.CurrentName())

	rng := NewRand(1)
	shapes := [][3]int{
		{1, 1, 1}, {1, 7, 1}, {2, 2, 2}, {3, 5, 2}, {4, 4, 4},
		{5, 9, 3}, {7, 8, 6}, {16, 16, 16}, {17, 31, 13}, {30, 30, 30},
	}
	for _, kernel := range Kernels() {
		for _, s := range shapes {
			m, k, n := s[0], s[1], s[2]
			t.Run(kernel.Name+"/"+shapeStr(m, k, n), func(t *testing.T) {
				a := RandomFrom(rng, m, k)
				b := RandomFrom(rng, k, n)
				require.Equal(t, referenceMatMul(a, b), kernel.Fn(a, b))
			})
		}
	}
}

func TestKernelsMatchNaive(t *testing.T) {
	rng := NewRand(42)
	for _, n := range []int{30, 40, 50, 63} {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := RandomFrom(rng, n, n)
			b := RandomFrom(rng, n, n)
			want := MatMulNaive(a, b)
			for _, kernel := range Kernels()[1:] {
				require.True(t, want.Equal(kernel.Fn(a, b)), "kernel %s", kernel.Name)
			}
		})
	}
}

func TestKernelsScalarFallback(t *testing.T) {
	withScalarDispatch(t, func() {
		rng := NewRand(7)
		for _, k := range []int{1, 3, 4, 6, 11} {
			t.Run(sizeStr(k), func(t *testing.T) {
				a := RandomFrom(rng, 5, k)
				b := RandomFrom(rng, k, 4)
				want := referenceMatMul(a, b)
				require.Equal(t, want, MatMulVec4(a, b))
				require.Equal(t, want, MatMulVec4Transposed(a, b))
			})
		}
	})
}

// padInner zero-pads the inner dimension of a (columns) and b (rows) up to a
// multiple of 4, so the vector loop covers it without a scalar tail.
func padInner(a, b Matrix) (Matrix, Matrix) {
	k := a.Cols()
	padded := (k + 3) / 4 * 4
	pa := New(a.Rows(), padded)
	for i := range a {
		copy(pa[i], a[i])
	}
	pb := New(padded, b.Cols())
	for p := range b {
		copy(pb[p], b[p])
	}
	return pa, pb
}

func TestVec4RemainderMatchesPadded(t *testing.T) {
	rng := NewRand(3)
	for _, k := range []int{8, 9, 10, 11} {
		t.Run(fmt.Sprintf("k=%d/rem=%d", k, k%4), func(t *testing.T) {
			a := RandomFrom(rng, 6, k)
			b := RandomFrom(rng, k, 5)
			pa, pb := padInner(a, b)
			require.Zero(t, pa.Cols()%4)

			want := MatMulVec4(pa, pb)
			require.Equal(t, want, MatMulVec4(a, b))
			require.Equal(t, want, MatMulVec4Transposed(a, b))
		})
	}
}

func TestWinogradOddInner(t *testing.T) {
	rng := NewRand(5)
	for _, k := range []int{1, 3, 5} {
		t.Run(sizeStr(k), func(t *testing.T) {
			a := RandomFrom(rng, 4, k)
			b := RandomFrom(rng, k, 3)
			require.Equal(t, MatMulNaive(a, b), MatMulWinograd(a, b))
		})
	}
}

func TestKernelsIdentity(t *testing.T) {
	rng := NewRand(11)
	for _, n := range []int{1, 2, 5, 8} {
		a := RandomFrom(rng, n, n)
		id := Identity(n)
		for _, kernel := range Kernels() {
			t.Run(kernel.Name+"/"+sizeStr(n), func(t *testing.T) {
				require.Equal(t, a, kernel.Fn(a, id))
				require.Equal(t, a, kernel.Fn(id, a))
			})
		}
	}
}

func TestKernelsZero(t *testing.T) {
	rng := NewRand(13)
	for _, n := range []int{1, 3, 4, 7} {
		a := RandomFrom(rng, n, n)
		zero := New(n, n)
		for _, kernel := range Kernels() {
			t.Run(kernel.Name+"/"+sizeStr(n), func(t *testing.T) {
				require.Equal(t, zero, kernel.Fn(a, zero))
				require.Equal(t, zero, kernel.Fn(zero, a))
			})
		}
	}
}

func TestKernelsKnownProducts(t *testing.T) {
	tests := []struct {
		name string
		a, b Matrix
		want Matrix
	}{
		{
			name: "2x2",
			a:    FromRows([]int32{1, 2}, []int32{3, 4}),
			b:    FromRows([]int32{5, 6}, []int32{7, 8}),
			want: FromRows([]int32{19, 22}, []int32{43, 50}),
		},
		{
			name: "1x1",
			a:    FromRows([]int32{7}),
			b:    FromRows([]int32{6}),
			want: FromRows([]int32{42}),
		},
		{
			name: "2x3*3x2",
			a:    FromRows([]int32{1, 2, 3}, []int32{4, 5, 6}),
			b:    FromRows([]int32{7, 8}, []int32{9, 10}, []int32{11, 12}),
			want: FromRows([]int32{58, 64}, []int32{139, 154}),
		},
		{
			name: "negative",
			a:    FromRows([]int32{-1, 2, -3, 4, -5}),
			b:    FromRows([]int32{1}, []int32{1}, []int32{1}, []int32{1}, []int32{1}),
			want: FromRows([]int32{-3}),
		},
	}
	for _, tt := range tests {
		for _, kernel := range Kernels() {
			t.Run(tt.name+"/"+kernel.Name, func(t *testing.T) {
				require.Equal(t, tt.want, kernel.Fn(tt.a, tt.b))
			})
		}
	}
}

func TestKernelsDoNotMutateInputs(t *testing.T) {
	rng := NewRand(17)
	a := RandomFrom(rng, 6, 7)
	b := RandomFrom(rng, 7, 5)
	aCopy, bCopy := FromRows(a...), FromRows(b...)
	for _, kernel := range Kernels() {
		kernel.Fn(a, b)
		require.Equal(t, aCopy, a, kernel.Name)
		require.Equal(t, bCopy, b, kernel.Name)
	}
}

func TestKernelsPanicOnMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(2, 2)
	for _, kernel := range Kernels() {
		t.Run(kernel.Name, func(t *testing.T) {
			require.PanicsWithValue(t,
				"matmul: "+kernel.Name+": 2x3 * 2x2: matmul: dimension mismatch",
				func() { kernel.Fn(a, b) })
		})
	}
}

func TestLookup(t *testing.T) {
	for _, want := range Kernels() {
		got, err := Lookup(want.Name)
		require.NoError(t, err)
		require.Equal(t, want.Name, got.Name)
	}
	_, err := Lookup("strassen")
	require.EqualError(t, err, `matmul: unknown kernel "strassen"`)

	names := make([]string, 0, 3)
	for _, k := range Kernels()[:3] {
		names = append(names, k.Name)
	}
	require.Equal(t, []string{NameNaive, NameVec4, NameWinograd}, names)
}
