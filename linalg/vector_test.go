package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"

	"github.com/tsawler/go-accelerate/tensor"
)

func vec[T tensor.Scalar](xs ...T) tensor.Vector[T] {
	return tensor.NewVector(xs)
}

func TestDot(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		d, err := Dot(vec[float64](1, 2, 3), vec[float64](4, 5, 6))
		require.NoError(t, err)
		assert.Equal(t, 32.0, d)

		f, err := Dot(vec[float32](1, 2, 3), vec[float32](4, 5, 6))
		require.NoError(t, err)
		assert.Equal(t, float32(32), f)

		// Strided and reversed operands.
		a := tensor.NewVectorStrided([]float64{1, 0, 2, 0, 3}, 3, 2)
		b := tensor.NewVectorStrided([]float64{6, 5, 4}, 3, -1)
		d, err = Dot(a, b)
		require.NoError(t, err)
		assert.Equal(t, 32.0, d)
	})
}

func TestDotComplex(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		a := vec[complex128](1+2i, 3-1i)
		b := vec[complex128](2, 1i)

		u, err := Dot(a, b)
		require.NoError(t, err)
		assert.Equal(t, 3+7i, u)

		// conj(1+2i)*2 + conj(3-i)*i = 2-4i + 3i-1
		c, err := Dotc(a, b)
		require.NoError(t, err)
		assert.Equal(t, 1-1i, c)

		c64, err := Dotc(vec[complex64](1i), vec[complex64](1i))
		require.NoError(t, err)
		assert.Equal(t, complex64(1), c64)
	})
}

func TestDotMismatch(t *testing.T) {
	_, err := Dot(vec[float64](1, 2, 3), vec[float64](1, 2))
	require.ErrorIs(t, err, ErrDimensionMismatch)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "Dot", e.Op)
	assert.Zero(t, e.Info)
}

func TestAddSub(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		a := vec[float64](1, 2, 3)
		b := vec[float64](10, 20, 30)
		out := vec[float64](0, 0, 0)

		require.NoError(t, Add(a, b, out))
		assert.Equal(t, []float64{11, 22, 33}, out.Data)

		// (a + b) - b == a
		require.NoError(t, Sub(out, b, out))
		assert.Equal(t, []float64{1, 2, 3}, out.Data)

		// out aliasing the second operand.
		bb := vec[float64](10, 20, 30)
		require.NoError(t, Sub(a, bb, bb))
		assert.Equal(t, []float64{-9, -18, -27}, bb.Data)

		c := vec[complex64](1+1i, 2)
		require.NoError(t, Add(c, c, c))
		assert.Equal(t, []complex64{2 + 2i, 4}, c.Data)
	})
}

func TestAddRejectsWithoutWriting(t *testing.T) {
	a := vec[float64](1, 2, 3)
	b := vec[float64](1, 2)
	out := vec[float64](7, 7, 7)

	err := Add(a, b, out)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, []float64{7, 7, 7}, out.Data)

	// Partial overlap with an input is rejected.
	data := []float64{1, 2, 3, 4}
	x := tensor.NewVector(data[:3])
	shifted := tensor.NewVector(data[1:])
	err = Add(x, vec[float64](1, 1, 1), shifted)
	require.ErrorIs(t, err, ErrInvalidDescriptor)
	assert.Equal(t, []float64{1, 2, 3, 4}, data)
}

func TestInvalidDescriptor(t *testing.T) {
	tests := []struct {
		name string
		x    tensor.Vector[float32]
	}{
		{"zero increment", tensor.Vector[float32]{N: 2, Inc: 0, Data: []float32{1, 2}}},
		{"negative length", tensor.Vector[float32]{N: -1, Inc: 1, Data: []float32{1}}},
		{"short storage", tensor.NewVectorStrided([]float32{1, 2, 3}, 3, 2)},
		{"wrapping increment", tensor.Vector[float32]{N: 2, Inc: math.MinInt, Data: []float32{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Norm2(tt.x)
			require.ErrorIs(t, err, ErrInvalidDescriptor)
			require.ErrorIs(t, Scale(2, tt.x), ErrInvalidDescriptor)
		})
	}
}

func TestDotRejectsWrappingIncrement(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		x := tensor.Vector[float64]{N: 2, Inc: math.MinInt, Data: []float64{1}}
		_, err := Dot(x, vec[float64](1, 2))
		require.ErrorIs(t, err, ErrInvalidDescriptor)

		a := tensor.Matrix[float64]{Rows: 3, Cols: 1, Stride: math.MaxInt/2 + 1, Data: []float64{1}}
		y := vec[float64](9, 9, 9)
		require.ErrorIs(t, MatVec(NoTrans, 1, a, vec[float64](1), 0, y), ErrInvalidDescriptor)
		assert.Equal(t, []float64{9, 9, 9}, y.Data)
	})
}

func TestEmptyVectors(t *testing.T) {
	empty := tensor.Vector[complex128]{Inc: 1}
	d, err := Dot(empty, empty)
	require.NoError(t, err)
	assert.Zero(t, d)

	idx, err := ArgMaxAbs(empty)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)

	require.NoError(t, Add(empty, empty, empty))
}

func TestScaleFillCopySwap(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		x := vec[float64](1, 2, 3)
		require.NoError(t, Scale(2, x))
		assert.Equal(t, []float64{2, 4, 6}, x.Data)

		y := vec[float64](0, 0, 0)
		require.NoError(t, Copy(x, y))
		assert.Equal(t, []float64{2, 4, 6}, y.Data)

		require.NoError(t, Fill(1, x))
		assert.Equal(t, []float64{1, 1, 1}, x.Data)

		require.NoError(t, Swap(x, y))
		assert.Equal(t, []float64{2, 4, 6}, x.Data)
		assert.Equal(t, []float64{1, 1, 1}, y.Data)

		// A strided Fill leaves the gaps alone.
		s := []complex64{9, 9, 9, 9, 9}
		require.NoError(t, Fill(1i, tensor.NewVectorStrided(s, 3, -2)))
		assert.Equal(t, []complex64{1i, 9, 1i, 9, 1i}, s)
	})
}

func TestAxpyAxpby(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		x := vec[float32](1, 2, 3)
		y := vec[float32](1, 1, 1)
		require.NoError(t, Axpy(2, x, y))
		assert.Equal(t, []float32{3, 5, 7}, y.Data)

		require.NoError(t, Axpby(1, x, -1, y))
		assert.Equal(t, []float32{-2, -3, -4}, y.Data)

		require.ErrorIs(t, Axpy(1, x, vec[float32](1)), ErrDimensionMismatch)
	})
}

func TestNorms(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		n2, err := Norm2(vec[float64](3, 4))
		require.NoError(t, err)
		assert.InDelta(t, 5, n2, 1e-12)

		n1, err := Norm1(vec[float32](-1, 2, -3))
		require.NoError(t, err)
		assert.InDelta(t, 6, n1, 1e-6)

		c1, err := Norm1(vec[complex128](3-4i, 1i))
		require.NoError(t, err)
		assert.InDelta(t, 8, c1, 1e-12)

		c2, err := Norm2(vec[complex64](3 + 4i))
		require.NoError(t, err)
		assert.InDelta(t, 5, c2, 1e-6)

		rev, err := Norm2(tensor.NewVectorStrided([]float64{3, 0, 4}, 2, -2))
		require.NoError(t, err)
		assert.InDelta(t, 5, rev, 1e-12)
	})
}

func TestArgMaxAbs(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		idx, err := ArgMaxAbs(vec[float64](1, -7, 3))
		require.NoError(t, err)
		assert.Equal(t, 1, idx)

		// Element i of a reversed vector lives at the far end of storage.
		idx, err = ArgMaxAbs(tensor.NewVectorStrided([]float64{9, 1, 2}, 3, -1))
		require.NoError(t, err)
		assert.Equal(t, 2, idx)

		idx, err = ArgMaxAbs(vec[complex64](1+1i, 3, 2-2i))
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	})
}

func TestGivens(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		c, s, r, _ := Rotg(3.0, 4.0)
		assert.InDelta(t, 5, r, 1e-12)
		assert.InDelta(t, 1, c*c+s*s, 1e-12)

		x := vec[float64](3)
		y := vec[float64](4)
		require.NoError(t, Rot(x, y, c, s))
		assert.InDelta(t, 5, x.Data[0], 1e-12)
		assert.InDelta(t, 0, y.Data[0], 1e-12)

		x32 := vec[float32](1, 0)
		y32 := vec[float32](0, 1)
		require.NoError(t, Rot(x32, y32, 0, 1))
		assert.InDelta(t, 0, float64(x32.Data[0]), 1e-6)
		assert.InDelta(t, -1, float64(y32.Data[0]), 1e-6)
	})
}

func TestScaleReal(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		x := vec[complex128](1+2i, -3i)
		require.NoError(t, ScaleReal(2, x))
		assert.Equal(t, []complex128{2 + 4i, -6i}, x.Data)

		s := []complex64{1i, 9, 2}
		require.NoError(t, ScaleReal(-1, tensor.NewVectorStrided(s, 2, -2)))
		assert.Equal(t, []complex64{-1i, 9, -2}, s)

		f := vec[float32](1, 2)
		require.NoError(t, ScaleReal(0.5, f))
		assert.Equal(t, []float32{0.5, 1}, f.Data)
	})
}

func TestDotMixed(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		// 1 + 2^-30 is lost in single precision accumulation.
		a := vec[float32](1, 0x1p-15)
		b := vec[float32](1, 0x1p-15)
		d, err := DotMixed(a, b)
		require.NoError(t, err)
		assert.Equal(t, 1+0x1p-30, d)

		f, err := DotMixedPlus(2, vec[float32](1, 2), vec[float32](3, 4))
		require.NoError(t, err)
		assert.Equal(t, float32(13), f)

		f, err = DotMixedPlus(2, vec[float32](), vec[float32]())
		require.NoError(t, err)
		assert.Equal(t, float32(2), f)

		_, err = DotMixed(vec[float32](1), vec[float32](1, 2))
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestGivensComplex(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		a, b := 3+4i, 1-2i
		c, s, r := RotgComplex(a, b)
		assert.InDelta(t, 1, c*c+real(s)*real(s)+imag(s)*imag(s), 1e-12)

		x := vec[complex128](a)
		y := vec[complex128](b)
		require.NoError(t, RotComplex(x, y, c, 0))
		// RotComplex takes a real s, so apply the complex s by hand.
		x.Data[0] += s * b
		y.Data[0] -= complex(real(s), -imag(s)) * a
		assert.InDelta(t, real(r), real(x.Data[0]), 1e-12)
		assert.InDelta(t, imag(r), imag(x.Data[0]), 1e-12)
		assert.InDelta(t, 0, real(y.Data[0]), 1e-12)
		assert.InDelta(t, 0, imag(y.Data[0]), 1e-12)

		x64 := vec[complex64](1i, 2)
		y64 := vec[complex64](1, 1i)
		require.NoError(t, RotComplex(x64, y64, 0, 1))
		assert.Equal(t, []complex64{1, 1i}, x64.Data)
		assert.Equal(t, []complex64{-1i, -2}, y64.Data)

		require.ErrorIs(t, RotComplex(x64, vec[complex64](1), 1, 0), ErrDimensionMismatch)
	})
}

func TestModifiedGivens(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		p, d1, d2, b1 := Rotmg(1.0, 1.0, 3.0, 4.0)
		assert.Positive(t, d1)
		assert.Positive(t, d2)

		x := vec[float64](3, 1)
		y := vec[float64](4, 0)
		require.NoError(t, Rotm(x, y, p))
		assert.InDelta(t, b1, x.Data[0], 1e-12)
		assert.InDelta(t, 0, y.Data[0], 1e-12)
		// The transformed first components still have the original norm.
		assert.InDelta(t, 25, d1*x.Data[0]*x.Data[0], 1e-9)

		id := ModifiedRotation[float32]{Flag: blas.Identity}
		x32 := vec[float32](1, 2)
		y32 := vec[float32](3, 4)
		require.NoError(t, Rotm(x32, y32, id))
		assert.Equal(t, []float32{1, 2}, x32.Data)
		assert.Equal(t, []float32{3, 4}, y32.Data)

		require.ErrorIs(t, Rotm(x32, y32, ModifiedRotation[float32]{Flag: 7}), ErrInvalidDescriptor)
		require.ErrorIs(t, Rotm(x32, vec[float32](1), id), ErrDimensionMismatch)
	})
}
