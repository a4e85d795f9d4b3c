package backend

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/floats"
)

func openGonum(t *testing.T) *Backend {
	t.Helper()
	b, err := Open("gonum")
	require.NoError(t, err)
	require.Equal(t, "gonum", b.Name)
	return b
}

func TestRegistry(t *testing.T) {
	names := Names()
	require.Contains(t, names, "gonum")
	// gonum is the fallback and always ranks last.
	assert.Equal(t, "gonum", names[len(names)-1])

	_, err := Open("no-such-backend")
	require.ErrorIs(t, err, ErrUnknownBackend)

	Register("zz-test", 1000, func() (*Backend, error) {
		return NewGonum("zz-test", nil), nil
	})
	names = Names()
	assert.Equal(t, "zz-test", names[len(names)-1])
}

func TestFor(t *testing.T) {
	b := openGonum(t)
	assert.NotNil(t, For[float32](b))
	assert.NotNil(t, For[complex64](b))
	assert.NotNil(t, ForReal[float64](b))

	k := For[complex128](b)
	x := []complex128{1 + 1i, 2}
	y := []complex128{1, 1i}
	assert.Equal(t, 1+3i, k.Dotu(2, x, 1, y, 1))
	assert.Equal(t, 1+1i, k.Dotc(2, x, 1, y, 1))
}

func TestAxpby(t *testing.T) {
	k := For[float64](openGonum(t))
	tests := []struct {
		name  string
		alpha float64
		beta  float64
		y     []float64
		want  []float64
	}{
		{"beta one", 2, 1, []float64{1, 1, 1}, []float64{3, 5, 7}},
		{"beta zero ignores y", 1, 0, []float64{9, 9, 9}, []float64{1, 2, 3}},
		{"general", 1, -1, []float64{1, 1, 1}, []float64{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k.Axpby(3, tt.alpha, []float64{1, 2, 3}, 1, tt.beta, tt.y, 1)
			assert.Equal(t, tt.want, tt.y)
		})
	}
}

func TestSetNegativeIncrement(t *testing.T) {
	k := For[float32](openGonum(t))
	x := []float32{1, 2, 3, 4, 5}
	k.Set(3, 7, x, -2)
	assert.Equal(t, []float32{7, 2, 7, 4, 7}, x)
}

func TestGesvReal(t *testing.T) {
	b := openGonum(t)
	// A = [[2 1] [1 3]], x = [1 2] => b = [4 7]
	a := []float64{2, 1, 1, 3}
	rhs := []float64{4, 7}

	info := For[float64](b).Gesv(blas.NoTrans, 2, 1, a, 2, rhs, 1, false)
	require.Zero(t, info)
	assert.InDeltaSlice(t, []float64{1, 2}, rhs, 1e-12)
	assert.Equal(t, []float64{2, 1, 1, 3}, a, "a must be left untouched")

	// A^T = [[1 2] [0 1]]^T solves with the transpose flag.
	at := []float32{1, 2, 0, 1}
	rhs32 := []float32{1, 4}
	info = For[float32](b).Gesv(blas.Trans, 2, 1, at, 2, rhs32, 1, false)
	require.Zero(t, info)
	assert.InDeltaSlice(t, []float32{1, 2}, rhs32, 1e-6)
}

func TestGesvSingular(t *testing.T) {
	b := openGonum(t)
	a := []float64{1, 2, 2, 4}
	rhs := []float64{1, 2}
	info := For[float64](b).Gesv(blas.NoTrans, 2, 1, a, 2, rhs, 1, false)
	assert.Equal(t, 2, info)
	assert.Equal(t, []float64{1, 2}, rhs, "b must not change on failure")

	ca := []complex128{1, 2, 2, 4}
	crhs := []complex128{1, 2}
	info = For[complex128](b).Gesv(blas.NoTrans, 2, 1, ca, 2, crhs, 1, false)
	assert.Equal(t, 2, info)
	assert.Equal(t, []complex128{1, 2}, crhs)
}

func TestGesvComplex(t *testing.T) {
	b := openGonum(t)
	// A = [[1+i 0] [1 2i]], x = [1 i] => A x = [1+i, 1-2]
	a := []complex128{1 + 1i, 0, 1, 2i}
	x := []complex128{1, 1i}
	rhs := []complex128{1 + 1i, -1}

	info := For[complex128](b).Gesv(blas.NoTrans, 2, 1, a, 2, rhs, 1, false)
	require.Zero(t, info)
	for i := range x {
		assert.InDelta(t, real(x[i]), real(rhs[i]), 1e-12)
		assert.InDelta(t, imag(x[i]), imag(rhs[i]), 1e-12)
	}

	// A^H x = [1-i + 1*i, -2i*i] = [1, 2]
	rhs = []complex128{1, 2}
	info = For[complex128](b).Gesv(blas.ConjTrans, 2, 1, a, 2, rhs, 1, false)
	require.Zero(t, info)
	for i := range x {
		assert.InDelta(t, real(x[i]), real(rhs[i]), 1e-12)
		assert.InDelta(t, imag(x[i]), imag(rhs[i]), 1e-12)
	}
}

func TestPotrf(t *testing.T) {
	k := ForReal[float64](openGonum(t))
	// [[4 2] [2 3]] = L L^T with L = [[2 0] [1 sqrt2]]
	a := []float64{4, 2, 2, 3}
	require.Zero(t, k.Potrf(blas.Lower, 2, a, 2))
	assert.InDelta(t, 2, a[0], 1e-12)
	assert.InDelta(t, 1, a[2], 1e-12)
	assert.InDelta(t, 1.4142135623730951, a[3], 1e-12)

	notPD := []float32{1, 2, 2, 1}
	assert.Equal(t, 2, ForReal[float32](openGonum(t)).Potrf(blas.Upper, 2, notPD, 2))
	assert.Equal(t, []float32{1, 2, 2, 1}, notPD)
}

func TestSyev(t *testing.T) {
	k := ForReal[float64](openGonum(t))
	a := []float64{2, 1, 1, 2}
	w := make([]float64, 2)
	require.Zero(t, k.Syev(blas.Upper, 2, a, 2, w))
	assert.InDeltaSlice(t, []float64{1, 3}, w, 1e-12)

	// Columns are eigenvectors: A v = w v.
	orig := []float64{2, 1, 1, 2}
	for j := 0; j < 2; j++ {
		v := []float64{a[j], a[2+j]}
		av := []float64{orig[0]*v[0] + orig[1]*v[1], orig[2]*v[0] + orig[3]*v[1]}
		floats.Scale(w[j], v)
		assert.InDeltaSlice(t, v, av, 1e-12)
	}
}

func TestRotg(t *testing.T) {
	k := ForReal[float64](openGonum(t))
	c, s, r, _ := k.Rotg(3, 4)
	assert.InDelta(t, 0.6, c, 1e-12)
	assert.InDelta(t, 0.8, s, 1e-12)
	assert.InDelta(t, 5, r, 1e-12)
}

func TestGesvIllConditioned(t *testing.T) {
	b := openGonum(t)
	// Rank two; the LU pivots are tiny but not necessarily exactly zero.
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	rhs := []float64{1, 0, 0}
	info := For[float64](b).Gesv(blas.NoTrans, 3, 1, a, 3, rhs, 1, false)
	assert.Positive(t, info)
	assert.LessOrEqual(t, info, 4)
	assert.Equal(t, []float64{1, 0, 0}, rhs)

	ca := []complex64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	crhs := []complex64{1, 0, 0}
	info = For[complex64](b).Gesv(blas.Trans, 3, 1, ca, 3, crhs, 1, false)
	assert.Positive(t, info)
	assert.Equal(t, []complex64{1, 0, 0}, crhs)
}

func TestGesvColumnMajorRHS(t *testing.T) {
	b := openGonum(t)
	// A = [[2 1] [1 3]], columns of B are A[1 2]^T and A[1 1]^T, stored with
	// a padded leading dimension.
	a := []float64{2, 1, 1, 3}
	rhs := []float64{4, 7, 99, 3, 4, 99}
	require.Zero(t, For[float64](b).Gesv(blas.NoTrans, 2, 2, a, 2, rhs, 3, true))
	assert.InDeltaSlice(t, []float64{1, 2, 99, 1, 1, 99}, rhs, 1e-12)

	crhs := []complex128{4i, 7i, 3, 4}
	ca := []complex128{2, 1, 1, 3}
	require.Zero(t, For[complex128](b).Gesv(blas.NoTrans, 2, 2, ca, 2, crhs, 2, true))
	want := []complex128{1i, 2i, 1, 1}
	for i := range want {
		assert.InDelta(t, real(want[i]), real(crhs[i]), 1e-12)
		assert.InDelta(t, imag(want[i]), imag(crhs[i]), 1e-12)
	}
}

func TestCrotg(t *testing.T) {
	k := b128(t)
	tests := []struct {
		name string
		a, b complex128
	}{
		{"real", 3, 4},
		{"complex", 1 + 1i, 2 - 1i},
		{"zero b", -2i, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s, r := k.Crotg(tt.a, tt.b)
			assert.InDelta(t, 1, c*c+real(s*cmplx.Conj(s)), 1e-12)
			top := complex(c, 0)*tt.a + s*tt.b
			bottom := -cmplx.Conj(s)*tt.a + complex(c, 0)*tt.b
			assert.InDelta(t, 0, cmplx.Abs(top-r), 1e-12)
			assert.InDelta(t, 0, cmplx.Abs(bottom), 1e-12)
		})
	}

	c, s, r := k.Crotg(0, 1+2i)
	assert.Zero(t, c)
	assert.Equal(t, complex128(1), s)
	assert.Equal(t, 1+2i, r)
}

func TestCsrot(t *testing.T) {
	k := ForComplex[complex64](openGonum(t))
	x := []complex64{1i, 9, 2}
	y := []complex64{1, 1i}
	// x is walked backwards: pairs are (x[2], y[0]) and (x[0], y[1]).
	k.Csrot(2, x, -2, y, 1, 0, 1)
	assert.Equal(t, []complex64{1i, 9, 1}, x)
	assert.Equal(t, []complex64{-2, -1i}, y)
}

func TestRotmg(t *testing.T) {
	for _, name := range []string{"float32", "float64"} {
		t.Run(name, func(t *testing.T) {
			b := openGonum(t)
			if name == "float32" {
				k := ForReal[float32](b)
				flag, h, _, _, rb1 := k.Rotmg(1, 1, 3, 4)
				x, y := []float32{3}, []float32{4}
				k.Rotm(1, x, 1, y, 1, flag, h)
				assert.InDelta(t, float64(rb1), float64(x[0]), 1e-5)
				assert.InDelta(t, 0, float64(y[0]), 1e-5)
				return
			}
			k := ForReal[float64](b)
			flag, h, _, _, rb1 := k.Rotmg(2, 0.5, 1, -3)
			x, y := []float64{1}, []float64{-3}
			k.Rotm(1, x, 1, y, 1, flag, h)
			assert.InDelta(t, rb1, x[0], 1e-12)
			assert.InDelta(t, 0, y[0], 1e-12)
		})
	}
}

func TestMixedPrecisionDots(t *testing.T) {
	k := openGonum(t).Float32
	x := []float32{1, 2, 3}
	y := []float32{4, 5, 6}
	assert.Equal(t, 32.0, k.Dsdot(3, x, 1, y, 1))
	assert.Equal(t, float32(33), k.Sdsdot(3, 1, x, 1, y, 1))
}

func TestRscal(t *testing.T) {
	x := []complex128{1 + 1i, 2i}
	For[complex128](openGonum(t)).Rscal(2, 2, x, 1)
	assert.Equal(t, []complex128{2 + 2i, 4i}, x)

	f := []float32{1, -2}
	For[float32](openGonum(t)).Rscal(2, -0.5, f, 1)
	assert.Equal(t, []float32{-0.5, 1}, f)
}

func b128(t *testing.T) ComplexKernels[complex128] {
	return ForComplex[complex128](openGonum(t))
}
