//go:build cgo

package cgo

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"

	"github.com/tsawler/go-accelerate/internal/backend"
)

func open(t *testing.T, name string) *backend.Backend {
	t.Helper()
	b, err := backend.Open(name)
	require.NoError(t, err)
	return b
}

func randomSlice(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

func TestAccelerateRegistered(t *testing.T) {
	names := backend.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "accelerate", names[0])
}

func TestGemmMatchesGonum(t *testing.T) {
	acc, ref := open(t, "accelerate"), open(t, "gonum")
	rng := rand.New(rand.NewPCG(1, 2))

	const m, n, k = 5, 4, 3
	a := randomSlice(rng, m*k)
	bm := randomSlice(rng, k*n)
	for _, tA := range []blas.Transpose{blas.NoTrans, blas.Trans} {
		lda := k
		if tA == blas.Trans {
			lda = m
		}
		got := randomSlice(rng, m*n)
		want := append([]float64(nil), got...)

		backend.For[float64](acc).Gemm(tA, blas.NoTrans, m, n, k, 1.5, a, lda, bm, n, 0.5, got, n)
		backend.For[float64](ref).Gemm(tA, blas.NoTrans, m, n, k, 1.5, a, lda, bm, n, 0.5, want, n)
		assert.InDeltaSlice(t, want, got, 1e-12)
	}
}

func TestComplexDotMatchesGonum(t *testing.T) {
	acc, ref := open(t, "accelerate"), open(t, "gonum")
	x := []complex64{1 + 2i, 3 - 1i, -2i}
	y := []complex64{2, 1i, 1 + 1i}

	for _, b := range []*backend.Backend{acc, ref} {
		k := backend.For[complex64](b)
		assert.Equal(t, complex64(5+5i), k.Dotu(3, x, 1, y, 1), b.Name)
		assert.Equal(t, complex64(-1+1i), k.Dotc(3, x, 1, y, 1), b.Name)
	}
}

func TestGesv(t *testing.T) {
	k := backend.For[complex128](open(t, "accelerate"))
	a := []complex128{1 + 1i, 0, 1, 2i}
	rhs := []complex128{1 + 1i, -1}
	require.Zero(t, k.Gesv(blas.NoTrans, 2, 1, a, 2, rhs, 1, false))
	assert.InDelta(t, 1, real(rhs[0]), 1e-12)
	assert.InDelta(t, 1, imag(rhs[1]), 1e-12)
	assert.Equal(t, []complex128{1 + 1i, 0, 1, 2i}, a)

	singular := []float64{1, 2, 2, 4}
	b := []float64{1, 2}
	assert.Equal(t, 2, backend.For[float64](open(t, "accelerate")).Gesv(blas.NoTrans, 2, 1, singular, 2, b, 1, false))
	assert.Equal(t, []float64{1, 2}, b)
}

func TestLapackMatchesGonum(t *testing.T) {
	acc, ref := open(t, "accelerate"), open(t, "gonum")
	spd := []float64{4, 2, 0.4, 2, 5, 1, 0.4, 1, 3}

	for _, ul := range []blas.Uplo{blas.Upper, blas.Lower} {
		got := append([]float64(nil), spd...)
		want := append([]float64(nil), spd...)
		require.Zero(t, backend.ForReal[float64](acc).Potrf(ul, 3, got, 3))
		require.Zero(t, backend.ForReal[float64](ref).Potrf(ul, 3, want, 3))
		assert.InDeltaSlice(t, want, got, 1e-12)

		wGot, wWant := make([]float64, 3), make([]float64, 3)
		got = append(got[:0], spd...)
		want = append(want[:0], spd...)
		require.Zero(t, backend.ForReal[float64](acc).Syev(ul, 3, got, 3, wGot))
		require.Zero(t, backend.ForReal[float64](ref).Syev(ul, 3, want, 3, wWant))
		assert.InDeltaSlice(t, wWant, wGot, 1e-10)
	}
}

func TestLevel3MatchesGonum(t *testing.T) {
	acc, ref := backend.For[float64](open(t, "accelerate")), backend.For[float64](open(t, "gonum"))
	rng := rand.New(rand.NewPCG(5, 6))

	const m, n = 4, 3
	a := randomSlice(rng, m*m)
	for _, ul := range []blas.Uplo{blas.Upper, blas.Lower} {
		b := randomSlice(rng, m*n)
		got, want := append([]float64(nil), b...), append([]float64(nil), b...)
		acc.Trmm(blas.Left, ul, blas.Trans, blas.NonUnit, m, n, 2, a, m, got, n)
		ref.Trmm(blas.Left, ul, blas.Trans, blas.NonUnit, m, n, 2, a, m, want, n)
		assert.InDeltaSlice(t, want, got, 1e-12)

		c := randomSlice(rng, m*m)
		got, want = append([]float64(nil), c...), append([]float64(nil), c...)
		acc.Syrk(ul, blas.NoTrans, m, n, 1.5, b, n, 0.5, got, m)
		ref.Syrk(ul, blas.NoTrans, m, n, 1.5, b, n, 0.5, want, m)
		assert.InDeltaSlice(t, want, got, 1e-12)

		cs := randomSlice(rng, m*n)
		got, want = append([]float64(nil), cs...), append([]float64(nil), cs...)
		acc.Symm(blas.Left, ul, m, n, 1, a, m, b, n, 2, got, n)
		ref.Symm(blas.Left, ul, m, n, 1, a, m, b, n, 2, want, n)
		assert.InDeltaSlice(t, want, got, 1e-12)
	}
}

func TestRealExtrasMatchGonum(t *testing.T) {
	acc, ref := open(t, "accelerate"), open(t, "gonum")

	x := []float32{1, 0x1p-15, 3}
	assert.Equal(t, ref.Float32.Dsdot(3, x, 1, x, 1), acc.Float32.Dsdot(3, x, 1, x, 1))
	assert.Equal(t, ref.Float32.Sdsdot(2, 1, x, 2, x, 2), acc.Float32.Sdsdot(2, 1, x, 2, x, 2))

	flag, h, d1, d2, b1 := acc.Float64.Rotmg(1, 1, 3, 4)
	rflag, rh, rd1, rd2, rb1 := ref.Float64.Rotmg(1, 1, 3, 4)
	assert.Equal(t, rflag, flag)
	assert.InDeltaSlice(t, rh[:], h[:], 1e-12)
	assert.InDeltaSlice(t, []float64{rd1, rd2, rb1}, []float64{d1, d2, b1}, 1e-12)

	u, v := []float64{3, 1}, []float64{4, 2}
	acc.Float64.Rotm(2, u, 1, v, 1, flag, h)
	assert.InDelta(t, b1, u[0], 1e-12)
	assert.InDelta(t, 0, v[0], 1e-12)
}

func TestGesvColumnMajorAndIllConditioned(t *testing.T) {
	k := backend.For[float64](open(t, "accelerate"))

	nine := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{1, 0, 0}
	info := k.Gesv(blas.NoTrans, 3, 1, nine, 3, b, 1, false)
	assert.Contains(t, []int{3, 4}, info)
	assert.Equal(t, []float64{1, 0, 0}, b)

	// Two right-hand sides stored by column with ld 3.
	a := []float64{2, 1, 1, 3}
	rhs := []float64{4, 7, 99, 3, 4, 99}
	require.Zero(t, k.Gesv(blas.NoTrans, 2, 2, a, 2, rhs, 3, true))
	assert.InDeltaSlice(t, []float64{1, 2, 99, 1, 1, 99}, rhs, 1e-12)
}
