// Package backend defines the table of BLAS/LAPACK entry points the linalg facade
// delegates to, and the registry of implementations compiled into the binary.
//
// Every entry point follows BLAS conventions: matrices are row-major with an explicit
// leading dimension, vectors carry an increment, and LAPACK-style routines report
// their outcome as an info code (0 success, < 0 illegal argument, > 0 numerical
// failure). Implementations may panic on arguments the facade would never pass;
// callers must validate first.
package backend

import (
	"gonum.org/v1/gonum/blas"

	"github.com/tsawler/go-accelerate/tensor"
)

// Kernels is the per-scalar-type entry point table.
// Asum, Nrm2, Iamax, Scal and Rscal require a positive increment.
//
// The Hermitian routines (Hemv, Her, Her2, Hemm, Herk, Her2k) are the symmetric
// ones for real T, and Gerc is Ger.
type Kernels[T tensor.Scalar] interface {
	Set(n int, alpha T, x []T, incX int)
	Copy(n int, x []T, incX int, y []T, incY int)
	Swap(n int, x []T, incX int, y []T, incY int)
	Scal(n int, alpha T, x []T, incX int)
	Rscal(n int, alpha float64, x []T, incX int)
	Axpy(n int, alpha T, x []T, incX int, y []T, incY int)
	Axpby(n int, alpha T, x []T, incX int, beta T, y []T, incY int)
	Dotu(n int, x []T, incX int, y []T, incY int) T
	Dotc(n int, x []T, incX int, y []T, incY int) T
	Asum(n int, x []T, incX int) float64
	Nrm2(n int, x []T, incX int) float64
	Iamax(n int, x []T, incX int) int

	Gemv(tA blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
	Ger(m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int)
	Gerc(m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int)
	Hemv(ul blas.Uplo, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
	Her(ul blas.Uplo, n int, alpha float64, x []T, incX int, a []T, lda int)
	Her2(ul blas.Uplo, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int)
	Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []T, lda int, x []T, incX int)
	Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []T, lda int, x []T, incX int)

	Gemm(tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Symm(s blas.Side, ul blas.Uplo, m, n int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Syrk(ul blas.Uplo, t blas.Transpose, n, k int, alpha T, a []T, lda int, beta T, c []T, ldc int)
	Syr2k(ul blas.Uplo, t blas.Transpose, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Herk(ul blas.Uplo, t blas.Transpose, n, k int, alpha float64, a []T, lda int, beta float64, c []T, ldc int)
	Her2k(ul blas.Uplo, t blas.Transpose, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta float64, c []T, ldc int)
	Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha T, a []T, lda int, b []T, ldb int)
	Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha T, a []T, lda int, b []T, ldb int)

	// Gesv solves op(A) X = B for square A. a is left untouched. b holds the
	// n x nrhs matrix B row-major, or column-major when colB is set, and is
	// overwritten with X only when info is 0. Following LAPACK's gesvx, info is
	// n+1 when A is singular to working precision without an exact zero pivot.
	Gesv(tA blas.Transpose, n, nrhs int, a []T, lda int, b []T, ldb int, colB bool) (info int)
}

// RealKernels adds the routines that only exist for real scalar types.
type RealKernels[T tensor.Real] interface {
	Kernels[T]

	Rotg(a, b T) (c, s, r, z T)
	Rot(n int, x []T, incX int, y []T, incY int, c, s T)
	// Rotmg constructs a modified Givens rotation. h holds h11, h21, h12, h22.
	Rotmg(d1, d2, b1, b2 T) (flag blas.Flag, h [4]T, rd1, rd2, rb1 T)
	Rotm(n int, x []T, incX int, y []T, incY int, flag blas.Flag, h [4]T)

	// Potrf factors the symmetric positive definite matrix in a in place.
	Potrf(ul blas.Uplo, n int, a []T, lda int) (info int)

	// Syev computes eigenvalues into w (ascending) and overwrites a with the
	// orthonormal eigenvectors stored as columns.
	Syev(ul blas.Uplo, n int, a []T, lda int, w []T) (info int)
}

// SingleKernels adds the mixed precision dot products of single precision BLAS.
type SingleKernels interface {
	RealKernels[float32]

	// Dsdot accumulates in double precision.
	Dsdot(n int, x []float32, incX int, y []float32, incY int) float64
	// Sdsdot returns alpha + x.y accumulated in double precision.
	Sdsdot(n int, alpha float32, x []float32, incX int, y []float32, incY int) float32
}

// ComplexKernels adds the complex Givens routines.
type ComplexKernels[T tensor.Complex] interface {
	Kernels[T]

	// Crotg constructs the rotation
	//
	//	[   c        s] [a]   [r]
	//	[-conj(s)    c] [b] = [0]
	Crotg(a, b T) (c float64, s, r T)
	// Csrot applies a rotation with real cosine and sine.
	Csrot(n int, x []T, incX int, y []T, incY int, c, s float64)
}

// Backend bundles one entry point table per scalar type.
type Backend struct {
	Name       string
	Float32    SingleKernels
	Float64    RealKernels[float64]
	Complex64  ComplexKernels[complex64]
	Complex128 ComplexKernels[complex128]
}

// For returns the table for T.
func For[T tensor.Scalar](b *Backend) Kernels[T] {
	switch tensor.KindOf[T]() {
	case tensor.Float32:
		return any(b.Float32).(Kernels[T])
	case tensor.Float64:
		return any(b.Float64).(Kernels[T])
	case tensor.Complex64:
		return any(b.Complex64).(Kernels[T])
	default:
		return any(b.Complex128).(Kernels[T])
	}
}

// ForReal returns the real-only table for T.
func ForReal[T tensor.Real](b *Backend) RealKernels[T] {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return any(b.Float32).(RealKernels[T])
	}
	return any(b.Float64).(RealKernels[T])
}

// ForComplex returns the complex-only table for T.
func ForComplex[T tensor.Complex](b *Backend) ComplexKernels[T] {
	var zero T
	if _, ok := any(zero).(complex64); ok {
		return any(b.Complex64).(ComplexKernels[T])
	}
	return any(b.Complex128).(ComplexKernels[T])
}
