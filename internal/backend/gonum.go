package backend

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

func init() {
	Register("gonum", 100, func() (*Backend, error) {
		return NewGonum("gonum", gonum.Implementation{}), nil
	})
}

// blasImpl is satisfied by gonum.Implementation and by netlib.Implementation.
type blasImpl interface {
	blas.Float32
	blas.Float64
	blas.Complex64
	blas.Complex128
}

// lapack64 is the part of gonum's LAPACK the adapters call.
type lapack64 interface {
	Dlange(norm lapack.MatrixNorm, m, n int, a []float64, lda int, work []float64) float64
	Dgecon(norm lapack.MatrixNorm, n int, a []float64, lda int, anorm float64, work []float64, iwork []int) float64
	Dgetrf(m, n int, a []float64, lda int, ipiv []int) bool
	Dgetrs(trans blas.Transpose, n, nrhs int, a []float64, lda int, ipiv []int, b []float64, ldb int)
	Dpotrf(ul blas.Uplo, n int, a []float64, lda int) bool
	Dsyev(jobz lapack.EVJob, uplo blas.Uplo, n int, a []float64, lda int, w, work []float64, lwork int) bool
}

// NewGonum builds a backend from any implementation of gonum's BLAS interfaces.
// LAPACK routines run on gonum's pure Go LAPACK, which calls through blas64.
func NewGonum(name string, impl blasImpl) *Backend {
	l := lapackgonum.Implementation{}
	return &Backend{
		Name:       name,
		Float32:    gonumFloat32{b: impl, l: l},
		Float64:    gonumFloat64{b: impl, l: l},
		Complex64:  gonumComplex64{b: impl, l: l},
		Complex128: gonumComplex128{b: impl, l: l},
	}
}

type gonumFloat32 struct {
	b blas.Float32
	l lapack64
}

func (k gonumFloat32) Set(n int, alpha float32, x []float32, incX int) {
	fill(n, alpha, x, incX)
}

func (k gonumFloat32) Copy(n int, x []float32, incX int, y []float32, incY int) {
	k.b.Scopy(n, x, incX, y, incY)
}

func (k gonumFloat32) Swap(n int, x []float32, incX int, y []float32, incY int) {
	k.b.Sswap(n, x, incX, y, incY)
}

func (k gonumFloat32) Scal(n int, alpha float32, x []float32, incX int) {
	k.b.Sscal(n, alpha, x, incX)
}

func (k gonumFloat32) Rscal(n int, alpha float64, x []float32, incX int) {
	k.b.Sscal(n, float32(alpha), x, incX)
}

func (k gonumFloat32) Axpy(n int, alpha float32, x []float32, incX int, y []float32, incY int) {
	k.b.Saxpy(n, alpha, x, incX, y, incY)
}

func (k gonumFloat32) Axpby(n int, alpha float32, x []float32, incX int, beta float32, y []float32, incY int) {
	switch beta {
	case 1:
	case 0:
		fill(n, 0, y, incY)
	default:
		k.b.Sscal(n, beta, y, absInc(incY))
	}
	k.b.Saxpy(n, alpha, x, incX, y, incY)
}

func (k gonumFloat32) Dotu(n int, x []float32, incX int, y []float32, incY int) float32 {
	return k.b.Sdot(n, x, incX, y, incY)
}

func (k gonumFloat32) Dotc(n int, x []float32, incX int, y []float32, incY int) float32 {
	return k.b.Sdot(n, x, incX, y, incY)
}

func (k gonumFloat32) Asum(n int, x []float32, incX int) float64 {
	return float64(k.b.Sasum(n, x, incX))
}

func (k gonumFloat32) Nrm2(n int, x []float32, incX int) float64 {
	return float64(k.b.Snrm2(n, x, incX))
}

func (k gonumFloat32) Iamax(n int, x []float32, incX int) int {
	return k.b.Isamax(n, x, incX)
}

func (k gonumFloat32) Gemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	k.b.Sgemv(realTrans(tA), m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (k gonumFloat32) Ger(m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
	k.b.Sger(m, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumFloat32) Gerc(m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
	k.b.Sger(m, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumFloat32) Hemv(ul blas.Uplo, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	k.b.Ssymv(ul, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (k gonumFloat32) Her(ul blas.Uplo, n int, alpha float64, x []float32, incX int, a []float32, lda int) {
	k.b.Ssyr(ul, n, float32(alpha), x, incX, a, lda)
}

func (k gonumFloat32) Her2(ul blas.Uplo, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
	k.b.Ssyr2(ul, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumFloat32) Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float32, lda int, x []float32, incX int) {
	k.b.Strmv(ul, realTrans(tA), d, n, a, lda, x, incX)
}

func (k gonumFloat32) Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float32, lda int, x []float32, incX int) {
	k.b.Strsv(ul, realTrans(tA), d, n, a, lda, x, incX)
}

func (k gonumFloat32) Gemm(tA, tB blas.Transpose, m, n, kk int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	k.b.Sgemm(realTrans(tA), realTrans(tB), m, n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat32) Symm(s blas.Side, ul blas.Uplo, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	k.b.Ssymm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat32) Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	k.b.Ssymm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat32) Syrk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float32, a []float32, lda int, beta float32, c []float32, ldc int) {
	k.b.Ssyrk(ul, realTrans(t), n, kk, alpha, a, lda, beta, c, ldc)
}

func (k gonumFloat32) Syr2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	k.b.Ssyr2k(ul, realTrans(t), n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat32) Herk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float32, lda int, beta float64, c []float32, ldc int) {
	k.b.Ssyrk(ul, realTrans(t), n, kk, float32(alpha), a, lda, float32(beta), c, ldc)
}

func (k gonumFloat32) Her2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float64, c []float32, ldc int) {
	k.b.Ssyr2k(ul, realTrans(t), n, kk, alpha, a, lda, b, ldb, float32(beta), c, ldc)
}

func (k gonumFloat32) Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int) {
	k.b.Strmm(s, ul, realTrans(tA), d, m, n, alpha, a, lda, b, ldb)
}

func (k gonumFloat32) Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int) {
	k.b.Strsm(s, ul, realTrans(tA), d, m, n, alpha, a, lda, b, ldb)
}

func (k gonumFloat32) Rotg(a, b float32) (c, s, r, z float32) {
	return k.b.Srotg(a, b)
}

func (k gonumFloat32) Rot(n int, x []float32, incX int, y []float32, incY int, c, s float32) {
	k.b.Srot(n, x, incX, y, incY, c, s)
}

func (k gonumFloat32) Rotmg(d1, d2, b1, b2 float32) (blas.Flag, [4]float32, float32, float32, float32) {
	p, rd1, rd2, rb1 := k.b.Srotmg(d1, d2, b1, b2)
	return p.Flag, p.H, rd1, rd2, rb1
}

func (k gonumFloat32) Rotm(n int, x []float32, incX int, y []float32, incY int, flag blas.Flag, h [4]float32) {
	k.b.Srotm(n, x, incX, y, incY, blas.SrotmParams{Flag: flag, H: h})
}

func (k gonumFloat32) Dsdot(n int, x []float32, incX int, y []float32, incY int) float64 {
	return k.b.Dsdot(n, x, incX, y, incY)
}

func (k gonumFloat32) Sdsdot(n int, alpha float32, x []float32, incX int, y []float32, incY int) float32 {
	return k.b.Sdsdot(n, alpha, x, incX, y, incY)
}

// gonum's LAPACK is float64 only; single precision widens into scratch.

func (k gonumFloat32) Gesv(tA blas.Transpose, n, nrhs int, a []float32, lda int, b []float32, ldb int, colB bool) int {
	lu := realOp(tA, n, a, lda)
	x := gatherRHS(n, nrhs, b, ldb, colB, func(v float32) float64 { return float64(v) })
	info := getrs(k.l, n, nrhs, lu, x, nrhs, eps32)
	if info == 0 {
		scatterRHS(n, nrhs, x, b, ldb, colB, func(v float64) float32 { return float32(v) })
	}
	return info
}

func (k gonumFloat32) Potrf(ul blas.Uplo, n int, a []float32, lda int) int {
	w := widen(n, n, a, lda)
	if !k.l.Dpotrf(ul, n, w, n) {
		return firstNonPositive(n, w, n)
	}
	narrow(n, n, w, a, lda)
	return 0
}

func (k gonumFloat32) Syev(ul blas.Uplo, n int, a []float32, lda int, w []float32) int {
	s := widen(n, n, a, lda)
	vals := make([]float64, n)
	if info := syev(k.l, ul, n, s, n, vals); info != 0 {
		return info
	}
	narrow(n, n, s, a, lda)
	for i, v := range vals {
		w[i] = float32(v)
	}
	return 0
}

type gonumFloat64 struct {
	b blas.Float64
	l lapack64
}

func (k gonumFloat64) Set(n int, alpha float64, x []float64, incX int) {
	fill(n, alpha, x, incX)
}

func (k gonumFloat64) Copy(n int, x []float64, incX int, y []float64, incY int) {
	k.b.Dcopy(n, x, incX, y, incY)
}

func (k gonumFloat64) Swap(n int, x []float64, incX int, y []float64, incY int) {
	k.b.Dswap(n, x, incX, y, incY)
}

func (k gonumFloat64) Scal(n int, alpha float64, x []float64, incX int) {
	k.b.Dscal(n, alpha, x, incX)
}

func (k gonumFloat64) Rscal(n int, alpha float64, x []float64, incX int) {
	k.b.Dscal(n, alpha, x, incX)
}

func (k gonumFloat64) Axpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	k.b.Daxpy(n, alpha, x, incX, y, incY)
}

func (k gonumFloat64) Axpby(n int, alpha float64, x []float64, incX int, beta float64, y []float64, incY int) {
	switch beta {
	case 1:
	case 0:
		fill(n, 0, y, incY)
	default:
		k.b.Dscal(n, beta, y, absInc(incY))
	}
	k.b.Daxpy(n, alpha, x, incX, y, incY)
}

func (k gonumFloat64) Dotu(n int, x []float64, incX int, y []float64, incY int) float64 {
	return k.b.Ddot(n, x, incX, y, incY)
}

func (k gonumFloat64) Dotc(n int, x []float64, incX int, y []float64, incY int) float64 {
	return k.b.Ddot(n, x, incX, y, incY)
}

func (k gonumFloat64) Asum(n int, x []float64, incX int) float64 {
	return k.b.Dasum(n, x, incX)
}

func (k gonumFloat64) Nrm2(n int, x []float64, incX int) float64 {
	return k.b.Dnrm2(n, x, incX)
}

func (k gonumFloat64) Iamax(n int, x []float64, incX int) int {
	return k.b.Idamax(n, x, incX)
}

func (k gonumFloat64) Gemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	k.b.Dgemv(realTrans(tA), m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (k gonumFloat64) Ger(m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	k.b.Dger(m, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumFloat64) Gerc(m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	k.b.Dger(m, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumFloat64) Hemv(ul blas.Uplo, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	k.b.Dsymv(ul, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (k gonumFloat64) Her(ul blas.Uplo, n int, alpha float64, x []float64, incX int, a []float64, lda int) {
	k.b.Dsyr(ul, n, alpha, x, incX, a, lda)
}

func (k gonumFloat64) Her2(ul blas.Uplo, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	k.b.Dsyr2(ul, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumFloat64) Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int) {
	k.b.Dtrmv(ul, realTrans(tA), d, n, a, lda, x, incX)
}

func (k gonumFloat64) Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int) {
	k.b.Dtrsv(ul, realTrans(tA), d, n, a, lda, x, incX)
}

func (k gonumFloat64) Gemm(tA, tB blas.Transpose, m, n, kk int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	k.b.Dgemm(realTrans(tA), realTrans(tB), m, n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat64) Symm(s blas.Side, ul blas.Uplo, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	k.b.Dsymm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat64) Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	k.b.Dsymm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat64) Syrk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float64, lda int, beta float64, c []float64, ldc int) {
	k.b.Dsyrk(ul, realTrans(t), n, kk, alpha, a, lda, beta, c, ldc)
}

func (k gonumFloat64) Syr2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	k.b.Dsyr2k(ul, realTrans(t), n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat64) Herk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float64, lda int, beta float64, c []float64, ldc int) {
	k.b.Dsyrk(ul, realTrans(t), n, kk, alpha, a, lda, beta, c, ldc)
}

func (k gonumFloat64) Her2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	k.b.Dsyr2k(ul, realTrans(t), n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumFloat64) Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) {
	k.b.Dtrmm(s, ul, realTrans(tA), d, m, n, alpha, a, lda, b, ldb)
}

func (k gonumFloat64) Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) {
	k.b.Dtrsm(s, ul, realTrans(tA), d, m, n, alpha, a, lda, b, ldb)
}

func (k gonumFloat64) Rotg(a, b float64) (c, s, r, z float64) {
	return k.b.Drotg(a, b)
}

func (k gonumFloat64) Rot(n int, x []float64, incX int, y []float64, incY int, c, s float64) {
	k.b.Drot(n, x, incX, y, incY, c, s)
}

func (k gonumFloat64) Rotmg(d1, d2, b1, b2 float64) (blas.Flag, [4]float64, float64, float64, float64) {
	p, rd1, rd2, rb1 := k.b.Drotmg(d1, d2, b1, b2)
	return p.Flag, p.H, rd1, rd2, rb1
}

func (k gonumFloat64) Rotm(n int, x []float64, incX int, y []float64, incY int, flag blas.Flag, h [4]float64) {
	k.b.Drotm(n, x, incX, y, incY, blas.DrotmParams{Flag: flag, H: h})
}

func (k gonumFloat64) Gesv(tA blas.Transpose, n, nrhs int, a []float64, lda int, b []float64, ldb int, colB bool) int {
	lu := realOp(tA, n, a, lda)
	if !colB {
		return getrs(k.l, n, nrhs, lu, b, ldb, eps64)
	}
	same := func(v float64) float64 { return v }
	x := gatherRHS(n, nrhs, b, ldb, true, same)
	info := getrs(k.l, n, nrhs, lu, x, nrhs, eps64)
	if info == 0 {
		scatterRHS(n, nrhs, x, b, ldb, true, same)
	}
	return info
}

func (k gonumFloat64) Potrf(ul blas.Uplo, n int, a []float64, lda int) int {
	if !k.l.Dpotrf(ul, n, a, lda) {
		return firstNonPositive(n, a, lda)
	}
	return 0
}

func (k gonumFloat64) Syev(ul blas.Uplo, n int, a []float64, lda int, w []float64) int {
	return syev(k.l, ul, n, a, lda, w)
}

type gonumComplex64 struct {
	b blas.Complex64
	l lapack64
}

func (k gonumComplex64) Set(n int, alpha complex64, x []complex64, incX int) {
	fill(n, alpha, x, incX)
}

func (k gonumComplex64) Copy(n int, x []complex64, incX int, y []complex64, incY int) {
	k.b.Ccopy(n, x, incX, y, incY)
}

func (k gonumComplex64) Swap(n int, x []complex64, incX int, y []complex64, incY int) {
	k.b.Cswap(n, x, incX, y, incY)
}

func (k gonumComplex64) Scal(n int, alpha complex64, x []complex64, incX int) {
	k.b.Cscal(n, alpha, x, incX)
}

func (k gonumComplex64) Rscal(n int, alpha float64, x []complex64, incX int) {
	k.b.Csscal(n, float32(alpha), x, incX)
}

func (k gonumComplex64) Axpy(n int, alpha complex64, x []complex64, incX int, y []complex64, incY int) {
	k.b.Caxpy(n, alpha, x, incX, y, incY)
}

func (k gonumComplex64) Axpby(n int, alpha complex64, x []complex64, incX int, beta complex64, y []complex64, incY int) {
	switch beta {
	case 1:
	case 0:
		fill(n, 0, y, incY)
	default:
		k.b.Cscal(n, beta, y, absInc(incY))
	}
	k.b.Caxpy(n, alpha, x, incX, y, incY)
}

func (k gonumComplex64) Dotu(n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	return k.b.Cdotu(n, x, incX, y, incY)
}

func (k gonumComplex64) Dotc(n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	return k.b.Cdotc(n, x, incX, y, incY)
}

func (k gonumComplex64) Asum(n int, x []complex64, incX int) float64 {
	return float64(k.b.Scasum(n, x, incX))
}

func (k gonumComplex64) Nrm2(n int, x []complex64, incX int) float64 {
	return float64(k.b.Scnrm2(n, x, incX))
}

func (k gonumComplex64) Iamax(n int, x []complex64, incX int) int {
	return k.b.Icamax(n, x, incX)
}

func (k gonumComplex64) Gemv(tA blas.Transpose, m, n int, alpha complex64, a []complex64, lda int, x []complex64, incX int, beta complex64, y []complex64, incY int) {
	k.b.Cgemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (k gonumComplex64) Ger(m, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) {
	k.b.Cgeru(m, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumComplex64) Gerc(m, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) {
	k.b.Cgerc(m, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumComplex64) Hemv(ul blas.Uplo, n int, alpha complex64, a []complex64, lda int, x []complex64, incX int, beta complex64, y []complex64, incY int) {
	k.b.Chemv(ul, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (k gonumComplex64) Her(ul blas.Uplo, n int, alpha float64, x []complex64, incX int, a []complex64, lda int) {
	k.b.Cher(ul, n, float32(alpha), x, incX, a, lda)
}

func (k gonumComplex64) Her2(ul blas.Uplo, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) {
	k.b.Cher2(ul, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumComplex64) Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex64, lda int, x []complex64, incX int) {
	k.b.Ctrmv(ul, tA, d, n, a, lda, x, incX)
}

func (k gonumComplex64) Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex64, lda int, x []complex64, incX int) {
	k.b.Ctrsv(ul, tA, d, n, a, lda, x, incX)
}

func (k gonumComplex64) Gemm(tA, tB blas.Transpose, m, n, kk int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	k.b.Cgemm(tA, tB, m, n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumComplex64) Symm(s blas.Side, ul blas.Uplo, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	k.b.Csymm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumComplex64) Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	k.b.Chemm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumComplex64) Syrk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex64, a []complex64, lda int, beta complex64, c []complex64, ldc int) {
	k.b.Csyrk(ul, t, n, kk, alpha, a, lda, beta, c, ldc)
}

func (k gonumComplex64) Syr2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	k.b.Csyr2k(ul, t, n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumComplex64) Herk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []complex64, lda int, beta float64, c []complex64, ldc int) {
	k.b.Cherk(ul, t, n, kk, float32(alpha), a, lda, float32(beta), c, ldc)
}

func (k gonumComplex64) Her2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta float64, c []complex64, ldc int) {
	k.b.Cher2k(ul, t, n, kk, alpha, a, lda, b, ldb, float32(beta), c, ldc)
}

func (k gonumComplex64) Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int) {
	k.b.Ctrmm(s, ul, tA, d, m, n, alpha, a, lda, b, ldb)
}

// gonum has no complex rotg or csrot; both are computed here.

func (k gonumComplex64) Crotg(a, b complex64) (float64, complex64, complex64) {
	c, s, r := crotg(complex128(a), complex128(b))
	return c, complex64(s), complex64(r)
}

func (k gonumComplex64) Csrot(n int, x []complex64, incX int, y []complex64, incY int, c, s float64) {
	csrot(n, x, incX, y, incY, c, s)
}

func (k gonumComplex64) Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int) {
	k.b.Ctrsm(s, ul, tA, d, m, n, alpha, a, lda, b, ldb)
}

func (k gonumComplex64) Gesv(tA blas.Transpose, n, nrhs int, a []complex64, lda int, b []complex64, ldb int, colB bool) int {
	op := complexOp(tA, n, func(i int) complex128 { return complex128(a[i]) }, lda)
	x := gatherRHS(n, nrhs, b, ldb, colB, func(v complex64) complex128 { return complex128(v) })
	info := gesvEmbedded(k.l, n, nrhs, op, x, eps32)
	if info == 0 {
		scatterRHS(n, nrhs, x, b, ldb, colB, func(v complex128) complex64 { return complex64(v) })
	}
	return info
}

type gonumComplex128 struct {
	b blas.Complex128
	l lapack64
}

func (k gonumComplex128) Set(n int, alpha complex128, x []complex128, incX int) {
	fill(n, alpha, x, incX)
}

func (k gonumComplex128) Copy(n int, x []complex128, incX int, y []complex128, incY int) {
	k.b.Zcopy(n, x, incX, y, incY)
}

func (k gonumComplex128) Swap(n int, x []complex128, incX int, y []complex128, incY int) {
	k.b.Zswap(n, x, incX, y, incY)
}

func (k gonumComplex128) Scal(n int, alpha complex128, x []complex128, incX int) {
	k.b.Zscal(n, alpha, x, incX)
}

func (k gonumComplex128) Rscal(n int, alpha float64, x []complex128, incX int) {
	k.b.Zdscal(n, float64(alpha), x, incX)
}

func (k gonumComplex128) Axpy(n int, alpha complex128, x []complex128, incX int, y []complex128, incY int) {
	k.b.Zaxpy(n, alpha, x, incX, y, incY)
}

func (k gonumComplex128) Axpby(n int, alpha complex128, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	switch beta {
	case 1:
	case 0:
		fill(n, 0, y, incY)
	default:
		k.b.Zscal(n, beta, y, absInc(incY))
	}
	k.b.Zaxpy(n, alpha, x, incX, y, incY)
}

func (k gonumComplex128) Dotu(n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	return k.b.Zdotu(n, x, incX, y, incY)
}

func (k gonumComplex128) Dotc(n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	return k.b.Zdotc(n, x, incX, y, incY)
}

func (k gonumComplex128) Asum(n int, x []complex128, incX int) float64 {
	return k.b.Dzasum(n, x, incX)
}

func (k gonumComplex128) Nrm2(n int, x []complex128, incX int) float64 {
	return k.b.Dznrm2(n, x, incX)
}

func (k gonumComplex128) Iamax(n int, x []complex128, incX int) int {
	return k.b.Izamax(n, x, incX)
}

func (k gonumComplex128) Gemv(tA blas.Transpose, m, n int, alpha complex128, a []complex128, lda int, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	k.b.Zgemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (k gonumComplex128) Ger(m, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) {
	k.b.Zgeru(m, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumComplex128) Gerc(m, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) {
	k.b.Zgerc(m, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumComplex128) Hemv(ul blas.Uplo, n int, alpha complex128, a []complex128, lda int, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	k.b.Zhemv(ul, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (k gonumComplex128) Her(ul blas.Uplo, n int, alpha float64, x []complex128, incX int, a []complex128, lda int) {
	k.b.Zher(ul, n, float64(alpha), x, incX, a, lda)
}

func (k gonumComplex128) Her2(ul blas.Uplo, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) {
	k.b.Zher2(ul, n, alpha, x, incX, y, incY, a, lda)
}

func (k gonumComplex128) Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex128, lda int, x []complex128, incX int) {
	k.b.Ztrmv(ul, tA, d, n, a, lda, x, incX)
}

func (k gonumComplex128) Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex128, lda int, x []complex128, incX int) {
	k.b.Ztrsv(ul, tA, d, n, a, lda, x, incX)
}

func (k gonumComplex128) Gemm(tA, tB blas.Transpose, m, n, kk int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	k.b.Zgemm(tA, tB, m, n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumComplex128) Symm(s blas.Side, ul blas.Uplo, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	k.b.Zsymm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumComplex128) Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	k.b.Zhemm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumComplex128) Syrk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex128, a []complex128, lda int, beta complex128, c []complex128, ldc int) {
	k.b.Zsyrk(ul, t, n, kk, alpha, a, lda, beta, c, ldc)
}

func (k gonumComplex128) Syr2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	k.b.Zsyr2k(ul, t, n, kk, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (k gonumComplex128) Herk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []complex128, lda int, beta float64, c []complex128, ldc int) {
	k.b.Zherk(ul, t, n, kk, float64(alpha), a, lda, float64(beta), c, ldc)
}

func (k gonumComplex128) Her2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta float64, c []complex128, ldc int) {
	k.b.Zher2k(ul, t, n, kk, alpha, a, lda, b, ldb, float64(beta), c, ldc)
}

func (k gonumComplex128) Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int) {
	k.b.Ztrmm(s, ul, tA, d, m, n, alpha, a, lda, b, ldb)
}

// gonum has no complex rotg or csrot; both are computed here.

func (k gonumComplex128) Crotg(a, b complex128) (float64, complex128, complex128) {
	c, s, r := crotg(complex128(a), complex128(b))
	return c, complex128(s), complex128(r)
}

func (k gonumComplex128) Csrot(n int, x []complex128, incX int, y []complex128, incY int, c, s float64) {
	csrot(n, x, incX, y, incY, c, s)
}

func (k gonumComplex128) Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int) {
	k.b.Ztrsm(s, ul, tA, d, m, n, alpha, a, lda, b, ldb)
}

func (k gonumComplex128) Gesv(tA blas.Transpose, n, nrhs int, a []complex128, lda int, b []complex128, ldb int, colB bool) int {
	op := complexOp(tA, n, func(i int) complex128 { return a[i] }, lda)
	same := func(v complex128) complex128 { return v }
	x := gatherRHS(n, nrhs, b, ldb, colB, same)
	info := gesvEmbedded(k.l, n, nrhs, op, x, eps64)
	if info == 0 {
		scatterRHS(n, nrhs, x, b, ldb, colB, same)
	}
	return info
}
