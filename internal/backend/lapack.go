package backend

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/tsawler/go-accelerate/tensor"
)

// fill stores alpha in n elements of x. The element set of a negative increment
// is the same as that of its absolute value.
func fill[T tensor.Scalar](n int, alpha T, x []T, incX int) {
	incX = absInc(incX)
	for i := 0; i < n; i++ {
		x[i*incX] = alpha
	}
}

func absInc(inc int) int {
	if inc < 0 {
		return -inc
	}
	return inc
}

// realTrans folds ConjTrans into Trans for real routines.
func realTrans(t blas.Transpose) blas.Transpose {
	if t == blas.ConjTrans {
		return blas.Trans
	}
	return t
}

// realOp copies op(A) of the n x n row-major matrix a into a dense float64 buffer.
func realOp[T tensor.Real](tA blas.Transpose, n int, a []T, lda int) []float64 {
	op := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if tA == blas.NoTrans {
				op[i*n+j] = float64(a[i*lda+j])
			} else {
				op[i*n+j] = float64(a[j*lda+i])
			}
		}
	}
	return op
}

// widen copies a rows x cols block of src into a dense float64 buffer.
func widen[T tensor.Real](rows, cols int, src []T, ld int) []float64 {
	dst := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[i*cols+j] = float64(src[i*ld+j])
		}
	}
	return dst
}

// narrow is the inverse of widen.
func narrow[T tensor.Real](rows, cols int, src []float64, dst []T, ld int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[i*ld+j] = T(src[i*cols+j])
		}
	}
}

// Unit roundoff as LAPACK's ?lamch('E') reports it.
const (
	eps32 = 0x1p-24
	eps64 = 0x1p-53
)

// getrs factors the dense n x n matrix lu in place and, if it is nonsingular,
// overwrites b with the solution. info is the 1-based index of the first exactly
// zero pivot, or n+1 when the reciprocal condition number in the 1-norm is below
// eps, so the factorisation is singular to working precision.
func getrs(l lapack64, n, nrhs int, lu []float64, b []float64, ldb int, eps float64) int {
	ipiv := make([]int, n)
	work := make([]float64, 4*n)
	anorm := l.Dlange(lapack.MaxColumnSum, n, n, lu, n, work)
	if !l.Dgetrf(n, n, lu, n, ipiv) {
		for i := 0; i < n; i++ {
			if lu[i*n+i] == 0 {
				return i + 1
			}
		}
		return n
	}
	if rcond := l.Dgecon(lapack.MaxColumnSum, n, lu, n, anorm, work, make([]int, n)); rcond < eps {
		return n + 1
	}
	l.Dgetrs(blas.NoTrans, n, nrhs, lu, n, ipiv, b, ldb)
	return 0
}

// rhsAt returns the storage index of B[i][j] for a right-hand side stored
// row-major, or column-major when colB is set.
func rhsAt(i, j, ldb int, colB bool) int {
	if colB {
		return j*ldb + i
	}
	return i*ldb + j
}

// gatherRHS copies an n x nrhs right-hand side into a dense row-major buffer.
func gatherRHS[T, D tensor.Scalar](n, nrhs int, b []T, ldb int, colB bool, conv func(T) D) []D {
	x := make([]D, n*nrhs)
	for i := 0; i < n; i++ {
		for j := 0; j < nrhs; j++ {
			x[i*nrhs+j] = conv(b[rhsAt(i, j, ldb, colB)])
		}
	}
	return x
}

// scatterRHS is the inverse of gatherRHS.
func scatterRHS[T, D tensor.Scalar](n, nrhs int, x []D, b []T, ldb int, colB bool, conv func(D) T) {
	for i := 0; i < n; i++ {
		for j := 0; j < nrhs; j++ {
			b[rhsAt(i, j, ldb, colB)] = conv(x[i*nrhs+j])
		}
	}
}

// firstNonPositive recovers the potrf info code from a failed factorisation: the
// unblocked Cholesky stops at the first non-positive pivot and leaves it on the diagonal.
func firstNonPositive(n int, a []float64, lda int) int {
	for i := 0; i < n; i++ {
		if d := a[i*lda+i]; d <= 0 || math.IsNaN(d) {
			return i + 1
		}
	}
	return 1
}

func syev(l lapack64, ul blas.Uplo, n int, a []float64, lda int, w []float64) int {
	if n == 0 {
		return 0
	}
	work := make([]float64, 1)
	l.Dsyev(lapack.EVCompute, ul, n, a, lda, w, work, -1)
	work = make([]float64, int(work[0]))
	if !l.Dsyev(lapack.EVCompute, ul, n, a, lda, w, work, len(work)) {
		return 1
	}
	return 0
}

// complexOp materialises op(A) of an n x n row-major complex matrix read through at.
func complexOp(tA blas.Transpose, n int, at func(int) complex128, lda int) []complex128 {
	op := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch tA {
			case blas.NoTrans:
				op[i*n+j] = at(i*lda + j)
			case blas.Trans:
				op[i*n+j] = at(j*lda + i)
			default:
				op[i*n+j] = cmplx.Conj(at(j*lda + i))
			}
		}
	}
	return op
}

// gesvEmbedded solves the complex system M X = B through its real embedding
//
//	[Re M  -Im M] [Re X]   [Re B]
//	[Im M   Re M] [Im X] = [Im B]
//
// since gonum's LAPACK has no complex routines. x holds B (n x nrhs, dense) on entry
// and X on successful return. A zero pivot at embedded row p is reported as info
// ((p-1) mod n) + 1; an ill-conditioned embedding as n+1.
func gesvEmbedded(l lapack64, n, nrhs int, m []complex128, x []complex128, eps float64) int {
	n2 := 2 * n
	e := make([]float64, n2*n2)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m[i*n+j]
			e[i*n2+j] = real(v)
			e[i*n2+n+j] = -imag(v)
			e[(n+i)*n2+j] = imag(v)
			e[(n+i)*n2+n+j] = real(v)
		}
	}
	r := make([]float64, n2*nrhs)
	for i := 0; i < n; i++ {
		for j := 0; j < nrhs; j++ {
			r[i*nrhs+j] = real(x[i*nrhs+j])
			r[(n+i)*nrhs+j] = imag(x[i*nrhs+j])
		}
	}
	if info := getrs(l, n2, nrhs, e, r, nrhs, eps); info != 0 {
		if info > n2 {
			return n + 1
		}
		return (info-1)%n + 1
	}
	for i := 0; i < n; i++ {
		for j := 0; j < nrhs; j++ {
			x[i*nrhs+j] = complex(r[i*nrhs+j], r[(n+i)*nrhs+j])
		}
	}
	return 0
}

// crotg is the reference BLAS construction of a complex Givens rotation.
func crotg(a, b complex128) (c float64, s, r complex128) {
	absA := cmplx.Abs(a)
	if absA == 0 {
		return 0, 1, b
	}
	norm := math.Hypot(absA, cmplx.Abs(b))
	alpha := a / complex(absA, 0)
	return absA / norm, alpha * cmplx.Conj(b) / complex(norm, 0), alpha * complex(norm, 0)
}

// csrot applies the real rotation (c, s) to complex vectors.
func csrot[T tensor.Complex](n int, x []T, incX int, y []T, incY int, c, s float64) {
	cc, ss := T(complex(c, 0)), T(complex(s, 0))
	var ix, iy int
	if incX < 0 {
		ix = (1 - n) * incX
	}
	if incY < 0 {
		iy = (1 - n) * incY
	}
	for i := 0; i < n; i++ {
		xv, yv := x[ix], y[iy]
		x[ix] = cc*xv + ss*yv
		y[iy] = cc*yv - ss*xv
		ix += incX
		iy += incY
	}
}
