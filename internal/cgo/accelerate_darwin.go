//go:build cgo

package cgo

/*
#cgo CFLAGS: -DACCELERATE_NEW_LAPACK
#cgo LDFLAGS: -framework Accelerate
#include <stdlib.h>
#include <Accelerate/Accelerate.h>

// Thin shims: plain ints for CBLAS enums and LAPACK scalars, void* for complex data.
// A shim that cannot allocate LAPACK workspace returns info -1000.

#define REAL_SHIMS(P, T) \
static void acc_##P##set(int n, T alpha, T *x, int incx) { catlas_##P##set(n, alpha, x, incx); } \
static void acc_##P##copy(int n, const T *x, int incx, T *y, int incy) { cblas_##P##copy(n, x, incx, y, incy); } \
static void acc_##P##swap(int n, T *x, int incx, T *y, int incy) { cblas_##P##swap(n, x, incx, y, incy); } \
static void acc_##P##scal(int n, T alpha, T *x, int incx) { cblas_##P##scal(n, alpha, x, incx); } \
static void acc_##P##axpy(int n, T alpha, const T *x, int incx, T *y, int incy) { cblas_##P##axpy(n, alpha, x, incx, y, incy); } \
static void acc_##P##axpby(int n, T alpha, const T *x, int incx, T beta, T *y, int incy) { catlas_##P##axpby(n, alpha, x, incx, beta, y, incy); } \
static T acc_##P##dot(int n, const T *x, int incx, const T *y, int incy) { return cblas_##P##dot(n, x, incx, y, incy); } \
static T acc_##P##asum(int n, const T *x, int incx) { return cblas_##P##asum(n, x, incx); } \
static T acc_##P##nrm2(int n, const T *x, int incx) { return cblas_##P##nrm2(n, x, incx); } \
static int acc_i##P##amax(int n, const T *x, int incx) { return (int)cblas_i##P##amax(n, x, incx); } \
static void acc_##P##gemv(int order, int ta, int m, int n, T alpha, const T *a, int lda, const T *x, int incx, T beta, T *y, int incy) { \
	cblas_##P##gemv((enum CBLAS_ORDER)order, (enum CBLAS_TRANSPOSE)ta, m, n, alpha, a, lda, x, incx, beta, y, incy); } \
static void acc_##P##ger(int order, int m, int n, T alpha, const T *x, int incx, const T *y, int incy, T *a, int lda) { \
	cblas_##P##ger((enum CBLAS_ORDER)order, m, n, alpha, x, incx, y, incy, a, lda); } \
static void acc_##P##trsv(int order, int ul, int ta, int d, int n, const T *a, int lda, T *x, int incx) { \
	cblas_##P##trsv((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, a, lda, x, incx); } \
static void acc_##P##gemm(int order, int ta, int tb, int m, int n, int k, T alpha, const T *a, int lda, const T *b, int ldb, T beta, T *c, int ldc) { \
	cblas_##P##gemm((enum CBLAS_ORDER)order, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_TRANSPOSE)tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc); } \
static void acc_##P##trsm(int order, int s, int ul, int ta, int d, int m, int n, T alpha, const T *a, int lda, T *b, int ldb) { \
	cblas_##P##trsm((enum CBLAS_ORDER)order, (enum CBLAS_SIDE)s, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, m, n, alpha, a, lda, b, ldb); } \
static void acc_##P##symv(int order, int ul, int n, T alpha, const T *a, int lda, const T *x, int incx, T beta, T *y, int incy) { \
	cblas_##P##symv((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, n, alpha, a, lda, x, incx, beta, y, incy); } \
static void acc_##P##syr(int order, int ul, int n, T alpha, const T *x, int incx, T *a, int lda) { \
	cblas_##P##syr((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, n, alpha, x, incx, a, lda); } \
static void acc_##P##syr2(int order, int ul, int n, T alpha, const T *x, int incx, const T *y, int incy, T *a, int lda) { \
	cblas_##P##syr2((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, n, alpha, x, incx, y, incy, a, lda); } \
static void acc_##P##trmv(int order, int ul, int ta, int d, int n, const T *a, int lda, T *x, int incx) { \
	cblas_##P##trmv((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, a, lda, x, incx); } \
static void acc_##P##symm(int order, int s, int ul, int m, int n, T alpha, const T *a, int lda, const T *b, int ldb, T beta, T *c, int ldc) { \
	cblas_##P##symm((enum CBLAS_ORDER)order, (enum CBLAS_SIDE)s, (enum CBLAS_UPLO)ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc); } \
static void acc_##P##syrk(int order, int ul, int t, int n, int k, T alpha, const T *a, int lda, T beta, T *c, int ldc) { \
	cblas_##P##syrk((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)t, n, k, alpha, a, lda, beta, c, ldc); } \
static void acc_##P##syr2k(int order, int ul, int t, int n, int k, T alpha, const T *a, int lda, const T *b, int ldb, T beta, T *c, int ldc) { \
	cblas_##P##syr2k((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)t, n, k, alpha, a, lda, b, ldb, beta, c, ldc); } \
static void acc_##P##trmm(int order, int s, int ul, int ta, int d, int m, int n, T alpha, const T *a, int lda, T *b, int ldb) { \
	cblas_##P##trmm((enum CBLAS_ORDER)order, (enum CBLAS_SIDE)s, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, m, n, alpha, a, lda, b, ldb); } \
static void acc_##P##rotg(T *a, T *b, T *c, T *s) { cblas_##P##rotg(a, b, c, s); } \
static void acc_##P##rot(int n, T *x, int incx, T *y, int incy, T c, T s) { cblas_##P##rot(n, x, incx, y, incy, c, s); } \
static void acc_##P##rotmg(T *d1, T *d2, T *b1, T b2, T *p) { cblas_##P##rotmg(d1, d2, b1, b2, p); } \
static void acc_##P##rotm(int n, T *x, int incx, T *y, int incy, const T *p) { cblas_##P##rotm(n, x, incx, y, incy, p); } \
static int acc_##P##potrf(char ul, int n, T *a, int lda) { \
	__LAPACK_int nn = n, la = lda, info = 0; \
	P##potrf_(&ul, &nn, a, &la, &info); \
	return (int)info; } \
static int acc_##P##syev(char ul, int n, T *a, int lda, T *w) { \
	__LAPACK_int nn = n, la = lda, lwork = -1, info = 0; \
	char jobz = 'V'; \
	T query = 0; \
	P##syev_(&jobz, &ul, &nn, a, &la, w, &query, &lwork, &info); \
	if (info != 0) return (int)info; \
	lwork = (__LAPACK_int)query; \
	T *work = malloc(sizeof(T) * (lwork > 0 ? lwork : 1)); \
	if (work == NULL) return -1000; \
	P##syev_(&jobz, &ul, &nn, a, &la, w, work, &lwork, &info); \
	free(work); \
	return (int)info; }

#define COMPLEX_SHIMS(P, R, RP, T) \
static void acc_##P##set(int n, const void *alpha, void *x, int incx) { catlas_##P##set(n, alpha, x, incx); } \
static void acc_##P##copy(int n, const void *x, int incx, void *y, int incy) { cblas_##P##copy(n, x, incx, y, incy); } \
static void acc_##P##swap(int n, void *x, int incx, void *y, int incy) { cblas_##P##swap(n, x, incx, y, incy); } \
static void acc_##P##scal(int n, const void *alpha, void *x, int incx) { cblas_##P##scal(n, alpha, x, incx); } \
static void acc_##P##axpy(int n, const void *alpha, const void *x, int incx, void *y, int incy) { cblas_##P##axpy(n, alpha, x, incx, y, incy); } \
static void acc_##P##axpby(int n, const void *alpha, const void *x, int incx, const void *beta, void *y, int incy) { catlas_##P##axpby(n, alpha, x, incx, beta, y, incy); } \
static void acc_##P##dotu(int n, const void *x, int incx, const void *y, int incy, void *out) { cblas_##P##dotu_sub(n, x, incx, y, incy, out); } \
static void acc_##P##dotc(int n, const void *x, int incx, const void *y, int incy, void *out) { cblas_##P##dotc_sub(n, x, incx, y, incy, out); } \
static T acc_##P##asum(int n, const void *x, int incx) { return cblas_##R##asum(n, x, incx); } \
static T acc_##P##nrm2(int n, const void *x, int incx) { return cblas_##R##nrm2(n, x, incx); } \
static int acc_i##P##amax(int n, const void *x, int incx) { return (int)cblas_i##P##amax(n, x, incx); } \
static void acc_##P##gemv(int order, int ta, int m, int n, const void *alpha, const void *a, int lda, const void *x, int incx, const void *beta, void *y, int incy) { \
	cblas_##P##gemv((enum CBLAS_ORDER)order, (enum CBLAS_TRANSPOSE)ta, m, n, alpha, a, lda, x, incx, beta, y, incy); } \
static void acc_##P##geru(int order, int m, int n, const void *alpha, const void *x, int incx, const void *y, int incy, void *a, int lda) { \
	cblas_##P##geru((enum CBLAS_ORDER)order, m, n, alpha, x, incx, y, incy, a, lda); } \
static void acc_##P##trsv(int order, int ul, int ta, int d, int n, const void *a, int lda, void *x, int incx) { \
	cblas_##P##trsv((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, a, lda, x, incx); } \
static void acc_##P##gemm(int order, int ta, int tb, int m, int n, int k, const void *alpha, const void *a, int lda, const void *b, int ldb, const void *beta, void *c, int ldc) { \
	cblas_##P##gemm((enum CBLAS_ORDER)order, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_TRANSPOSE)tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc); } \
static void acc_##P##trsm(int order, int s, int ul, int ta, int d, int m, int n, const void *alpha, const void *a, int lda, void *b, int ldb) { \
	cblas_##P##trsm((enum CBLAS_ORDER)order, (enum CBLAS_SIDE)s, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, m, n, alpha, a, lda, b, ldb); } \
static void acc_##RP##scal(int n, T alpha, void *x, int incx) { cblas_##RP##scal(n, alpha, x, incx); } \
static void acc_##P##gerc(int order, int m, int n, const void *alpha, const void *x, int incx, const void *y, int incy, void *a, int lda) { \
	cblas_##P##gerc((enum CBLAS_ORDER)order, m, n, alpha, x, incx, y, incy, a, lda); } \
static void acc_##P##hemv(int order, int ul, int n, const void *alpha, const void *a, int lda, const void *x, int incx, const void *beta, void *y, int incy) { \
	cblas_##P##hemv((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, n, alpha, a, lda, x, incx, beta, y, incy); } \
static void acc_##P##her(int order, int ul, int n, T alpha, const void *x, int incx, void *a, int lda) { \
	cblas_##P##her((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, n, alpha, x, incx, a, lda); } \
static void acc_##P##her2(int order, int ul, int n, const void *alpha, const void *x, int incx, const void *y, int incy, void *a, int lda) { \
	cblas_##P##her2((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, n, alpha, x, incx, y, incy, a, lda); } \
static void acc_##P##trmv(int order, int ul, int ta, int d, int n, const void *a, int lda, void *x, int incx) { \
	cblas_##P##trmv((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, a, lda, x, incx); } \
static void acc_##P##symm(int order, int s, int ul, int m, int n, const void *alpha, const void *a, int lda, const void *b, int ldb, const void *beta, void *c, int ldc) { \
	cblas_##P##symm((enum CBLAS_ORDER)order, (enum CBLAS_SIDE)s, (enum CBLAS_UPLO)ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc); } \
static void acc_##P##hemm(int order, int s, int ul, int m, int n, const void *alpha, const void *a, int lda, const void *b, int ldb, const void *beta, void *c, int ldc) { \
	cblas_##P##hemm((enum CBLAS_ORDER)order, (enum CBLAS_SIDE)s, (enum CBLAS_UPLO)ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc); } \
static void acc_##P##syrk(int order, int ul, int t, int n, int k, const void *alpha, const void *a, int lda, const void *beta, void *c, int ldc) { \
	cblas_##P##syrk((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)t, n, k, alpha, a, lda, beta, c, ldc); } \
static void acc_##P##syr2k(int order, int ul, int t, int n, int k, const void *alpha, const void *a, int lda, const void *b, int ldb, const void *beta, void *c, int ldc) { \
	cblas_##P##syr2k((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)t, n, k, alpha, a, lda, b, ldb, beta, c, ldc); } \
static void acc_##P##herk(int order, int ul, int t, int n, int k, T alpha, const void *a, int lda, T beta, void *c, int ldc) { \
	cblas_##P##herk((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)t, n, k, alpha, a, lda, beta, c, ldc); } \
static void acc_##P##her2k(int order, int ul, int t, int n, int k, const void *alpha, const void *a, int lda, const void *b, int ldb, T beta, void *c, int ldc) { \
	cblas_##P##her2k((enum CBLAS_ORDER)order, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)t, n, k, alpha, a, lda, b, ldb, beta, c, ldc); } \
static void acc_##P##trmm(int order, int s, int ul, int ta, int d, int m, int n, const void *alpha, const void *a, int lda, void *b, int ldb) { \
	cblas_##P##trmm((enum CBLAS_ORDER)order, (enum CBLAS_SIDE)s, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, m, n, alpha, a, lda, b, ldb); } \
static void acc_##P##rotg(void *a, void *b, T *c, void *s) { cblas_##P##rotg(a, b, c, s); } \
static void acc_##RP##rot(int n, void *x, int incx, void *y, int incy, T c, T s) { cblas_##RP##rot(n, x, incx, y, incy, c, s); }

// The gesv shims factor a in place (dense, column-major, leading dimension n)
// and estimate the 1-norm condition number before solving, so a factorisation
// that is singular to working precision reports info n+1 and leaves b untouched.

#define GESV_BEGIN \
	if (n == 0) return 0; \
	__LAPACK_int nn = n, nr = nrhs, lb = ldb, info = 0; \
	char one = '1', no = 'N'; \
	__LAPACK_int *ipiv = malloc(sizeof(__LAPACK_int) * n);

#define REAL_GESV(P, T) \
static int acc_##P##gesv(int n, int nrhs, T *a, T *b, int ldb) { \
	GESV_BEGIN \
	__LAPACK_int *iwork = malloc(sizeof(__LAPACK_int) * n); \
	T *work = malloc(sizeof(T) * 4 * n); \
	if (ipiv == NULL || iwork == NULL || work == NULL) { free(ipiv); free(iwork); free(work); return -1000; } \
	T anorm = P##lange_(&one, &nn, &nn, a, &nn, work), rcond = 0; \
	P##getrf_(&nn, &nn, a, &nn, ipiv, &info); \
	if (info == 0) { \
		P##gecon_(&one, &nn, a, &nn, &anorm, &rcond, work, iwork, &info); \
		if (info == 0 && !(rcond >= P##lamch_("E"))) info = n + 1; \
	} \
	if (info == 0) P##getrs_(&no, &nn, &nr, a, &nn, ipiv, b, &lb, &info); \
	free(ipiv); free(iwork); free(work); \
	return (int)info; }

#define COMPLEX_GESV(P, L, R) \
static int acc_##P##gesv(int n, int nrhs, void *a, void *b, int ldb) { \
	GESV_BEGIN \
	R *rwork = malloc(sizeof(R) * 2 * n); \
	R *work = malloc(sizeof(R) * 4 * n); \
	if (ipiv == NULL || rwork == NULL || work == NULL) { free(ipiv); free(rwork); free(work); return -1000; } \
	R anorm = P##lange_(&one, &nn, &nn, a, &nn, rwork), rcond = 0; \
	P##getrf_(&nn, &nn, a, &nn, ipiv, &info); \
	if (info == 0) { \
		P##gecon_(&one, &nn, a, &nn, &anorm, &rcond, (void *)work, rwork, &info); \
		if (info == 0 && !(rcond >= L##lamch_("E"))) info = n + 1; \
	} \
	if (info == 0) P##getrs_(&no, &nn, &nr, a, &nn, ipiv, b, &lb, &info); \
	free(ipiv); free(rwork); free(work); \
	return (int)info; }

static double acc_dsdot(int n, const float *x, int incx, const float *y, int incy) { return cblas_dsdot(n, x, incx, y, incy); }
static float acc_sdsdot(int n, float alpha, const float *x, int incx, const float *y, int incy) { return cblas_sdsdot(n, alpha, x, incx, y, incy); }

REAL_SHIMS(s, float)
REAL_SHIMS(d, double)
COMPLEX_SHIMS(c, sc, cs, float)
COMPLEX_SHIMS(z, dz, zd, double)
REAL_GESV(s, float)
REAL_GESV(d, double)
COMPLEX_GESV(c, s, float)
COMPLEX_GESV(z, d, double)
*/
import "C"

import (
	"math/cmplx"
	"unsafe"

	"gonum.org/v1/gonum/blas"

	"github.com/tsawler/go-accelerate/internal/backend"
	"github.com/tsawler/go-accelerate/tensor"
)

func init() {
	backend.Register("accelerate", 0, func() (*backend.Backend, error) {
		return &backend.Backend{
			Name:       "accelerate",
			Float32:    Float32{},
			Float64:    Float64{},
			Complex64:  Complex64{},
			Complex128: Complex128{},
		}, nil
	})
}

func ptr[T any](x []T) unsafe.Pointer {
	if len(x) == 0 {
		return nil
	}
	return unsafe.Pointer(&x[0])
}

func f32(x []float32) *C.float { return (*C.float)(ptr(x)) }

func f64(x []float64) *C.double { return (*C.double)(ptr(x)) }

// Float32 calls Accelerate's single precision routines.
type Float32 struct{}

func (Float32) Set(n int, alpha float32, x []float32, incX int) {
	C.acc_sset(C.int(n), C.float(alpha), f32(x), C.int(incX))
}

func (Float32) Copy(n int, x []float32, incX int, y []float32, incY int) {
	C.acc_scopy(C.int(n), f32(x), C.int(incX), f32(y), C.int(incY))
}

func (Float32) Swap(n int, x []float32, incX int, y []float32, incY int) {
	C.acc_sswap(C.int(n), f32(x), C.int(incX), f32(y), C.int(incY))
}

func (Float32) Scal(n int, alpha float32, x []float32, incX int) {
	C.acc_sscal(C.int(n), C.float(alpha), f32(x), C.int(incX))
}

func (Float32) Rscal(n int, alpha float64, x []float32, incX int) {
	C.acc_sscal(C.int(n), C.float(alpha), f32(x), C.int(incX))
}

func (Float32) Axpy(n int, alpha float32, x []float32, incX int, y []float32, incY int) {
	C.acc_saxpy(C.int(n), C.float(alpha), f32(x), C.int(incX), f32(y), C.int(incY))
}

func (Float32) Axpby(n int, alpha float32, x []float32, incX int, beta float32, y []float32, incY int) {
	C.acc_saxpby(C.int(n), C.float(alpha), f32(x), C.int(incX), C.float(beta), f32(y), C.int(incY))
}

func (Float32) Dotu(n int, x []float32, incX int, y []float32, incY int) float32 {
	return float32(C.acc_sdot(C.int(n), f32(x), C.int(incX), f32(y), C.int(incY)))
}

func (k Float32) Dotc(n int, x []float32, incX int, y []float32, incY int) float32 {
	return k.Dotu(n, x, incX, y, incY)
}

func (Float32) Asum(n int, x []float32, incX int) float64 {
	return float64(C.acc_sasum(C.int(n), f32(x), C.int(incX)))
}

func (Float32) Nrm2(n int, x []float32, incX int) float64 {
	return float64(C.acc_snrm2(C.int(n), f32(x), C.int(incX)))
}

func (Float32) Iamax(n int, x []float32, incX int) int {
	return int(C.acc_isamax(C.int(n), f32(x), C.int(incX)))
}

func (Float32) Gemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	C.acc_sgemv(cblasRowMajor, C.int(transpose(tA)), C.int(m), C.int(n), C.float(alpha), f32(a), C.int(lda),
		f32(x), C.int(incX), C.float(beta), f32(y), C.int(incY))
}

func (Float32) Ger(m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
	C.acc_sger(cblasRowMajor, C.int(m), C.int(n), C.float(alpha), f32(x), C.int(incX), f32(y), C.int(incY), f32(a), C.int(lda))
}

func (k Float32) Gerc(m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
	k.Ger(m, n, alpha, x, incX, y, incY, a, lda)
}

func (Float32) Hemv(ul blas.Uplo, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	C.acc_ssymv(cblasRowMajor, C.int(uplo(ul)), C.int(n), C.float(alpha), f32(a), C.int(lda), f32(x), C.int(incX), C.float(beta), f32(y), C.int(incY))
}

func (Float32) Her(ul blas.Uplo, n int, alpha float64, x []float32, incX int, a []float32, lda int) {
	C.acc_ssyr(cblasRowMajor, C.int(uplo(ul)), C.int(n), C.float(alpha), f32(x), C.int(incX), f32(a), C.int(lda))
}

func (Float32) Her2(ul blas.Uplo, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
	C.acc_ssyr2(cblasRowMajor, C.int(uplo(ul)), C.int(n), C.float(alpha), f32(x), C.int(incX), f32(y), C.int(incY), f32(a), C.int(lda))
}

func (Float32) Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float32, lda int, x []float32, incX int) {
	C.acc_strmv(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(n), f32(a), C.int(lda), f32(x), C.int(incX))
}

func (Float32) Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float32, lda int, x []float32, incX int) {
	C.acc_strsv(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(n), f32(a), C.int(lda), f32(x), C.int(incX))
}

func (Float32) Gemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	C.acc_sgemm(cblasRowMajor, C.int(transpose(tA)), C.int(transpose(tB)), C.int(m), C.int(n), C.int(k),
		C.float(alpha), f32(a), C.int(lda), f32(b), C.int(ldb), C.float(beta), f32(c), C.int(ldc))
}

func (Float32) Symm(s blas.Side, ul blas.Uplo, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	C.acc_ssymm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(m), C.int(n), C.float(alpha), f32(a), C.int(lda),
		f32(b), C.int(ldb), C.float(beta), f32(c), C.int(ldc))
}

func (k Float32) Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	k.Symm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (Float32) Syrk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float32, a []float32, lda int, beta float32, c []float32, ldc int) {
	C.acc_ssyrk(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), C.float(alpha), f32(a), C.int(lda),
		C.float(beta), f32(c), C.int(ldc))
}

func (Float32) Syr2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	C.acc_ssyr2k(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), C.float(alpha), f32(a), C.int(lda),
		f32(b), C.int(ldb), C.float(beta), f32(c), C.int(ldc))
}

func (k Float32) Herk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float32, lda int, beta float64, c []float32, ldc int) {
	k.Syrk(ul, t, n, kk, float32(alpha), a, lda, float32(beta), c, ldc)
}

func (k Float32) Her2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float64, c []float32, ldc int) {
	k.Syr2k(ul, t, n, kk, alpha, a, lda, b, ldb, float32(beta), c, ldc)
}

func (Float32) Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int) {
	C.acc_strmm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(m), C.int(n),
		C.float(alpha), f32(a), C.int(lda), f32(b), C.int(ldb))
}

func (Float32) Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int) {
	C.acc_strsm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(m), C.int(n),
		C.float(alpha), f32(a), C.int(lda), f32(b), C.int(ldb))
}

func (Float32) Rotg(a, b float32) (c, s, r, z float32) {
	ca, cb := C.float(a), C.float(b)
	var cc, cs C.float
	C.acc_srotg(&ca, &cb, &cc, &cs)
	return float32(cc), float32(cs), float32(ca), float32(cb)
}

func (Float32) Rot(n int, x []float32, incX int, y []float32, incY int, c, s float32) {
	C.acc_srot(C.int(n), f32(x), C.int(incX), f32(y), C.int(incY), C.float(c), C.float(s))
}

func (Float32) Rotmg(d1, d2, b1, b2 float32) (blas.Flag, [4]float32, float32, float32, float32) {
	cd1, cd2, cb1 := C.float(d1), C.float(d2), C.float(b1)
	var p [5]C.float
	C.acc_srotmg(&cd1, &cd2, &cb1, C.float(b2), &p[0])
	return blas.Flag(p[0]), [4]float32{float32(p[1]), float32(p[2]), float32(p[3]), float32(p[4])}, float32(cd1), float32(cd2), float32(cb1)
}

func (Float32) Rotm(n int, x []float32, incX int, y []float32, incY int, flag blas.Flag, h [4]float32) {
	p := [5]C.float{C.float(flag), C.float(h[0]), C.float(h[1]), C.float(h[2]), C.float(h[3])}
	C.acc_srotm(C.int(n), f32(x), C.int(incX), f32(y), C.int(incY), &p[0])
}

func (Float32) Gesv(tA blas.Transpose, n, nrhs int, a []float32, lda int, b []float32, ldb int, colB bool) int {
	return gesv(tA, n, nrhs, a, lda, b, ldb, colB, func(lu, x []float32, ldx int) int {
		return int(C.acc_sgesv(C.int(n), C.int(nrhs), f32(lu), f32(x), C.int(ldx)))
	})
}

func (Float32) Potrf(ul blas.Uplo, n int, a []float32, lda int) int {
	return int(C.acc_spotrf(C.char(lapackUplo(ul)), C.int(n), f32(a), C.int(lda)))
}

func (Float32) Syev(ul blas.Uplo, n int, a []float32, lda int, w []float32) int {
	info := int(C.acc_ssyev(C.char(lapackUplo(ul)), C.int(n), f32(a), C.int(lda), f32(w)))
	if info == 0 {
		transposeSquare(n, a, lda)
	}
	return info
}

func (Float32) Dsdot(n int, x []float32, incX int, y []float32, incY int) float64 {
	return float64(C.acc_dsdot(C.int(n), f32(x), C.int(incX), f32(y), C.int(incY)))
}

func (Float32) Sdsdot(n int, alpha float32, x []float32, incX int, y []float32, incY int) float32 {
	return float32(C.acc_sdsdot(C.int(n), C.float(alpha), f32(x), C.int(incX), f32(y), C.int(incY)))
}

// Float64 calls Accelerate's double precision routines.
type Float64 struct{}

func (Float64) Set(n int, alpha float64, x []float64, incX int) {
	C.acc_dset(C.int(n), C.double(alpha), f64(x), C.int(incX))
}

func (Float64) Copy(n int, x []float64, incX int, y []float64, incY int) {
	C.acc_dcopy(C.int(n), f64(x), C.int(incX), f64(y), C.int(incY))
}

func (Float64) Swap(n int, x []float64, incX int, y []float64, incY int) {
	C.acc_dswap(C.int(n), f64(x), C.int(incX), f64(y), C.int(incY))
}

func (Float64) Scal(n int, alpha float64, x []float64, incX int) {
	C.acc_dscal(C.int(n), C.double(alpha), f64(x), C.int(incX))
}

func (Float64) Rscal(n int, alpha float64, x []float64, incX int) {
	C.acc_dscal(C.int(n), C.double(alpha), f64(x), C.int(incX))
}

func (Float64) Axpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	C.acc_daxpy(C.int(n), C.double(alpha), f64(x), C.int(incX), f64(y), C.int(incY))
}

func (Float64) Axpby(n int, alpha float64, x []float64, incX int, beta float64, y []float64, incY int) {
	C.acc_daxpby(C.int(n), C.double(alpha), f64(x), C.int(incX), C.double(beta), f64(y), C.int(incY))
}

func (Float64) Dotu(n int, x []float64, incX int, y []float64, incY int) float64 {
	return float64(C.acc_ddot(C.int(n), f64(x), C.int(incX), f64(y), C.int(incY)))
}

func (k Float64) Dotc(n int, x []float64, incX int, y []float64, incY int) float64 {
	return k.Dotu(n, x, incX, y, incY)
}

func (Float64) Asum(n int, x []float64, incX int) float64 {
	return float64(C.acc_dasum(C.int(n), f64(x), C.int(incX)))
}

func (Float64) Nrm2(n int, x []float64, incX int) float64 {
	return float64(C.acc_dnrm2(C.int(n), f64(x), C.int(incX)))
}

func (Float64) Iamax(n int, x []float64, incX int) int {
	return int(C.acc_idamax(C.int(n), f64(x), C.int(incX)))
}

func (Float64) Gemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	C.acc_dgemv(cblasRowMajor, C.int(transpose(tA)), C.int(m), C.int(n), C.double(alpha), f64(a), C.int(lda),
		f64(x), C.int(incX), C.double(beta), f64(y), C.int(incY))
}

func (Float64) Ger(m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	C.acc_dger(cblasRowMajor, C.int(m), C.int(n), C.double(alpha), f64(x), C.int(incX), f64(y), C.int(incY), f64(a), C.int(lda))
}

func (k Float64) Gerc(m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	k.Ger(m, n, alpha, x, incX, y, incY, a, lda)
}

func (Float64) Hemv(ul blas.Uplo, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	C.acc_dsymv(cblasRowMajor, C.int(uplo(ul)), C.int(n), C.double(alpha), f64(a), C.int(lda), f64(x), C.int(incX), C.double(beta), f64(y), C.int(incY))
}

func (Float64) Her(ul blas.Uplo, n int, alpha float64, x []float64, incX int, a []float64, lda int) {
	C.acc_dsyr(cblasRowMajor, C.int(uplo(ul)), C.int(n), C.double(alpha), f64(x), C.int(incX), f64(a), C.int(lda))
}

func (Float64) Her2(ul blas.Uplo, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	C.acc_dsyr2(cblasRowMajor, C.int(uplo(ul)), C.int(n), C.double(alpha), f64(x), C.int(incX), f64(y), C.int(incY), f64(a), C.int(lda))
}

func (Float64) Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int) {
	C.acc_dtrmv(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(n), f64(a), C.int(lda), f64(x), C.int(incX))
}

func (Float64) Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int) {
	C.acc_dtrsv(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(n), f64(a), C.int(lda), f64(x), C.int(incX))
}

func (Float64) Gemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	C.acc_dgemm(cblasRowMajor, C.int(transpose(tA)), C.int(transpose(tB)), C.int(m), C.int(n), C.int(k),
		C.double(alpha), f64(a), C.int(lda), f64(b), C.int(ldb), C.double(beta), f64(c), C.int(ldc))
}

func (Float64) Symm(s blas.Side, ul blas.Uplo, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	C.acc_dsymm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(m), C.int(n), C.double(alpha), f64(a), C.int(lda),
		f64(b), C.int(ldb), C.double(beta), f64(c), C.int(ldc))
}

func (k Float64) Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	k.Symm(s, ul, m, n, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (Float64) Syrk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float64, lda int, beta float64, c []float64, ldc int) {
	C.acc_dsyrk(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), C.double(alpha), f64(a), C.int(lda),
		C.double(beta), f64(c), C.int(ldc))
}

func (Float64) Syr2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	C.acc_dsyr2k(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), C.double(alpha), f64(a), C.int(lda),
		f64(b), C.int(ldb), C.double(beta), f64(c), C.int(ldc))
}

func (k Float64) Herk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float64, lda int, beta float64, c []float64, ldc int) {
	k.Syrk(ul, t, n, kk, float64(alpha), a, lda, float64(beta), c, ldc)
}

func (k Float64) Her2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	k.Syr2k(ul, t, n, kk, alpha, a, lda, b, ldb, float64(beta), c, ldc)
}

func (Float64) Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) {
	C.acc_dtrmm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(m), C.int(n),
		C.double(alpha), f64(a), C.int(lda), f64(b), C.int(ldb))
}

func (Float64) Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) {
	C.acc_dtrsm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(m), C.int(n),
		C.double(alpha), f64(a), C.int(lda), f64(b), C.int(ldb))
}

func (Float64) Rotg(a, b float64) (c, s, r, z float64) {
	ca, cb := C.double(a), C.double(b)
	var cc, cs C.double
	C.acc_drotg(&ca, &cb, &cc, &cs)
	return float64(cc), float64(cs), float64(ca), float64(cb)
}

func (Float64) Rot(n int, x []float64, incX int, y []float64, incY int, c, s float64) {
	C.acc_drot(C.int(n), f64(x), C.int(incX), f64(y), C.int(incY), C.double(c), C.double(s))
}

func (Float64) Rotmg(d1, d2, b1, b2 float64) (blas.Flag, [4]float64, float64, float64, float64) {
	cd1, cd2, cb1 := C.double(d1), C.double(d2), C.double(b1)
	var p [5]C.double
	C.acc_drotmg(&cd1, &cd2, &cb1, C.double(b2), &p[0])
	return blas.Flag(p[0]), [4]float64{float64(p[1]), float64(p[2]), float64(p[3]), float64(p[4])}, float64(cd1), float64(cd2), float64(cb1)
}

func (Float64) Rotm(n int, x []float64, incX int, y []float64, incY int, flag blas.Flag, h [4]float64) {
	p := [5]C.double{C.double(flag), C.double(h[0]), C.double(h[1]), C.double(h[2]), C.double(h[3])}
	C.acc_drotm(C.int(n), f64(x), C.int(incX), f64(y), C.int(incY), &p[0])
}

func (Float64) Gesv(tA blas.Transpose, n, nrhs int, a []float64, lda int, b []float64, ldb int, colB bool) int {
	return gesv(tA, n, nrhs, a, lda, b, ldb, colB, func(lu, x []float64, ldx int) int {
		return int(C.acc_dgesv(C.int(n), C.int(nrhs), f64(lu), f64(x), C.int(ldx)))
	})
}

func (Float64) Potrf(ul blas.Uplo, n int, a []float64, lda int) int {
	return int(C.acc_dpotrf(C.char(lapackUplo(ul)), C.int(n), f64(a), C.int(lda)))
}

func (Float64) Syev(ul blas.Uplo, n int, a []float64, lda int, w []float64) int {
	info := int(C.acc_dsyev(C.char(lapackUplo(ul)), C.int(n), f64(a), C.int(lda), f64(w)))
	if info == 0 {
		transposeSquare(n, a, lda)
	}
	return info
}

// Complex64 calls Accelerate's single precision complex routines.
// Scalars are passed by address as the CBLAS complex interface requires.
type Complex64 struct{}

func (Complex64) Set(n int, alpha complex64, x []complex64, incX int) {
	C.acc_cset(C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX))
}

func (Complex64) Copy(n int, x []complex64, incX int, y []complex64, incY int) {
	C.acc_ccopy(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY))
}

func (Complex64) Swap(n int, x []complex64, incX int, y []complex64, incY int) {
	C.acc_cswap(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY))
}

func (Complex64) Scal(n int, alpha complex64, x []complex64, incX int) {
	C.acc_cscal(C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX))
}

func (Complex64) Rscal(n int, alpha float64, x []complex64, incX int) {
	C.acc_csscal(C.int(n), C.float(alpha), ptr(x), C.int(incX))
}

func (Complex64) Axpy(n int, alpha complex64, x []complex64, incX int, y []complex64, incY int) {
	C.acc_caxpy(C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), ptr(y), C.int(incY))
}

func (Complex64) Axpby(n int, alpha complex64, x []complex64, incX int, beta complex64, y []complex64, incY int) {
	C.acc_caxpby(C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), unsafe.Pointer(&beta), ptr(y), C.int(incY))
}

func (Complex64) Dotu(n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	var dot complex64
	C.acc_cdotu(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY), unsafe.Pointer(&dot))
	return dot
}

func (Complex64) Dotc(n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	var dot complex64
	C.acc_cdotc(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY), unsafe.Pointer(&dot))
	return dot
}

func (Complex64) Asum(n int, x []complex64, incX int) float64 {
	return float64(C.acc_casum(C.int(n), ptr(x), C.int(incX)))
}

func (Complex64) Nrm2(n int, x []complex64, incX int) float64 {
	return float64(C.acc_cnrm2(C.int(n), ptr(x), C.int(incX)))
}

func (Complex64) Iamax(n int, x []complex64, incX int) int {
	return int(C.acc_icamax(C.int(n), ptr(x), C.int(incX)))
}

func (Complex64) Gemv(tA blas.Transpose, m, n int, alpha complex64, a []complex64, lda int, x []complex64, incX int, beta complex64, y []complex64, incY int) {
	C.acc_cgemv(cblasRowMajor, C.int(transpose(tA)), C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(x), C.int(incX), unsafe.Pointer(&beta), ptr(y), C.int(incY))
}

func (Complex64) Ger(m, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) {
	C.acc_cgeru(cblasRowMajor, C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), ptr(y), C.int(incY), ptr(a), C.int(lda))
}

func (Complex64) Gerc(m, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) {
	C.acc_cgerc(cblasRowMajor, C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), ptr(y), C.int(incY), ptr(a), C.int(lda))
}

func (Complex64) Hemv(ul blas.Uplo, n int, alpha complex64, a []complex64, lda int, x []complex64, incX int, beta complex64, y []complex64, incY int) {
	C.acc_chemv(cblasRowMajor, C.int(uplo(ul)), C.int(n), unsafe.Pointer(&alpha), ptr(a), C.int(lda), ptr(x), C.int(incX),
		unsafe.Pointer(&beta), ptr(y), C.int(incY))
}

func (Complex64) Her(ul blas.Uplo, n int, alpha float64, x []complex64, incX int, a []complex64, lda int) {
	C.acc_cher(cblasRowMajor, C.int(uplo(ul)), C.int(n), C.float(alpha), ptr(x), C.int(incX), ptr(a), C.int(lda))
}

func (Complex64) Her2(ul blas.Uplo, n int, alpha complex64, x []complex64, incX int, y []complex64, incY int, a []complex64, lda int) {
	C.acc_cher2(cblasRowMajor, C.int(uplo(ul)), C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), ptr(y), C.int(incY), ptr(a), C.int(lda))
}

func (Complex64) Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex64, lda int, x []complex64, incX int) {
	C.acc_ctrmv(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(n), ptr(a), C.int(lda), ptr(x), C.int(incX))
}

func (Complex64) Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex64, lda int, x []complex64, incX int) {
	C.acc_ctrsv(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(n), ptr(a), C.int(lda), ptr(x), C.int(incX))
}

func (Complex64) Gemm(tA, tB blas.Transpose, m, n, k int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	C.acc_cgemm(cblasRowMajor, C.int(transpose(tA)), C.int(transpose(tB)), C.int(m), C.int(n), C.int(k),
		unsafe.Pointer(&alpha), ptr(a), C.int(lda), ptr(b), C.int(ldb), unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex64) Symm(s blas.Side, ul blas.Uplo, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	C.acc_csymm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb), unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex64) Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	C.acc_chemm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb), unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex64) Syrk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex64, a []complex64, lda int, beta complex64, c []complex64, ldc int) {
	C.acc_csyrk(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex64) Syr2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta complex64, c []complex64, ldc int) {
	C.acc_csyr2k(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb), unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex64) Herk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []complex64, lda int, beta float64, c []complex64, ldc int) {
	C.acc_cherk(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), C.float(alpha), ptr(a), C.int(lda),
		C.float(beta), ptr(c), C.int(ldc))
}

func (Complex64) Her2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex64, a []complex64, lda int, b []complex64, ldb int, beta float64, c []complex64, ldc int) {
	C.acc_cher2k(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb), C.float(beta), ptr(c), C.int(ldc))
}

func (Complex64) Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int) {
	C.acc_ctrmm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(m), C.int(n),
		unsafe.Pointer(&alpha), ptr(a), C.int(lda), ptr(b), C.int(ldb))
}

func (Complex64) Crotg(a, b complex64) (float64, complex64, complex64) {
	var c C.float
	var s complex64
	C.acc_crotg(unsafe.Pointer(&a), unsafe.Pointer(&b), &c, unsafe.Pointer(&s))
	return float64(c), s, a
}

func (Complex64) Csrot(n int, x []complex64, incX int, y []complex64, incY int, c, s float64) {
	C.acc_csrot(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY), C.float(c), C.float(s))
}

func (Complex64) Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha complex64, a []complex64, lda int, b []complex64, ldb int) {
	C.acc_ctrsm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(m), C.int(n),
		unsafe.Pointer(&alpha), ptr(a), C.int(lda), ptr(b), C.int(ldb))
}

func (Complex64) Gesv(tA blas.Transpose, n, nrhs int, a []complex64, lda int, b []complex64, ldb int, colB bool) int {
	return gesv(tA, n, nrhs, a, lda, b, ldb, colB, func(lu, x []complex64, ldx int) int {
		return int(C.acc_cgesv(C.int(n), C.int(nrhs), ptr(lu), ptr(x), C.int(ldx)))
	})
}

// Complex128 calls Accelerate's double precision complex routines.
type Complex128 struct{}

func (Complex128) Set(n int, alpha complex128, x []complex128, incX int) {
	C.acc_zset(C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX))
}

func (Complex128) Copy(n int, x []complex128, incX int, y []complex128, incY int) {
	C.acc_zcopy(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY))
}

func (Complex128) Swap(n int, x []complex128, incX int, y []complex128, incY int) {
	C.acc_zswap(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY))
}

func (Complex128) Scal(n int, alpha complex128, x []complex128, incX int) {
	C.acc_zscal(C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX))
}

func (Complex128) Rscal(n int, alpha float64, x []complex128, incX int) {
	C.acc_zdscal(C.int(n), C.double(alpha), ptr(x), C.int(incX))
}

func (Complex128) Axpy(n int, alpha complex128, x []complex128, incX int, y []complex128, incY int) {
	C.acc_zaxpy(C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), ptr(y), C.int(incY))
}

func (Complex128) Axpby(n int, alpha complex128, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	C.acc_zaxpby(C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), unsafe.Pointer(&beta), ptr(y), C.int(incY))
}

func (Complex128) Dotu(n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	var dot complex128
	C.acc_zdotu(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY), unsafe.Pointer(&dot))
	return dot
}

func (Complex128) Dotc(n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	var dot complex128
	C.acc_zdotc(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY), unsafe.Pointer(&dot))
	return dot
}

func (Complex128) Asum(n int, x []complex128, incX int) float64 {
	return float64(C.acc_zasum(C.int(n), ptr(x), C.int(incX)))
}

func (Complex128) Nrm2(n int, x []complex128, incX int) float64 {
	return float64(C.acc_znrm2(C.int(n), ptr(x), C.int(incX)))
}

func (Complex128) Iamax(n int, x []complex128, incX int) int {
	return int(C.acc_izamax(C.int(n), ptr(x), C.int(incX)))
}

func (Complex128) Gemv(tA blas.Transpose, m, n int, alpha complex128, a []complex128, lda int, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	C.acc_zgemv(cblasRowMajor, C.int(transpose(tA)), C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(x), C.int(incX), unsafe.Pointer(&beta), ptr(y), C.int(incY))
}

func (Complex128) Ger(m, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) {
	C.acc_zgeru(cblasRowMajor, C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), ptr(y), C.int(incY), ptr(a), C.int(lda))
}

func (Complex128) Gerc(m, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) {
	C.acc_zgerc(cblasRowMajor, C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), ptr(y), C.int(incY), ptr(a), C.int(lda))
}

func (Complex128) Hemv(ul blas.Uplo, n int, alpha complex128, a []complex128, lda int, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	C.acc_zhemv(cblasRowMajor, C.int(uplo(ul)), C.int(n), unsafe.Pointer(&alpha), ptr(a), C.int(lda), ptr(x), C.int(incX),
		unsafe.Pointer(&beta), ptr(y), C.int(incY))
}

func (Complex128) Her(ul blas.Uplo, n int, alpha float64, x []complex128, incX int, a []complex128, lda int) {
	C.acc_zher(cblasRowMajor, C.int(uplo(ul)), C.int(n), C.double(alpha), ptr(x), C.int(incX), ptr(a), C.int(lda))
}

func (Complex128) Her2(ul blas.Uplo, n int, alpha complex128, x []complex128, incX int, y []complex128, incY int, a []complex128, lda int) {
	C.acc_zher2(cblasRowMajor, C.int(uplo(ul)), C.int(n), unsafe.Pointer(&alpha), ptr(x), C.int(incX), ptr(y), C.int(incY), ptr(a), C.int(lda))
}

func (Complex128) Trmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex128, lda int, x []complex128, incX int) {
	C.acc_ztrmv(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(n), ptr(a), C.int(lda), ptr(x), C.int(incX))
}

func (Complex128) Trsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex128, lda int, x []complex128, incX int) {
	C.acc_ztrsv(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(n), ptr(a), C.int(lda), ptr(x), C.int(incX))
}

func (Complex128) Gemm(tA, tB blas.Transpose, m, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	C.acc_zgemm(cblasRowMajor, C.int(transpose(tA)), C.int(transpose(tB)), C.int(m), C.int(n), C.int(k),
		unsafe.Pointer(&alpha), ptr(a), C.int(lda), ptr(b), C.int(ldb), unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex128) Symm(s blas.Side, ul blas.Uplo, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	C.acc_zsymm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb), unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex128) Hemm(s blas.Side, ul blas.Uplo, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	C.acc_zhemm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(m), C.int(n), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb), unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex128) Syrk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex128, a []complex128, lda int, beta complex128, c []complex128, ldc int) {
	C.acc_zsyrk(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex128) Syr2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) {
	C.acc_zsyr2k(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb), unsafe.Pointer(&beta), ptr(c), C.int(ldc))
}

func (Complex128) Herk(ul blas.Uplo, t blas.Transpose, n, kk int, alpha float64, a []complex128, lda int, beta float64, c []complex128, ldc int) {
	C.acc_zherk(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), C.double(alpha), ptr(a), C.int(lda),
		C.double(beta), ptr(c), C.int(ldc))
}

func (Complex128) Her2k(ul blas.Uplo, t blas.Transpose, n, kk int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta float64, c []complex128, ldc int) {
	C.acc_zher2k(cblasRowMajor, C.int(uplo(ul)), C.int(transpose(t)), C.int(n), C.int(kk), unsafe.Pointer(&alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb), C.double(beta), ptr(c), C.int(ldc))
}

func (Complex128) Trmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int) {
	C.acc_ztrmm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(m), C.int(n),
		unsafe.Pointer(&alpha), ptr(a), C.int(lda), ptr(b), C.int(ldb))
}

func (Complex128) Crotg(a, b complex128) (float64, complex128, complex128) {
	var c C.double
	var s complex128
	C.acc_zrotg(unsafe.Pointer(&a), unsafe.Pointer(&b), &c, unsafe.Pointer(&s))
	return float64(c), s, a
}

func (Complex128) Csrot(n int, x []complex128, incX int, y []complex128, incY int, c, s float64) {
	C.acc_zdrot(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY), C.double(c), C.double(s))
}

func (Complex128) Trsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha complex128, a []complex128, lda int, b []complex128, ldb int) {
	C.acc_ztrsm(cblasRowMajor, C.int(side(s)), C.int(uplo(ul)), C.int(transpose(tA)), C.int(diag(d)), C.int(m), C.int(n),
		unsafe.Pointer(&alpha), ptr(a), C.int(lda), ptr(b), C.int(ldb))
}

func (Complex128) Gesv(tA blas.Transpose, n, nrhs int, a []complex128, lda int, b []complex128, ldb int, colB bool) int {
	return gesv(tA, n, nrhs, a, lda, b, ldb, colB, func(lu, x []complex128, ldx int) int {
		return int(C.acc_zgesv(C.int(n), C.int(nrhs), ptr(lu), ptr(x), C.int(ldx)))
	})
}

// gesv hands LAPACK a dense column-major copy of op(A), which leaves the caller's
// A intact and lets a conjugate transpose be applied while copying. A column-major
// b is solved in place; a row-major one goes through scratch and is written back
// only on success.
func gesv[T tensor.Scalar](tA blas.Transpose, n, nrhs int, a []T, lda int, b []T, ldb int, colB bool, call func(lu, x []T, ldx int) int) int {
	lu := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch tA {
			case blas.NoTrans:
				lu[j*n+i] = a[i*lda+j]
			case blas.Trans:
				lu[j*n+i] = a[j*lda+i]
			default:
				lu[j*n+i] = conj(a[j*lda+i])
			}
		}
	}
	if colB {
		return call(lu, b, ldb)
	}
	x := make([]T, n*nrhs)
	for i := 0; i < n; i++ {
		for j := 0; j < nrhs; j++ {
			x[j*n+i] = b[i*ldb+j]
		}
	}
	info := call(lu, x, max(n, 1))
	if info == 0 {
		for i := 0; i < n; i++ {
			for j := 0; j < nrhs; j++ {
				b[i*ldb+j] = x[j*n+i]
			}
		}
	}
	return info
}

// transposeSquare turns LAPACK's column-stored eigenvectors into row-major columns.
func transposeSquare[T tensor.Real](n int, a []T, lda int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a[i*lda+j], a[j*lda+i] = a[j*lda+i], a[i*lda+j]
		}
	}
}

func conj[T tensor.Scalar](x T) T {
	switch v := any(x).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(v)))).(T)
	case complex128:
		return any(cmplx.Conj(v)).(T)
	default:
		return x
	}
}
