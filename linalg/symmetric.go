package linalg

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"

	"github.com/tsawler/go-accelerate/internal/backend"
	"github.com/tsawler/go-accelerate/tensor"
)

// Column-major storage of a complex Hermitian matrix holds its conjugate, which
// the row-major Hermitian routines cannot take as is.
func conjugated[T tensor.Scalar](m tensor.Matrix[T]) bool {
	return m.Order == tensor.ColMajor && tensor.KindOf[T]().IsComplex()
}

func hermOrder(op, name string) error {
	return newError(op, ErrUnsupported, "complex Hermitian %s stored column-major", name)
}

func checkSquare[T tensor.Scalar](op, name string, m tensor.Matrix[T]) error {
	if !m.IsSquare() {
		return newError(op, ErrNotSquare, "%s is %dx%d", name, m.Rows, m.Cols)
	}
	return nil
}

func fromReal[T tensor.Scalar](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *complex64:
		*p = complex(float32(v), 0)
	case *complex128:
		*p = complex(v, 0)
	}
	return out
}

func conjugate[T tensor.Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}
	return v
}

// scaleTriangle sets the ul triangle of the square matrix m to beta times itself.
func scaleTriangle[T tensor.Scalar](k backend.Kernels[T], ul Uplo, beta T, m tensor.Matrix[T]) {
	var zero T
	if beta == 1 {
		return
	}
	n := m.Rows
	for i := 0; i < n; i++ {
		v := segment(m, i, 0, i+1)
		if ul == Upper {
			v = segment(m, i, i, n-i)
		}
		if beta == zero {
			k.Set(v.N, zero, v.Data, v.Inc)
		} else {
			k.Scal(v.N, beta, v.Data, v.Inc)
		}
	}
}

// HermMatVec sets y = alpha*A*x + beta*y for the Hermitian matrix A, reading only
// its ul triangle. For real T it is the symmetric product.
func HermMatVec[T tensor.Scalar](ul Uplo, alpha T, a tensor.Matrix[T], x tensor.Vector[T], beta T, y tensor.Vector[T]) error {
	return hemv("HermMatVec", ul, alpha, a, x, beta, y)
}

// SymMatVec sets y = alpha*A*x + beta*y for the symmetric matrix A, reading only
// its ul triangle.
func SymMatVec[T tensor.Real](ul Uplo, alpha T, a tensor.Matrix[T], x tensor.Vector[T], beta T, y tensor.Vector[T]) error {
	return hemv("SymMatVec", ul, alpha, a, x, beta, y)
}

func hemv[T tensor.Scalar](op string, ul Uplo, alpha T, a tensor.Matrix[T], x tensor.Vector[T], beta T, y tensor.Vector[T]) error {
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := validate(op, "a,x,y", a, x, y); err != nil {
		return err
	}
	if err := checkSquare(op, "a", a); err != nil {
		return err
	}
	n := a.Rows
	if err := checkLen(op, n, "x", x); err != nil {
		return err
	}
	if err := checkLen(op, n, "y", y); err != nil {
		return err
	}
	if overlaps(y.Data, y.Span(), x.Data, x.Span()) || overlaps(y.Data, y.Span(), a.Data, a.Span()) {
		return newError(op, ErrInvalidDescriptor, "y overlaps an input")
	}
	if conjugated(a) {
		return hermOrder(op, "a")
	}
	if n == 0 {
		return nil
	}
	kernelsOf[T](current()).Hemv(storedUplo(ul, a), n, alpha, a.Data, a.Stride, x.Data, x.Inc, beta, y.Data, y.Inc)
	return nil
}

// HermRankOne sets A = A + alpha*x*x^H for the Hermitian matrix A, updating only
// its ul triangle.
func HermRankOne[T tensor.Scalar](ul Uplo, alpha float64, x tensor.Vector[T], a tensor.Matrix[T]) error {
	return her("HermRankOne", ul, alpha, x, a)
}

// SymRankOne sets A = A + alpha*x*x^T for the symmetric matrix A, updating only
// its ul triangle.
func SymRankOne[T tensor.Real](ul Uplo, alpha T, x tensor.Vector[T], a tensor.Matrix[T]) error {
	return her("SymRankOne", ul, float64(alpha), x, a)
}

func her[T tensor.Scalar](op string, ul Uplo, alpha float64, x tensor.Vector[T], a tensor.Matrix[T]) error {
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := validate(op, "x,a", x, a); err != nil {
		return err
	}
	if err := checkSquare(op, "a", a); err != nil {
		return err
	}
	if err := checkLen(op, a.Rows, "x", x); err != nil {
		return err
	}
	if overlaps(a.Data, a.Span(), x.Data, x.Span()) {
		return newError(op, ErrInvalidDescriptor, "a overlaps x")
	}
	if conjugated(a) {
		return hermOrder(op, "a")
	}
	if a.Rows == 0 {
		return nil
	}
	kernelsOf[T](current()).Her(storedUplo(ul, a), a.Rows, alpha, x.Data, x.Inc, a.Data, a.Stride)
	return nil
}

// HermRankTwo sets A = A + alpha*x*y^H + conj(alpha)*y*x^H for the Hermitian
// matrix A, updating only its ul triangle.
func HermRankTwo[T tensor.Scalar](ul Uplo, alpha T, x, y tensor.Vector[T], a tensor.Matrix[T]) error {
	return her2("HermRankTwo", ul, alpha, x, y, a)
}

// SymRankTwo sets A = A + alpha*(x*y^T + y*x^T) for the symmetric matrix A,
// updating only its ul triangle.
func SymRankTwo[T tensor.Real](ul Uplo, alpha T, x, y tensor.Vector[T], a tensor.Matrix[T]) error {
	return her2("SymRankTwo", ul, alpha, x, y, a)
}

func her2[T tensor.Scalar](op string, ul Uplo, alpha T, x, y tensor.Vector[T], a tensor.Matrix[T]) error {
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := validate(op, "x,y,a", x, y, a); err != nil {
		return err
	}
	if err := checkSquare(op, "a", a); err != nil {
		return err
	}
	if err := checkLen(op, a.Rows, "x", x); err != nil {
		return err
	}
	if err := checkLen(op, a.Rows, "y", y); err != nil {
		return err
	}
	if overlaps(a.Data, a.Span(), x.Data, x.Span()) || overlaps(a.Data, a.Span(), y.Data, y.Span()) {
		return newError(op, ErrInvalidDescriptor, "a overlaps an input")
	}
	if conjugated(a) {
		return hermOrder(op, "a")
	}
	if a.Rows == 0 {
		return nil
	}
	kernelsOf[T](current()).Her2(storedUplo(ul, a), a.Rows, alpha, x.Data, x.Inc, y.Data, y.Inc, a.Data, a.Stride)
	return nil
}

// SymMulAdd sets C = alpha*A*B + beta*C for side Left, or C = alpha*B*A + beta*C
// for side Right, where A is symmetric and only its ul triangle is read. b and c
// must share a storage order.
func SymMulAdd[T tensor.Scalar](s Side, ul Uplo, alpha T, a, b tensor.Matrix[T], beta T, c tensor.Matrix[T]) error {
	return symm("SymMulAdd", false, s, ul, alpha, a, b, beta, c)
}

// HermMulAdd is SymMulAdd for a Hermitian A. A complex a must also share the
// storage order of c.
func HermMulAdd[T tensor.Scalar](s Side, ul Uplo, alpha T, a, b tensor.Matrix[T], beta T, c tensor.Matrix[T]) error {
	return symm("HermMulAdd", true, s, ul, alpha, a, b, beta, c)
}

func symm[T tensor.Scalar](op string, herm bool, s Side, ul Uplo, alpha T, a, b tensor.Matrix[T], beta T, c tensor.Matrix[T]) error {
	if err := checkSide(op, s); err != nil {
		return err
	}
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := validate(op, "a,b,c", a, b, c); err != nil {
		return err
	}
	if err := checkSquare(op, "a", a); err != nil {
		return err
	}
	if b.Rows != c.Rows || b.Cols != c.Cols {
		return newError(op, ErrDimensionMismatch, "c is %dx%d, want %dx%d", c.Rows, c.Cols, b.Rows, b.Cols)
	}
	na := c.Rows
	if s == Right {
		na = c.Cols
	}
	if a.Rows != na {
		return newError(op, ErrDimensionMismatch, "a is %dx%d, want %dx%d", a.Rows, a.Cols, na, na)
	}
	if matricesOverlap(c, a) || matricesOverlap(c, b) {
		return newError(op, ErrInvalidDescriptor, "c overlaps an input")
	}
	if b.Order != c.Order {
		return newError(op, ErrUnsupported, "b and c differ in storage order")
	}
	if herm && conjugated(a) != conjugated(c) {
		return newError(op, ErrUnsupported, "complex Hermitian a and c differ in storage order")
	}
	m, n := c.Rows, c.Cols
	if m == 0 || n == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	side, ua := s, storedUplo(ul, a)
	if c.Order == tensor.ColMajor {
		// C^T = alpha*B^T*A^T + beta*C^T with the side mirrored.
		side = otherSide(s)
		m, n = n, m
	}
	if herm {
		k.Hemm(side, ua, m, n, alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
		return nil
	}
	k.Symm(side, ua, m, n, alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
	return nil
}

// rankKDims checks a rank-k update of the square c by op(a) and returns n and k.
func rankKDims[T tensor.Scalar](op string, t TransOp, a, c tensor.Matrix[T]) (n, kk int, err error) {
	if err := checkSquare(op, "c", c); err != nil {
		return 0, 0, err
	}
	n, kk = opDims(t, a)
	if n != c.Rows {
		return 0, 0, newError(op, ErrDimensionMismatch, "op(a) has %d rows, want %d", n, c.Rows)
	}
	if matricesOverlap(c, a) {
		return 0, 0, newError(op, ErrInvalidDescriptor, "c overlaps an input")
	}
	return n, kk, nil
}

// SymRankK sets C = alpha*A*A^T + beta*C for t NoTrans, or C = alpha*A^T*A + beta*C
// for t Trans, updating only the ul triangle of the symmetric matrix C.
func SymRankK[T tensor.Scalar](ul Uplo, t TransOp, alpha T, a tensor.Matrix[T], beta T, c tensor.Matrix[T]) error {
	const op = "SymRankK"
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := checkTranspose(op, t); err != nil {
		return err
	}
	if t == ConjTrans && tensor.KindOf[T]().IsComplex() {
		return newError(op, ErrUnsupported, "conjugate transpose in a complex symmetric update")
	}
	if err := validate(op, "a,c", a, c); err != nil {
		return err
	}
	n, kk, err := rankKDims(op, t, a, c)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	uc := storedUplo(ul, c)
	if kk == 0 {
		scaleTriangle(k, uc, beta, storage(c))
		return nil
	}
	ta, _ := storedOp(t, a, false)
	k.Syrk(uc, ta, n, kk, alpha, a.Data, a.Stride, beta, c.Data, c.Stride)
	return nil
}

// HermRankK sets C = alpha*A*A^H + beta*C for t NoTrans, or C = alpha*A^H*A + beta*C
// for t ConjTrans, updating only the ul triangle of the Hermitian matrix C. For
// real T, Trans and ConjTrans agree. A complex a must share the storage order of c.
func HermRankK[T tensor.Scalar](ul Uplo, t TransOp, alpha float64, a tensor.Matrix[T], beta float64, c tensor.Matrix[T]) error {
	const op = "HermRankK"
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := checkTranspose(op, t); err != nil {
		return err
	}
	if err := validate(op, "a,c", a, c); err != nil {
		return err
	}
	n, kk, err := rankKDims(op, t, a, c)
	if err != nil {
		return err
	}
	ta, err := hermFlag(op, t, c, a)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	uc := storedUplo(ul, c)
	if kk == 0 {
		scaleTriangle(k, uc, fromReal[T](beta), storage(c))
		return nil
	}
	k.Herk(uc, ta, n, kk, alpha, a.Data, a.Stride, beta, c.Data, c.Stride)
	return nil
}

// hermFlag maps t to the flag a Hermitian rank-k routine applies to the storage of
// the operands. Complex operands must all share c's storage order; column-major
// storage of both sides conjugates the whole update, which swaps A and conj(A)^T.
func hermFlag[T tensor.Scalar](op string, t TransOp, c tensor.Matrix[T], ops ...tensor.Matrix[T]) (blas.Transpose, error) {
	if !tensor.KindOf[T]().IsComplex() {
		for _, m := range ops[1:] {
			if m.Order != ops[0].Order {
				return 0, newError(op, ErrUnsupported, "a and b differ in storage order")
			}
		}
		ta, _ := storedOp(t, ops[0], false)
		return ta, nil
	}
	if t == Trans {
		return 0, newError(op, ErrUnsupported, "plain transpose in a complex Hermitian update")
	}
	for _, m := range ops {
		if m.Order != c.Order {
			return 0, newError(op, ErrUnsupported, "complex operands differ in storage order")
		}
	}
	if c.Order == tensor.RowMajor {
		return t, nil
	}
	if t == NoTrans {
		return blas.ConjTrans, nil
	}
	return blas.NoTrans, nil
}

// SymRankTwoK sets C = alpha*(A*B^T + B*A^T) + beta*C for t NoTrans, or
// C = alpha*(A^T*B + B^T*A) + beta*C for t Trans, updating only the ul triangle of
// the symmetric matrix C. a and b must share a storage order.
func SymRankTwoK[T tensor.Scalar](ul Uplo, t TransOp, alpha T, a, b tensor.Matrix[T], beta T, c tensor.Matrix[T]) error {
	const op = "SymRankTwoK"
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := checkTranspose(op, t); err != nil {
		return err
	}
	if t == ConjTrans && tensor.KindOf[T]().IsComplex() {
		return newError(op, ErrUnsupported, "conjugate transpose in a complex symmetric update")
	}
	if err := validate(op, "a,b,c", a, b, c); err != nil {
		return err
	}
	n, kk, err := rankTwoKDims(op, t, a, b, c)
	if err != nil {
		return err
	}
	if a.Order != b.Order {
		return newError(op, ErrUnsupported, "a and b differ in storage order")
	}
	if n == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	uc := storedUplo(ul, c)
	if kk == 0 {
		scaleTriangle(k, uc, beta, storage(c))
		return nil
	}
	ta, _ := storedOp(t, a, false)
	k.Syr2k(uc, ta, n, kk, alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
	return nil
}

// HermRankTwoK sets C = alpha*A*B^H + conj(alpha)*B*A^H + beta*C for t NoTrans, or
// C = alpha*A^H*B + conj(alpha)*B^H*A + beta*C for t ConjTrans, updating only the
// ul triangle of the Hermitian matrix C. Complex operands must share a storage order.
func HermRankTwoK[T tensor.Scalar](ul Uplo, t TransOp, alpha T, a, b tensor.Matrix[T], beta float64, c tensor.Matrix[T]) error {
	const op = "HermRankTwoK"
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := checkTranspose(op, t); err != nil {
		return err
	}
	if err := validate(op, "a,b,c", a, b, c); err != nil {
		return err
	}
	n, kk, err := rankTwoKDims(op, t, a, b, c)
	if err != nil {
		return err
	}
	ta, err := hermFlag(op, t, c, a, b)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	uc := storedUplo(ul, c)
	if kk == 0 {
		scaleTriangle(k, uc, fromReal[T](beta), storage(c))
		return nil
	}
	if conjugated(c) {
		alpha = conjugate(alpha)
	}
	k.Her2k(uc, ta, n, kk, alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
	return nil
}

func rankTwoKDims[T tensor.Scalar](op string, t TransOp, a, b, c tensor.Matrix[T]) (n, kk int, err error) {
	n, kk, err = rankKDims(op, t, a, c)
	if err != nil {
		return 0, 0, err
	}
	if bn, bk := opDims(t, b); bn != n || bk != kk {
		return 0, 0, newError(op, ErrDimensionMismatch, "op(b) is %dx%d, want %dx%d", bn, bk, n, kk)
	}
	if matricesOverlap(c, b) {
		return 0, 0, newError(op, ErrInvalidDescriptor, "c overlaps an input")
	}
	return n, kk, nil
}

// storage views m's storage as a row-major matrix.
func storage[T tensor.Scalar](m tensor.Matrix[T]) tensor.Matrix[T] {
	rows, cols := stored(m)
	return tensor.Matrix[T]{Rows: rows, Cols: cols, Stride: m.Stride, Order: tensor.RowMajor, Data: m.Data}
}
