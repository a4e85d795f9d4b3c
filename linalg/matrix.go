package linalg

import (
	"gonum.org/v1/gonum/blas"

	"github.com/tsawler/go-accelerate/tensor"
)

func unsupported(op, name string) error {
	return newError(op, ErrUnsupported, "conjugate without transpose for %s in this storage order", name)
}

// MatVec sets y = alpha*op(A)*x + beta*y.
func MatVec[T tensor.Scalar](tA TransOp, alpha T, a tensor.Matrix[T], x tensor.Vector[T], beta T, y tensor.Vector[T]) error {
	const op = "MatVec"
	if err := checkTranspose(op, tA); err != nil {
		return err
	}
	if err := validate(op, "a,x,y", a, x, y); err != nil {
		return err
	}
	m, n := opDims(tA, a)
	if err := checkLen(op, n, "x", x); err != nil {
		return err
	}
	if err := checkLen(op, m, "y", y); err != nil {
		return err
	}
	if overlaps(y.Data, y.Span(), x.Data, x.Span()) || overlaps(y.Data, y.Span(), a.Data, a.Span()) {
		return newError(op, ErrInvalidDescriptor, "y overlaps an input")
	}
	ta, ok := storedOp(tA, a, false)
	if !ok {
		return unsupported(op, "a")
	}
	if m == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	if n == 0 {
		// BLAS returns early here without applying beta.
		var zero T
		switch beta {
		case 1:
		case zero:
			k.Set(m, zero, y.Data, abs(y.Inc))
		default:
			k.Scal(m, beta, y.Data, abs(y.Inc))
		}
		return nil
	}
	rows, cols := stored(a)
	k.Gemv(ta, rows, cols, alpha, a.Data, a.Stride, x.Data, x.Inc, beta, y.Data, y.Inc)
	return nil
}

// RankOne sets A = A + alpha*x*y^T. y is not conjugated.
func RankOne[T tensor.Scalar](alpha T, x, y tensor.Vector[T], a tensor.Matrix[T]) error {
	return rankOne("RankOne", false, alpha, x, y, a)
}

// RankOneConj sets A = A + alpha*x*y^H. For real T it equals RankOne. A complex a
// must be row-major.
func RankOneConj[T tensor.Scalar](alpha T, x, y tensor.Vector[T], a tensor.Matrix[T]) error {
	return rankOne("RankOneConj", true, alpha, x, y, a)
}

func rankOne[T tensor.Scalar](op string, conj bool, alpha T, x, y tensor.Vector[T], a tensor.Matrix[T]) error {
	if err := validate(op, "x,y,a", x, y, a); err != nil {
		return err
	}
	if err := checkLen(op, a.Rows, "x", x); err != nil {
		return err
	}
	if err := checkLen(op, a.Cols, "y", y); err != nil {
		return err
	}
	if overlaps(a.Data, a.Span(), x.Data, x.Span()) || overlaps(a.Data, a.Span(), y.Data, y.Span()) {
		return newError(op, ErrInvalidDescriptor, "a overlaps an input")
	}
	if conj && conjugated(a) {
		return newError(op, ErrUnsupported, "conjugated update of a complex column-major a")
	}
	if a.Rows == 0 || a.Cols == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	switch {
	case a.Order == tensor.ColMajor:
		// A^T += alpha*y*x^T
		k.Ger(a.Cols, a.Rows, alpha, y.Data, y.Inc, x.Data, x.Inc, a.Data, a.Stride)
	case conj:
		k.Gerc(a.Rows, a.Cols, alpha, x.Data, x.Inc, y.Data, y.Inc, a.Data, a.Stride)
	default:
		k.Ger(a.Rows, a.Cols, alpha, x.Data, x.Inc, y.Data, y.Inc, a.Data, a.Stride)
	}
	return nil
}

// TriSolveVec solves op(A)*z = x for the triangular matrix A and stores z in x.
// Only the ul triangle of A is read.
func TriSolveVec[T tensor.Scalar](ul Uplo, tA TransOp, d Diag, a tensor.Matrix[T], x tensor.Vector[T]) error {
	return triVec("TriSolveVec", true, ul, tA, d, a, x)
}

// TriMatVec sets x = op(A)*x for the triangular matrix A, reading only its ul triangle.
func TriMatVec[T tensor.Scalar](ul Uplo, tA TransOp, d Diag, a tensor.Matrix[T], x tensor.Vector[T]) error {
	return triVec("TriMatVec", false, ul, tA, d, a, x)
}

func triVec[T tensor.Scalar](op string, solve bool, ul Uplo, tA TransOp, d Diag, a tensor.Matrix[T], x tensor.Vector[T]) error {
	if err := checkTriangular(op, ul, tA, d); err != nil {
		return err
	}
	if err := validate(op, "a,x", a, x); err != nil {
		return err
	}
	if !a.IsSquare() {
		return newError(op, ErrNotSquare, "a is %dx%d", a.Rows, a.Cols)
	}
	if err := checkLen(op, a.Rows, "x", x); err != nil {
		return err
	}
	if overlaps(a.Data, a.Span(), x.Data, x.Span()) {
		return newError(op, ErrInvalidDescriptor, "x overlaps a")
	}
	ta, ok := storedOp(tA, a, false)
	if !ok {
		return unsupported(op, "a")
	}
	if a.Rows == 0 {
		return nil
	}
	k := kernelsOf[T](current())
	if solve {
		k.Trsv(storedUplo(ul, a), ta, d, a.Rows, a.Data, a.Stride, x.Data, x.Inc)
		return nil
	}
	k.Trmv(storedUplo(ul, a), ta, d, a.Rows, a.Data, a.Stride, x.Data, x.Inc)
	return nil
}

// MatMul sets out = a*b.
func MatMul[T tensor.Scalar](a, b, out tensor.Matrix[T]) error {
	return mulAdd("MatMul", NoTrans, NoTrans, 1, a, b, 0, out)
}

// MulAdd sets out = alpha*op(A)*op(B) + beta*out. out must not overlap a or b.
func MulAdd[T tensor.Scalar](tA, tB TransOp, alpha T, a, b tensor.Matrix[T], beta T, out tensor.Matrix[T]) error {
	return mulAdd("MulAdd", tA, tB, alpha, a, b, beta, out)
}

func mulAdd[T tensor.Scalar](op string, tA, tB TransOp, alpha T, a, b tensor.Matrix[T], beta T, out tensor.Matrix[T]) error {
	if err := checkTranspose(op, tA); err != nil {
		return err
	}
	if err := checkTranspose(op, tB); err != nil {
		return err
	}
	if err := validate(op, "a,b,out", a, b, out); err != nil {
		return err
	}
	m, ka := opDims(tA, a)
	kb, n := opDims(tB, b)
	if ka != kb {
		return newError(op, ErrDimensionMismatch, "inner dimensions %d and %d differ", ka, kb)
	}
	if out.Rows != m || out.Cols != n {
		return newError(op, ErrDimensionMismatch, "out is %dx%d, want %dx%d", out.Rows, out.Cols, m, n)
	}
	if matricesOverlap(out, a) || matricesOverlap(out, b) {
		return newError(op, ErrInvalidDescriptor, "out overlaps an input")
	}
	flip := out.Order == tensor.ColMajor
	ta, ok := storedOp(tA, a, flip)
	if !ok {
		return unsupported(op, "a")
	}
	tb, ok := storedOp(tB, b, flip)
	if !ok {
		return unsupported(op, "b")
	}
	if m == 0 || n == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	if ka == 0 {
		scaleMatrix(k, beta, out)
		return nil
	}
	if flip {
		// out^T = op(B)^T * op(A)^T
		k.Gemm(tb, ta, n, m, ka, alpha, b.Data, b.Stride, a.Data, a.Stride, beta, out.Data, out.Stride)
		return nil
	}
	k.Gemm(ta, tb, m, n, ka, alpha, a.Data, a.Stride, b.Data, b.Stride, beta, out.Data, out.Stride)
	return nil
}

// TriSolve sets B = alpha*op(A)^-1*B for the triangular matrix A.
func TriSolve[T tensor.Scalar](ul Uplo, tA TransOp, d Diag, alpha T, a, b tensor.Matrix[T]) error {
	const op = "TriSolve"
	if err := checkTriangular(op, ul, tA, d); err != nil {
		return err
	}
	if err := validate(op, "a,b", a, b); err != nil {
		return err
	}
	if !a.IsSquare() {
		return newError(op, ErrNotSquare, "a is %dx%d", a.Rows, a.Cols)
	}
	if b.Rows != a.Rows {
		return newError(op, ErrDimensionMismatch, "b has %d rows, want %d", b.Rows, a.Rows)
	}
	if matricesOverlap(a, b) {
		return newError(op, ErrInvalidDescriptor, "b overlaps a")
	}
	flip := b.Order == tensor.ColMajor
	ta, ok := storedOp(tA, a, flip)
	if !ok {
		return unsupported(op, "a")
	}
	if b.Rows == 0 || b.Cols == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	ua := storedUplo(ul, a)
	if flip {
		// X^T * op(A)^T = alpha*B^T
		k.Trsm(blas.Right, ua, ta, d, b.Cols, b.Rows, alpha, a.Data, a.Stride, b.Data, b.Stride)
		return nil
	}
	k.Trsm(blas.Left, ua, ta, d, b.Rows, b.Cols, alpha, a.Data, a.Stride, b.Data, b.Stride)
	return nil
}

// TriMul sets B = alpha*op(A)*B for side Left, or B = alpha*B*op(A) for side
// Right, where A is triangular and only its ul triangle is read.
func TriMul[T tensor.Scalar](s Side, ul Uplo, tA TransOp, d Diag, alpha T, a, b tensor.Matrix[T]) error {
	const op = "TriMul"
	if err := checkSide(op, s); err != nil {
		return err
	}
	if err := checkTriangular(op, ul, tA, d); err != nil {
		return err
	}
	if err := validate(op, "a,b", a, b); err != nil {
		return err
	}
	if !a.IsSquare() {
		return newError(op, ErrNotSquare, "a is %dx%d", a.Rows, a.Cols)
	}
	na := b.Rows
	if s == Right {
		na = b.Cols
	}
	if a.Rows != na {
		return newError(op, ErrDimensionMismatch, "a is %dx%d, want %dx%d", a.Rows, a.Cols, na, na)
	}
	if matricesOverlap(a, b) {
		return newError(op, ErrInvalidDescriptor, "b overlaps a")
	}
	flip := b.Order == tensor.ColMajor
	ta, ok := storedOp(tA, a, flip)
	if !ok {
		return unsupported(op, "a")
	}
	if b.Rows == 0 || b.Cols == 0 {
		return nil
	}

	side, m, n := s, b.Rows, b.Cols
	if flip {
		// B^T = alpha*B^T*op(A)^T with the side mirrored.
		side, m, n = otherSide(s), n, m
	}
	kernelsOf[T](current()).Trmm(side, storedUplo(ul, a), ta, d, m, n, alpha, a.Data, a.Stride, b.Data, b.Stride)
	return nil
}

// Transpose sets out = a^T. out must not share storage with a.
func Transpose[T tensor.Scalar](a, out tensor.Matrix[T]) error {
	const op = "Transpose"
	if err := validate(op, "a,out", a, out); err != nil {
		return err
	}
	if out.Rows != a.Cols || out.Cols != a.Rows {
		return newError(op, ErrDimensionMismatch, "out is %dx%d, want %dx%d", out.Rows, out.Cols, a.Cols, a.Rows)
	}
	if matricesOverlap(a, out) {
		return newError(op, ErrInvalidDescriptor, "out shares storage with a")
	}
	if a.Rows == 0 || a.Cols == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	for i := 0; i < a.Rows; i++ {
		src, dst := a.Row(i), out.Col(i)
		k.Copy(src.N, src.Data, src.Inc, dst.Data, dst.Inc)
	}
	return nil
}

func checkTriangular(op string, ul Uplo, tA TransOp, d Diag) error {
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := checkTranspose(op, tA); err != nil {
		return err
	}
	return checkDiag(op, d)
}
