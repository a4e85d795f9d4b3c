package linalg

import (
	"github.com/tsawler/go-accelerate/internal/backend"
	"github.com/tsawler/go-accelerate/tensor"
)

// Solve solves a*X = b for X and stores it in out. a and b are not modified;
// out may be b itself but must not otherwise overlap a or b.
//
// A singular a yields ErrSingularMatrix with Info set to the 1-based index of
// the first zero pivot, or to n+1 when the reciprocal condition number of a in
// the 1-norm is below the unit roundoff of T. out then holds a copy of b.
func Solve[T tensor.Scalar](a, b, out tensor.Matrix[T]) error {
	const op = "Solve"
	if err := validate(op, "a,b,out", a, b, out); err != nil {
		return err
	}
	if !a.IsSquare() {
		return newError(op, ErrNotSquare, "a is %dx%d", a.Rows, a.Cols)
	}
	n := a.Rows
	if b.Rows != n {
		return newError(op, ErrDimensionMismatch, "b has %d rows, want %d", b.Rows, n)
	}
	if out.Rows != b.Rows || out.Cols != b.Cols {
		return newError(op, ErrDimensionMismatch, "out is %dx%d, want %dx%d", out.Rows, out.Cols, b.Rows, b.Cols)
	}
	if matricesOverlap(out, a) {
		return newError(op, ErrInvalidDescriptor, "out overlaps a")
	}
	if !sameMatrix(out, b) && matricesOverlap(out, b) {
		return newError(op, ErrInvalidDescriptor, "out partially overlaps b")
	}
	if n == 0 || b.Cols == 0 {
		return nil
	}

	be := current()
	k := kernelsOf[T](be)
	copyMatrix(k, b, out)

	ta, _ := storedOp(NoTrans, a, false)
	info := k.Gesv(ta, n, out.Cols, a.Data, a.Stride, out.Data, out.Stride, out.Order == tensor.ColMajor)
	detail := "zero pivot"
	if info > n {
		detail = "singular to working precision"
	}
	return status(op, be, info, ErrSingularMatrix, detail)
}

// Cholesky factors the symmetric positive definite matrix a, reading only its ul
// triangle, and stores the triangular factor in the same triangle of out with
// the other triangle zeroed: a = U^T*U for Upper, a = L*L^T for Lower.
// out may be a itself.
func Cholesky[T tensor.Real](ul Uplo, a, out tensor.Matrix[T]) error {
	const op = "Cholesky"
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := validate(op, "a,out", a, out); err != nil {
		return err
	}
	if !a.IsSquare() {
		return newError(op, ErrNotSquare, "a is %dx%d", a.Rows, a.Cols)
	}
	if out.Rows != a.Rows || out.Cols != a.Cols {
		return newError(op, ErrDimensionMismatch, "out is %dx%d, want %dx%d", out.Rows, out.Cols, a.Rows, a.Cols)
	}
	if !sameMatrix(out, a) && matricesOverlap(out, a) {
		return newError(op, ErrInvalidDescriptor, "out partially overlaps a")
	}
	n := a.Rows
	if n == 0 {
		return nil
	}

	be := current()
	k := backend.ForReal[T](be)
	copyMatrix[T](k, a, out)
	info := k.Potrf(storedUplo(ul, out), n, out.Data, out.Stride)
	if err := status(op, be, info, ErrNotPositiveDefinite, "leading minor not positive"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		var v tensor.Vector[T]
		if ul == Lower {
			v = segment(out, i, i+1, n-1-i)
		} else {
			v = segment(out, i, 0, i)
		}
		if v.N > 0 {
			k.Set(v.N, 0, v.Data, v.Inc)
		}
	}
	return nil
}

// EigenSym computes the eigen decomposition of the symmetric matrix a, reading only
// its ul triangle. values receives the eigenvalues in ascending order and the
// columns of vectors the matching orthonormal eigenvectors. values must be
// contiguous. vectors may be a itself.
func EigenSym[T tensor.Real](ul Uplo, a tensor.Matrix[T], values tensor.Vector[T], vectors tensor.Matrix[T]) error {
	const op = "EigenSym"
	if err := checkUplo(op, ul); err != nil {
		return err
	}
	if err := validate(op, "a,values,vectors", a, values, vectors); err != nil {
		return err
	}
	if !a.IsSquare() {
		return newError(op, ErrNotSquare, "a is %dx%d", a.Rows, a.Cols)
	}
	n := a.Rows
	if err := checkLen(op, n, "values", values); err != nil {
		return err
	}
	if vectors.Rows != n || vectors.Cols != n {
		return newError(op, ErrDimensionMismatch, "vectors is %dx%d, want %dx%d", vectors.Rows, vectors.Cols, n, n)
	}
	if n > 1 && values.Inc != 1 {
		return newError(op, ErrUnsupported, "values must have unit increment, have %d", values.Inc)
	}
	if !sameMatrix(vectors, a) && matricesOverlap(vectors, a) {
		return newError(op, ErrInvalidDescriptor, "vectors partially overlaps a")
	}
	if overlaps(values.Data, values.Span(), vectors.Data, vectors.Span()) ||
		overlaps(values.Data, values.Span(), a.Data, a.Span()) {
		return newError(op, ErrInvalidDescriptor, "values overlaps a matrix operand")
	}
	if n == 0 {
		return nil
	}

	be := current()
	k := backend.ForReal[T](be)
	copyMatrix[T](k, a, vectors)
	info := k.Syev(storedUplo(ul, vectors), n, vectors.Data, vectors.Stride, values.Data[:n])
	if err := status(op, be, info, ErrConvergence, "off-diagonal elements did not converge"); err != nil {
		return err
	}
	if vectors.Order == tensor.ColMajor {
		// The backend left eigenvectors in the columns of the storage, which are
		// the rows of vectors; transpose in place.
		s, ld := vectors.Data, vectors.Stride
		for i := 0; i < n-1; i++ {
			k.Swap(n-1-i, s[i*ld+i+1:], 1, s[(i+1)*ld+i:], ld)
		}
	}
	return nil
}
