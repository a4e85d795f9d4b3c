package linalg

import (
	"unsafe"

	"gonum.org/v1/gonum/blas"

	"github.com/tsawler/go-accelerate/internal/backend"
	"github.com/tsawler/go-accelerate/tensor"
)

// TransOp selects op(A): A, A^T or A^H.
type TransOp = blas.Transpose

// Uplo selects the referenced triangle of a triangular or symmetric matrix.
type Uplo = blas.Uplo

// Diag states whether a triangular matrix has an implicit unit diagonal.
type Diag = blas.Diag

// Side states whether a structured matrix multiplies from the left or the right.
type Side = blas.Side

const (
	NoTrans   = blas.NoTrans
	Trans     = blas.Trans
	ConjTrans = blas.ConjTrans

	Upper = blas.Upper
	Lower = blas.Lower

	NonUnit = blas.NonUnit
	Unit    = blas.Unit

	Left  = blas.Left
	Right = blas.Right
)

func checkTranspose(op string, t TransOp) error {
	switch t {
	case NoTrans, Trans, ConjTrans:
		return nil
	}
	return newError(op, ErrInvalidDescriptor, "unknown transpose flag %d", t)
}

func checkUplo(op string, ul Uplo) error {
	if ul == Upper || ul == Lower {
		return nil
	}
	return newError(op, ErrInvalidDescriptor, "unknown triangle flag %d", ul)
}

func checkSide(op string, s Side) error {
	if s == Left || s == Right {
		return nil
	}
	return newError(op, ErrInvalidDescriptor, "unknown side flag %d", s)
}

// otherSide mirrors s for an operand stored column-major.
func otherSide(s Side) Side {
	if s == Left {
		return Right
	}
	return Left
}

func checkDiag(op string, d Diag) error {
	if d == Unit || d == NonUnit {
		return nil
	}
	return newError(op, ErrInvalidDescriptor, "unknown diagonal flag %d", d)
}

// opDims returns the shape of op(m).
func opDims[T tensor.Scalar](t TransOp, m tensor.Matrix[T]) (rows, cols int) {
	if t == NoTrans {
		return m.Rows, m.Cols
	}
	return m.Cols, m.Rows
}

// stored returns the shape of m's storage read as a row-major matrix.
// For ColMajor that is the shape of the transpose.
func stored[T tensor.Scalar](m tensor.Matrix[T]) (rows, cols int) {
	return m.Major(), m.Minor()
}

// storedOp returns the flag that makes a row-major BLAS routine apply op to the
// logical matrix m, when m's storage is handed over as is. flip asks for the
// transpose of op(m) instead, used when the result itself is stored column-major.
// ok is false when the combination needs conjugation without transposition.
func storedOp[T tensor.Scalar](t TransOp, m tensor.Matrix[T], flip bool) (blas.Transpose, bool) {
	trans := t != NoTrans
	conj := t == ConjTrans && tensor.KindOf[T]().IsComplex()
	if m.Order == tensor.ColMajor {
		trans = !trans
	}
	if flip {
		trans = !trans
	}
	switch {
	case !trans && conj:
		return blas.NoTrans, false
	case !trans:
		return blas.NoTrans, true
	case conj:
		return blas.ConjTrans, true
	default:
		return blas.Trans, true
	}
}

// storedUplo returns the triangle of m's storage that holds the logical triangle ul.
func storedUplo[T tensor.Scalar](ul Uplo, m tensor.Matrix[T]) Uplo {
	if m.Order == tensor.RowMajor {
		return ul
	}
	if ul == Upper {
		return Lower
	}
	return Upper
}

// segment returns count elements of row i starting at column j.
func segment[T tensor.Scalar](m tensor.Matrix[T], i, j, count int) tensor.Vector[T] {
	if count == 0 {
		return tensor.Vector[T]{Inc: 1}
	}
	if m.Order == tensor.ColMajor {
		return tensor.Vector[T]{N: count, Inc: m.Stride, Data: m.Data[j*m.Stride+i:]}
	}
	return tensor.Vector[T]{N: count, Inc: 1, Data: m.Data[i*m.Stride+j:]}
}

// span returns the address range covered by the first n elements of data.
func span[T tensor.Scalar](data []T, n int) (lo, hi uintptr) {
	if n == 0 || len(data) == 0 {
		return 0, 0
	}
	var zero T
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	return lo, lo + uintptr(n)*unsafe.Sizeof(zero)
}

// overlaps reports whether the storage touched by two descriptors intersects.
func overlaps[T tensor.Scalar](a []T, na int, b []T, nb int) bool {
	alo, ahi := span(a, na)
	blo, bhi := span(b, nb)
	if alo == ahi || blo == bhi {
		return false
	}
	return alo < bhi && blo < ahi
}

func matricesOverlap[T tensor.Scalar](a, b tensor.Matrix[T]) bool {
	return overlaps(a.Data, a.Span(), b.Data, b.Span())
}

// sameMatrix reports whether a and b describe exactly the same elements.
func sameMatrix[T tensor.Scalar](a, b tensor.Matrix[T]) bool {
	if a.Span() == 0 || b.Span() == 0 {
		return a.Span() == b.Span()
	}
	return unsafe.SliceData(a.Data) == unsafe.SliceData(b.Data) &&
		a.Order == b.Order && a.Stride == b.Stride && a.Rows == b.Rows && a.Cols == b.Cols
}

// sameVector reports whether x and y describe exactly the same elements.
func sameVector[T tensor.Scalar](x, y tensor.Vector[T]) bool {
	if x.N == 0 || y.N == 0 {
		return x.N == y.N
	}
	return unsafe.SliceData(x.Data) == unsafe.SliceData(y.Data) && x.N == y.N && x.Inc == y.Inc
}

// copyMatrix copies src into dst line by line; the shapes must agree.
func copyMatrix[T tensor.Scalar](k backend.Kernels[T], src, dst tensor.Matrix[T]) {
	if src.Span() == 0 || sameMatrix(src, dst) {
		return
	}
	if src.Order == dst.Order {
		for i := 0; i < src.Major(); i++ {
			k.Copy(src.Minor(), src.Data[i*src.Stride:], 1, dst.Data[i*dst.Stride:], 1)
		}
		return
	}
	for i := 0; i < src.Rows; i++ {
		s, d := src.Row(i), dst.Row(i)
		k.Copy(s.N, s.Data, s.Inc, d.Data, d.Inc)
	}
}

// scaleMatrix sets m to beta*m. A zero beta overwrites m without reading it.
func scaleMatrix[T tensor.Scalar](k backend.Kernels[T], beta T, m tensor.Matrix[T]) {
	var zero T
	if m.Span() == 0 {
		return
	}
	for i := 0; i < m.Major(); i++ {
		line := m.Data[i*m.Stride:]
		switch beta {
		case 1:
		case zero:
			k.Set(m.Minor(), zero, line, 1)
		default:
			k.Scal(m.Minor(), beta, line, 1)
		}
	}
}
