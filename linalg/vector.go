package linalg

import (
	"gonum.org/v1/gonum/blas"

	"github.com/tsawler/go-accelerate/internal/backend"
	"github.com/tsawler/go-accelerate/tensor"
)

func checkLen[T tensor.Scalar](op string, want int, name string, v tensor.Vector[T]) error {
	if v.N != want {
		return newError(op, ErrDimensionMismatch, "%s has %d elements, want %d", name, v.N, want)
	}
	return nil
}

// checkPair validates two vectors of equal length.
func checkPair[T tensor.Scalar](op string, x, y tensor.Vector[T]) error {
	if err := validate(op, "x,y", x, y); err != nil {
		return err
	}
	return checkLen(op, x.N, "y", y)
}

// Fill sets every element of x to alpha.
func Fill[T tensor.Scalar](alpha T, x tensor.Vector[T]) error {
	if err := validate("Fill", "x", x); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	kernelsOf[T](current()).Set(x.N, alpha, x.Data, abs(x.Inc))
	return nil
}

// Copy sets y = x.
func Copy[T tensor.Scalar](x, y tensor.Vector[T]) error {
	if err := checkPair("Copy", x, y); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	kernelsOf[T](current()).Copy(x.N, x.Data, x.Inc, y.Data, y.Inc)
	return nil
}

// Swap exchanges the elements of x and y.
func Swap[T tensor.Scalar](x, y tensor.Vector[T]) error {
	if err := checkPair("Swap", x, y); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	kernelsOf[T](current()).Swap(x.N, x.Data, x.Inc, y.Data, y.Inc)
	return nil
}

// Scale sets x = alpha*x.
func Scale[T tensor.Scalar](alpha T, x tensor.Vector[T]) error {
	if err := validate("Scale", "x", x); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	kernelsOf[T](current()).Scal(x.N, alpha, x.Data, abs(x.Inc))
	return nil
}

// ScaleReal sets x = alpha*x for a real alpha.
func ScaleReal[T tensor.Scalar](alpha float64, x tensor.Vector[T]) error {
	if err := validate("ScaleReal", "x", x); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	kernelsOf[T](current()).Rscal(x.N, alpha, x.Data, abs(x.Inc))
	return nil
}

// Axpy sets y = alpha*x + y.
func Axpy[T tensor.Scalar](alpha T, x, y tensor.Vector[T]) error {
	if err := checkPair("Axpy", x, y); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	kernelsOf[T](current()).Axpy(x.N, alpha, x.Data, x.Inc, y.Data, y.Inc)
	return nil
}

// Axpby sets y = alpha*x + beta*y.
func Axpby[T tensor.Scalar](alpha T, x tensor.Vector[T], beta T, y tensor.Vector[T]) error {
	if err := checkPair("Axpby", x, y); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	kernelsOf[T](current()).Axpby(x.N, alpha, x.Data, x.Inc, beta, y.Data, y.Inc)
	return nil
}

// Add sets out = a + b. out may be the same vector as a or b but must not
// otherwise overlap them.
func Add[T tensor.Scalar](a, b, out tensor.Vector[T]) error {
	return combine("Add", 1, a, b, out)
}

// Sub sets out = a - b with the aliasing rules of Add.
func Sub[T tensor.Scalar](a, b, out tensor.Vector[T]) error {
	return combine("Sub", -1, a, b, out)
}

// combine computes out = a + sign*b.
func combine[T tensor.Scalar](op string, sign T, a, b, out tensor.Vector[T]) error {
	if err := validate(op, "a,b,out", a, b, out); err != nil {
		return err
	}
	if err := checkLen(op, a.N, "b", b); err != nil {
		return err
	}
	if err := checkLen(op, a.N, "out", out); err != nil {
		return err
	}
	outA, outB := sameVector(out, a), sameVector(out, b)
	if !outA && overlaps(out.Data, out.Span(), a.Data, a.Span()) {
		return newError(op, ErrInvalidDescriptor, "out partially overlaps a")
	}
	if !outB && overlaps(out.Data, out.Span(), b.Data, b.Span()) {
		return newError(op, ErrInvalidDescriptor, "out partially overlaps b")
	}
	if a.N == 0 {
		return nil
	}

	k := kernelsOf[T](current())
	switch {
	case outA:
		k.Axpy(a.N, sign, b.Data, b.Inc, out.Data, out.Inc)
	case outB:
		// out = a + sign*out
		k.Axpby(a.N, 1, a.Data, a.Inc, sign, out.Data, out.Inc)
	default:
		k.Copy(a.N, a.Data, a.Inc, out.Data, out.Inc)
		k.Axpy(a.N, sign, b.Data, b.Inc, out.Data, out.Inc)
	}
	return nil
}

// Dot returns the unconjugated inner product sum a[i]*b[i].
func Dot[T tensor.Scalar](a, b tensor.Vector[T]) (T, error) {
	var zero T
	if err := checkPair("Dot", a, b); err != nil {
		return zero, err
	}
	if a.N == 0 {
		return zero, nil
	}
	return kernelsOf[T](current()).Dotu(a.N, a.Data, a.Inc, b.Data, b.Inc), nil
}

// Dotc returns sum conj(a[i])*b[i]. For real types it equals Dot.
func Dotc[T tensor.Scalar](a, b tensor.Vector[T]) (T, error) {
	var zero T
	if err := checkPair("Dotc", a, b); err != nil {
		return zero, err
	}
	if a.N == 0 {
		return zero, nil
	}
	return kernelsOf[T](current()).Dotc(a.N, a.Data, a.Inc, b.Data, b.Inc), nil
}

// DotMixed returns sum a[i]*b[i] accumulated and returned in double precision.
func DotMixed(a, b tensor.Vector[float32]) (float64, error) {
	if err := checkPair("DotMixed", a, b); err != nil {
		return 0, err
	}
	if a.N == 0 {
		return 0, nil
	}
	return current().Float32.Dsdot(a.N, a.Data, a.Inc, b.Data, b.Inc), nil
}

// DotMixedPlus returns alpha + sum a[i]*b[i], accumulated in double precision and
// rounded once to single precision.
func DotMixedPlus(alpha float32, a, b tensor.Vector[float32]) (float32, error) {
	if err := checkPair("DotMixedPlus", a, b); err != nil {
		return 0, err
	}
	if a.N == 0 {
		return alpha, nil
	}
	return current().Float32.Sdsdot(a.N, alpha, a.Data, a.Inc, b.Data, b.Inc), nil
}

// Norm1 returns the sum of absolute values. For complex elements each term
// is |re|+|im|, as in BLAS asum.
func Norm1[T tensor.Scalar](x tensor.Vector[T]) (float64, error) {
	if err := validate("Norm1", "x", x); err != nil {
		return 0, err
	}
	if x.N == 0 {
		return 0, nil
	}
	return kernelsOf[T](current()).Asum(x.N, x.Data, abs(x.Inc)), nil
}

// Norm2 returns the Euclidean norm.
func Norm2[T tensor.Scalar](x tensor.Vector[T]) (float64, error) {
	if err := validate("Norm2", "x", x); err != nil {
		return 0, err
	}
	if x.N == 0 {
		return 0, nil
	}
	return kernelsOf[T](current()).Nrm2(x.N, x.Data, abs(x.Inc)), nil
}

// ArgMaxAbs returns the index of the element of largest magnitude (|re|+|im| for
// complex elements), or -1 for an empty vector.
func ArgMaxAbs[T tensor.Scalar](x tensor.Vector[T]) (int, error) {
	if err := validate("ArgMaxAbs", "x", x); err != nil {
		return -1, err
	}
	if x.N == 0 {
		return -1, nil
	}
	idx := kernelsOf[T](current()).Iamax(x.N, x.Data, abs(x.Inc))
	if x.Inc < 0 {
		idx = x.N - 1 - idx
	}
	return idx, nil
}

// Rotg constructs the Givens rotation that zeroes b:
//
//	[ c s] [a]   [r]
//	[-s c] [b] = [0]
//
// z encodes the rotation for later reconstruction.
func Rotg[T tensor.Real](a, b T) (c, s, r, z T) {
	return backend.ForReal[T](current()).Rotg(a, b)
}

// Rot applies the plane rotation (c, s) to the pairs (x[i], y[i]).
func Rot[T tensor.Real](x, y tensor.Vector[T], c, s T) error {
	if err := checkPair("Rot", x, y); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	backend.ForReal[T](current()).Rot(x.N, x.Data, x.Inc, y.Data, y.Inc, c, s)
	return nil
}

// RotgComplex constructs the complex Givens rotation with real cosine that zeroes b:
//
//	[   c        s] [a]   [r]
//	[-conj(s)    c] [b] = [0]
func RotgComplex[T tensor.Complex](a, b T) (c float64, s, r T) {
	return backend.ForComplex[T](current()).Crotg(a, b)
}

// RotComplex applies the rotation with real c and s to the pairs (x[i], y[i]):
// x[i] = c*x[i] + s*y[i] and y[i] = c*y[i] - s*x[i].
func RotComplex[T tensor.Complex](x, y tensor.Vector[T], c, s float64) error {
	if err := checkPair("RotComplex", x, y); err != nil {
		return err
	}
	if x.N == 0 {
		return nil
	}
	backend.ForComplex[T](current()).Csrot(x.N, x.Data, x.Inc, y.Data, y.Inc, c, s)
	return nil
}

// ModifiedRotation is a modified Givens transformation H. H holds h11, h21, h12
// and h22; Flag states which of them are implied:
//
//	blas.Identity     H = I
//	blas.Rescaling    all four are stored
//	blas.OffDiagonal  h11 = h22 = 1
//	blas.Diagonal     h21 = -1, h12 = 1
type ModifiedRotation[T tensor.Real] struct {
	Flag blas.Flag
	H    [4]T
}

// Rotmg constructs the modified Givens transformation that zeroes the second
// component of (sqrt(d1)*b1, sqrt(d2)*b2). It returns the transformation and the
// updated scale factors and first component.
func Rotmg[T tensor.Real](d1, d2, b1, b2 T) (p ModifiedRotation[T], rd1, rd2, rb1 T) {
	p.Flag, p.H, rd1, rd2, rb1 = backend.ForReal[T](current()).Rotmg(d1, d2, b1, b2)
	return p, rd1, rd2, rb1
}

// Rotm applies the modified Givens transformation p to the pairs (x[i], y[i]).
func Rotm[T tensor.Real](x, y tensor.Vector[T], p ModifiedRotation[T]) error {
	if err := checkPair("Rotm", x, y); err != nil {
		return err
	}
	switch p.Flag {
	case blas.Identity, blas.Rescaling, blas.OffDiagonal, blas.Diagonal:
	default:
		return newError("Rotm", ErrInvalidDescriptor, "unknown rotation flag %d", p.Flag)
	}
	if x.N == 0 {
		return nil
	}
	backend.ForReal[T](current()).Rotm(x.N, x.Data, x.Inc, y.Data, y.Inc, p.Flag, p.H)
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
