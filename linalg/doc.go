// Package linalg is a dimension-checked facade over BLAS and LAPACK for float32,
// float64, complex64 and complex128.
//
// Operands are tensor.Vector and tensor.Matrix descriptors over caller-owned slices.
// Every call validates its descriptors and shape relations first and only then
// hands the storage to the active backend, so a rejected call writes nothing and
// the backend never sees an argument it would refuse. The facade itself never
// allocates; any workspace is owned by the backend.
//
// The operations cover the dense BLAS levels 1 to 3, including the symmetric,
// Hermitian and triangular families, and LU, Cholesky and symmetric eigen solvers.
// Band and packed storage are not represented.
//
// Matrices may be row-major or column-major, and operands of one call may mix
// both. Backends work in row-major order; the facade maps column-major operands by
// flipping transpose and triangle flags. A conjugate-transpose of a complex operand
// that would end up as a plain conjugate after that mapping cannot be expressed in
// BLAS and is reported as ErrUnsupported, as is a complex Hermitian operand stored
// column-major where the routine cannot absorb its conjugate.
//
// # Backends
//
// On darwin with cgo the Accelerate framework is used. The netlib build tag adds a
// second route to Accelerate's CBLAS through gonum's cgo bindings, and the pure Go
// gonum backend is always available. The GOACCEL_BACKEND environment variable picks one at start-up;
// UseBackend switches at run time.
//
// # Errors
//
// Every error is an *Error carrying the operation name and, for backend failures,
// the LAPACK info code. Match the kind with errors.Is:
//
//	err := linalg.Solve(a, b, x)
//	if errors.Is(err, linalg.ErrSingularMatrix) {
//		...
//	}
package linalg
