package linalg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/go-accelerate/tensor"
)

// Error kinds. Every error returned by this package is an *Error wrapping one of these.
var (
	// ErrInvalidDescriptor: negative count, zero stride, missing or short storage,
	// an unknown flag, or an output that overlaps an input it must not overlap.
	ErrInvalidDescriptor = tensor.ErrInvalidDescriptor
	// ErrDimensionMismatch: shapes are incompatible for the operation.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrNotSquare: the operation needs a square matrix.
	ErrNotSquare = errors.New("matrix is not square")
	// ErrSingularMatrix: LU factorisation hit a zero pivot or a is singular to working precision.
	ErrSingularMatrix = errors.New("matrix is singular")
	// ErrNotPositiveDefinite: Cholesky factorisation found a non-positive leading minor.
	ErrNotPositiveDefinite = errors.New("matrix is not positive definite")
	// ErrConvergence: an iterative backend routine did not converge.
	ErrConvergence = errors.New("algorithm failed to converge")
	// ErrUnsupported: the operand layout asks for something BLAS cannot express,
	// such as conjugation without transposition.
	ErrUnsupported = errors.New("unsupported operand layout")
	// ErrBackend: the backend rejected its arguments or could not be opened.
	ErrBackend = errors.New("backend failure")
)

// Error describes a failed operation.
type Error struct {
	Op   string // facade operation, e.g. "Solve"
	Err  error  // one of the Err* kinds, possibly wrapped with detail
	Info int    // backend status code; 0 when the failure was caught before delegation
	Msg  string // extra detail
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("linalg: ")
	sb.WriteString(e.Op)
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Info != 0 {
		fmt.Fprintf(&sb, " (info %d)", e.Info)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, kind error, format string, args ...any) *Error {
	return &Error{Op: op, Err: kind, Msg: fmt.Sprintf(format, args...)}
}

type validator interface {
	Validate() error
}

// validate checks each descriptor; names is a comma separated list matching ds.
func validate(op, names string, ds ...validator) error {
	labels := strings.Split(names, ",")
	for i, d := range ds {
		if err := d.Validate(); err != nil {
			return &Error{Op: op, Err: err, Msg: "operand " + labels[i]}
		}
	}
	return nil
}
