// Package tensor describes caller-owned numeric storage handed to the linalg facade.
//
// A descriptor never owns its data. It records where the elements live, how many
// there are and how far apart they sit, so the storage can be passed to a BLAS
// backend without copying. Descriptors are cheap values meant to be built right
// before a call and dropped after it.
package tensor

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrInvalidDescriptor is returned by Validate for negative counts, zero strides,
// missing storage or storage too short for the described shape.
var ErrInvalidDescriptor = errors.New("invalid descriptor")

// MaxDim bounds every count, increment and leading dimension. Backends take
// them as 32-bit C integers.
const MaxDim = math.MaxInt32

// Order is the storage order of a matrix.
type Order int

// Storage orders. RowMajor is the zero value.
const (
	RowMajor Order = iota
	ColMajor
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "column-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Vector is a strided view of N elements of Data.
// A negative Inc walks the storage backwards: element i lives at Data[(N-1-i)*|Inc|].
type Vector[T Scalar] struct {
	N    int
	Inc  int
	Data []T
}

// NewVector describes all of data as a contiguous vector.
func NewVector[T Scalar](data []T) Vector[T] {
	return Vector[T]{N: len(data), Inc: 1, Data: data}
}

// NewVectorStrided describes n elements of data spaced inc apart.
func NewVectorStrided[T Scalar](data []T, n, inc int) Vector[T] {
	return Vector[T]{N: n, Inc: inc, Data: data}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return v.N
}

// Validate checks the structural invariants of the descriptor.
func (v Vector[T]) Validate() error {
	if v.N < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidDescriptor, v.N)
	}
	if v.N > MaxDim {
		return fmt.Errorf("%w: length %d exceeds %d", ErrInvalidDescriptor, v.N, MaxDim)
	}
	if v.Inc == 0 {
		return fmt.Errorf("%w: zero increment", ErrInvalidDescriptor)
	}
	if v.Inc > MaxDim || v.Inc < -MaxDim {
		return fmt.Errorf("%w: increment %d exceeds %d in magnitude", ErrInvalidDescriptor, v.Inc, MaxDim)
	}
	if v.N == 0 {
		return nil
	}
	if v.Data == nil {
		return fmt.Errorf("%w: nil storage for %d elements", ErrInvalidDescriptor, v.N)
	}
	need, ok := extent(v.N-1, abs(v.Inc), 1)
	if !ok {
		return fmt.Errorf("%w: vector of %d elements with increment %d overflows the address space",
			ErrInvalidDescriptor, v.N, v.Inc)
	}
	if len(v.Data) < need {
		return fmt.Errorf("%w: vector of %d elements with increment %d needs %d elements of storage, have %d",
			ErrInvalidDescriptor, v.N, v.Inc, need, len(v.Data))
	}
	return nil
}

// Span returns the number of storage elements the vector touches.
// It is only meaningful for a descriptor that passed Validate.
func (v Vector[T]) Span() int {
	if v.N <= 0 {
		return 0
	}
	return 1 + (v.N-1)*abs(v.Inc)
}

// At returns element i. It panics if i is out of range.
func (v Vector[T]) At(i int) T {
	return v.Data[v.offset(i)]
}

// Set stores x at element i. It panics if i is out of range.
func (v Vector[T]) Set(i int, x T) {
	v.Data[v.offset(i)] = x
}

func (v Vector[T]) offset(i int) int {
	if i < 0 || i >= v.N {
		panic(fmt.Sprintf("tensor: vector index %d out of range [0,%d)", i, v.N))
	}
	if v.Inc > 0 {
		return i * v.Inc
	}
	return (v.N - 1 - i) * -v.Inc
}

// Matrix is a Rows x Cols view of Data.
// Stride is the leading dimension: the distance between consecutive rows for RowMajor,
// between consecutive columns for ColMajor.
type Matrix[T Scalar] struct {
	Rows   int
	Cols   int
	Stride int
	Order  Order
	Data   []T
}

// NewMatrix describes data as a dense row-major rows x cols matrix.
func NewMatrix[T Scalar](rows, cols int, data []T) Matrix[T] {
	return Matrix[T]{Rows: rows, Cols: cols, Stride: max(1, cols), Order: RowMajor, Data: data}
}

// NewColMajor describes data as a dense column-major rows x cols matrix.
func NewColMajor[T Scalar](rows, cols int, data []T) Matrix[T] {
	return Matrix[T]{Rows: rows, Cols: cols, Stride: max(1, rows), Order: ColMajor, Data: data}
}

// Dims returns the logical shape.
func (m Matrix[T]) Dims() (rows, cols int) {
	return m.Rows, m.Cols
}

// IsSquare reports whether Rows == Cols.
func (m Matrix[T]) IsSquare() bool {
	return m.Rows == m.Cols
}

// Major returns the number of rows (RowMajor) or columns (ColMajor).
func (m Matrix[T]) Major() int {
	if m.Order == ColMajor {
		return m.Cols
	}
	return m.Rows
}

// Minor returns the number of contiguous elements in each major line.
func (m Matrix[T]) Minor() int {
	if m.Order == ColMajor {
		return m.Rows
	}
	return m.Cols
}

// Validate checks the structural invariants of the descriptor.
func (m Matrix[T]) Validate() error {
	if m.Order != RowMajor && m.Order != ColMajor {
		return fmt.Errorf("%w: unknown storage order %d", ErrInvalidDescriptor, int(m.Order))
	}
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidDescriptor, m.Rows, m.Cols)
	}
	if m.Rows > MaxDim || m.Cols > MaxDim || m.Stride > MaxDim {
		return fmt.Errorf("%w: %dx%d matrix with leading dimension %d exceeds %d",
			ErrInvalidDescriptor, m.Rows, m.Cols, m.Stride, MaxDim)
	}
	if m.Stride < max(1, m.Minor()) {
		return fmt.Errorf("%w: leading dimension %d smaller than %d for %s %dx%d",
			ErrInvalidDescriptor, m.Stride, max(1, m.Minor()), m.Order, m.Rows, m.Cols)
	}
	if m.Rows == 0 || m.Cols == 0 {
		return nil
	}
	if m.Data == nil {
		return fmt.Errorf("%w: nil storage for %dx%d matrix", ErrInvalidDescriptor, m.Rows, m.Cols)
	}
	need, ok := extent(m.Major()-1, m.Stride, m.Minor())
	if !ok {
		return fmt.Errorf("%w: %dx%d matrix with leading dimension %d overflows the address space",
			ErrInvalidDescriptor, m.Rows, m.Cols, m.Stride)
	}
	if len(m.Data) < need {
		return fmt.Errorf("%w: %dx%d matrix with leading dimension %d needs %d elements of storage, have %d",
			ErrInvalidDescriptor, m.Rows, m.Cols, m.Stride, need, len(m.Data))
	}
	return nil
}

// Span returns the number of storage elements the matrix touches.
// It is only meaningful for a descriptor that passed Validate.
func (m Matrix[T]) Span() int {
	if m.Rows == 0 || m.Cols == 0 {
		return 0
	}
	return (m.Major()-1)*m.Stride + m.Minor()
}

// At returns element (i, j). It panics if the index is out of range.
func (m Matrix[T]) At(i, j int) T {
	return m.Data[m.offset(i, j)]
}

// Set stores x at (i, j). It panics if the index is out of range.
func (m Matrix[T]) Set(i, j int, x T) {
	m.Data[m.offset(i, j)] = x
}

func (m Matrix[T]) offset(i, j int) int {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("tensor: matrix index (%d,%d) out of range %dx%d", i, j, m.Rows, m.Cols))
	}
	if m.Order == ColMajor {
		return j*m.Stride + i
	}
	return i*m.Stride + j
}

// Row returns row i as a vector sharing m's storage.
func (m Matrix[T]) Row(i int) Vector[T] {
	if i < 0 || i >= m.Rows {
		panic(fmt.Sprintf("tensor: row %d out of range [0,%d)", i, m.Rows))
	}
	if m.Cols == 0 {
		return Vector[T]{Inc: 1}
	}
	if m.Order == ColMajor {
		return Vector[T]{N: m.Cols, Inc: m.Stride, Data: m.Data[i:]}
	}
	return Vector[T]{N: m.Cols, Inc: 1, Data: m.Data[i*m.Stride:]}
}

// Col returns column j as a vector sharing m's storage.
func (m Matrix[T]) Col(j int) Vector[T] {
	if j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("tensor: column %d out of range [0,%d)", j, m.Cols))
	}
	if m.Rows == 0 {
		return Vector[T]{Inc: 1}
	}
	if m.Order == ColMajor {
		return Vector[T]{N: m.Rows, Inc: 1, Data: m.Data[j*m.Stride:]}
	}
	return Vector[T]{N: m.Rows, Inc: m.Stride, Data: m.Data[j:]}
}

// extent returns count*step + tail for non-negative arguments, reporting false
// when the result does not fit in an int.
func extent(count, step, tail int) (int, bool) {
	hi, lo := bits.Mul(uint(count), uint(step))
	if hi != 0 || lo > uint(math.MaxInt-tail) {
		return 0, false
	}
	return int(lo) + tail, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
