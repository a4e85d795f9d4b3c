package linalg

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/tsawler/go-accelerate/tensor"
)

// FromDense returns a view of d's storage. Writes through the view are visible in d.
func FromDense(d *mat.Dense) tensor.Matrix[float64] {
	raw := d.RawMatrix()
	return tensor.Matrix[float64]{Rows: raw.Rows, Cols: raw.Cols, Stride: raw.Stride, Order: tensor.RowMajor, Data: raw.Data}
}

// FromVecDense returns a view of v's storage.
func FromVecDense(v *mat.VecDense) tensor.Vector[float64] {
	raw := v.RawVector()
	return tensor.Vector[float64]{N: raw.N, Inc: raw.Inc, Data: raw.Data}
}

// FromCDense returns a view of d's storage.
func FromCDense(d *mat.CDense) tensor.Matrix[complex128] {
	raw := d.RawCMatrix()
	return tensor.Matrix[complex128]{Rows: raw.Rows, Cols: raw.Cols, Stride: raw.Stride, Order: tensor.RowMajor, Data: raw.Data}
}

// ToDense returns m as a gonum matrix. Row-major storage is shared; column-major
// storage is copied into a fresh row-major matrix. gonum has no empty matrices, so
// m must have positive dimensions.
func ToDense(m tensor.Matrix[float64]) (*mat.Dense, error) {
	const op = "ToDense"
	if err := validate(op, "m", m); err != nil {
		return nil, err
	}
	if m.Rows == 0 || m.Cols == 0 {
		return nil, newError(op, ErrInvalidDescriptor, "gonum cannot represent a %dx%d matrix", m.Rows, m.Cols)
	}
	if m.Order == tensor.RowMajor {
		var d mat.Dense
		d.SetRawMatrix(blas64.General{Rows: m.Rows, Cols: m.Cols, Stride: m.Stride, Data: m.Data[:m.Span()]})
		return &d, nil
	}
	d := mat.NewDense(m.Rows, m.Cols, nil)
	copyMatrix(kernelsOf[float64](current()), m, FromDense(d))
	return d, nil
}

// View adapts a float64 descriptor to gonum's mat.Matrix so gonum routines can
// read facade-described storage without copying.
type View struct {
	m tensor.Matrix[float64]
}

// NewView wraps m. m must be valid.
func NewView(m tensor.Matrix[float64]) (*View, error) {
	if err := validate("NewView", "m", m); err != nil {
		return nil, err
	}
	return &View{m: m}, nil
}

// Dims implements mat.Matrix.
func (v *View) Dims() (r, c int) {
	return v.m.Dims()
}

// At implements mat.Matrix.
func (v *View) At(i, j int) float64 {
	return v.m.At(i, j)
}

// T implements mat.Matrix. The transpose of a view is the same storage in the
// other order.
func (v *View) T() mat.Matrix {
	t := v.m
	t.Rows, t.Cols = v.m.Cols, v.m.Rows
	if v.m.Order == tensor.RowMajor {
		t.Order = tensor.ColMajor
	} else {
		t.Order = tensor.RowMajor
	}
	return &View{m: t}
}

// Set implements mat.Mutable.
func (v *View) Set(i, j int, x float64) {
	v.m.Set(i, j, x)
}

// Matrix returns the wrapped descriptor.
func (v *View) Matrix() tensor.Matrix[float64] {
	return v.m
}

var (
	_ mat.Matrix  = (*View)(nil)
	_ mat.Mutable = (*View)(nil)
)
