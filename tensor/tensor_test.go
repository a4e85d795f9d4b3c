package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Float32, KindOf[float32]())
	assert.Equal(t, Float64, KindOf[float64]())
	assert.Equal(t, Complex64, KindOf[complex64]())
	assert.Equal(t, Complex128, KindOf[complex128]())

	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Complex64.Size())
	assert.Equal(t, 16, Complex128.Size())
	assert.True(t, Complex64.IsComplex())
	assert.False(t, Float64.IsComplex())
	assert.Equal(t, "complex128", Complex128.String())
}

func TestVectorValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       Vector[float64]
		wantErr bool
	}{
		{"contiguous", NewVector([]float64{1, 2, 3}), false},
		{"strided exact", NewVectorStrided(make([]float64, 5), 3, 2), false},
		{"negative increment", NewVectorStrided(make([]float64, 5), 3, -2), false},
		{"empty nil storage", Vector[float64]{N: 0, Inc: 1}, false},
		{"negative length", Vector[float64]{N: -1, Inc: 1, Data: []float64{1}}, true},
		{"zero increment", Vector[float64]{N: 1, Inc: 0, Data: []float64{1}}, true},
		{"nil storage", Vector[float64]{N: 2, Inc: 1}, true},
		{"short storage", NewVectorStrided(make([]float64, 4), 3, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDescriptor)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateRejectsOversizedDescriptors(t *testing.T) {
	long := MaxDim
	long++

	vectors := map[string]Vector[float64]{
		"minimum increment":    {N: 2, Inc: math.MinInt, Data: []float64{1}},
		"huge increment":       {N: 2, Inc: math.MaxInt, Data: []float64{1}},
		"increment past int32": {N: 2, Inc: long, Data: make([]float64, 4)},
		"length past int32":    {N: long, Inc: 1, Data: []float64{1}},
	}
	for name, v := range vectors {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, v.Validate(), ErrInvalidDescriptor)
		})
	}

	matrices := map[string]Matrix[float64]{
		"huge stride":        {Rows: 3, Cols: 1, Stride: math.MaxInt/2 + 1, Data: []float64{1}},
		"huge column stride": {Rows: 1, Cols: 3, Stride: math.MaxInt/2 + 1, Order: ColMajor, Data: []float64{1}},
		"rows past int32":    {Rows: long, Cols: 1, Stride: 1, Data: []float64{1}},
	}
	for name, m := range matrices {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, m.Validate(), ErrInvalidDescriptor)
		})
	}
}

func TestExtent(t *testing.T) {
	n, ok := extent(3, 4, 1)
	assert.True(t, ok)
	assert.Equal(t, 13, n)

	_, ok = extent(math.MaxInt, 2, 0)
	assert.False(t, ok)
	_, ok = extent(1, math.MaxInt, 1)
	assert.False(t, ok)
}

func TestVectorNegativeIncrement(t *testing.T) {
	data := []float64{1, 0, 2, 0, 3}
	v := NewVectorStrided(data, 3, -2)

	assert.Equal(t, 5, v.Span())
	assert.Equal(t, 3.0, v.At(0))
	assert.Equal(t, 1.0, v.At(2))

	v.Set(0, 30)
	assert.Equal(t, 30.0, data[4])
	assert.Panics(t, func() { v.At(3) })
}

func TestMatrixValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Matrix[float32]
		wantErr bool
	}{
		{"dense row-major", NewMatrix(2, 3, make([]float32, 6)), false},
		{"dense column-major", NewColMajor(2, 3, make([]float32, 6)), false},
		{"padded stride", Matrix[float32]{Rows: 2, Cols: 2, Stride: 4, Data: make([]float32, 6)}, false},
		{"empty", NewMatrix[float32](0, 3, nil), false},
		{"stride below columns", Matrix[float32]{Rows: 2, Cols: 3, Stride: 2, Data: make([]float32, 6)}, true},
		{"column-major stride below rows", Matrix[float32]{Rows: 3, Cols: 2, Stride: 2, Order: ColMajor, Data: make([]float32, 6)}, true},
		{"short storage", NewMatrix(2, 3, make([]float32, 5)), true},
		{"nil storage", NewMatrix[float32](2, 2, nil), true},
		{"negative rows", Matrix[float32]{Rows: -1, Cols: 1, Stride: 1}, true},
		{"unknown order", Matrix[float32]{Rows: 1, Cols: 1, Stride: 1, Order: Order(7), Data: []float32{1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDescriptor)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMatrixViews(t *testing.T) {
	// 2x3 matrix [[1 2 3] [4 5 6]] in both orders.
	row := NewMatrix(2, 3, []complex64{1, 2, 3, 4, 5, 6})
	col := NewColMajor(2, 3, []complex64{1, 4, 2, 5, 3, 6})

	for _, m := range []Matrix[complex64]{row, col} {
		t.Run(m.Order.String(), func(t *testing.T) {
			require.NoError(t, m.Validate())
			assert.Equal(t, complex64(6), m.At(1, 2))
			assert.Equal(t, complex64(2), m.At(0, 1))

			r := m.Row(1)
			require.NoError(t, r.Validate())
			assert.Equal(t, []complex64{4, 5, 6}, []complex64{r.At(0), r.At(1), r.At(2)})

			c := m.Col(2)
			require.NoError(t, c.Validate())
			assert.Equal(t, []complex64{3, 6}, []complex64{c.At(0), c.At(1)})
		})
	}

	assert.Equal(t, 2, row.Major())
	assert.Equal(t, 3, col.Major())
	assert.Panics(t, func() { row.At(2, 0) })
}

func TestMatrixEmptyViews(t *testing.T) {
	m := NewMatrix[float64](2, 0, nil)
	r := m.Row(1)
	assert.Equal(t, 0, r.Len())
	assert.NoError(t, r.Validate())
}
