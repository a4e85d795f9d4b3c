package cgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/blas"
)

func TestEnumMapping(t *testing.T) {
	assert.Equal(t, cblasNoTrans, transpose(blas.NoTrans))
	assert.Equal(t, cblasTrans, transpose(blas.Trans))
	assert.Equal(t, cblasConjTrans, transpose(blas.ConjTrans))

	assert.Equal(t, cblasUpper, uplo(blas.Upper))
	assert.Equal(t, cblasLower, uplo(blas.Lower))

	assert.Equal(t, cblasUnit, diag(blas.Unit))
	assert.Equal(t, cblasNonUnit, diag(blas.NonUnit))

	assert.Equal(t, cblasLeft, side(blas.Left))
	assert.Equal(t, cblasRight, side(blas.Right))
}

func TestLapackUploMirrors(t *testing.T) {
	// A row-major upper triangle is the column-major lower triangle.
	assert.Equal(t, byte('L'), lapackUplo(blas.Upper))
	assert.Equal(t, byte('U'), lapackUplo(blas.Lower))
}
