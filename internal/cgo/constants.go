package cgo

import "gonum.org/v1/gonum/blas"

// CBLAS enumeration values as defined by the C interface.
const (
	cblasRowMajor = 101

	cblasNoTrans   = 111
	cblasTrans     = 112
	cblasConjTrans = 113

	cblasUpper = 121
	cblasLower = 122

	cblasNonUnit = 131
	cblasUnit    = 132

	cblasLeft  = 141
	cblasRight = 142
)

func transpose(t blas.Transpose) int {
	switch t {
	case blas.Trans:
		return cblasTrans
	case blas.ConjTrans:
		return cblasConjTrans
	default:
		return cblasNoTrans
	}
}

func uplo(ul blas.Uplo) int {
	if ul == blas.Lower {
		return cblasLower
	}
	return cblasUpper
}

func diag(d blas.Diag) int {
	if d == blas.Unit {
		return cblasUnit
	}
	return cblasNonUnit
}

func side(s blas.Side) int {
	if s == blas.Right {
		return cblasRight
	}
	return cblasLeft
}

// lapackUplo returns the Fortran uplo character for a row-major matrix handed to
// column-major LAPACK: the stored triangle appears mirrored.
func lapackUplo(ul blas.Uplo) byte {
	if ul == blas.Lower {
		return 'U'
	}
	return 'L'
}
