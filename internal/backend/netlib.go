//go:build netlib && darwin && cgo

package backend

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

// The netlib backend reaches Accelerate's CBLAS through gonum's generic cgo
// bindings instead of the shims in internal/cgo, which makes it a second,
// independent path to the same library. Build with
//
//	CGO_LDFLAGS="-framework Accelerate" go build -tags netlib
func init() {
	// gonum's LAPACK calls through blas64, so route it to the same library.
	blas64.Use(netlib.Implementation{})
	Register("netlib", 50, func() (*Backend, error) {
		return NewGonum("netlib", netlib.Implementation{}), nil
	})
}
