package linalg

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/tsawler/go-accelerate/internal/backend"
	_ "github.com/tsawler/go-accelerate/internal/cgo"
	"github.com/tsawler/go-accelerate/tensor"
)

// EnvBackend names the environment variable consulted once at start-up to pick a backend.
const EnvBackend = "GOACCEL_BACKEND"

var active atomic.Pointer[backend.Backend]

func init() {
	selectBackend(os.Getenv(EnvBackend))
}

// selectBackend activates requested, or the most preferred backend that opens
// when requested is empty or unavailable.
func selectBackend(requested string) {
	if requested != "" {
		err := UseBackend(requested)
		if err == nil {
			return
		}
		log.Debug().Err(err).Str("env", EnvBackend).Msg("requested backend unavailable, falling back")
	}
	for _, name := range backend.Names() {
		if err := UseBackend(name); err == nil {
			return
		}
	}
}

// Backends returns the names of the compiled-in backends, most preferred first.
// "accelerate" is present on darwin with cgo, "netlib" on darwin with the netlib build tag,
// and "gonum" always.
//
// The netlib tag installs Accelerate's CBLAS as gonum's process-wide blas64
// implementation, so the LAPACK routines of the "gonum" backend then also run on
// Accelerate for their inner BLAS calls. The pure Go vector and matrix kernels of
// "gonum" are unaffected.
func Backends() []string {
	return backend.Names()
}

// UseBackend switches every subsequent operation to the named backend.
// Operations already running finish on the backend they started with.
func UseBackend(name string) error {
	b, err := backend.Open(name)
	if err != nil {
		return &Error{Op: "UseBackend", Err: fmt.Errorf("%w: %w", ErrBackend, err)}
	}
	active.Store(b)
	log.Debug().Str("backend", b.Name).Msg("linear algebra backend selected")
	return nil
}

// BackendName returns the name of the backend in use.
func BackendName() string {
	return current().Name
}

func current() *backend.Backend {
	return active.Load()
}

func kernelsOf[T tensor.Scalar](b *backend.Backend) backend.Kernels[T] {
	return backend.For[T](b)
}

// status maps a backend info code to an error. positive is the kind reported for info > 0.
func status(op string, b *backend.Backend, info int, positive error, detail string) error {
	if info == 0 {
		return nil
	}
	log.Debug().Str("op", op).Str("backend", b.Name).Int("info", info).Msg("backend reported failure")
	if info < 0 {
		return &Error{Op: op, Err: ErrBackend, Info: info, Msg: "argument rejected by " + b.Name}
	}
	return &Error{Op: op, Err: positive, Info: info, Msg: detail}
}
