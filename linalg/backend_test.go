package linalg

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/go-accelerate/tensor"
)

// eachBackend runs fn once per compiled-in backend and restores the active one.
func eachBackend(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	prev := BackendName()
	t.Cleanup(func() { require.NoError(t, UseBackend(prev)) })
	for _, name := range Backends() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, UseBackend(name))
			fn(t)
		})
	}
}

func TestBackends(t *testing.T) {
	names := Backends()
	require.Contains(t, names, "gonum")
	assert.Equal(t, "gonum", names[len(names)-1])
	assert.Contains(t, names, BackendName())
}

func TestUseBackend(t *testing.T) {
	prev := BackendName()
	defer func() { require.NoError(t, UseBackend(prev)) }()

	require.NoError(t, UseBackend("gonum"))
	assert.Equal(t, "gonum", BackendName())

	err := UseBackend("nope")
	require.ErrorIs(t, err, ErrBackend)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "UseBackend", e.Op)
	assert.Equal(t, "gonum", BackendName(), "a failed switch keeps the current backend")
}

func TestErrorFormat(t *testing.T) {
	err := &Error{Op: "Solve", Err: ErrSingularMatrix, Info: 2, Msg: "zero pivot"}
	assert.Equal(t, "linalg: Solve: matrix is singular: zero pivot (info 2)", err.Error())
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestSelectBackendFallbackLogsAtDebug(t *testing.T) {
	prev, prevLogger := BackendName(), log.Logger
	t.Cleanup(func() {
		log.Logger = prevLogger
		require.NoError(t, UseBackend(prev))
	})

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.InfoLevel)
	selectBackend("no-such-backend")
	assert.Empty(t, buf.String())
	assert.Equal(t, Backends()[0], BackendName())

	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	selectBackend("no-such-backend")
	assert.Contains(t, buf.String(), "requested backend unavailable")
	assert.Contains(t, buf.String(), EnvBackend)

	buf.Reset()
	selectBackend("gonum")
	assert.Equal(t, "gonum", BackendName())
	assert.NotContains(t, buf.String(), "unavailable")
}

func TestUseBackendConcurrentWithOperations(t *testing.T) {
	prev := BackendName()
	t.Cleanup(func() { require.NoError(t, UseBackend(prev)) })

	const workers = 4
	stop := make(chan struct{})
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := tensor.NewMatrix(2, 2, []float64{1, 2, 3, 4})
			for {
				select {
				case <-stop:
					return
				default:
				}
				d, err := Dot(vec[float64](1, 2, 3), vec[float64](4, 5, 6))
				if err == nil && d != 32 {
					err = fmt.Errorf("dot = %v", d)
				}
				out := tensor.NewMatrix(2, 2, make([]float64, 4))
				if err == nil {
					err = MatMul(a, a, out)
				}
				if err == nil && !assert.ObjectsAreEqual([]float64{7, 10, 15, 22}, out.Data) {
					err = fmt.Errorf("matmul = %v", out.Data)
				}
				if err != nil {
					errs <- err
					return
				}
			}
		}()
	}

	names := Backends()
	for i := 0; i < 200; i++ {
		require.NoError(t, UseBackend(names[i%len(names)]))
	}
	close(stop)
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
