package engine_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hongdown/pkg/engine"
	"github.com/yaklabco/hongdown/pkg/options"
)

func TestDefault_LoadsEmbeddedProfile(t *testing.T) {
	t.Parallel()

	style, err := engine.Default().Ready()
	require.NoError(t, err)
	assert.Equal(t, options.DefaultStyle(), style)
	assert.Equal(t, engine.StateReady, engine.Default().State())
}

func TestEngine_LoadsExactlyOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	eng := engine.New(engine.LoaderFunc(func() ([]byte, error) {
		calls.Add(1)
		<-release
		return engine.EmbeddedLoader().LoadEngineBytes()
	}))
	assert.Equal(t, engine.StateIdle, eng.State())

	const callers = 16
	var wg sync.WaitGroup
	results := make([]options.Style, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = eng.Ready()
		}()
	}

	require.Eventually(t, func() bool {
		return eng.State() == engine.StateLoading
	}, testTimeout, testTick)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, options.DefaultStyle(), results[i])
	}
	assert.Equal(t, engine.StateReady, eng.State())

	_, err := eng.Ready()
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestEngine_FailureIsTerminal(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var calls atomic.Int32
	eng := engine.New(engine.LoaderFunc(func() ([]byte, error) {
		calls.Add(1)
		return nil, errBoom
	}))

	_, err := eng.Ready()
	require.ErrorIs(t, err, errBoom)
	_, err = eng.Ready()
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, engine.StateFailed, eng.State())
	assert.Equal(t, int32(1), calls.Load())
}

func TestEngine_LoaderPanicBecomesError(t *testing.T) {
	t.Parallel()

	eng := engine.New(engine.LoaderFunc(func() ([]byte, error) {
		panic("bad loader")
	}))

	_, err := eng.Ready()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad loader")
	assert.Equal(t, engine.StateFailed, eng.State())
}

func TestEngine_NilLoader(t *testing.T) {
	t.Parallel()

	_, err := engine.New(nil).Ready()
	require.ErrorIs(t, err, engine.ErrNilLoader)
}

func TestInit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "unknown key", data: "line_width = 80\nbogus = 1\n", wantErr: "unknown profile keys: bogus"},
		{name: "bad toml", data: "line_width = = 80", wantErr: "decode profile"},
		{name: "invalid value", data: "line_width = 0\n", wantErr: "invalid profile"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := engine.Init([]byte(testCase.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.wantErr)
		})
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", engine.StateIdle.String())
	assert.Equal(t, "loading", engine.StateLoading.String())
	assert.Equal(t, "ready", engine.StateReady.String())
	assert.Equal(t, "failed", engine.StateFailed.String())
}

const (
	testTimeout = 2 * time.Second
	testTick    = 5 * time.Millisecond
)
