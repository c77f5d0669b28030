// Package engine owns the one-time initialization of the formatting engine.
//
// The engine is loaded from a compiled profile on first use. The first
// caller of Ready starts the load; every concurrent caller waits for that
// same load, and once it has finished the result is never recomputed.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yaklabco/hongdown/internal/logging"
	"github.com/yaklabco/hongdown/pkg/options"
)

// State is the lifecycle state of an Engine.
type State int

// Engine states. Ready and Failed are terminal.
const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Loader supplies the compiled engine bytes.
type Loader interface {
	LoadEngineBytes() ([]byte, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func() ([]byte, error)

// LoadEngineBytes calls f.
func (f LoaderFunc) LoadEngineBytes() ([]byte, error) {
	return f()
}

// ErrNilLoader is returned by an engine created without a loader.
var ErrNilLoader = errors.New("engine: no loader")

// Engine is a load-once handle on the default style profile.
type Engine struct {
	loader Loader

	mu    sync.Mutex
	state State

	// done is closed when the load has finished, successfully or not.
	done chan struct{}

	style options.Style
	err   error
}

// New returns an idle engine that will load through loader.
func New(loader Loader) *Engine {
	return &Engine{
		loader: loader,
		done:   make(chan struct{}),
	}
}

// State reports the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Ready returns the default style, loading the engine if no caller has done
// so yet. Callers that arrive while a load is in flight wait for it.
func (e *Engine) Ready() (options.Style, error) {
	e.mu.Lock()
	start := e.state == StateIdle
	if start {
		e.state = StateLoading
	}
	e.mu.Unlock()

	if start {
		e.load()
	}
	<-e.done

	// style and err are written before done is closed and never again.
	return e.style, e.err
}

func (e *Engine) load() {
	logger := logging.Default()
	logger.Debug("loading formatting engine")

	style, err := e.init()

	e.mu.Lock()
	e.style, e.err = style, err
	if err != nil {
		e.state = StateFailed
	} else {
		e.state = StateReady
	}
	e.mu.Unlock()
	close(e.done)

	if err != nil {
		logger.Error("formatting engine failed to load", logging.FieldError, err)
		return
	}
	logger.Debug("formatting engine ready")
}

func (e *Engine) init() (style options.Style, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine: loader panicked: %v", r)
		}
	}()

	if e.loader == nil {
		return options.Style{}, ErrNilLoader
	}
	data, err := e.loader.LoadEngineBytes()
	if err != nil {
		return options.Style{}, fmt.Errorf("engine: load: %w", err)
	}
	return Init(data)
}

//nolint:gochecknoglobals // the process-wide engine is the point of this package
var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide engine backed by the embedded profile.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = New(EmbeddedLoader())
	})
	return defaultEngine
}
