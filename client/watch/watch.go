// Package watch observes an opaque external UI surface (an OAuth popup or a
// credential modal) and produces exactly one completion event when it closes.
// The surface offers no cooperative signal, so completion is inferred by
// polling its closed state on a fixed interval.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultInterval is the poll interval used unless overridden.
const DefaultInterval = 500 * time.Millisecond

// Surface is an external UI surface that can only report whether it is still
// present. Closed must be safe to call repeatedly.
type Surface interface {
	Closed() bool
}

// State of a watch.
type State int

const (
	StateIdle State = iota
	StateWatching
	StateResolved
)

// Result of a resolved watch.
type Result int

const (
	// ResultClosed means the surface was observed closed.
	ResultClosed Result = iota
	// ResultCanceled means the watch was abandoned before the surface closed.
	ResultCanceled
)

// Watch is a single outstanding wait on a surface, paired with the user/app
// pair the orchestrator must reconcile once the surface closes. Ownership is
// exclusive to the connect attempt that created it.
type Watch struct {
	id       string
	userID   string
	appKey   string
	surface  Surface
	interval time.Duration

	mux    sync.Mutex
	state  State
	result Result
	done   chan struct{}
	stop   chan struct{}
}

// Option represents a watch option.
type Option func(w *Watch)

// WithInterval overrides the poll interval.
func WithInterval(interval time.Duration) Option {
	return func(w *Watch) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

// New creates an idle watch for the given surface.
func New(surface Surface, userID, appKey string, options ...Option) *Watch {
	ret := &Watch{
		id:       uuid.NewString(),
		userID:   userID,
		appKey:   appKey,
		surface:  surface,
		interval: DefaultInterval,
		done:     make(chan struct{}),
		stop:     make(chan struct{}),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// ID returns the watch identity.
func (w *Watch) ID() string { return w.id }

// UserID returns the user the watch reconciles for.
func (w *Watch) UserID() string { return w.userID }

// AppKey returns the app key the watch reconciles for.
func (w *Watch) AppKey() string { return w.appKey }

// State returns the current state.
func (w *Watch) State() State {
	w.mux.Lock()
	defer w.mux.Unlock()
	return w.state
}

// Start begins polling. Calling Start more than once has no effect.
func (w *Watch) Start() {
	w.mux.Lock()
	if w.state != StateIdle {
		w.mux.Unlock()
		return
	}
	w.state = StateWatching
	w.mux.Unlock()
	go w.poll()
}

// Wait blocks until the surface closes or ctx is done. There is no built-in
// timeout: an abandoned popup keeps its watch alive until the caller bounds
// the wait via ctx.
func (w *Watch) Wait(ctx context.Context) (Result, error) {
	select {
	case <-w.done:
		return w.resultLocked(), nil
	case <-ctx.Done():
		w.resolve(ResultCanceled)
		return ResultCanceled, ctx.Err()
	}
}

func (w *Watch) poll() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			if w.surface.Closed() {
				w.resolve(ResultClosed)
				return
			}
		}
	}
}

// resolve transitions to StateResolved exactly once; later calls, including
// overlapping ticker fires, are no-ops.
func (w *Watch) resolve(result Result) {
	w.mux.Lock()
	defer w.mux.Unlock()
	if w.state == StateResolved {
		return
	}
	w.state = StateResolved
	w.result = result
	close(w.stop)
	close(w.done)
}

func (w *Watch) resultLocked() Result {
	w.mux.Lock()
	defer w.mux.Unlock()
	return w.result
}
