package watch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	closed atomic.Bool
	polls  atomic.Int64
}

func (s *fakeSurface) Closed() bool {
	s.polls.Add(1)
	return s.closed.Load()
}

func TestWatch_ResolvesOnClose(t *testing.T) {
	surface := &fakeSurface{}
	w := New(surface, "u1", "slack", WithInterval(5*time.Millisecond))
	assert.Equal(t, StateIdle, w.State())

	w.Start()
	assert.Equal(t, StateWatching, w.State())

	time.AfterFunc(20*time.Millisecond, func() { surface.closed.Store(true) })

	result, err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ResultClosed, result)
	assert.Equal(t, StateResolved, w.State())
	assert.GreaterOrEqual(t, surface.polls.Load(), int64(1))
}

func TestWatch_ResolveIsIdempotent(t *testing.T) {
	w := New(&fakeSurface{}, "u1", "slack")
	w.resolve(ResultClosed)
	w.resolve(ResultCanceled) // must not fire twice nor panic on closed channels
	result, err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ResultClosed, result)
}

func TestWatch_CanceledContext(t *testing.T) {
	surface := &fakeSurface{} // never closes
	w := New(surface, "u1", "slack", WithInterval(5*time.Millisecond))
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	result, err := w.Wait(ctx)
	require.Error(t, err)
	assert.Equal(t, ResultCanceled, result)
	assert.Equal(t, StateResolved, w.State())

	// polling must stop once resolved
	w.surface.(*fakeSurface).polls.Store(0)
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, surface.polls.Load(), int64(1))
}

func TestWatch_StartTwice(t *testing.T) {
	surface := &fakeSurface{}
	surface.closed.Store(true)
	w := New(surface, "u1", "slack", WithInterval(time.Millisecond))
	w.Start()
	w.Start()
	result, err := w.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ResultClosed, result)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	w := New(&fakeSurface{}, "u1", "slack")
	registry.Add(w)
	assert.Equal(t, 1, registry.Len())

	found, ok := registry.Lookup(w.ID())
	require.True(t, ok)
	assert.Equal(t, "slack", found.AppKey())
	assert.Equal(t, "u1", found.UserID())

	registry.Remove(w.ID())
	assert.Equal(t, 0, registry.Len())
}
