package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures the events it receives.
type recordingHandler struct {
	mu     sync.Mutex
	events []*StateChangedEvent
	err    error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *StateChangedEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		event := NewStateChangedEvent("logout", "", 0, "all", 0)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Zero(t, emitter.HandlerCount())
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		handler1 := &recordingHandler{}
		handler2 := &recordingHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := NewStateChangedEvent("set_flashcards", "u1", 12, "all", 0)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, 2, emitter.HandlerCount())
		require.Equal(t, 1, handler1.count())
		require.Equal(t, 1, handler2.count())
		assert.Same(t, event, handler1.events[0])
		assert.Same(t, event, handler2.events[0])
	})

	t.Run("failing handler does not stop delivery", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		failing := &recordingHandler{err: errors.New("handler error")}
		success := &recordingHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(success)

		err := emitter.EmitEvent(context.Background(), NewStateChangedEvent("set_category", "", 0, "math", 0))
		require.Error(t, err)
		assert.Equal(t, "handler error", err.Error())
		assert.Equal(t, 1, failing.count())
		assert.Equal(t, 1, success.count())
	})

	t.Run("panicking handler is contained", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		emitter.RegisterHandler(EventHandlerFunc(func(context.Context, *StateChangedEvent) error {
			panic("boom")
		}))
		after := &recordingHandler{}
		emitter.RegisterHandler(after)

		err := emitter.EmitEvent(context.Background(), NewStateChangedEvent("set_user", "u1", 0, "all", 0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
		assert.Equal(t, 1, after.count())
	})
}
