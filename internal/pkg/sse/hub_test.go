package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe()
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe()
	defer cleanup2()

	hub.Publish(Event{Type: "checkin", EmployeeID: "emp-1"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, "checkin", event.Type)
			assert.Equal(t, "emp-1", event.EmployeeID)
		default:
			t.Fatal("expected event on subscriber channel")
		}
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount())

	// Second call is a no-op, not a double close.
	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHub_PublishSkipsFullSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe()
	defer cleanup()

	// The channel buffers 10 events; the extras must not block the publisher.
	for i := 0; i < 15; i++ {
		hub.Publish(Event{Type: "checkin", EmployeeID: "emp-1"})
	}

	assert.Len(t, ch, 10)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	hub.Publish(Event{Type: "checkout", EmployeeID: "emp-1"})

	assert.Equal(t, 0, hub.SubscriberCount())
}
