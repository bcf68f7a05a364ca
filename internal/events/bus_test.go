package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewBus()

	var got []Event
	bus.Subscribe(OrderCreated, func(e Event) {
		got = append(got, e)
	})

	bus.Publish(Event{Type: OrderCreated, UserID: "u1"})
	bus.Publish(Event{Type: OrderStatusChanged, UserID: "u1"})

	require.Len(t, got, 1, "handler must only see its own event type")
	assert.Equal(t, "u1", got[0].UserID)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	count := 0
	unsubscribe := bus.Subscribe(OrderCreated, func(Event) { count++ })

	bus.Publish(Event{Type: OrderCreated})
	unsubscribe()
	bus.Publish(Event{Type: OrderCreated})

	assert.Equal(t, 1, count)
}

func TestBus_SubscribeAllSeesEveryType(t *testing.T) {
	bus := NewBus()

	var types []EventType
	unsubscribe := bus.SubscribeAll(func(e Event) {
		types = append(types, e.Type)
	})

	bus.Publish(Event{Type: OrderCreated})
	bus.Publish(Event{Type: OrderStatusChanged})
	bus.Publish(Event{Type: OrderDeleted})
	bus.Publish(Event{Type: DocumentUploaded})

	assert.Equal(t, []EventType{OrderCreated, OrderStatusChanged, OrderDeleted, DocumentUploaded}, types)

	unsubscribe()
	bus.Publish(Event{Type: OrderCreated})
	assert.Len(t, types, 4)
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(OrderCreated, func(Event) { panic("boom") })

	reached := false
	bus.Subscribe(OrderCreated, func(Event) { reached = true })

	bus.Publish(Event{Type: OrderCreated})
	assert.True(t, reached)
}
