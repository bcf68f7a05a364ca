package events

import (
	"sync"

	"dastawez_backend/internal/logger"
)

type EventType string

const (
	OrderCreated       EventType = "order_created"
	OrderStatusChanged EventType = "order_status_changed"
	OrderDeleted       EventType = "order_deleted"
	DocumentUploaded   EventType = "document_uploaded"
)

// Event carries one domain change. Payload shape depends on Type.
type Event struct {
	Type    EventType              `json:"type"`
	UserID  string                 `json:"user_id"`
	Payload map[string]interface{} `json:"payload"`
}

type Handler func(Event)

// Bus is an in-process publish/subscribe dispatcher. Handlers run on
// the publisher's goroutine in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   int
}

type subscription struct {
	id      int
	handler Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]subscription)}
}

// Subscribe registers a handler for one event type and returns an
// unsubscribe function.
func (b *Bus) Subscribe(t EventType, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[t]
		for i, s := range subs {
			if s.id == id {
				b.handlers[t] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// SubscribeAll registers a handler for every currently known event type.
func (b *Bus) SubscribeAll(h Handler) func() {
	unsubs := []func(){
		b.Subscribe(OrderCreated, h),
		b.Subscribe(OrderStatusChanged, h),
		b.Subscribe(OrderDeleted, h),
		b.Subscribe(DocumentUploaded, h),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[e.Type]))
	copy(subs, b.handlers[e.Type])
	b.mu.RUnlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("event handler panicked",
						"event", string(e.Type), "panic", r)
				}
			}()
			s.handler(e)
		}()
	}
}
