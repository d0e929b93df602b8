package events

import "sync"

// Event is a generic type placeholder for any event type
type Event any

// Subscriber is a channel that transports events of type T
type Subscriber[T Event] chan T

type EventBus[T Event] struct {
	subscribers map[Subscriber[T]]struct{}
	mutex       sync.RWMutex
	dropped     func(T)
}

func NewEventBus[T Event]() *EventBus[T] {
	return &EventBus[T]{
		subscribers: make(map[Subscriber[T]]struct{}),
	}
}

// OnDrop registers fn to be called with every event a full subscriber could not take
func (bus *EventBus[T]) OnDrop(fn func(T)) {
	bus.mutex.Lock()
	bus.dropped = fn
	bus.mutex.Unlock()
}

func (bus *EventBus[T]) Subscribe() Subscriber[T] {
	// create a buffered channel of type T with capacity 100
	ch := make(Subscriber[T], 100)
	bus.mutex.Lock()
	bus.subscribers[ch] = struct{}{}
	bus.mutex.Unlock()
	return ch
}

// Unsubscribe removes ch and closes it. Unknown channels are ignored.
func (bus *EventBus[T]) Unsubscribe(ch Subscriber[T]) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	if _, ok := bus.subscribers[ch]; !ok {
		return
	}
	delete(bus.subscribers, ch)
	close(ch)
}

// Publish broadcasts an event of type T to all registered subscribers
func (bus *EventBus[T]) Publish(event T) {
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	for subscriber := range bus.subscribers {
		select {
		case subscriber <- event:
		default:
			if bus.dropped != nil {
				bus.dropped(event)
			}
		}
	}
}

// Close unsubscribes every subscriber
func (bus *EventBus[T]) Close() {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	for subscriber := range bus.subscribers {
		delete(bus.subscribers, subscriber)
		close(subscriber)
	}
}
