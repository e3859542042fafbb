// internal/event/event.go
package event

// EventType names an event.
type EventType string

// Event is what listeners receive.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order. Listeners
// may be called while a query is open and must not spawn or remove entities.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds listener for eventType. A listener subscribed twice is
// called twice.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch calls every listener of event.Type. A nil dispatcher drops the
// event.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
