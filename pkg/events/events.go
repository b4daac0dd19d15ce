package events

import (
	"sync"

	"github.com/google/uuid"
)

// Name identifies a user-interaction event.
type Name string

// Interaction events delivered by the presentation layer.
const (
	Focus  Name = "focus"
	Change Name = "change"
	KeyUp  Name = "keyup"
	Blur   Name = "blur"
	Click  Name = "click"
	Reset  Name = "reset"
)

// Handler reacts to an event. Handlers run synchronously on the emitting goroutine.
type Handler func()

// Notifier is an event source a field or form can listen on.
// On returns a function that removes the handler again.
type Notifier interface {
	On(name Name, h Handler) (off func())
}

type subscription struct {
	id string
	h  Handler
}

// Bus is an in-memory Notifier. Handlers run in registration order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Name][]subscription
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Name][]subscription)}
}

// On registers h for name. A nil handler is ignored.
func (b *Bus) On(name Name, h Handler) func() {
	if h == nil {
		return func() {}
	}

	sub := subscription{id: uuid.NewString(), h: h}

	b.mu.Lock()
	b.handlers[name] = append(b.handlers[name], sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(name, sub.id) })
	}
}

// Emit runs every handler registered for name and returns how many ran.
// Handlers may subscribe or unsubscribe while running; changes apply to the next Emit.
func (b *Bus) Emit(name Name) int {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[name]))
	copy(subs, b.handlers[name])
	b.mu.RUnlock()

	for _, s := range subs {
		s.h()
	}
	return len(subs)
}

// Len returns the number of handlers registered for name.
func (b *Bus) Len(name Name) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}

func (b *Bus) remove(name Name, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[name]
	for i, s := range subs {
		if s.id == id {
			b.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[name]) == 0 {
		delete(b.handlers, name)
	}
}
