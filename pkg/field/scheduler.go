package field

import "sync"

// Scheduler runs deferred work. Focus handling uses it to let a change or
// keyup raised by the same user action run first.
type Scheduler interface {
	Defer(fn func())
}

// ImmediateScheduler runs deferred work synchronously. A focus followed by a
// change from the same action is then evaluated twice.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Defer(fn func()) { fn() }

// QueueScheduler holds deferred work until the host calls Flush, typically
// once per event-loop tick.
type QueueScheduler struct {
	mu    sync.Mutex
	queue []func()
}

func (q *QueueScheduler) Defer(fn func()) {
	q.mu.Lock()
	q.queue = append(q.queue, fn)
	q.mu.Unlock()
}

// Flush runs everything queued so far and returns how many functions ran.
// Work deferred while flushing is left for the next call.
func (q *QueueScheduler) Flush() int {
	q.mu.Lock()
	pending := q.queue
	q.queue = nil
	q.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// Pending returns the number of queued functions.
func (q *QueueScheduler) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}
