// Package toast implements the process-wide queue of transient user
// notifications. Messages are kept oldest first and each one removes itself
// once its lifetime elapses, unless it is dismissed earlier.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// Default lifetimes used when a message does not set its own. Errors stay
// longer since their text is longer and matters more.
const (
	DefaultLifetime      = 3 * time.Second
	DefaultErrorLifetime = 5 * time.Second
)

// Message is a single notification.
type Message struct {
	ID          string
	Type        Type
	Title       string
	Description string
	Lifetime    time.Duration
}

// Notifier is the write side of the queue, as seen by form controllers.
type Notifier interface {
	Push(m Message) string
}

// Queue is safe for concurrent use; expiry timers run on their own
// goroutines.
type Queue struct {
	mu       sync.Mutex
	messages []Message
	timers   map[string]*time.Timer
	closed   bool
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{timers: make(map[string]*time.Timer)}
}

// Push appends m with a fresh ID and schedules its removal. A zero Type is
// treated as info, a zero Lifetime as the type's default. It returns the ID,
// or "" if the queue has been closed.
func (q *Queue) Push(m Message) string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ""
	}

	m.ID = uuid.NewString()
	if m.Type == "" {
		m.Type = TypeInfo
	}
	if m.Lifetime <= 0 {
		m.Lifetime = defaultLifetime(m.Type)
	}

	id := m.ID
	q.messages = append(q.messages, m)
	q.timers[id] = time.AfterFunc(m.Lifetime, func() { q.Remove(id) })

	return id
}

// Remove dismisses the message with the given ID and cancels its timer.
// Unknown or already removed IDs are ignored.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}

	for i, m := range q.messages {
		if m.ID == id {
			q.messages = append(q.messages[:i], q.messages[i+1:]...)
			return
		}
	}
}

// Messages returns a snapshot of the live messages, oldest first.
func (q *Queue) Messages() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Message, len(q.messages))
	copy(out, q.messages)
	return out
}

// Close cancels every pending timer and empties the queue. Later pushes are
// dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.messages = nil
	q.closed = true
}

func defaultLifetime(t Type) time.Duration {
	if t == TypeError {
		return DefaultErrorLifetime
	}
	return DefaultLifetime
}
