package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(ms []Message) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Title)
	}
	return out
}

func TestPush_AppendsInOrderWithUniqueIDs(t *testing.T) {
	q := NewQueue()
	t.Cleanup(q.Close)

	id1 := q.Push(Message{Type: TypeSuccess, Title: "first"})
	id2 := q.Push(Message{Type: TypeError, Title: "second"})
	id3 := q.Push(Message{Title: "third"})

	require.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
	assert.NotEqual(t, id2, id3)

	msgs := q.Messages()
	assert.Equal(t, []string{"first", "second", "third"}, titles(msgs))
	assert.Equal(t, TypeInfo, msgs[2].Type, "zero type defaults to info")
}

func TestPush_DefaultLifetimes(t *testing.T) {
	q := NewQueue()
	t.Cleanup(q.Close)

	q.Push(Message{Type: TypeSuccess, Title: "ok"})
	q.Push(Message{Type: TypeError, Title: "boom"})
	q.Push(Message{Type: TypeInfo, Title: "fyi", Lifetime: time.Minute})

	msgs := q.Messages()
	assert.Equal(t, DefaultLifetime, msgs[0].Lifetime)
	assert.Equal(t, DefaultErrorLifetime, msgs[1].Lifetime)
	assert.Equal(t, time.Minute, msgs[2].Lifetime)
	assert.Greater(t, DefaultErrorLifetime, DefaultLifetime)
}

func TestPush_ExpiresAfterLifetime(t *testing.T) {
	q := NewQueue()
	t.Cleanup(q.Close)

	for i := 0; i < 5; i++ {
		q.Push(Message{Type: TypeError, Title: "x", Lifetime: time.Duration(10+i*5) * time.Millisecond})
	}
	require.Len(t, q.Messages(), 5)

	assert.Eventually(t, func() bool { return len(q.Messages()) == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestPush_ShortLivedExpiresFirst(t *testing.T) {
	q := NewQueue()
	t.Cleanup(q.Close)

	q.Push(Message{Title: "long", Lifetime: time.Hour})
	q.Push(Message{Title: "short", Lifetime: 10 * time.Millisecond})

	assert.Eventually(t, func() bool { return len(q.Messages()) == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"long"}, titles(q.Messages()))
}

func TestRemove_DismissesAndIsIdempotent(t *testing.T) {
	q := NewQueue()
	t.Cleanup(q.Close)

	a := q.Push(Message{Title: "a", Lifetime: time.Hour})
	q.Push(Message{Title: "b", Lifetime: time.Hour})

	q.Remove(a)
	assert.Equal(t, []string{"b"}, titles(q.Messages()))

	assert.NotPanics(t, func() {
		q.Remove(a)
		q.Remove("does-not-exist")
		q.Remove("")
	})
	assert.Equal(t, []string{"b"}, titles(q.Messages()))
	assert.Len(t, q.timers, 1, "timer of removed message is released")
}

func TestMessages_ReturnsSnapshot(t *testing.T) {
	q := NewQueue()
	t.Cleanup(q.Close)

	q.Push(Message{Title: "a", Lifetime: time.Hour})
	snap := q.Messages()
	snap[0].Title = "changed"

	assert.Equal(t, "a", q.Messages()[0].Title)
}

func TestClose_StopsTimersAndDropsPushes(t *testing.T) {
	q := NewQueue()
	q.Push(Message{Title: "a", Lifetime: time.Hour})

	q.Close()
	assert.Empty(t, q.Messages())
	assert.Empty(t, q.timers)

	assert.Equal(t, "", q.Push(Message{Title: "late"}))
	assert.Empty(t, q.Messages())
}
