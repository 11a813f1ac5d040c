package midi

import "sync"

// Queue hands raw messages from the listener goroutine to the consumer.
// Push never blocks on the consumer and Pop never blocks at all. Order is
// preserved.
type Queue struct {
	mu    sync.Mutex
	items [][]byte
}

// Push stores a copy of msg. The caller may reuse msg afterwards.
func (q *Queue) Push(msg []byte) {
	cp := make([]byte, len(msg))
	copy(cp, msg)

	q.mu.Lock()
	q.items = append(q.items, cp)
	q.mu.Unlock()
}

// Pop removes the oldest message. ok is false when the queue is empty.
func (q *Queue) Pop() (msg []byte, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}
	msg = q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return msg, true
}

// Len returns the number of pending messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
