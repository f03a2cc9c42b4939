package session

// Queue is an ordered, single-consumption sequence over one batch of
// challenges. It is owned exclusively by the session state and is
// never shared across goroutines.
type Queue struct {
	items []Challenge
}

// Refill replaces the queue contents wholesale with batch, preserving
// insertion order. Any remainder from a previous batch is discarded;
// a refill normally follows exhaustion, so there is nothing to merge.
func (q *Queue) Refill(batch []Challenge) {
	q.items = append([]Challenge(nil), batch...)
}

// TakeNext removes and returns the head of the queue. The second
// return value is false when the queue is empty. Emptiness is the
// normal signal to request a refill, not an error.
func (q *Queue) TakeNext() (Challenge, bool) {
	if len(q.items) == 0 {
		return Challenge{}, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Remaining returns the number of challenges left in the queue.
func (q *Queue) Remaining() int {
	return len(q.items)
}
