// Package pqueue provides a generic min-heap priority queue keyed by an
// int64 cost, used as the frontier of lazy-deletion Dijkstra searches.
//
// There is no decrease-key: a caller that finds a cheaper cost for a
// payload pushes a new entry and skips the stale, costlier one when it is
// popped later. Entries with equal cost come out in unspecified order.
//
// Complexity:
//
//   - Push:   O(log n) amortized (slice growth).
//   - PopMin: O(log n).
//   - Len, IsEmpty: O(1).
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by PopMin when the queue holds no entries.
var ErrEmptyQueue = errors.New("pqueue: pop from empty queue")

// entry pairs a payload with the cost it is ordered by.
type entry[T any] struct {
	cost    int64
	payload T
}

// entries is the array-backed binary heap behind Queue. container/heap
// sifts up on Push and, on Pop, swaps root with last and sifts down.
type entries[T any] []entry[T]

func (h entries[T]) Len() int           { return len(h) }
func (h entries[T]) Less(i, j int) bool { return h[i].cost < h[j].cost }
func (h entries[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop payload reference
	*h = old[:n-1]

	return item
}

// Queue is a min-heap of (cost, payload) pairs ordered solely by cost.
// The zero value is an empty queue ready to use. A Queue is not safe for
// concurrent use.
type Queue[T any] struct {
	h entries[T]
}

// New returns an empty queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{h: make(entries[T], 0, capacity)}
}

// Push inserts payload with the given cost.
func (q *Queue[T]) Push(cost int64, payload T) {
	heap.Push(&q.h, entry[T]{cost: cost, payload: payload})
}

// PopMin removes and returns the minimum-cost entry, or ErrEmptyQueue.
func (q *Queue[T]) PopMin() (int64, T, error) {
	if len(q.h) == 0 {
		var zero T
		return 0, zero, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.cost, e.payload, nil
}

// PeekMin returns the minimum-cost entry without removing it, or ErrEmptyQueue.
func (q *Queue[T]) PeekMin() (int64, T, error) {
	if len(q.h) == 0 {
		var zero T
		return 0, zero, ErrEmptyQueue
	}
	return q.h[0].cost, q.h[0].payload, nil
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of queued entries, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.h) }
