package pqueue

import "container/heap"

// entry pairs a payload with its priority and a monotonic insertion
// sequence number used to break priority ties.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap is a min-heap of entries ordered by (priority, seq) ascending.
// It implements heap.Interface and is manipulated only through Queue.
type entryHeap[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority first; equal priorities fall back to insertion
// order. The payload is never consulted.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries in the heap.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new entry; called by heap.Push.
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes and returns the last entry; called by heap.Pop.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // release payload reference
	*h = old[:n-1]

	return e
}

// Queue is a minimum-priority queue over payloads of type T.
// The zero value is ready to use; New is provided for symmetry and
// capacity hinting.
type Queue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// New returns an empty Queue with capacity for n items preallocated.
func New[T any](n int) *Queue[T] {
	return &Queue[T]{h: make(entryHeap[T], 0, n)}
}

// Push inserts item with the given priority in O(log n).
func (q *Queue[T]) Push(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the item with the numerically smallest priority,
// together with that priority. Ties are returned in insertion order.
// Pop panics if the queue is empty.
func (q *Queue[T]) Pop() (T, float64) {
	if len(q.h) == 0 {
		panic("pqueue: Pop on empty queue")
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority
}

// Len returns the number of queued items in O(1).
func (q *Queue[T]) Len() int { return len(q.h) }

// Empty reports whether the queue holds no items in O(1).
func (q *Queue[T]) Empty() bool { return len(q.h) == 0 }
