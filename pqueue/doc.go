// Package pqueue provides a generic minimum-priority queue with
// deterministic tie-breaking, used by the heuristic search strategies.
//
// # What
//
//   - Queue[T] stores arbitrary payloads keyed by a float64 priority.
//   - Push inserts in O(log n); Pop removes the smallest-priority item and
//     returns it together with its priority.
//   - Equal priorities are resolved by insertion order (first in, first out).
//     The payload itself is never compared, so T needs no ordering.
//
// # Why
//
//   - Best-first strategies must extract the cheapest frontier node quickly.
//   - Tie-breaking on an insertion sequence number keeps extraction order
//     fully reproducible regardless of the payload type.
//
// # Complexity (n = items currently queued)
//
//   - Push: O(log n) amortized
//   - Pop:  O(log n)
//   - Len, Empty: O(1)
//
// # Errors
//
//	Pop on an empty queue is a programming-contract violation and panics,
//	the same policy container/heap applies to its own misuse. Callers are
//	expected to guard with Empty() or Len().
package pqueue
