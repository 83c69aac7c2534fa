package workq

import (
	"iter"
)

// Queue is a generic FIFO work queue with optional de-duplication,
// built for turning recursive traversals into iterative ones. A queue
// is seeded with an initial batch of items and drained one item at a
// time; the consumer may Add or Extend more work while draining
// (typically the neighbors of the item just produced), and those
// additions are picked up by later pulls of the same loop.
//
// When de-duplication is enabled, each key is admitted at most once
// over the queue's lifetime: re-adding a key is ignored even after its
// item has already been produced. The zero value is not ready for use;
// construct via New, NewWithCapacity, NewKeyed, or NewNonUnique.
type Queue[T any, K comparable] struct {
	pending []T
	seen    map[K]struct{} // nil unless de-duplication is enabled
	count   int
	unique  bool
	key     func(T) K
}

// New creates a de-duplicating queue whose items are their own keys,
// seeded with items in order.
//
// Seed items pass through the same admission logic as later Add calls,
// so duplicates among the seeds are dropped too.
func New[T comparable](items ...T) *Queue[T, T] {
	q := &Queue[T, T]{
		seen:   make(map[T]struct{}),
		unique: true,
		key:    func(v T) T { return v },
	}
	q.Extend(items...)
	return q
}

// NewWithCapacity creates a queue like New with the given initial
// capacity. Capacity preallocates the pending buffer and the admission
// set; behavior is otherwise identical to New.
func NewWithCapacity[T comparable](capacity int, items ...T) *Queue[T, T] {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue[T, T]{
		pending: make([]T, 0, capacity),
		seen:    make(map[T]struct{}, capacity),
		unique:  true,
		key:     func(v T) T { return v },
	}
	q.Extend(items...)
	return q
}

// NewKeyed creates a de-duplicating queue that derives each item's key
// with the key function, seeded with items in order. Use it when items
// are not comparable, or when equality should be judged on some
// component of the item (an ID, a path) rather than the whole value.
//
// When two items derive equal keys, the first one admitted is the one
// retained and eventually produced.
func NewKeyed[T any, K comparable](key func(T) K, items ...T) *Queue[T, K] {
	q := &Queue[T, K]{
		seen:   make(map[K]struct{}),
		unique: true,
		key:    key,
	}
	q.Extend(items...)
	return q
}

// NewNonUnique creates a queue with de-duplication disabled: every
// added item is admitted, duplicates included, and no admission set is
// kept. Items may be of any type.
func NewNonUnique[T any](items ...T) *Queue[T, struct{}] {
	q := &Queue[T, struct{}]{}
	q.Extend(items...)
	return q
}

// Add appends v to the tail.
//
// Returns true if the item was admitted, or false when de-duplication
// is enabled and v's key has already been admitted at some point in
// the queue's lifetime. Amortized complexity: O(1).
func (q *Queue[T, K]) Add(v T) bool {
	if q.unique {
		k := q.key(v)
		if _, dup := q.seen[k]; dup {
			return false
		}
		q.seen[k] = struct{}{}
	}
	q.pending = append(q.pending, v)
	q.count++
	return true
}

// Extend adds items in order and returns the count actually admitted.
//
// Equivalent to calling Add once per item: when de-duplication is
// enabled, each item is checked against keys admitted earlier in the
// same call as well as the queue's whole history. Amortized
// complexity: O(k) for k items.
func (q *Queue[T, K]) Extend(items ...T) int {
	added := 0
	for _, v := range items {
		if q.Add(v) {
			added++
		}
	}
	return added
}

// Next removes and returns the head item.
//
// The second result is false when no work is pending. That is the
// end-of-sequence signal, not a terminal state: a later Add makes the
// queue drainable again. Next never touches the admission set, so a
// produced item's key stays rejected. Amortized complexity: O(1).
func (q *Queue[T, K]) Next() (T, bool) {
	var zero T
	if len(q.pending) == 0 {
		return zero, false
	}
	v := q.pending[0]
	// Avoid O(n) element moves by reslicing; let GC reclaim older head when needed.
	q.pending = q.pending[1:]
	return v, true
}

// All returns a single-pass sequence that drains the queue: each pull
// is one Next call. Items added during iteration are produced by the
// same loop, and the loop ends exactly when no work is pending at a
// pull.
//
// The queue itself is the only cursor. Breaking out of a range loop
// loses nothing; a later range over All resumes where the first
// stopped.
func (q *Queue[T, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Peek returns the head item without removing it.
// The second result is false when no work is pending. Complexity: O(1).
func (q *Queue[T, K]) Peek() (T, bool) {
	var zero T
	if len(q.pending) == 0 {
		return zero, false
	}
	return q.pending[0], true
}

// Len returns the number of items pending (admitted but not yet
// produced). Complexity: O(1).
func (q *Queue[T, K]) Len() int {
	return len(q.pending)
}

// IsEmpty reports whether no work is pending.
// Complexity: O(1). Equivalent to Len() == 0.
func (q *Queue[T, K]) IsEmpty() bool {
	return len(q.pending) == 0
}

// Count returns the number of items admitted over the queue's
// lifetime, including items already produced. It never decreases.
func (q *Queue[T, K]) Count() int {
	return q.count
}

// Worked returns the number of admitted items already produced,
// Count() - Len().
func (q *Queue[T, K]) Worked() int {
	return q.count - len(q.pending)
}

// Seen reports whether a key has ever been admitted. For non-unique
// queues no admission set is kept and Seen is always false.
// Complexity: O(1).
func (q *Queue[T, K]) Seen(key K) bool {
	_, ok := q.seen[key]
	return ok
}

// ToSlice returns a copy of the pending items in FIFO order.
// Complexity: O(n). The returned slice is independent of the queue.
func (q *Queue[T, K]) ToSlice() []T {
	out := make([]T, len(q.pending))
	copy(out, q.pending)
	return out
}
