package workq

// Advanced: Using a Queue Across Goroutines
//
// workq performs no internal locking: Next either returns an item or
// reports exhaustion immediately, and Add/Extend mutate the queue in
// place. When a queue must be shared between goroutines, the caller
// supplies the mutual exclusion, holding one lock around every queue
// call.
//
// Design notes:
//   - Hold the lock across the Next call and the decision made on its
//     result; a check-then-act split (IsEmpty, then Next) races.
//   - Exhaustion is transient. A worker seeing (zero, false) must not
//     treat the queue as finished if another goroutine may still Add;
//     coordinate completion separately (e.g. a WaitGroup over
//     outstanding work).
//   - Do not range over All from two goroutines: both loops would pull
//     from the single shared cursor.
//
// Minimal outline:
//
//	type lockedQueue[T comparable] struct {
//		mu sync.Mutex
//		q  *workq.Queue[T, T]
//	}
//
//	func (l *lockedQueue[T]) Add(v T) bool {
//		l.mu.Lock()
//		defer l.mu.Unlock()
//		return l.q.Add(v)
//	}
//
//	func (l *lockedQueue[T]) Next() (T, bool) {
//		l.mu.Lock()
//		defer l.mu.Unlock()
//		return l.q.Next()
//	}
//
// For the common single-goroutine traversal, none of this applies;
// range over All and Extend from inside the loop body:
//
//	wq := workq.New("start")
//	for node := range wq.All() {
//		wq.Extend(neighbors(node)...)
//	}
