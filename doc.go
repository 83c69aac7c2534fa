// Package workq provides an iterable FIFO work queue with optional
// de-duplication, for converting recursive algorithms into iterative
// ones.
//
// The queue is single-goroutine by design: no method blocks and no
// internal locking is performed. Construct a queue with New, NewKeyed,
// or NewNonUnique, drain it with Next or by ranging over All, and add
// newly discovered work with Add or Extend at any time, including
// mid-drain. When de-duplication is enabled (New and NewKeyed), a key
// is admitted at most once for the life of the queue, so graph walks
// visit each node exactly once even when nodes are rediscovered.
package workq
