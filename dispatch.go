package parwork

import "sync"

// RunIndexed invokes fn exactly once for every index in [0, itemCount),
// using up to maxConcurrency concurrently running goroutines, and blocks
// until the whole range has been processed.
//
// maxConcurrency is clamped to [1, itemCount]; zero, negative, and
// oversized values are coerced silently rather than reported. If
// itemCount <= 0, RunIndexed returns immediately without spawning a
// goroutine or invoking fn.
//
// Workers claim indices from a shared cursor, so there is no guarantee
// which worker processes which index nor in what order indices complete;
// the only guarantee is exactly-once coverage of the full range before
// RunIndexed returns. fn must be safe to invoke concurrently from up to
// maxConcurrency goroutines — it receives no synchronization beyond the
// disjointness of indices. Worker goroutines are spawned fresh per call
// and are never reused.
//
// A panic in fn is not recovered; it escapes the worker goroutine and
// terminates the process (see the package documentation).
func RunIndexed(itemCount, maxConcurrency int, fn func(index int)) {
	if itemCount <= 0 {
		return
	}

	workers := clampConcurrency(maxConcurrency, itemCount)
	cur := newCursor(itemCount)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				i, ok := cur.claim()
				if !ok {
					return
				}
				// User work runs with no claim in flight.
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// RunIndexedOverItems invokes fn(i, items[i]) exactly once for every
// element of items, with the same concurrency clamping, ordering, and
// blocking behavior as [RunIndexed].
func RunIndexedOverItems[T any](items []T, maxConcurrency int, fn func(index int, item T)) {
	RunIndexed(len(items), maxConcurrency, func(i int) {
		fn(i, items[i])
	})
}

// RunOverItems invokes fn(items[i]) exactly once for every element of
// items. It is [RunIndexedOverItems] for callers that do not need the
// index.
func RunOverItems[T any](items []T, maxConcurrency int, fn func(item T)) {
	RunIndexedOverItems(items, maxConcurrency, func(_ int, item T) {
		fn(item)
	})
}

// clampConcurrency coerces a requested worker count into [1, n].
// n is assumed positive.
func clampConcurrency(requested, n int) int {
	if requested > n {
		requested = n
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}
