package parwork

// Map applies fn to every element of items using up to maxConcurrency
// goroutines and returns the results aligned with the input: result i is
// fn(items[i]). It blocks until the whole output is ready. The returned
// slice always has len(items) elements; for empty input it is empty but
// non-nil.
//
// The output buffer is allocated up front, so R's zero value stands in
// for each slot until the worker that claimed index i overwrites it.
// Slots are disjoint — one writer each — so the writes need no lock, and
// the join inside [RunIndexed] provides the happens-before edge that
// makes the returned slice safe to read.
//
//	squares := parwork.Map(nums, 8, func(n int) int { return n * n })
//
// Like [RunIndexed], Map makes no ordering guarantee about when each
// element is computed, only that the final slice corresponds one-to-one
// with the input.
func Map[T, R any](items []T, maxConcurrency int, fn func(item T) R) []R {
	out := make([]R, len(items))
	RunIndexedOverItems(items, maxConcurrency, func(i int, item T) {
		out[i] = fn(item) // safe: each worker writes only its claimed slot
	})
	return out
}
