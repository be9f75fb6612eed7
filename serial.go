package parwork

// SerialRunIndexed is a single-goroutine drop-in replacement for
// [RunIndexed]: it invokes fn for every index in [0, itemCount) in
// ascending order on the calling goroutine. maxConcurrency is accepted
// for signature parity and ignored.
//
// Use it to get deterministic execution order while debugging, and as a
// correctness baseline: for any fn free of data races, swapping
// SerialRunIndexed for RunIndexed must not change the outcome.
func SerialRunIndexed(itemCount, maxConcurrency int, fn func(index int)) {
	for i := 0; i < itemCount; i++ {
		fn(i)
	}
}

// SerialMap is a single-goroutine drop-in replacement for [Map],
// processing items in ascending index order on the calling goroutine.
// maxConcurrency is accepted for signature parity and ignored. For any
// pure fn its output is identical to [Map]'s.
func SerialMap[T, R any](items []T, maxConcurrency int, fn func(item T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
