// Package parwork provides bounded-concurrency primitives for CPU-bound
// batch work.
//
// The package covers two calling patterns. The fork-join pattern runs a
// function over every index of a range or every element of a slice with
// a fixed ceiling on concurrently running goroutines and blocks until
// everything is processed. The fire-and-forget pattern submits background
// tasks to a [Runner] that throttles how many may be in flight at once
// and degrades to synchronous execution when the ceiling is reached.
//
// # Parallel Execution
//
// [RunIndexed] is the core dispatcher: it spawns up to maxConcurrency
// workers that claim indices from a shared cursor and apply the caller's
// function, then joins them all before returning:
//
//	parwork.RunIndexed(len(rows), 8, func(i int) {
//	    process(rows[i])
//	})
//
// Each index in [0, itemCount) is visited exactly once; nothing else is
// guaranteed about ordering. [RunIndexedOverItems] and [RunOverItems]
// wrap the same contract for callers holding a slice.
//
// Degenerate concurrency values are coerced, never reported: zero and
// negative become one worker, values above the item count are capped at
// the item count, and a zero-length range is a no-op.
//
// # Mapping
//
// [Map] transforms a slice through a function into a result slice
// aligned with the input. Each worker writes only the output slot of
// the index it claimed, so the output needs no locking, and the join
// before Map returns makes the buffer safe to read:
//
//	thumbs := parwork.Map(images, 4, renderThumbnail)
//
// # Serial Fallbacks
//
// [SerialRunIndexed] and [SerialMap] are single-goroutine drop-in
// replacements with identical signatures (the concurrency argument is
// ignored). They process indices in ascending order on the calling
// goroutine, which makes runs deterministic. That helps while
// debugging, and gives the parallel versions a baseline to test
// against.
//
// # Throttled Background Tasks
//
// [Runner] runs submitted tasks on freshly spawned background
// goroutines, at most a fixed number at a time. It suits producers that
// generate work faster than it can be retired, such as writing out
// generated frames, where unbounded asynchrony would exhaust memory.
//
// When a [Runner.Submit] arrives at capacity, the task runs
// synchronously on the submitting goroutine instead. This backpressure
// costs the producer time rather than queueing or failing, which caps
// both goroutine count and memory.
//
// [Runner.Close] blocks until every background task has finished, so a
// closed runner is guaranteed to have no work outstanding. Submitting
// after Close panics.
//
// # Observability
//
// [Runner.Stats] returns a [RunnerStats] snapshot of launched, inline,
// active, and completed task counts. [WithOnTaskDone] registers a
// per-task completion hook receiving [TaskStats]; it is the place to
// hang logging or metrics without coupling the runner to either.
//
// # Panics and Errors
//
// No function or method in this package returns an error, and none
// recovers panics from caller-supplied functions. A panic inside a
// dispatched or background task escapes its goroutine and terminates
// the process; a panic inside a task run inline by Submit propagates to
// the submitting caller. Workers receive no cancellation or timeout:
// once started, a task always runs to completion, and a task that never
// returns blocks its dispatch call or Close forever.
//
// Misusing the API (submitting to a closed runner, passing a nil hook)
// panics with a "parwork:"-prefixed message.
package parwork
