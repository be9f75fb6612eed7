package parwork

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

// Runner executes fire-and-forget tasks on background goroutines, at most
// capacity of them at a time. When the capacity is reached, Submit applies
// backpressure: it runs the task synchronously on the submitting goroutine
// instead of queueing it, so producers that outpace the ceiling pay the
// execution cost themselves and memory use stays flat.
//
// A goroutine is started fresh for each background task; there is no
// pooling or reuse, which makes the runner high-overhead but easy to
// reason about. [Runner.Close] blocks until every background task has
// finished, so no task outlives the runner. The typical lifecycle is
// construct, submit any number of times, close:
//
//	r := parwork.NewRunner(4)
//	for _, frame := range frames {
//	    r.Submit(func() { writeFrame(frame) })
//	}
//	r.Close() // returns once every write is done
type Runner struct {
	sem      *semaphore.Weighted
	capacity int64
	cfg      runnerConfig

	closed    atomic.Bool
	closeOnce sync.Once

	// Observability counters.
	active    atomic.Int64
	launched  atomic.Int64
	inline    atomic.Int64
	completed atomic.Int64
}

// RunnerStats is a point-in-time snapshot of [Runner] activity.
type RunnerStats struct {
	Capacity  int   // background-task ceiling, fixed at creation
	Active    int64 // background tasks currently running
	Launched  int64 // tasks handed to a background goroutine
	Inline    int64 // tasks run synchronously under backpressure
	Completed int64 // finished tasks, background and inline combined
}

// NewRunner creates a runner that executes at most capacity tasks on
// background goroutines at a time. A negative capacity is clamped to
// zero; with capacity zero asynchronous execution is disabled and every
// submitted task runs on the submitting goroutine.
func NewRunner(capacity int, opts ...RunnerOption) *Runner {
	if capacity < 0 {
		capacity = 0
	}

	var cfg runnerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: int64(capacity),
		cfg:      cfg,
	}
}

// Submit runs task, asynchronously if the runner is below capacity and
// synchronously on the calling goroutine otherwise. In the asynchronous
// case Submit returns immediately and the task runs on a fresh goroutine
// the caller never sees; in the synchronous case Submit returns only
// after the task has finished. Either way the task always runs to
// completion; nothing is queued and nothing is cancelled.
//
// Submit panics if called after [Runner.Close]. Submit must not be
// called concurrently with Close.
func (r *Runner) Submit(task func()) {
	if r.closed.Load() {
		panic("parwork: Submit called after Close")
	}

	if r.sem.TryAcquire(1) {
		r.launched.Add(1)
		r.active.Add(1)
		go func() {
			defer func() {
				r.active.Add(-1)
				r.completed.Add(1)
				r.sem.Release(1)
			}()
			r.run(task, false)
		}()
		return
	}

	// At capacity: the caller runs the task itself.
	r.inline.Add(1)
	r.run(task, true)
	r.completed.Add(1)
}

// run executes one task and fires the completion hook.
func (r *Runner) run(task func(), inline bool) {
	start := time.Now()
	task()
	if r.cfg.onTaskDone != nil {
		r.cfg.onTaskDone(TaskStats{Inline: inline, Duration: time.Since(start)})
	}
}

// Close blocks until every background task launched by Submit has
// finished, then returns. It is safe to call from multiple goroutines
// and more than once; every call blocks until the drain completes.
// After Close, Submit panics.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		// Acquiring the full capacity can only succeed once every
		// launched task has released its slot, and nothing acquires
		// afterwards: Submit panics once closed is set. The permits
		// stay held.
		_ = r.sem.Acquire(context.Background(), r.capacity)
	})
}

// Stats returns a snapshot of runner activity. It is safe to call
// concurrently with Submit and Close. After Close has returned,
// Active is zero and Launched+Inline equals Completed.
func (r *Runner) Stats() RunnerStats {
	return RunnerStats{
		Capacity:  int(r.capacity),
		Active:    r.active.Load(),
		Launched:  r.launched.Load(),
		Inline:    r.inline.Load(),
		Completed: r.completed.Load(),
	}
}
