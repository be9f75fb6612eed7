package parwork

import "time"

// TaskStats describes one completed [Runner] task. It is passed to the
// hook registered via [WithOnTaskDone].
type TaskStats struct {
	// Inline reports whether the task ran synchronously on the
	// submitting goroutine because the runner was at capacity.
	Inline bool

	// Duration is the wall-clock time the task function took.
	Duration time.Duration
}

type runnerConfig struct {
	onTaskDone func(TaskStats)
}

// RunnerOption configures a [Runner].
type RunnerOption func(*runnerConfig)

// WithOnTaskDone registers a hook invoked after each task finishes,
// whether it ran on a background goroutine or inline under backpressure.
// The hook runs on the goroutine that executed the task and must not
// panic. WithOnTaskDone panics if fn is nil.
func WithOnTaskDone(fn func(TaskStats)) RunnerOption {
	return func(c *runnerConfig) {
		if fn == nil {
			panic("parwork: WithOnTaskDone requires non-nil hook")
		}
		c.onTaskDone = fn
	}
}
