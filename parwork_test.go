package parwork_test

import (
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/mzharov/parwork"
)

// TestRunIndexedExactlyOnceSweep checks the core distribution guarantee
// over every small shape: each index in [0, n) is visited exactly once,
// whatever the relation between item count and worker bound.
func TestRunIndexedExactlyOnceSweep(t *testing.T) {
	for n := 0; n <= 64; n++ {
		top := n
		if top < 1 {
			top = 1
		}
		for m := 1; m <= top; m++ {
			counts := make([]atomic.Int32, n)
			parwork.RunIndexed(n, m, func(i int) {
				counts[i].Add(1)
			})
			for i := range counts {
				if got := counts[i].Load(); got != 1 {
					t.Fatalf("n=%d m=%d: index %d visited %d times, want 1", n, m, i, got)
				}
			}
		}
	}
}

func TestRunIndexedOversizedWorkerBound(t *testing.T) {
	for n := 0; n <= 16; n++ {
		for _, m := range []int{n + 1, 2*n + 1, 64} {
			counts := make([]atomic.Int32, n)
			parwork.RunIndexed(n, m, func(i int) {
				counts[i].Add(1)
			})
			for i := range counts {
				if got := counts[i].Load(); got != 1 {
					t.Fatalf("n=%d m=%d: index %d visited %d times, want 1", n, m, i, got)
				}
			}
		}
	}
}

func TestMapMatchesSerialAcrossShapes(t *testing.T) {
	fn := func(x int) int { return x*x - 3*x }

	for n := 0; n <= 64; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i - n/2
		}
		want := parwork.SerialMap(items, 1, fn)

		for _, m := range []int{1, 2, 3, 8, n} {
			got := parwork.Map(items, m, fn)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("n=%d m=%d: Map = %v, want %v", n, m, got, want)
			}
		}
	}
}

func TestZeroItemsAreANoOp(t *testing.T) {
	parwork.RunIndexed(0, 8, func(int) {
		t.Error("fn must not run for zero items")
	})
	parwork.RunIndexed(-3, 4, func(int) {
		t.Error("fn must not run for a negative count")
	})

	out := parwork.Map([]int(nil), 4, func(x int) int { return x })
	if len(out) != 0 {
		t.Errorf("Map over nil returned %d elements, want 0", len(out))
	}
}

func TestParallelSumPipeline(t *testing.T) {
	const n = 1000
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}

	squares := parwork.Map(items, 8, func(x int) int { return x * x })

	var sum atomic.Int64
	parwork.RunOverItems(squares, 8, func(v int) {
		sum.Add(int64(v))
	})

	want := int64(n * (n + 1) * (2*n + 1) / 6)
	if got := sum.Load(); got != want {
		t.Errorf("sum of squares = %d, want %d", got, want)
	}
}

func TestRunnerEndToEnd(t *testing.T) {
	r := parwork.NewRunner(3)

	var hits atomic.Int32
	for range 100 {
		r.Submit(func() {
			hits.Add(1)
		})
	}
	r.Close()

	if got := hits.Load(); got != 100 {
		t.Errorf("completed %d tasks, want 100", got)
	}
	if s := r.Stats(); s.Completed != 100 || s.Active != 0 {
		t.Errorf("stats after Close = %+v, want 100 completed and none active", s)
	}
}
