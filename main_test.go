package parwork

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the run if any test leaks a goroutine. Both the
// dispatch helpers and the runner promise full joins, so a leak here
// is always a bug.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
