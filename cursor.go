package parwork

import "sync/atomic"

// cursor is the shared claim counter behind every parallel dispatch: it
// holds the next unclaimed index of the range [0, limit). Workers call
// claim repeatedly until it reports exhaustion.
//
// Claiming is a compare-and-swap loop, so next never passes limit, every
// index in [0, limit) is handed out exactly once across the cursor's
// lifetime, and no lock is ever held around user work.
type cursor struct {
	next  atomic.Int64
	limit int64
}

func newCursor(limit int) *cursor {
	return &cursor{limit: int64(limit)}
}

// claim reserves the next unclaimed index. Once the range is exhausted it
// returns false, and keeps returning false for every later caller.
func (c *cursor) claim() (int, bool) {
	for {
		cur := c.next.Load()
		if cur == c.limit {
			// Don't advance past limit so other workers see
			// exhaustion too.
			return 0, false
		}
		if c.next.CompareAndSwap(cur, cur+1) {
			return int(cur), true
		}
	}
}
