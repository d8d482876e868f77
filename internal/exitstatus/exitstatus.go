package exitstatus

import (
	"math"
	"sync/atomic"

	"github.com/phodge/lumberjack/internal/level"
)

// Tracker records the maximum severity rank observed across every record
// ever emitted in the process, displayed or buffered. The maximum only
// escalates. A single tracker may be shared by several independent scope
// stacks running on different goroutines.
type Tracker struct {
	failRank int64
	max      atomic.Int64
}

// NewTracker returns a tracker that reports a non-zero exit code once a
// severity at or above threshold has been observed.
func NewTracker(threshold level.Level) *Tracker {
	t := &Tracker{failRank: int64(threshold.Rank())}
	t.max.Store(math.MinInt64)
	return t
}

// Observe raises the tracked maximum to lv's rank if it exceeds the
// current maximum. Safe for concurrent use; lower severities never win.
func (t *Tracker) Observe(lv level.Level) {
	rank := int64(lv.Rank())
	for {
		cur := t.max.Load()
		if rank <= cur {
			return
		}
		if t.max.CompareAndSwap(cur, rank) {
			return
		}
	}
}

// Max returns the highest rank observed so far. The second return value
// is false when nothing has been observed yet.
func (t *Tracker) Max() (int, bool) {
	cur := t.max.Load()
	if cur == math.MinInt64 {
		return 0, false
	}
	return int(cur), true
}

// ExitCode returns 1 if a severity at or above the failure threshold has
// been observed, else 0. Idempotent: repeated calls return the same value
// with no side effects.
func (t *Tracker) ExitCode() int {
	if t.max.Load() >= t.failRank {
		return 1
	}
	return 0
}
