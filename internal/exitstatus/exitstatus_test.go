package exitstatus

import (
	"sync"
	"testing"

	"github.com/phodge/lumberjack/internal/level"
)

func TestTracker_StartsClean(t *testing.T) {
	trk := NewTracker(level.Error)
	if _, ok := trk.Max(); ok {
		t.Errorf("fresh tracker should report nothing observed")
	}
	if trk.ExitCode() != 0 {
		t.Errorf("fresh tracker exit code = %d, want 0", trk.ExitCode())
	}
}

func TestTracker_BelowThresholdStaysZero(t *testing.T) {
	trk := NewTracker(level.Error)
	trk.Observe(level.Debug)
	trk.Observe(level.Warning)
	trk.Observe(level.Losing)
	if trk.ExitCode() != 0 {
		t.Errorf("exit code = %d, want 0 below ERROR", trk.ExitCode())
	}
	max, ok := trk.Max()
	if !ok || max != level.Warning.Rank() {
		t.Errorf("Max() = %d,%v, want %d,true", max, ok, level.Warning.Rank())
	}
}

func TestTracker_MonotonicAndIdempotent(t *testing.T) {
	trk := NewTracker(level.Error)
	trk.Observe(level.Error)
	if trk.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1 after ERROR", trk.ExitCode())
	}

	// Later lower-severity records never reduce the code.
	trk.Observe(level.Debug)
	trk.Observe(level.Info)
	for i := 0; i < 3; i++ {
		if trk.ExitCode() != 1 {
			t.Fatalf("ExitCode() call %d = %d, want 1", i, trk.ExitCode())
		}
	}
}

func TestTracker_ObservesAboveError(t *testing.T) {
	trk := NewTracker(level.Error)
	trk.Observe(level.Outage)
	if trk.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1 for OUTAGE", trk.ExitCode())
	}
	max, _ := trk.Max()
	if max != level.Outage.Rank() {
		t.Errorf("Max() = %d, want %d", max, level.Outage.Rank())
	}
}

func TestTracker_ConcurrentObserve(t *testing.T) {
	// Independent worker stacks share one tracker; no update may be lost.
	trk := NewTracker(level.Error)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				trk.Observe(level.Info)
				trk.Observe(level.Warning)
				if n == 13 && j == 50 {
					trk.Observe(level.Critical)
				}
			}
		}(i)
	}
	wg.Wait()

	max, ok := trk.Max()
	if !ok || max != level.Critical.Rank() {
		t.Errorf("Max() = %d,%v, want %d,true", max, ok, level.Critical.Rank())
	}
	if trk.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", trk.ExitCode())
	}
}
