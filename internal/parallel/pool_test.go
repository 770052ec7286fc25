package parallel

import (
	"sync/atomic"
	"testing"
)

func TestDoVisitsEachIndexOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 7, 100} {
		const n = 64
		var counts [n]atomic.Int32
		Do(workers, n, func(i int) {
			counts[i].Add(1)
		})
		for i := range counts {
			if got := counts[i].Load(); got != 1 {
				t.Errorf("workers=%d: index %d visited %d times", workers, i, got)
			}
		}
	}
}

func TestDoEmpty(t *testing.T) {
	called := false
	Do(4, 0, func(int) { called = true })
	Do(4, -1, func(int) { called = true })
	if called {
		t.Error("fn called for empty range")
	}
}

func TestDoSingleItem(t *testing.T) {
	var calls atomic.Int32
	Do(8, 1, func(i int) {
		if i != 0 {
			t.Errorf("got index %d, want 0", i)
		}
		calls.Add(1)
	})
	if got := calls.Load(); got != 1 {
		t.Errorf("fn called %d times, want 1", got)
	}
}
