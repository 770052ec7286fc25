// Package parallel distributes independent per-band work across goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Do runs fn(i) for every i in [0, n), spreading the calls across at most
// workers goroutines. If workers is 0 or negative, GOMAXPROCS is used.
// Do returns once every call has completed.
//
// Work items must be independent: Do guarantees nothing about the order in
// which indices are processed, only that each is processed exactly once.
func Do(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	// Workers pull the next index from a shared counter. Band counts are
	// small, so a counter balances load as well as per-worker queues
	// would without the bookkeeping.
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
