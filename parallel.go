package freehand

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forEach calls fn(i) for each i in [0, n), using at most workers goroutines.
// If workers is 0 or negative, GOMAXPROCS is used. Calls may run in any
// order; fn must only write to state owned by index i.
func forEach(n, workers int, fn func(i int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n <= 1 || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
