package circles

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// TangentLinesAll runs [TangentLines] for every pair, spreading the work
// over GOMAXPROCS goroutines. Results are in input order. Pairs that fail
// leave a zero TangentLineSet; their errors are joined and returned.
func TangentLinesAll(pairs []CirclePair, opts ...Option) ([]TangentLineSet, error) {
	out := make([]TangentLineSet, len(pairs))
	errs := make([]error, len(pairs))
	workers := min(runtime.GOMAXPROCS(0), len(pairs))

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				set, err := TangentLines(pairs[i], opts...)
				if err != nil {
					errs[i] = fmt.Errorf("pair %d: %w", i, err)
					continue
				}
				out[i] = set
			}
		}()
	}
	for i := range pairs {
		next <- i
	}
	close(next)
	wg.Wait()

	return out, errors.Join(errs...)
}
