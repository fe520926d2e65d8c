package deletes

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-sif/lazyrow"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"
)

// FilterPages filters several data Pages concurrently, at most conf.Parallelism at a time.
// The result holds the retained positions of each Page, in the same order as pages. Each
// Page is filtered in its own goroutine with its own LazyRows. Errors from every Page are
// collected; if ctx is cancelled, Pages which have not started are skipped and ctx.Err() is
// returned.
func (f *EqualityDeleteFilter) FilterPages(ctx context.Context, pages []lazyrow.Page) ([][]int, error) {
	results := make([][]int, len(pages))
	limit := semaphore.NewWeighted(int64(f.conf.Parallelism))
	var wg sync.WaitGroup
	var errLock sync.Mutex
	var multierr *multierror.Error
	appendErr := func(err error) {
		errLock.Lock()
		defer errLock.Unlock()
		multierr = multierror.Append(multierr, err)
	}
	for i, p := range pages {
		// Acquire may succeed on a cancelled context if capacity is free
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		if err := limit.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int, p lazyrow.Page) {
			defer wg.Done()
			defer limit.Release(1)
			retained, err := f.Filter(p)
			if err != nil {
				appendErr(fmt.Errorf("page %d: %w", i, err))
			}
			results[i] = retained
		}(i, p)
	}
	wg.Wait()
	return results, multierr.ErrorOrNil()
}
