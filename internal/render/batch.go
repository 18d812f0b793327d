package render

import (
	"context"
	"runtime"
	"sync"
)

// RenderAll renders scenes concurrently and returns the frames in input
// order. The renderer is safe to share because it only reads its options
// and the cache locks itself. It stops early when ctx is done.
func (r *Renderer) RenderAll(ctx context.Context, scenes []Scene) ([]Frame, error) {
	frames := make([]Frame, len(scenes))
	errs := make([]error, len(scenes))

	parallelFor(len(scenes), 4, func(start, end int) {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			frames[i] = r.Render(scenes[i])
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return frames, nil
}

// parallelFor splits [0, n) into contiguous chunks of at least minChunk and
// runs fn on each in its own goroutine.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
