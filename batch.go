package headsum

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DigestFiles fingerprints every path with at most jobs files in flight. A
// non-positive jobs uses GOMAXPROCS.
//
// The results line up with paths. A file that cannot be read records its
// error in its Result and does not stop the rest. The returned error is only
// set when ctx is cancelled, in which case unfinished files carry ctx.Err().
func DigestFiles(ctx context.Context, paths []string, jobs int) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))

	var group errgroup.Group
	group.SetLimit(jobs)

	for n, path := range paths {
		group.Go(func() error {
			digest, err := DigestFile(ctx, path)
			results[n] = Result{Path: path, Digest: digest, Err: err}
			return nil
		})
	}
	_ = group.Wait()

	return results, ctx.Err()
}
