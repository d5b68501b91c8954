package simulator

import (
	"context"

	"github.com/krisalay/objstats/trace"
	"golang.org/x/sync/errgroup"
)

// Job is one trace to replay with its own options.
type Job struct {
	Source  trace.Source
	Options Options
}

/*
RunAll replays every job concurrently, at most workers at a time.

Each job gets its OWN Store: stores are single-writer, so parallelism comes from
independent replays, never from sharing one. Results come back in job order.
The first failing job cancels the others through the shared context.
*/
func RunAll(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, job := range jobs {
		g.Go(func() error {
			res, err := Replay(ctx, job.Source, job.Options)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
