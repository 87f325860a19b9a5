package services

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// runOrdered calls job for every index in [0, n) on at most concurrency
// goroutines and returns the results in index order. The first error
// cancels the shared context and is returned alone; no partial results
// escape.
func runOrdered[T any](ctx context.Context, n, concurrency int, job func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := 0; i < n; i++ {
		// Stop scheduling once a job has failed.
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			log.WithField("index", i).Debug("job started")
			res, err := job(gctx, i)
			if err != nil {
				log.WithError(err).WithField("index", i).Debug("job failed")
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
