package dictionary

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Prefetch resolves every query against src using up to workers concurrent
// requests. The result has one slot per query, in query order, regardless of
// completion order. A query whose list fails to load gets a nil slot and a
// warning; only context errors abort the whole fetch.
func Prefetch(ctx context.Context, src Source, queries []Query, workers int) ([][]string, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([][]string, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		g.Go(func() error {
			list, err := src.Words(gctx, q)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				log.Warnf("Skipping word list %s: %v", q, err)
				return nil
			}
			results[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
