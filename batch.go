package bitradix

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitradix/internal/conv"
)

// Request is a single conversion within a batch.
type Request struct {
	Number int64
	From   int
	To     int
}

// Result is the outcome of one Request.
type Result struct {
	Digits string
	Err    error
}

// BatchResult holds the outcome of ConvertBatch.
type BatchResult struct {
	// Results is in request order.
	Results []Result

	// Failed holds the indexes of requests whose Err is non-nil.
	Failed *roaring.Bitmap
}

// FailedCount returns the number of failed requests.
func (r *BatchResult) FailedCount() int {
	return int(r.Failed.GetCardinality())
}

// ConvertBatch converts reqs concurrently.
//
// A request that fails validation does not stop the batch; its error is kept
// in Results and its index in Failed. ConvertBatch itself returns an error
// only when ctx is done or a worker slot cannot be acquired, in which case no
// BatchResult is returned.
//
// Concurrency and throughput are bounded by WithMaxWorkers and WithRateLimit.
func (c *Converter) ConvertBatch(ctx context.Context, reqs []Request) (*BatchResult, error) {
	start := time.Now()
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.rc.MaxWorkers())

	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := c.rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer c.rc.ReleaseWorker()

			if err := c.rc.AcquireConversions(gctx, 1); err != nil {
				return err
			}

			digits, err := c.Convert(req.Number, req.From, req.To)
			results[i] = Result{Digits: digits, Err: err}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		c.metrics.RecordBatch(len(reqs), len(reqs), time.Since(start))
		c.logger.LogBatch(ctx, len(reqs), 0, time.Since(start), err)
		return nil, err
	}

	failed := roaring.New()
	for i, r := range results {
		if r.Err == nil {
			continue
		}
		idx, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("batch index: %w", err)
		}
		failed.Add(idx)
	}

	br := &BatchResult{Results: results, Failed: failed}
	c.metrics.RecordBatch(len(reqs), br.FailedCount(), time.Since(start))
	c.logger.LogBatch(ctx, len(reqs), br.FailedCount(), time.Since(start), nil)
	return br, nil
}
