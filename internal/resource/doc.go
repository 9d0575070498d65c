// Package resource governs how much batch conversion work runs at once.
//
// A Controller limits two things:
//
//   - Workers: concurrent conversions across all batches (weighted semaphore)
//   - Throughput: conversions per second (token bucket)
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers:        8,
//	    ConversionsPerSec: 10_000,
//	})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
//	if err := rc.AcquireConversions(ctx, 1); err != nil {
//	    return err
//	}
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
