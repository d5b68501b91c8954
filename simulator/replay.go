package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	objstats "github.com/krisalay/objstats"
	"github.com/krisalay/objstats/emit"
	"github.com/krisalay/objstats/eviction"
	"github.com/krisalay/objstats/logger"
	"github.com/krisalay/objstats/trace"
	"github.com/krisalay/objstats/types"
)

// Options configures one replay.
type Options struct {
	Name     string
	Capacity float64
	Policy   eviction.PolicyType

	// StoreOptions are passed to objstats.New.
	StoreOptions []objstats.Option

	// Emit receives one row per accepted request. Nil means emit.Discard.
	Emit emit.Policy

	Logger *slog.Logger
}

/*
Result is what the simulator itself counted during a replay.
These are the simulator's totals, not the store's: the store keeps per-object
counters only.
*/
type Result struct {
	Name     string
	Requests int64
	Hits     int64
	Misses   int64
	Rejected int64
	Objects  int
	Evicted  int64
	Elapsed  time.Duration

	// Store is the store the replay filled, for callers that want to aggregate further.
	Store *objstats.Store
}

// HitRate returns hits / accepted requests, or 0 for an empty replay.
func (r Result) HitRate() float64 {
	if r.Hits+r.Misses == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Hits+r.Misses)
}

/*
Replay drives a fresh Store with every request of src.

For each request:
1. store.Touch       → select or create the object, move the cursor
2. cache.Request     → the simulated cache decides hit or miss
3. store.RecordOutcome(hit)
4. store.Snapshot    → emitted as a Row

Requests the store rejects (strict mode) are counted and skipped; they never
reach the cache. The context is checked between requests.
The emit policy is NOT closed here; whoever built it closes it.
*/
func Replay(ctx context.Context, src trace.Source, opts Options) (Result, error) {
	if opts.Policy == "" {
		opts.Policy = eviction.LRU
	}
	if !opts.Policy.Valid() {
		return Result{}, fmt.Errorf("replay %s: unknown eviction policy %q", opts.Name, opts.Policy)
	}
	if opts.Emit == nil {
		opts.Emit = emit.Discard{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	store := objstats.New(opts.StoreOptions...)
	cache := NewCache(opts.Capacity, opts.Policy)
	res := Result{Name: opts.Name, Store: store}
	start := time.Now()

	log.Info("replay started",
		slog.String("name", opts.Name),
		slog.Float64("capacity", opts.Capacity),
		slog.String("policy", string(opts.Policy)),
	)

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		req, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("replay %s: %w", opts.Name, err)
		}
		res.Requests++

		if _, err := store.Touch(req.Key, req.Size, req.DataType, req.Seq); err != nil {
			if errors.Is(err, objstats.ErrValidation) {
				res.Rejected++
				continue
			}
			return res, fmt.Errorf("replay %s: touch %d: %w", opts.Name, req.Key, err)
		}

		hit := cache.Request(req.Key, req.Size)
		if err := store.RecordOutcome(hit); err != nil {
			return res, fmt.Errorf("replay %s: record outcome %d: %w", opts.Name, req.Key, err)
		}
		if hit {
			res.Hits++
		} else {
			res.Misses++
		}

		opts.Emit.OnSnapshot(ctx, types.Row{
			Seq:      req.Seq,
			Key:      req.Key,
			Hit:      hit,
			Snapshot: store.Snapshot(),
		})
	}

	res.Objects = store.Len()
	res.Evicted = cache.Evicted()
	res.Elapsed = time.Since(start)

	log.Info("replay finished",
		slog.String("name", opts.Name),
		slog.Int64("requests", res.Requests),
		slog.Int64("hits", res.Hits),
		slog.Int64("misses", res.Misses),
		slog.Int64("rejected", res.Rejected),
		slog.Int("objects", res.Objects),
		slog.Float64("hit_rate", res.HitRate()),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}
