package main

import (
	"context"
	"fmt"
	"time"

	objstats "github.com/krisalay/objstats"
	"github.com/krisalay/objstats/eviction"
	"github.com/krisalay/objstats/simulator"
	"github.com/krisalay/objstats/trace"
)

// ================= BENCHMARK =================

func main() {
	ctx := context.Background()

	// ---------------- Replay Config ----------------
	const (
		traces     = 8
		requests   = 500000
		objects    = 100000
		workers    = 4
		capacity   = 20000.0
		maxObjSize = 8.0
	)

	fmt.Println("\n================ REPLAY BENCHMARK =================")
	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Traces       :", traces)
	fmt.Println("Requests     :", requests)
	fmt.Println("Objects      :", objects)
	fmt.Println("Workers      :", workers)
	fmt.Println("Capacity     :", capacity)
	fmt.Println("---------------------------------")

	jobs := make([]simulator.Job, traces)
	for i := range jobs {
		jobs[i] = simulator.Job{
			Source: trace.NewSynthetic(trace.SyntheticConfig{
				Requests:  requests,
				Objects:   objects,
				Skew:      1.1,
				MaxSize:   maxObjSize,
				DataTypes: 4,
				Seed:      int64(i + 1),
			}),
			Options: simulator.Options{
				Name:         fmt.Sprintf("synthetic-%d", i),
				Capacity:     capacity,
				Policy:       eviction.LRU,
				StoreOptions: []objstats.Option{objstats.WithSizeHint(objects)},
			},
		}
	}

	fmt.Println("Running replays...")
	start := time.Now()

	results, err := simulator.RunAll(ctx, jobs, workers)
	if err != nil {
		fmt.Println("replay failed:", err)
		return
	}

	duration := time.Since(start)
	totalOps := int64(traces * requests)

	fmt.Println("\n================ RESULTS =================")
	for _, r := range results {
		fmt.Printf("%-14s hit rate %.4f  objects %d  evicted %d\n", r.Name, r.HitRate(), r.Objects, r.Evicted)
	}
	fmt.Printf("Total Requests : %d\n", totalOps)
	fmt.Printf("Total Time     : %v\n", duration)
	fmt.Printf("Throughput     : %.2f req/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Println("=========================================")
}
