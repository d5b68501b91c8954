package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	objstats "github.com/krisalay/objstats"
	"github.com/krisalay/objstats/config"
	"github.com/krisalay/objstats/emit"
	"github.com/krisalay/objstats/logger"
	"github.com/krisalay/objstats/metrics"
	"github.com/krisalay/objstats/simulator"
	"github.com/krisalay/objstats/trace"
	"github.com/krisalay/objstats/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config (defaults if empty)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics.Addr, reg, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("failed to shutdown metrics server", "error", err)
			}
		}()
	}

	jobs, closers, err := buildJobs(cfg, reg, log)
	if err != nil {
		return err
	}

	results, runErr := simulator.RunAll(ctx, jobs, cfg.Replay.Workers)

	// Emitters are flushed even when a replay failed, so partial output is kept.
	if err := closeAll(closers); err != nil {
		log.Error("failed to flush output", "error", err)
		runErr = errors.Join(runErr, err)
	}
	if runErr != nil {
		return runErr
	}

	for _, r := range results {
		log.Info("result",
			slog.String("name", r.Name),
			slog.Int64("requests", r.Requests),
			slog.Float64("hit_rate", r.HitRate()),
			slog.Int("objects", r.Objects),
			slog.Int64("rejected", r.Rejected),
		)
	}
	return nil
}

// buildJobs creates one job per configured trace, each with its own store,
// metrics labels and output file. On error every file it opened is closed again.
func buildJobs(cfg *config.Config, reg prometheus.Registerer, log *slog.Logger) (jobs []simulator.Job, closers []func() error, err error) {
	defer func() {
		if err != nil {
			_ = closeAll(closers)
			jobs, closers = nil, nil
		}
	}()

	type source struct {
		name string
		src  trace.Source
	}

	var sources []source
	if len(cfg.Replay.Traces) == 0 {
		syn := cfg.Replay.Synthetic
		sources = append(sources, source{
			name: "synthetic",
			src: trace.NewSynthetic(trace.SyntheticConfig{
				Requests:  syn.Requests,
				Objects:   syn.Objects,
				Skew:      syn.Skew,
				MaxSize:   syn.MaxSize,
				DataTypes: syn.DataTypes,
				Seed:      syn.Seed,
			}),
		})
	}
	for _, path := range cfg.Replay.Traces {
		// #nosec G304 - trace paths come from the config file
		f, err := os.Open(path)
		if err != nil {
			return nil, closers, fmt.Errorf("open trace: %w", err)
		}
		closers = append(closers, f.Close)
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		sources = append(sources, source{name: name, src: trace.NewReader(f)})
	}

	if cfg.Output.Dir != "" {
		if err := os.MkdirAll(cfg.Output.Dir, 0o750); err != nil {
			return nil, closers, fmt.Errorf("create output dir: %w", err)
		}
	}

	for _, s := range sources {
		m, err := metrics.NewPrometheus(reg, prometheus.Labels{"trace": s.name})
		if err != nil {
			return nil, closers, fmt.Errorf("register metrics for %s: %w", s.name, err)
		}

		storeOpts := []objstats.Option{
			objstats.WithMetrics(m),
			objstats.WithLogger(log.With(slog.String("trace", s.name))),
			objstats.WithSizeHint(cfg.Store.SizeHint),
		}
		if cfg.Store.Strict {
			storeOpts = append(storeOpts,
				objstats.WithStrict(),
				objstats.WithValidator(validation.NewStrict(cfg.Store.AllowedTypes...)),
			)
		}

		var out emit.Policy = emit.Discard{}
		if cfg.Output.Dir != "" {
			f, err := os.Create(filepath.Join(cfg.Output.Dir, s.name+".csv"))
			if err != nil {
				return nil, closers, fmt.Errorf("create output: %w", err)
			}
			out = emit.New(cfg.Output.Mode, emit.NewCSVSink(f), cfg.Output.Buffer)
			closers = append(closers, outputCloser(s.name, out, f, cfg.Output.Buffer, log))
		}

		jobs = append(jobs, simulator.Job{
			Source: s.src,
			Options: simulator.Options{
				Name:         s.name,
				Capacity:     cfg.Cache.Capacity,
				Policy:       cfg.Cache.Policy,
				StoreOptions: storeOpts,
				Emit:         out,
				Logger:       log,
			},
		})
	}

	return jobs, closers, nil
}

// outputCloser flushes the emitter, closes its file and warns about rows a
// write-back buffer had to drop.
func outputCloser(name string, out emit.Policy, f *os.File, buffer int, log *slog.Logger) func() error {
	return func() error {
		err := errors.Join(out.Close(), f.Close())
		if wb, ok := out.(*emit.WriteBack); ok && wb.Dropped() > 0 {
			log.Warn("output incomplete, write-back buffer overflowed",
				slog.String("trace", name),
				slog.Int64("dropped", wb.Dropped()),
				slog.Int("buffer", buffer),
			)
		}
		return err
	}
}

// closeAll runs every closer and joins their errors.
func closeAll(closers []func() error) error {
	var errs []error
	for _, c := range closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func serveMetrics(addr string, reg *prometheus.Registry, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "error", err)
		}
	}()

	return srv
}
