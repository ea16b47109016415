// Package daemon implements watch mode: it reformats txxt documents as
// they change on disk, sweeps their cross-document references on a
// schedule, and serves health and metrics endpoints.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/txxt/internal/config"
	"git.home.luguber.info/inful/txxt/internal/engine"
	txxterrors "git.home.luguber.info/inful/txxt/internal/errors"
	"git.home.luguber.info/inful/txxt/internal/lint"
	"git.home.luguber.info/inful/txxt/internal/metrics"
)

// Daemon ties the watcher, the sweep scheduler, and the admin HTTP
// server together over one configuration.
type Daemon struct {
	cfg      *config.Config
	paths    []string
	recorder metrics.Recorder
	registry *prom.Registry

	watcher   *Watcher
	scheduler *Scheduler
	server    *HTTPServer
}

// New creates a daemon watching the given paths.
func New(cfg *config.Config, paths []string) (*Daemon, error) {
	if len(paths) == 0 {
		return nil, txxterrors.ValidationFailed("paths", "at least one path to watch is required")
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return nil, txxterrors.ReadError(p, err)
		}
	}

	registry := prom.NewRegistry()
	d := &Daemon{
		cfg:      cfg,
		paths:    paths,
		recorder: metrics.NewPrometheusRecorder(registry),
		registry: registry,
	}

	watcher, err := NewWatcher(paths, cfg.DebounceDuration(), cfg.Format.Extensions, d.reformat)
	if err != nil {
		return nil, err
	}
	d.watcher = watcher

	scheduler, err := NewScheduler(cfg.SweepDuration(), d.sweep)
	if err != nil {
		return nil, err
	}
	d.scheduler = scheduler
	d.server = NewHTTPServer(cfg.Daemon.Listen, registry)

	return d, nil
}

// Run starts all daemon components and blocks until ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	slog.Info("Starting txxt daemon", "paths", d.paths, "listen", d.cfg.Daemon.Listen)

	if err := d.watcher.Start(ctx); err != nil {
		return txxterrors.DaemonError("starting watcher", err)
	}
	d.scheduler.Start()
	d.server.Start()

	<-ctx.Done()

	slog.Info("Stopping txxt daemon")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var firstErr error
	if err := d.watcher.Stop(); err != nil {
		firstErr = err
	}
	if err := d.scheduler.Stop(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := d.server.Stop(shutdownCtx); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// reformat rewrites one changed document in place. Writing back triggers
// one more watch event, but the rewritten content is already canonical,
// so the second pass is a no-op and the loop terminates.
func (d *Daemon) reformat(path string) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Cannot read changed document", "path", path, "error", err)
		d.recorder.ObserveOperation("reformat", time.Since(start), err)
		return
	}

	text := string(data)
	formatted := engine.FormatDocument(text)
	if d.cfg.Format.Full {
		formatted = engine.FullFormat(text)
	}
	if formatted == text {
		d.recorder.ObserveOperation("reformat", time.Since(start), nil)
		return
	}

	if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
		slog.Error("Cannot write reformatted document", "path", path, "error", err)
		d.recorder.ObserveOperation("reformat", time.Since(start), err)
		return
	}
	d.recorder.ObserveOperation("reformat", time.Since(start), nil)
	d.recorder.IncReformatted()
	slog.Info("Reformatted document", "path", path)
}

// sweep re-checks references across all watched paths.
func (d *Daemon) sweep(ctx context.Context, runID string) error {
	start := time.Now()
	linter := lint.NewLinter(&lint.Config{
		Extensions:    d.cfg.Format.Extensions,
		MaxConcurrent: d.cfg.Check.MaxConcurrent,
	})

	total := 0
	for _, path := range d.paths {
		result, err := linter.LintPath(ctx, path)
		if err != nil {
			d.recorder.ObserveOperation("sweep", time.Since(start), err)
			return fmt.Errorf("sweeping %s: %w", path, err)
		}
		total += result.ErrorCount()
	}

	d.recorder.SetDiagnostics(total)
	d.recorder.ObserveOperation("sweep", time.Since(start), nil)
	slog.Info("Reference sweep complete", "run_id", runID, "diagnostics", total)
	return nil
}
