package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// Scheduler runs the periodic reference sweep.
type Scheduler struct {
	scheduler gocron.Scheduler
	interval  time.Duration
	sweep     func(ctx context.Context, runID string) error
}

// NewScheduler creates a scheduler invoking sweep every interval.
func NewScheduler(interval time.Duration, sweep func(ctx context.Context, runID string) error) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	sched := &Scheduler{scheduler: s, interval: interval, sweep: sweep}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(sched.run),
		gocron.WithName("reference-sweep"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sweep job: %w", err)
	}
	return sched, nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	slog.Info("Starting sweep scheduler", "interval", s.interval)
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping sweep scheduler")
	return s.scheduler.Shutdown()
}

// run is invoked by gocron for each sweep.
func (s *Scheduler) run() {
	runID := uuid.NewString()
	slog.Debug("Starting reference sweep", "run_id", runID)

	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	if err := s.sweep(ctx, runID); err != nil {
		slog.Error("Reference sweep failed", "run_id", runID, "error", err)
	}
}
