// Package cron schedules recurring consolidation runs using robfig/cron.
package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is the unit of scheduled work.
type Job func()

// Scheduler runs a single job on a cron expression.
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	job    Job
	logger *slog.Logger
}

// NewScheduler creates a scheduler for the standard 5-field cron format.
func NewScheduler(spec string, job Job, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:   c,
		spec:   spec,
		job:    job,
		logger: logger,
	}
}

// Start registers the job and begins the schedule.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.job); err != nil {
		return fmt.Errorf("schedule %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", slog.String("schedule", s.spec))
	return nil
}

// Stop gracefully stops the schedule. The returned context is done once any
// in-flight run completes.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("scheduler stopping")
	return s.cron.Stop()
}
