package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"shelfrent-backend/internal/jobs"
	"shelfrent-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler with the monthly jobs registered.
// An invalid cron spec is reported instead of silently dropped.
func NewScheduler(jobRunner *jobs.JobRunner) (*Scheduler, error) {
	// UTC with seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.MonthlyStatements, s.jobs.SendMonthlyStatements); err != nil {
		logger.Error("Failed to register SendMonthlyStatements job", "spec", cfg.MonthlyStatements, "error", err)
		return err
	}

	logger.Info("All cron jobs registered successfully", "entries", len(s.cron.Entries()))
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop waits for running jobs and stops the scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// NextRun returns when the next job fires; zero before Start
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// Entries returns how many jobs are registered
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
