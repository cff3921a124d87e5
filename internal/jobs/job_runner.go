package jobs

import (
	"shelfrent-backend/internal/config"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	inventory service.InventoryService
	mailer    service.Mailer
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(inventory service.InventoryService, mailer service.Mailer, cfg *config.Config) *JobRunner {
	return &JobRunner{
		inventory: inventory,
		mailer:    mailer,
		config:    cfg,
	}
}

// Config exposes the configuration the scheduler reads its cron specs from
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllMonthlyJobs runs all monthly jobs (for manual execution)
func (jr *JobRunner) RunAllMonthlyJobs() {
	jr.SendMonthlyStatements()
}
