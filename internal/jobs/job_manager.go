package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	slaRulesReloadJob *SlaRulesReloadJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(reloader SlaRuleReloader, slaReloadSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		slaRulesReloadJob: NewSlaRulesReloadJob(reloader, slaReloadSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.slaRulesReloadJob.Start(); err != nil {
		return fmt.Errorf("failed to start sla rules reload job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.slaRulesReloadJob.Stop()
}
