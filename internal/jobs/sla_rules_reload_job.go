package jobs

import (
	"context"
	"log/slog"

	"eta/internal/core/domain/model/sla"

	"github.com/robfig/cron/v3"
)

// DefaultSlaReloadSchedule reloads the rule file once a minute.
const DefaultSlaReloadSchedule = "0 * * * * *"

// SlaRuleReloader installs a freshly loaded rule set.
type SlaRuleReloader interface {
	Reload(ctx context.Context) (*sla.RuleSet, error)
}

// SlaRulesReloadJob periodically re-reads the SLA rule file so that rule
// edits take effect without a restart. A failed reload keeps the previous set.
type SlaRulesReloadJob struct {
	reloader SlaRuleReloader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSlaRulesReloadJob creates the job; schedule is a six-field cron
// expression with seconds, empty for DefaultSlaReloadSchedule.
func NewSlaRulesReloadJob(reloader SlaRuleReloader, schedule string, logger *slog.Logger) *SlaRulesReloadJob {
	if schedule == "" {
		schedule = DefaultSlaReloadSchedule
	}
	return &SlaRulesReloadJob{
		reloader: reloader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "sla_rules_reload_job"),
	}
}

// Start registers the reload on the schedule and starts the scheduler.
func (j *SlaRulesReloadJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "SLA rules reload job started", "schedule", j.schedule)
	return nil
}

// Run performs one reload.
func (j *SlaRulesReloadJob) Run() {
	ctx := context.Background()

	set, err := j.reloader.Reload(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "SLA rules reload failed, keeping previous rules", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "SLA rules reloaded", "rules", set.Len(), "defaults", set.Defaults().Len())
}

// Stop stops the scheduler and waits for a running reload to finish.
func (j *SlaRulesReloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "SLA rules reload job stopped")
}
