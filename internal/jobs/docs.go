// Package jobs provides scheduled background tasks for the estimate service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SlaRulesReloadJob - re-reads the SLA rule file and swaps the rule set
// used by new estimate requests. Requests already running keep the snapshot
// they started with.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(slaProvider, cfg.SlaReloadSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
// The default "0 * * * * *" reloads at the start of every minute.
//
// # Error Handling
//
// A reload that fails to read or validate the file is logged and the
// previous rule set stays active.
package jobs
