// Package jobs provides scheduled background tasks for the rental service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverduePickupJob - Runs daily at 07:00 to flag deployed orders whose
// scheduled pickup date has passed, so the crew's route includes them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overduePickupsHandler, logger, time.Now)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep is read-only: failures are logged and retried on the next tick,
// never propagated.
package jobs
