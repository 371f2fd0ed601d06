package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"signhero/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overduePickupJob *OverduePickupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overduePickupsHandler queries.GetOverduePickupsQueryHandler,
	logger *slog.Logger,
	now func() time.Time,
) *JobManager {
	return &JobManager{
		overduePickupJob: NewOverduePickupJob(overduePickupsHandler, logger, now),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overduePickupJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue pickup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overduePickupJob.Stop()
}
