package ports

import (
	"context"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/report"
)

// ReportRepository defines the persistence contract for archived reports.
// Reports are immutable, so there is no Update.
type ReportRepository interface {
	// Add persists a newly generated report.
	Add(ctx context.Context, aggregate *report.Report) error

	// Get retrieves a report by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*report.Report, error)

	// GetAllByOrder retrieves an order's reports, newest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*report.Report, error)

	// Delete removes a report by id.
	// Returns an error wrapping errs.ErrObjectNotFound for an unknown id.
	Delete(ctx context.Context, id kernel.UUID) error
}
