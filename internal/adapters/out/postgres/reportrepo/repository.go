package reportrepo

import (
	"context"
	"errors"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/report"
	"signhero/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository using GORM.
type GormReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReportRepository creates a new GORM report repository.
func NewGormReportRepository(db *gorm.DB, tracker aggregateTracker) *GormReportRepository {
	return &GormReportRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly generated report to the database.
func (r *GormReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a report by ID.
func (r *GormReportRepository) Get(ctx context.Context, id kernel.UUID) (*report.Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("report", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every report generated for an order, newest first.
func (r *GormReportRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*report.Report, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReportDTO
	query := r.db.WithContext(ctx).Order("generated_at DESC")
	if err := query.Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	reports := make([]*report.Report, 0, len(dtos))
	for _, dto := range dtos {
		rep, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}

// Delete removes a report permanently. Returns a not-found error when no row
// matches the id.
func (r *GormReportRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReportDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("report", id.String())
	}

	return nil
}
