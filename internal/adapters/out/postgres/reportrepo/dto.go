// Package reportrepo provides data transfer objects and mapping functions for
// report persistence. Reports are immutable once generated, so the repository
// only inserts, reads, and deletes rows.
package reportrepo

import (
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// ReportDTO represents the database structure for persisting report aggregates.
// The rendered document is stored inline in the content column.
type ReportDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Kind        string    `gorm:"type:varchar(32)"`
	Filename    string
	Content     string `gorm:"type:text"`
	GeneratedBy string
	GeneratedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for report entities.
func (ReportDTO) TableName() string {
	return "reports"
}

// fromDomain converts a report domain aggregate to its database representation.
func fromDomain(aggregate *report.Report) ReportDTO {
	return ReportDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		Kind:        aggregate.Kind().String(),
		Filename:    aggregate.Filename(),
		Content:     aggregate.Content(),
		GeneratedBy: aggregate.GeneratedBy(),
		GeneratedAt: aggregate.GeneratedAt(),
	}
}

// toDomain converts a database DTO to a report domain aggregate.
func toDomain(dto ReportDTO) (*report.Report, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	kind, err := report.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return report.RestoreReport(
		id,
		orderID,
		kind,
		dto.Filename,
		dto.Content,
		dto.GeneratedBy,
		dto.GeneratedAt,
	)
}
