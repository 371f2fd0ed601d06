package queries

import (
	"context"

	"signhero/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReportsByOrderQueryHandler reads an order's report listing from the
// database.
type GetReportsByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetReportsByOrderQueryHandler creates a handler for per-order report
// listings.
func NewGetReportsByOrderQueryHandler(db *gorm.DB) GetReportsByOrderQueryHandler {
	return GetReportsByOrderQueryHandler{db: db}
}

// Handle executes the query. Reports are ordered by generation time
// descending: the most recent print comes first.
func (h GetReportsByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetReportsByOrderQuery,
) ([]ReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reports := make([]ReportQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			kind,
			filename,
			generated_by,
			generated_at
		FROM reports
		WHERE order_id = ?
		ORDER BY generated_at DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        ReportQueryResponse
			id, orderID uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&orderID,
			&resp.Kind,
			&resp.Filename,
			&resp.GeneratedBy,
			&resp.GeneratedAt,
		); err != nil {
			return nil, err
		}

		reportID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owningOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = reportID
		resp.OrderID = owningOrderID
		reports = append(reports, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
