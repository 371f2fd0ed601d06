package queries

import (
	"errors"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/guard"
)

var ErrGetReportsByOrderQueryIsNotConstructed = errors.New(
	"GetReportsByOrderQuery must be created via NewGetReportsByOrderQuery constructor",
)

// GetReportsByOrderQuery retrieves the archived reports of one order,
// newest first.
type GetReportsByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReportsByOrderQuery creates a per-order report listing query.
func NewGetReportsByOrderQuery(orderID kernel.UUID) (GetReportsByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetReportsByOrderQuery{}, err
	}

	return GetReportsByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportsByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetReportsByOrderQueryIsNotConstructed)
}

// OrderID returns the order whose reports are listed.
func (q GetReportsByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ReportQueryResponse is one archived report's metadata. Content is omitted
// from listings; the record stays reachable by filename.
type ReportQueryResponse struct {
	ID          kernel.UUID `json:"id"`
	OrderID     kernel.UUID `json:"orderId"`
	Kind        string      `json:"kind"`
	Filename    string      `json:"filename"`
	GeneratedBy string      `json:"generatedBy"`
	GeneratedAt time.Time   `json:"generatedAt"`
}
