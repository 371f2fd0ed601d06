// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL and return
// flat response models; they never load aggregates.
package queries

import (
	"encoding/json"
	"errors"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order record by id.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderQueryResponse is the flat order record returned to the API. The
// document-shaped parts (customer, package, slots, options, pickup) pass
// through as raw JSON exactly as stored.
type OrderQueryResponse struct {
	ID           kernel.UUID     `json:"id"`
	UserID       kernel.UUID     `json:"userId"`
	Status       string          `json:"status"`
	TotalAmount  string          `json:"totalAmount"`
	EventDate    time.Time       `json:"eventDate"`
	EventForName string          `json:"eventForName"`
	Customer     json.RawMessage `json:"customerInfo"`
	PackageInfo  json.RawMessage `json:"packageInfo"`
	Slots        json.RawMessage `json:"previewSlots"`
	Options      json.RawMessage `json:"options"`
	PickupInfo   json.RawMessage `json:"pickupInfo,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
