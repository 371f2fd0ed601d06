package queries

import (
	"context"
	"database/sql"
	"errors"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order record from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an error wrapping errs.ErrObjectNotFound
// for an unknown id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			total_amount,
			event_date,
			event_for_name,
			customer_info,
			package_info,
			slots,
			options,
			pickup_info,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return OrderQueryResponse{}, err
	}

	return resp, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderQueryResponse, error) {
	var (
		resp       OrderQueryResponse
		id, userID uuid.UUID
		pickupInfo []byte
	)

	if err := row.Scan(
		&id,
		&userID,
		&resp.Status,
		&resp.TotalAmount,
		&resp.EventDate,
		&resp.EventForName,
		&resp.Customer,
		&resp.PackageInfo,
		&resp.Slots,
		&resp.Options,
		&pickupInfo,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderQueryResponse{}, err
	}

	resp.ID = orderID
	resp.UserID = ownerID
	if len(pickupInfo) > 0 {
		resp.PickupInfo = pickupInfo
	}

	return resp, nil
}
