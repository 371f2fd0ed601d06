// Package subscriptionrepo provides data transfer objects and mapping
// functions for billing subscription persistence. Rows are keyed by user:
// a user re-subscribing replaces their previous record.
package subscriptionrepo

import (
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/subscription"

	"github.com/google/uuid"
)

// SubscriptionDTO represents the database structure for persisting
// subscription records synced from billing provider webhooks.
type SubscriptionDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Status                 string    `gorm:"type:varchar(32)"`
	PlanID                 string
	PlanName               string
	ProviderCustomerID     string
	ProviderSubscriptionID string `gorm:"index"`
	CurrentPeriodStart     time.Time
	CurrentPeriodEnd       time.Time
	UpdatedAt              time.Time
}

// TableName specifies the database table name for subscription entities.
func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

// fromDomain converts a subscription domain aggregate to its database
// representation.
func fromDomain(aggregate *subscription.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:                     aggregate.ID().Bytes(),
		UserID:                 aggregate.UserID().Bytes(),
		Status:                 aggregate.Status(),
		PlanID:                 aggregate.PlanID(),
		PlanName:               aggregate.PlanName(),
		ProviderCustomerID:     aggregate.ProviderCustomerID(),
		ProviderSubscriptionID: aggregate.ProviderSubscriptionID(),
		CurrentPeriodStart:     aggregate.CurrentPeriodStart(),
		CurrentPeriodEnd:       aggregate.CurrentPeriodEnd(),
		UpdatedAt:              aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a subscription domain aggregate.
func toDomain(dto SubscriptionDTO) (*subscription.Subscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return subscription.RestoreSubscription(
		id,
		userID,
		dto.Status,
		dto.PlanID,
		dto.PlanName,
		dto.ProviderCustomerID,
		dto.ProviderSubscriptionID,
		dto.CurrentPeriodStart,
		dto.CurrentPeriodEnd,
		dto.UpdatedAt,
	)
}
