package subscriptionrepo

import (
	"context"
	"errors"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/subscription"
	"signhero/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSubscriptionRepository implements SubscriptionRepository using GORM.
type GormSubscriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubscriptionRepository creates a new GORM subscription repository.
func NewGormSubscriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the subscription record, replacing any existing record for
// the same user.
func (r *GormSubscriptionRepository) Upsert(ctx context.Context, aggregate *subscription.Subscription) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status",
			"plan_id",
			"plan_name",
			"provider_customer_id",
			"provider_subscription_id",
			"current_period_start",
			"current_period_end",
			"updated_at",
		}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByProviderSubscriptionID retrieves the record tied to the billing
// provider's subscription identifier.
func (r *GormSubscriptionRepository) GetByProviderSubscriptionID(
	ctx context.Context,
	providerSubscriptionID string,
) (*subscription.Subscription, error) {
	if providerSubscriptionID == "" {
		return nil, errs.NewValueIsRequiredError("providerSubscriptionId")
	}

	var dto SubscriptionDTO
	result := r.db.WithContext(ctx).First(&dto, "provider_subscription_id = ?", providerSubscriptionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscription", providerSubscriptionID)
		}
		return nil, result.Error
	}

	return toDomain(dto)
}

// Update persists changes to an existing subscription record.
func (r *GormSubscriptionRepository) Update(ctx context.Context, aggregate *subscription.Subscription) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SubscriptionDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
