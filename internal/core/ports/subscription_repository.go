package ports

import (
	"context"

	"signhero/internal/core/domain/model/subscription"
)

// SubscriptionRepository defines the persistence contract for billing
// subscription records maintained by provider webhook events.
type SubscriptionRepository interface {
	// Upsert inserts the record, or replaces the existing one for the same
	// user. Checkout completion events land here, so a user re-subscribing
	// overwrites their previous record.
	Upsert(ctx context.Context, aggregate *subscription.Subscription) error

	// GetByProviderSubscriptionID retrieves the record tied to the billing
	// provider's subscription identifier.
	// Returns an error wrapping errs.ErrObjectNotFound for an unknown id.
	GetByProviderSubscriptionID(ctx context.Context, providerSubscriptionID string) (*subscription.Subscription, error)

	// Update persists changes to an existing record.
	Update(ctx context.Context, aggregate *subscription.Subscription) error
}
