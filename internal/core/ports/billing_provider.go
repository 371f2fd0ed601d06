package ports

import (
	"context"
	"time"
)

// Webhook event types the billing integration reacts to. Values are the
// provider's own event names.
const (
	BillingEventCheckoutCompleted   = "checkout.session.completed"
	BillingEventSubscriptionUpdated = "customer.subscription.updated"
	BillingEventSubscriptionDeleted = "customer.subscription.deleted"
)

// CheckoutSessionRequest carries what the provider needs to open a hosted
// checkout page for a plan purchase.
type CheckoutSessionRequest struct {
	UserID        string
	PlanID        string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the provider's created session: the id for later
// reconciliation and the URL the client redirects to.
type CheckoutSession struct {
	ID  string
	URL string
}

// ProviderSubscription mirrors the billing provider's subscription object.
type ProviderSubscription struct {
	ID          string
	CustomerID  string
	Status      string
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// CheckoutCompleted is the payload of a completed checkout event: the
// metadata stamped on the session at creation plus the provider object ids.
type CheckoutCompleted struct {
	UserID         string
	PlanID         string
	PlanName       string
	CustomerID     string
	SubscriptionID string
}

// WebhookEvent is one verified provider notification. Exactly one of the
// payload pointers is set, matching Type.
type WebhookEvent struct {
	Type         string
	Checkout     *CheckoutCompleted
	Subscription *ProviderSubscription
}

// BillingProvider is the outbound contract to the payment provider. The
// implementation owns signature verification and provider object mapping so
// the rest of the system never sees provider SDK types.
type BillingProvider interface {
	// CreateCheckoutSession opens a hosted checkout for the plan; the
	// provider resolves the plan's current default price.
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error)

	// GetSubscription loads the provider's subscription object by id.
	GetSubscription(ctx context.Context, subscriptionID string) (ProviderSubscription, error)

	// ParseWebhookEvent verifies the payload signature against the
	// configured secrets and decodes the event. A payload that fails
	// verification with every secret is rejected.
	ParseWebhookEvent(payload []byte, signature string) (WebhookEvent, error)
}
