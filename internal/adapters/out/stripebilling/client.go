// Package stripebilling implements the billing provider port on top of the
// Stripe API. It owns checkout session creation, subscription lookups, and
// webhook signature verification; no Stripe SDK types leak past this package.
package stripebilling

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"signhero/internal/core/ports"
	"signhero/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

const serviceName = "stripe"

// ErrWebhookSignatureInvalid is returned when a webhook payload fails
// verification against every configured endpoint secret.
var ErrWebhookSignatureInvalid = errors.New("webhook signature verification failed with all configured secrets")

// Client talks to Stripe. Webhook endpoints can be configured with two
// secrets because Stripe issues separate secrets per endpoint payload style;
// verification tries the primary first and falls back to the secondary.
type Client struct {
	api             *client.API
	webhookSecret   string
	secondarySecret string
}

// NewClient creates a Stripe-backed billing provider. secondaryWebhookSecret
// may be empty when only one endpoint secret is configured.
func NewClient(secretKey, webhookSecret, secondaryWebhookSecret string) (*Client, error) {
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("stripe secret key")
	}
	if webhookSecret == "" {
		return nil, errs.NewValueIsRequiredError("stripe webhook secret")
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{
		api:             api,
		webhookSecret:   webhookSecret,
		secondarySecret: secondaryWebhookSecret,
	}, nil
}

// CreateCheckoutSession resolves the plan's default price and opens a hosted
// subscription checkout. The user, plan id, and plan name are stamped on the
// session metadata so the completion webhook can attribute the purchase.
func (c *Client) CreateCheckoutSession(
	ctx context.Context,
	req ports.CheckoutSessionRequest,
) (ports.CheckoutSession, error) {
	if req.PlanID == "" {
		return ports.CheckoutSession{}, errs.NewValueIsRequiredError("planId")
	}
	if req.UserID == "" {
		return ports.CheckoutSession{}, errs.NewValueIsRequiredError("userId")
	}

	productParams := &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
	}
	productParams.AddExpand("default_price")

	product, err := c.api.Products.Get(req.PlanID, productParams)
	if err != nil {
		return ports.CheckoutSession{}, errs.NewExternalServiceError(serviceName, err)
	}
	if product.DefaultPrice == nil {
		return ports.CheckoutSession{}, errs.NewValueIsInvalidError("plan has no default price")
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(product.DefaultPrice.ID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		sessionParams.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	sessionParams.AddMetadata("userId", req.UserID)
	sessionParams.AddMetadata("planId", req.PlanID)
	sessionParams.AddMetadata("planName", product.Name)

	session, err := c.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return ports.CheckoutSession{}, errs.NewExternalServiceError(serviceName, err)
	}

	return ports.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// GetSubscription loads the provider's subscription object by id.
func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (ports.ProviderSubscription, error) {
	if subscriptionID == "" {
		return ports.ProviderSubscription{}, errs.NewValueIsRequiredError("subscriptionId")
	}

	params := &stripe.SubscriptionParams{
		Params: stripe.Params{Context: ctx},
	}

	sub, err := c.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return ports.ProviderSubscription{}, errs.NewExternalServiceError(serviceName, err)
	}

	return mapSubscription(sub), nil
}

// ParseWebhookEvent verifies the payload signature and decodes the event.
// Both configured secrets are tried; a payload failing with all of them is
// rejected as unverifiable. Endpoints pinned to a different Stripe API
// version still sign correctly, so the version check is not part of
// verification.
func (c *Client) ParseWebhookEvent(payload []byte, signature string) (ports.WebhookEvent, error) {
	event, err := c.constructEvent(payload, signature, c.webhookSecret)
	if err != nil && c.secondarySecret != "" {
		event, err = c.constructEvent(payload, signature, c.secondarySecret)
	}
	if err != nil {
		return ports.WebhookEvent{}, ErrWebhookSignatureInvalid
	}

	parsed := ports.WebhookEvent{Type: string(event.Type)}

	switch parsed.Type {
	case ports.BillingEventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return ports.WebhookEvent{}, errs.NewExternalServiceError(serviceName, err)
		}

		checkout := &ports.CheckoutCompleted{
			UserID:   session.Metadata["userId"],
			PlanID:   session.Metadata["planId"],
			PlanName: session.Metadata["planName"],
		}
		if session.Customer != nil {
			checkout.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			checkout.SubscriptionID = session.Subscription.ID
		}
		parsed.Checkout = checkout

	case ports.BillingEventSubscriptionUpdated, ports.BillingEventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return ports.WebhookEvent{}, errs.NewExternalServiceError(serviceName, err)
		}

		mapped := mapSubscription(&sub)
		parsed.Subscription = &mapped
	}

	return parsed, nil
}

func (c *Client) constructEvent(payload []byte, signature, secret string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, signature, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}

// mapSubscription flattens a Stripe subscription into the port shape. The
// billing period lives on the subscription items in current API versions.
func mapSubscription(sub *stripe.Subscription) ports.ProviderSubscription {
	mapped := ports.ProviderSubscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}
	if sub.Customer != nil {
		mapped.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		mapped.PeriodStart = time.Unix(item.CurrentPeriodStart, 0).UTC()
		mapped.PeriodEnd = time.Unix(item.CurrentPeriodEnd, 0).UTC()
	}
	return mapped
}
