package stripebilling

import (
	"fmt"
	"testing"

	"signhero/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	primarySecret   = "whsec_primary"
	secondarySecret = "whsec_secondary"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient("sk_test_123", primarySecret, secondarySecret)
	require.NoError(t, err)
	return c
}

func signedPayload(payload, secret string) (body []byte, signature string) {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: []byte(payload),
		Secret:  secret,
	})
	return signed.Payload, signed.Header
}

func checkoutCompletedPayload() string {
	return fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"type": %q,
		"data": {
			"object": {
				"id": "cs_1",
				"object": "checkout.session",
				"customer": "cus_123",
				"subscription": "sub_123",
				"metadata": {
					"userId": "7b3d9f4e-8f1a-4c2b-9d6e-1a2b3c4d5e6f",
					"planId": "prod_basic",
					"planName": "Basic"
				}
			}
		}
	}`, ports.BillingEventCheckoutCompleted)
}

func TestNewClient_RequiresSecrets(t *testing.T) {
	_, err := NewClient("", "whsec_x", "")
	assert.Error(t, err)

	_, err = NewClient("sk_test_123", "", "")
	assert.Error(t, err)

	c, err := NewClient("sk_test_123", "whsec_x", "")
	assert.NoError(t, err)
	assert.NotNil(t, c)
}

func TestParseWebhookEvent_CheckoutCompleted(t *testing.T) {
	c := newTestClient(t)
	body, signature := signedPayload(checkoutCompletedPayload(), primarySecret)

	event, err := c.ParseWebhookEvent(body, signature)
	require.NoError(t, err)

	assert.Equal(t, ports.BillingEventCheckoutCompleted, event.Type)
	require.NotNil(t, event.Checkout)
	assert.Equal(t, "7b3d9f4e-8f1a-4c2b-9d6e-1a2b3c4d5e6f", event.Checkout.UserID)
	assert.Equal(t, "prod_basic", event.Checkout.PlanID)
	assert.Equal(t, "Basic", event.Checkout.PlanName)
	assert.Equal(t, "cus_123", event.Checkout.CustomerID)
	assert.Equal(t, "sub_123", event.Checkout.SubscriptionID)
	assert.Nil(t, event.Subscription)
}

func TestParseWebhookEvent_AcceptsOtherAPIVersions(t *testing.T) {
	c := newTestClient(t)

	// Endpoints stay pinned to the API version they were created under;
	// a correctly signed event must not be rejected over the version field.
	payload := fmt.Sprintf(`{
		"id": "evt_pinned",
		"object": "event",
		"api_version": "2020-08-27",
		"type": %q,
		"data": {
			"object": {
				"id": "cs_2",
				"object": "checkout.session",
				"customer": "cus_123",
				"subscription": "sub_123",
				"metadata": {"userId": "7b3d9f4e-8f1a-4c2b-9d6e-1a2b3c4d5e6f", "planId": "prod_basic"}
			}
		}
	}`, ports.BillingEventCheckoutCompleted)
	body, signature := signedPayload(payload, primarySecret)

	event, err := c.ParseWebhookEvent(body, signature)
	require.NoError(t, err)
	assert.Equal(t, ports.BillingEventCheckoutCompleted, event.Type)
	require.NotNil(t, event.Checkout)
	assert.Equal(t, "prod_basic", event.Checkout.PlanID)
}

func TestParseWebhookEvent_SecondarySecretFallback(t *testing.T) {
	c := newTestClient(t)
	body, signature := signedPayload(checkoutCompletedPayload(), secondarySecret)

	event, err := c.ParseWebhookEvent(body, signature)
	require.NoError(t, err)
	assert.Equal(t, ports.BillingEventCheckoutCompleted, event.Type)
}

func TestParseWebhookEvent_RejectsUnknownSignature(t *testing.T) {
	c := newTestClient(t)
	body, signature := signedPayload(checkoutCompletedPayload(), "whsec_somebody_else")

	_, err := c.ParseWebhookEvent(body, signature)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWebhookSignatureInvalid)
}

func TestParseWebhookEvent_SubscriptionDeleted(t *testing.T) {
	c := newTestClient(t)
	payload := fmt.Sprintf(`{
		"id": "evt_2",
		"object": "event",
		"type": %q,
		"data": {
			"object": {
				"id": "sub_123",
				"object": "subscription",
				"status": "canceled",
				"customer": "cus_123"
			}
		}
	}`, ports.BillingEventSubscriptionDeleted)
	body, signature := signedPayload(payload, primarySecret)

	event, err := c.ParseWebhookEvent(body, signature)
	require.NoError(t, err)

	assert.Equal(t, ports.BillingEventSubscriptionDeleted, event.Type)
	require.NotNil(t, event.Subscription)
	assert.Equal(t, "sub_123", event.Subscription.ID)
	assert.Equal(t, "canceled", event.Subscription.Status)
	assert.Equal(t, "cus_123", event.Subscription.CustomerID)
	assert.Nil(t, event.Checkout)
}

func TestParseWebhookEvent_IgnoresUnhandledEventPayloads(t *testing.T) {
	c := newTestClient(t)
	payload := `{
		"id": "evt_3",
		"object": "event",
		"type": "invoice.paid",
		"data": {"object": {"id": "in_1", "object": "invoice"}}
	}`
	body, signature := signedPayload(payload, primarySecret)

	event, err := c.ParseWebhookEvent(body, signature)
	require.NoError(t, err)

	assert.Equal(t, "invoice.paid", event.Type)
	assert.Nil(t, event.Checkout)
	assert.Nil(t, event.Subscription)
}
