package http

import (
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates (event date, pickup date).
const dateLayout = "2006-01-02"

// Error is the uniform problem body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest is the event address within an order submission.
type AddressRequest struct {
	Street    string `json:"street" validate:"required"`
	Apartment string `json:"apartment"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
}

// CustomerInfoRequest is the contact snapshot within an order submission.
type CustomerInfoRequest struct {
	Name         string         `json:"name" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	Phone        string         `json:"phone"`
	EventAddress AddressRequest `json:"eventAddress" validate:"required"`
}

// PackageInfoRequest is the package snapshot within an order submission.
// Prices travel as decimal strings.
type PackageInfoRequest struct {
	Name                string `json:"name" validate:"required"`
	Price               string `json:"price" validate:"required"`
	SignCount           int    `json:"signCount" validate:"gte=0"`
	SetupDaysBefore     int    `json:"setupDaysBefore" validate:"gte=0"`
	TeardownDaysAfter   int    `json:"teardownDaysAfter" validate:"gte=0"`
	ExtraDayBeforePrice string `json:"extraDayBeforePrice"`
	ExtraDayAfterPrice  string `json:"extraDayAfterPrice"`
}

// SignRefRequest identifies a catalog sign bound to a slot.
type SignRefRequest struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	EventType string `json:"eventType"`
	Style     string `json:"style"`
	Color     string `json:"color"`
}

// SlotRequest is one layout position within an order submission.
type SlotRequest struct {
	Position   int             `json:"position" validate:"required,gt=0"`
	Sign       *SignRefRequest `json:"sign"`
	IsNameSlot bool            `json:"isNameSlot"`
}

// OptionsRequest carries the extra-day flags.
type OptionsRequest struct {
	EarlyDelivery bool `json:"earlyDelivery"`
	LatePickup    bool `json:"latePickup"`
}

// CreateOrderRequest is the payload of POST /orders.
type CreateOrderRequest struct {
	UserID       string              `json:"userId" validate:"required,uuid"`
	EventDate    string              `json:"eventDate" validate:"required"`
	EventForName string              `json:"eventForName"`
	CustomerInfo CustomerInfoRequest `json:"customerInfo" validate:"required"`
	PackageInfo  PackageInfoRequest  `json:"packageInfo" validate:"required"`
	PreviewSlots []SlotRequest       `json:"previewSlots" validate:"required,dive"`
	Options      OptionsRequest      `json:"options"`
	TotalAmount  string              `json:"totalAmount" validate:"required"`
}

// CreateOrderResponse returns the id assigned to the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeStatusRequest is the payload of PATCH /orders/:id.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderStatusResponse reports an order's lifecycle state after a mutation.
type OrderStatusResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GenerateReportRequest is the payload of POST /orders/:id/reports.
type GenerateReportRequest struct {
	Kind string `json:"kind" validate:"required"`
}

// ReportResponse describes one generated report.
type ReportResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	Kind        string    `json:"kind"`
	Filename    string    `json:"filename"`
	GeneratedBy string    `json:"generatedBy"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// SignConditionRequest is one per-sign assessment within a check-in.
type SignConditionRequest struct {
	SignID    string `json:"signId" validate:"required"`
	Condition string `json:"condition" validate:"required,oneof=good damaged"`
	Notes     string `json:"notes"`
}

// CheckinRequest is the payload of POST /orders/:id/checkin.
type CheckinRequest struct {
	PickupDate     string                 `json:"pickupDate" validate:"required"`
	SignConditions []SignConditionRequest `json:"signConditions" validate:"dive"`
	Notes          string                 `json:"notes"`
}

// CheckinResponse reports the derived late-fee outcome of a check-in.
type CheckinResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	PickedUpOnTime bool      `json:"pickedUpOnTime"`
	LateFee        string    `json:"lateFee"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CheckoutSessionRequest is the payload of POST /billing/checkout-session.
type CheckoutSessionRequest struct {
	PlanID        string `json:"planId" validate:"required"`
	UserID        string `json:"userId" validate:"required,uuid"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
	SuccessURL    string `json:"successUrl" validate:"required,url"`
	CancelURL     string `json:"cancelUrl" validate:"required,url"`
}

// CheckoutSessionResponse returns the provider session to redirect to.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// WebhookResponse acknowledges a processed provider notification.
type WebhookResponse struct {
	Received bool `json:"received"`
}

func parseDate(paramName, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return parsed, nil
}

func parseMoney(paramName, value string) (kernel.Money, error) {
	if value == "" {
		return kernel.ZeroMoney(), nil
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return kernel.NewMoney(amount)
}

func (r CreateOrderRequest) toDomainParts() (
	kernel.UUID,
	order.CustomerInfo,
	time.Time,
	order.PackageInfo,
	[]order.Slot,
	order.Options,
	kernel.Money,
	error,
) {
	fail := func(err error) (
		kernel.UUID, order.CustomerInfo, time.Time, order.PackageInfo,
		[]order.Slot, order.Options, kernel.Money, error,
	) {
		return kernel.UUID{}, order.CustomerInfo{}, time.Time{}, order.PackageInfo{},
			nil, order.Options{}, kernel.Money{}, err
	}

	userID, err := kernel.UUIDFromString(r.UserID)
	if err != nil {
		return fail(err)
	}

	eventDate, err := parseDate("eventDate", r.EventDate)
	if err != nil {
		return fail(err)
	}

	price, err := parseMoney("packageInfo.price", r.PackageInfo.Price)
	if err != nil {
		return fail(err)
	}
	extraBefore, err := parseMoney("packageInfo.extraDayBeforePrice", r.PackageInfo.ExtraDayBeforePrice)
	if err != nil {
		return fail(err)
	}
	extraAfter, err := parseMoney("packageInfo.extraDayAfterPrice", r.PackageInfo.ExtraDayAfterPrice)
	if err != nil {
		return fail(err)
	}
	totalAmount, err := parseMoney("totalAmount", r.TotalAmount)
	if err != nil {
		return fail(err)
	}

	customer := order.CustomerInfo{
		Name:  r.CustomerInfo.Name,
		Email: r.CustomerInfo.Email,
		Phone: r.CustomerInfo.Phone,
		EventAddress: order.Address{
			Street:    r.CustomerInfo.EventAddress.Street,
			Apartment: r.CustomerInfo.EventAddress.Apartment,
			City:      r.CustomerInfo.EventAddress.City,
			State:     r.CustomerInfo.EventAddress.State,
			Zip:       r.CustomerInfo.EventAddress.Zip,
		},
	}

	packageInfo := order.PackageInfo{
		Name:                r.PackageInfo.Name,
		Price:               price,
		SignCount:           r.PackageInfo.SignCount,
		SetupDaysBefore:     r.PackageInfo.SetupDaysBefore,
		TeardownDaysAfter:   r.PackageInfo.TeardownDaysAfter,
		ExtraDayBeforePrice: extraBefore,
		ExtraDayAfterPrice:  extraAfter,
	}

	slots := make([]order.Slot, 0, len(r.PreviewSlots))
	for _, slot := range r.PreviewSlots {
		domainSlot := order.Slot{
			Position:   slot.Position,
			IsNameSlot: slot.IsNameSlot,
		}
		if slot.Sign != nil {
			domainSlot.Sign = &order.SignRef{
				ID:        slot.Sign.ID,
				Name:      slot.Sign.Name,
				EventType: slot.Sign.EventType,
				Style:     slot.Sign.Style,
				Color:     slot.Sign.Color,
			}
		}
		slots = append(slots, domainSlot)
	}

	options := order.Options{
		EarlyDelivery: r.Options.EarlyDelivery,
		LatePickup:    r.Options.LatePickup,
	}

	return userID, customer, eventDate, packageInfo, slots, options, totalAmount, nil
}
