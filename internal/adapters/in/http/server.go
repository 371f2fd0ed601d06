// Package http exposes the rental service over a REST API. Handlers decode
// and validate wire payloads, translate them into commands and queries, and
// map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"signhero/internal/core/application/usecases/commands"
	"signhero/internal/core/application/usecases/queries"
	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/core/domain/model/report"
	"signhero/internal/core/ports"
	"signhero/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating proxy.
const (
	HeaderActor     = "X-Actor"
	HeaderActorRole = "X-Actor-Role"
)

// stripeSignatureHeader carries the webhook payload signature.
const stripeSignatureHeader = "Stripe-Signature"

// CustomValidator adapts go-playground/validator to Echo's Validator interface.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates the request payload validator.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks a bound request payload against its struct tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	changeStatusHandler       commands.ChangeOrderStatusCommandHandler
	resetStatusHandler        commands.ResetOrderStatusCommandHandler
	generateReportHandler     commands.GenerateReportCommandHandler
	deleteReportHandler       commands.DeleteReportCommandHandler
	recordPickupHandler       commands.RecordPickupCommandHandler
	upsertSubscriptionHandler commands.UpsertSubscriptionCommandHandler
	syncSubscriptionHandler   commands.SyncSubscriptionCommandHandler
	cancelSubscriptionHandler commands.CancelSubscriptionCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getReportsByOrderHandler queries.GetReportsByOrderQueryHandler
	getOverduePickupsHandler queries.GetOverduePickupsQueryHandler

	billing ports.BillingProvider
	now     func() time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	resetStatusHandler commands.ResetOrderStatusCommandHandler,
	generateReportHandler commands.GenerateReportCommandHandler,
	deleteReportHandler commands.DeleteReportCommandHandler,
	recordPickupHandler commands.RecordPickupCommandHandler,
	upsertSubscriptionHandler commands.UpsertSubscriptionCommandHandler,
	syncSubscriptionHandler commands.SyncSubscriptionCommandHandler,
	cancelSubscriptionHandler commands.CancelSubscriptionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getReportsByOrderHandler queries.GetReportsByOrderQueryHandler,
	getOverduePickupsHandler queries.GetOverduePickupsQueryHandler,
	billing ports.BillingProvider,
	now func() time.Time,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		changeStatusHandler:       changeStatusHandler,
		resetStatusHandler:        resetStatusHandler,
		generateReportHandler:     generateReportHandler,
		deleteReportHandler:       deleteReportHandler,
		recordPickupHandler:       recordPickupHandler,
		upsertSubscriptionHandler: upsertSubscriptionHandler,
		syncSubscriptionHandler:   syncSubscriptionHandler,
		cancelSubscriptionHandler: cancelSubscriptionHandler,
		getOrderHandler:           getOrderHandler,
		getOrdersByStatusHandler:  getOrdersByStatusHandler,
		getReportsByOrderHandler:  getReportsByOrderHandler,
		getOverduePickupsHandler:  getOverduePickupsHandler,
		billing:                   billing,
		now:                       now,
	}
}

// RegisterRoutes mounts all API routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrdersByStatus)
	v1.GET("/orders/overdue-pickups", s.GetOverduePickups)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id", s.ChangeOrderStatus)
	v1.POST("/orders/:id/reset", s.ResetOrderStatus)
	v1.POST("/orders/:id/checkin", s.Checkin)
	v1.POST("/orders/:id/reports", s.GenerateReport)
	v1.GET("/orders/:id/reports", s.GetReportsByOrder)
	v1.DELETE("/reports/:id", s.DeleteReport)

	v1.POST("/billing/checkout-session", s.CreateCheckoutSession)
	v1.POST("/billing/webhook", s.BillingWebhook)
}

// problem maps a domain error onto the API's error body and status code.
func problem(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrResetRequiresAdmin):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrExternalService):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	userID, customer, eventDate, packageInfo, slots, options, totalAmount, err := req.toDomainParts()
	if err != nil {
		return problem(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, customer, eventDate, req.EventForName,
		packageInfo, slots, options, totalAmount,
	)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return problem(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=pending.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return problem(ctx, err)
	}

	responses, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responses)
}

// GetOverduePickups handles GET /api/v1/orders/overdue-pickups.
func (s *Server) GetOverduePickups(ctx echo.Context) error {
	query, err := queries.NewGetOverduePickupsQuery(s.now())
	if err != nil {
		return problem(ctx, err)
	}

	responses, err := s.getOverduePickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responses)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return problem(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return problem(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:        updated.ID().String(),
		Status:    updated.Status().String(),
		UpdatedAt: updated.UpdatedAt(),
	})
}

// ResetOrderStatus handles POST /api/v1/orders/:id/reset. Restricted to the
// admin role carried by the identity headers.
func (s *Server) ResetOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewResetOrderStatusCommand(orderID, ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return problem(ctx, err)
	}

	updated, err := s.resetStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:        updated.ID().String(),
		Status:    updated.Status().String(),
		UpdatedAt: updated.UpdatedAt(),
	})
}

// Checkin handles POST /api/v1/orders/:id/checkin.
func (s *Server) Checkin(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return problem(ctx, err)
	}

	var req CheckinRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	pickupDate, err := parseDate("pickupDate", req.PickupDate)
	if err != nil {
		return problem(ctx, err)
	}

	conditions := make([]order.SignCondition, 0, len(req.SignConditions))
	for _, sc := range req.SignConditions {
		conditions = append(conditions, order.SignCondition{
			SignID:    sc.SignID,
			Condition: order.SignConditionValue(sc.Condition),
			Notes:     sc.Notes,
		})
	}

	cmd, err := commands.NewRecordPickupCommand(
		orderID, pickupDate, conditions, req.Notes,
		ctx.Request().Header.Get(HeaderActor),
	)
	if err != nil {
		return problem(ctx, err)
	}

	updated, err := s.recordPickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	info := updated.PickupInfo()
	return ctx.JSON(http.StatusOK, CheckinResponse{
		ID:             updated.ID().String(),
		Status:         updated.Status().String(),
		PickedUpOnTime: info.PickedUpOnTime,
		LateFee:        info.LateFee.String(),
		UpdatedAt:      updated.UpdatedAt(),
	})
}

// GenerateReport handles POST /api/v1/orders/:id/reports. An order missing
// the data a report needs is rejected with 422 naming the missing fields.
func (s *Server) GenerateReport(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return problem(ctx, err)
	}

	var req GenerateReportRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	kind, err := report.KindFromString(req.Kind)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewGenerateReportCommand(orderID, kind, ctx.Request().Header.Get(HeaderActor))
	if err != nil {
		return problem(ctx, err)
	}

	generated, err := s.generateReportHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsRequired) {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
		}
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ReportResponse{
		ID:          generated.ID().String(),
		OrderID:     generated.OrderID().String(),
		Kind:        generated.Kind().String(),
		Filename:    generated.Filename(),
		GeneratedBy: generated.GeneratedBy(),
		GeneratedAt: generated.GeneratedAt(),
	})
}

// GetReportsByOrder handles GET /api/v1/orders/:id/reports.
func (s *Server) GetReportsByOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewGetReportsByOrderQuery(orderID)
	if err != nil {
		return problem(ctx, err)
	}

	responses, err := s.getReportsByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responses)
}

// DeleteReport handles DELETE /api/v1/reports/:id.
func (s *Server) DeleteReport(ctx echo.Context) error {
	reportID, err := pathUUID(ctx, "id")
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewDeleteReportCommand(reportID)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.deleteReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCheckoutSession handles POST /api/v1/billing/checkout-session.
func (s *Server) CreateCheckoutSession(ctx echo.Context) error {
	var req CheckoutSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	session, err := s.billing.CreateCheckoutSession(ctx.Request().Context(), ports.CheckoutSessionRequest{
		UserID:        req.UserID,
		PlanID:        req.PlanID,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	})
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}

// BillingWebhook handles POST /api/v1/billing/webhook. Payloads that fail
// signature verification are rejected; verified events the service does not
// subscribe to are acknowledged without action.
func (s *Server) BillingWebhook(ctx echo.Context) error {
	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body",
		})
	}

	event, err := s.billing.ParseWebhookEvent(payload, ctx.Request().Header.Get(stripeSignatureHeader))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := s.dispatchBillingEvent(ctx, event); err != nil {
		// The provider retries on non-2xx; processing failures are logged and
		// acknowledged so a poison event cannot wedge the webhook queue.
		ctx.Logger().Errorf("billing webhook %s failed: %v", event.Type, err)
	}

	return ctx.JSON(http.StatusOK, WebhookResponse{Received: true})
}

func (s *Server) dispatchBillingEvent(ctx echo.Context, event ports.WebhookEvent) error {
	reqCtx := ctx.Request().Context()

	switch event.Type {
	case ports.BillingEventCheckoutCompleted:
		checkout := event.Checkout
		if checkout == nil || checkout.UserID == "" || checkout.PlanID == "" {
			return nil
		}

		userID, err := kernel.UUIDFromString(checkout.UserID)
		if err != nil {
			return err
		}

		cmd, err := commands.NewUpsertSubscriptionCommand(
			userID, checkout.PlanID, checkout.PlanName,
			checkout.CustomerID, checkout.SubscriptionID,
		)
		if err != nil {
			return err
		}
		return s.upsertSubscriptionHandler.Handle(reqCtx, cmd)

	case ports.BillingEventSubscriptionUpdated:
		if event.Subscription == nil {
			return nil
		}

		cmd, err := commands.NewSyncSubscriptionCommand(
			event.Subscription.ID, event.Subscription.Status,
			event.Subscription.PeriodStart, event.Subscription.PeriodEnd,
		)
		if err != nil {
			return err
		}
		return s.syncSubscriptionHandler.Handle(reqCtx, cmd)

	case ports.BillingEventSubscriptionDeleted:
		if event.Subscription == nil {
			return nil
		}

		cmd, err := commands.NewCancelSubscriptionCommand(event.Subscription.ID)
		if err != nil {
			return err
		}
		return s.cancelSubscriptionHandler.Handle(reqCtx, cmd)
	}

	return nil
}
