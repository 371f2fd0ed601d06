package commands

import (
	"context"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/core/domain/model/report"
	"signhero/internal/core/domain/services/reportgen"
)

// workflowAdvance declares the status move a report kind triggers once its
// document is archived. The move is conditional: it fires only when the
// order currently sits in From, and is silently skipped otherwise, so
// reprinting a document never re-runs a transition.
type workflowAdvance struct {
	From order.Status
	To   order.Status
}

// workflowAdvances is the declared mapping from report kind to the stage the
// printed document represents: printing the pick ticket starts processing,
// the summary marks deployment, the checklist opens check-in.
func workflowAdvances() map[report.Kind]workflowAdvance {
	return map[report.Kind]workflowAdvance{
		report.PickTicket:      {From: order.Pending, To: order.Processing},
		report.OrderSummary:    {From: order.Processing, To: order.Deployed},
		report.PickupChecklist: {From: order.Deployed, To: order.CheckIn},
	}
}

// GenerateReportCommandHandler renders a report, archives it, and applies
// the kind's declared workflow advance. Archive and advance commit in one
// transaction: either both land or neither does.
type GenerateReportCommandHandler struct {
	uowFactory OrderReportUoWFactory
	now        func() time.Time
}

// NewGenerateReportCommandHandler creates a handler for report generation.
// Requires a cross-aggregate unit of work since the report insert and the
// order's status advance share a transaction.
func NewGenerateReportCommandHandler(uowFactory OrderReportUoWFactory, now func() time.Time) GenerateReportCommandHandler {
	return GenerateReportCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the report-generation command. Rendering happens before
// the transaction opens; an order missing report data fails fast and
// persists nothing. Returns the archived report.
func (h *GenerateReportCommandHandler) Handle(ctx context.Context, cmd GenerateReportCommand) (*report.Report, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	doc, err := reportgen.Render(aggregate, cmd.Kind())
	if err != nil {
		return nil, err
	}

	archived, err := report.NewReport(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.Kind(),
		doc.HTML(),
		cmd.GeneratedBy(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ReportRepository().Add(ctx, archived); err != nil {
		return nil, err
	}

	if advance, ok := workflowAdvances()[cmd.Kind()]; ok && aggregate.Status() == advance.From {
		if err = aggregate.ChangeStatus(advance.To, h.now()); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return archived, nil
}
