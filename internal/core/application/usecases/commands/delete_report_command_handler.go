package commands

import (
	"context"
)

// DeleteReportCommandHandler handles report deletion.
type DeleteReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

// NewDeleteReportCommandHandler creates a handler for report deletion.
func NewDeleteReportCommandHandler(uowFactory ReportUoWFactory) DeleteReportCommandHandler {
	return DeleteReportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the report. An unknown id surfaces the repository's
// not-found error, so a reprint of a deleted report fails loudly.
func (h *DeleteReportCommandHandler) Handle(ctx context.Context, cmd DeleteReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ReportRepository().Delete(ctx, cmd.ReportID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
