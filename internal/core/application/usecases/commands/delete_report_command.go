package commands

import (
	"errors"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/guard"
)

var ErrDeleteReportCommandIsNotConstructed = errors.New(
	"DeleteReportCommand must be created via NewDeleteReportCommand constructor",
)

// DeleteReportCommand removes one archived report by id. Deleting a report
// never reverses the workflow advance its generation may have triggered.
type DeleteReportCommand struct { //nolint:recvcheck //using for validation
	reportID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReportCommand creates a report-deletion command.
func NewDeleteReportCommand(reportID kernel.UUID) (DeleteReportCommand, error) {
	cmd := DeleteReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReportID(reportID); err != nil {
		return DeleteReportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReportCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReportCommandIsNotConstructed)
}

// ReportID returns the report to delete.
func (c DeleteReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

func (c *DeleteReportCommand) setReportID(reportID kernel.UUID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}

	c.reportID = reportID
	return nil
}
