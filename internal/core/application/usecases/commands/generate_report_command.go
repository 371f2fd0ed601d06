package commands

import (
	"errors"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/report"
	"signhero/internal/pkg/errs"
	"signhero/internal/pkg/guard"
)

var ErrGenerateReportCommandIsNotConstructed = errors.New(
	"GenerateReportCommand must be created via NewGenerateReportCommand constructor",
)

// GenerateReportCommand represents a request to render one report kind for
// an order, archive the document, and apply the kind's workflow advance.
type GenerateReportCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	kind        report.Kind
	generatedBy string

	guard guard.ConstructorGuard
}

// NewGenerateReportCommand creates a report-generation command.
// generatedBy is the acting user resolved from the request; reports always
// record who produced them.
func NewGenerateReportCommand(orderID kernel.UUID, kind report.Kind, generatedBy string) (GenerateReportCommand, error) {
	cmd := GenerateReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKind(kind),
		cmd.setGeneratedBy(generatedBy),
	); err != nil {
		return GenerateReportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateReportCommand) Validate() error {
	return c.guard.Validate(ErrGenerateReportCommandIsNotConstructed)
}

// OrderID returns the order to render.
func (c GenerateReportCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the requested report kind.
func (c GenerateReportCommand) Kind() report.Kind {
	return c.kind
}

// GeneratedBy returns the acting user.
func (c GenerateReportCommand) GeneratedBy() string {
	return c.generatedBy
}

func (c *GenerateReportCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *GenerateReportCommand) setKind(kind report.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *GenerateReportCommand) setGeneratedBy(generatedBy string) error {
	if generatedBy == "" {
		return errs.NewValueIsRequiredError("generatedBy")
	}

	c.generatedBy = generatedBy
	return nil
}
