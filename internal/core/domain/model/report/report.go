package report

import (
	"errors"
	"fmt"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"
)

// ErrReportIsNotConstructed is returned when a Report instance was not created
// through the NewReport or RestoreReport factory methods.
var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport or RestoreReport constructor")

// Report is one archived printable document generated for an order. Reports
// are immutable once created; the only mutation the system supports is
// deleting the whole record.
type Report struct {
	id kernel.UUID

	// orderID is the order the document was rendered from
	orderID kernel.UUID

	kind Kind

	// filename is derived at creation and never changes; the suffix keeps
	// repeated generations of the same kind distinguishable
	filename string

	// content is the rendered document body
	content string

	// generatedBy identifies the actor who requested the generation
	generatedBy string

	generatedAt time.Time

	isConstructed bool
}

// NewReport creates an archived report record for an order.
//
// The filename is derived as <kind>_<first 8 of order id>_<8 random hex>.html
// so a directory of exported documents stays sortable by kind and order.
func NewReport(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	content string,
	generatedBy string,
	now time.Time,
) (*Report, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errs.NewValueIsRequiredError("content")
	}
	if generatedBy == "" {
		return nil, errs.NewValueIsRequiredError("generatedBy")
	}

	return &Report{
		id:            id,
		orderID:       orderID,
		kind:          kind,
		filename:      buildFilename(kind, orderID),
		content:       content,
		generatedBy:   generatedBy,
		generatedAt:   now,
		isConstructed: true,
	}, nil
}

// RestoreReport reconstructs a Report from persistence. The stored filename is
// kept as-is rather than re-derived.
//
// This function is intended for repository implementations only.
func RestoreReport(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	filename string,
	content string,
	generatedBy string,
	generatedAt time.Time,
) (*Report, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	return &Report{
		id:            id,
		orderID:       orderID,
		kind:          kind,
		filename:      filename,
		content:       content,
		generatedBy:   generatedBy,
		generatedAt:   generatedAt,
		isConstructed: true,
	}, nil
}

func buildFilename(kind Kind, orderID kernel.UUID) string {
	return fmt.Sprintf("%s_%s_%s.html", kind.String(), orderID.ShortString(), kernel.NewUUID().ShortString())
}

// Validate ensures the Report instance was properly constructed through a
// factory method.
func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}

	return nil
}

// IsEqual compares two reports by their unique identifiers.
func (r *Report) IsEqual(other *Report) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the report's unique identifier.
func (r *Report) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the order the report was rendered from.
func (r *Report) OrderID() kernel.UUID {
	return r.orderID
}

// Kind returns the document kind.
func (r *Report) Kind() Kind {
	return r.kind
}

// Filename returns the derived archive filename.
func (r *Report) Filename() string {
	return r.filename
}

// Content returns the rendered document body.
func (r *Report) Content() string {
	return r.content
}

// GeneratedBy returns the actor who requested the generation.
func (r *Report) GeneratedBy() string {
	return r.generatedBy
}

// GeneratedAt returns the generation timestamp.
func (r *Report) GeneratedAt() time.Time {
	return r.generatedAt
}
