// Package report contains the Report aggregate: archived printable documents
// (pick tickets, order summaries, pickup checklists) generated for orders.
// Reports are immutable records; generation and deletion are the only
// operations.
package report
