// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"signhero/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReportRepoFactory provides access to the report repository within a transaction.
	ReportRepoFactory interface {
		ReportRepository() ports.ReportRepository
	}

	// SubscriptionRepoFactory provides access to the subscription repository within a transaction.
	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReportUoW manages transactions for report-only operations.
	ReportUoW interface {
		TxManager
		ReportRepoFactory
	}

	// ReportUoWFactory creates new report unit of work instances.
	ReportUoWFactory interface {
		Create() ReportUoW
	}

	// OrderReportUoW manages transactions spanning the order and report
	// aggregates. Report generation archives the document and advances the
	// order status in one transaction, so both repositories share it.
	OrderReportUoW interface {
		TxManager
		OrderRepoFactory
		ReportRepoFactory
	}

	// OrderReportUoWFactory creates new cross-aggregate unit of work instances.
	OrderReportUoWFactory interface {
		Create() OrderReportUoW
	}

	// SubscriptionUoW manages transactions for subscription-only operations.
	SubscriptionUoW interface {
		TxManager
		SubscriptionRepoFactory
	}

	// SubscriptionUoWFactory creates new subscription unit of work instances.
	SubscriptionUoWFactory interface {
		Create() SubscriptionUoW
	}
)
