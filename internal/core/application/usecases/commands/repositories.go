// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"hogtrade/internal/core/ports"
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

	// HogRepoFactory provides access to the hog repository within a transaction.
	HogRepoFactory interface {
		HogRepository() ports.HogRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// TransactionRepoFactory provides access to the transaction repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// SaleUoW manages transactions for sale creation.
	// A sale touches hogs, the new transaction record, and the customer directory,
	// so all three repositories must share one database transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   hogRepo := uow.HogRepository()
	//   txRepo := uow.TransactionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SaleUoW interface {
		TxManager
		HogRepoFactory
		TransactionRepoFactory
		CustomerRepoFactory
	}

	// SaleUoWFactory creates new sale unit of work instances.
	SaleUoWFactory interface {
		Create() SaleUoW
	}

	// IntakeUoW manages transactions for delivery intake.
	// Intake persists the delivery with its batch of hogs and verifies the supplier.
	IntakeUoW interface {
		TxManager
		DeliveryRepoFactory
		SupplierRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}
)
