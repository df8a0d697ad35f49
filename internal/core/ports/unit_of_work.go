package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent admin operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a transaction boundary for the admin subsystem's
// relational store. The live order registry is in-memory and is not part of
// any unit of work.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// MerchantRepository returns a MerchantRepository bound to the current
	// transaction.
	MerchantRepository() MerchantRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository

	// ReportedSaleRepository returns a ReportedSaleRepository bound to the
	// current transaction.
	ReportedSaleRepository() ReportedSaleRepository
}
