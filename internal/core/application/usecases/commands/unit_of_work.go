// Package commands contains the write-side operations of the application: the
// order lifecycle controller driving the in-memory registry, and the admin
// subsystem commands persisting through the relational store.
//
// Lifecycle handlers follow the board's fanout contract: every mutation is
// followed, within the same handler call, by broadcasts carrying the full
// updated snapshots of the partitions it touched. Unknown order ids are
// silent no-ops; nothing is surfaced to any client.
package commands

import (
	"context"

	"orderboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for the admin
// command handlers. The lifecycle handlers never use them; the registry is
// in-memory and mutations are serialized by the gateway dispatcher instead.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MerchantRepoFactory provides access to the merchant repository within
	// a transaction.
	MerchantRepoFactory interface {
		MerchantRepository() ports.MerchantRepository
	}

	// ProductRepoFactory provides access to the product repository within a
	// transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ReportedSaleRepoFactory provides access to the sales report repository
	// within a transaction.
	ReportedSaleRepoFactory interface {
		ReportedSaleRepository() ports.ReportedSaleRepository
	}

	// MerchantUoW manages transactions for merchant-only operations.
	MerchantUoW interface {
		TxManager
		MerchantRepoFactory
	}

	// MerchantUoWFactory creates merchant unit of work instances.
	MerchantUoWFactory interface {
		Create() MerchantUoW
	}

	// CatalogUoW manages transactions touching merchants and their products.
	CatalogUoW interface {
		TxManager
		MerchantRepoFactory
		ProductRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// SalesUoW manages transactions touching merchants and sales reports.
	SalesUoW interface {
		TxManager
		MerchantRepoFactory
		ReportedSaleRepoFactory
	}

	// SalesUoWFactory creates sales unit of work instances.
	SalesUoWFactory interface {
		Create() SalesUoW
	}
)
