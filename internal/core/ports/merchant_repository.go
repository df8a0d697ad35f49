package ports

import (
	"context"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"
)

// MerchantRepository defines the persistence contract for merchant aggregates.
type MerchantRepository interface {
	// Add persists a new merchant. Fails when the slug is already taken.
	Add(ctx context.Context, aggregate *merchant.Merchant) error

	// Update persists changes to an existing merchant.
	Update(ctx context.Context, aggregate *merchant.Merchant) error

	// Get retrieves a merchant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error)

	// GetBySlug retrieves a merchant by its public storefront slug.
	// Returns an errs.ObjectNotFoundError when no merchant carries the slug.
	GetBySlug(ctx context.Context, slug string) (*merchant.Merchant, error)

	// GetAllWithExpiredTrial retrieves active merchants whose trial expiry
	// date lies in the past. Used by the trial expiry job.
	GetAllWithExpiredTrial(ctx context.Context) ([]*merchant.Merchant, error)
}

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product for a merchant.
	Add(ctx context.Context, aggregate *merchant.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *merchant.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*merchant.Product, error)

	// GetAllByMerchant retrieves every product owned by a merchant,
	// available or not.
	GetAllByMerchant(ctx context.Context, merchantID kernel.UUID) ([]*merchant.Product, error)

	// Remove deletes a product permanently.
	Remove(ctx context.Context, id kernel.UUID) error
}

// ReportedSaleRepository defines the persistence contract for monthly sales
// reports.
type ReportedSaleRepository interface {
	// Add persists a new sales report.
	Add(ctx context.Context, aggregate *merchant.ReportedSale) error

	// GetAllByMerchant retrieves every report filed by a merchant.
	GetAllByMerchant(ctx context.Context, merchantID kernel.UUID) ([]*merchant.ReportedSale, error)
}
