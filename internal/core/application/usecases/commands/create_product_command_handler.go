package commands

import (
	"context"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"
)

// CreateProductCommandHandler adds products to a merchant's catalog. The
// owning merchant must exist; products of unknown merchants are rejected with
// the lookup error.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new product within a transaction after confirming the
// owning merchant exists.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*merchant.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MerchantRepository().Get(ctx, cmd.MerchantID()); err != nil {
		return nil, err
	}

	productEntity, err := merchant.NewProduct(
		kernel.NewUUID(),
		cmd.MerchantID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.ImageURL(),
		cmd.Stock(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, productEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return productEntity, nil
}
