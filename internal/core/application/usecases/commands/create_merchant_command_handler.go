package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"
	"orderboard/internal/pkg/errs"
)

// CreateMerchantCommandHandler registers new merchants, enforcing slug
// uniqueness against the store before persisting. New merchants start on the
// standard trial period.
type CreateMerchantCommandHandler struct {
	uowFactory MerchantUoWFactory
}

// NewCreateMerchantCommandHandler creates a handler for merchant registration.
func NewCreateMerchantCommandHandler(uowFactory MerchantUoWFactory) CreateMerchantCommandHandler {
	return CreateMerchantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new merchant within a transaction. The slug check and the
// insert share the transaction, so two racing registrations cannot both win.
func (h *CreateMerchantCommandHandler) Handle(ctx context.Context, cmd CreateMerchantCommand) (*merchant.Merchant, error) {
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

	merchantRepo := uow.MerchantRepository()
	if _, err := merchantRepo.GetBySlug(ctx, cmd.Slug()); err == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"slug", fmt.Errorf("%q is already taken", cmd.Slug()))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	merchantEntity, err := merchant.NewMerchant(
		kernel.NewUUID(),
		cmd.ShopName(),
		cmd.Slug(),
		cmd.WhatsappNumber(),
		cmd.Currency(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = merchantRepo.Add(ctx, merchantEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return merchantEntity, nil
}
