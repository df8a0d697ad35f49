package commands

import (
	"context"
	"log/slog"
)

// ExpireTrialsCommandHandler deactivates merchants whose trial expiry date has
// passed. The repository filters to active merchants with a past expiry, so
// re-running the command is harmless.
type ExpireTrialsCommandHandler struct {
	uowFactory MerchantUoWFactory
	logger     *slog.Logger
}

// NewExpireTrialsCommandHandler creates a handler for trial expiry sweeps.
func NewExpireTrialsCommandHandler(uowFactory MerchantUoWFactory, logger *slog.Logger) ExpireTrialsCommandHandler {
	return ExpireTrialsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "expire_trials_handler"),
	}
}

// Handle deactivates all expired merchants in a single transaction.
func (h *ExpireTrialsCommandHandler) Handle(ctx context.Context, cmd ExpireTrialsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	merchantRepo := uow.MerchantRepository()
	expired, err := merchantRepo.GetAllWithExpiredTrial(ctx)
	if err != nil {
		return err
	}

	for _, m := range expired {
		m.Deactivate()
		if err = merchantRepo.Update(ctx, m); err != nil {
			return err
		}

		h.logger.InfoContext(ctx, "Merchant trial expired, deactivated",
			"merchantId", m.ID().String(),
			"slug", m.Slug())
	}

	return uow.Commit(ctx)
}
