package commands

import (
	"context"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"
)

// ReportSalesCommandHandler files monthly sales reports. The reporting
// merchant must exist; the platform commission is computed and frozen by the
// domain when the report is constructed.
type ReportSalesCommandHandler struct {
	uowFactory SalesUoWFactory
}

// NewReportSalesCommandHandler creates a handler for sales reporting.
func NewReportSalesCommandHandler(uowFactory SalesUoWFactory) ReportSalesCommandHandler {
	return ReportSalesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new sales report within a transaction.
func (h *ReportSalesCommandHandler) Handle(ctx context.Context, cmd ReportSalesCommand) (*merchant.ReportedSale, error) {
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

	saleEntity, err := merchant.NewReportedSale(
		kernel.NewUUID(),
		cmd.MerchantID(),
		cmd.SalesAmount(),
		cmd.ReportMonth(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ReportedSaleRepository().Add(ctx, saleEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saleEntity, nil
}
