package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrReportSalesCommandIsNotConstructed = errors.New(
	"ReportSalesCommand must be created via NewReportSalesCommand constructor",
)

// ReportSalesCommand files a merchant's self-reported monthly sales figure.
// The commission is derived by the domain at construction time, not here.
type ReportSalesCommand struct {
	merchantID  kernel.UUID
	salesAmount string
	reportMonth string
	notes       string

	guard guard.ConstructorGuard
}

// NewReportSalesCommand creates a sales report command. Amount and month
// format are validated later by the ReportedSale constructor; the command only
// requires them to be present.
func NewReportSalesCommand(merchantID kernel.UUID, salesAmount, reportMonth, notes string) (ReportSalesCommand, error) {
	cmd := ReportSalesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMerchantID(merchantID),
		cmd.setSalesAmount(salesAmount),
		cmd.setReportMonth(reportMonth),
	); err != nil {
		return ReportSalesCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportSalesCommand) Validate() error {
	return c.guard.Validate(ErrReportSalesCommandIsNotConstructed)
}

// MerchantID returns the reporting merchant's identifier.
func (c ReportSalesCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// SalesAmount returns the reported sales figure as a decimal string.
func (c ReportSalesCommand) SalesAmount() string {
	return c.salesAmount
}

// ReportMonth returns the "YYYY-MM" month the report covers.
func (c ReportSalesCommand) ReportMonth() string {
	return c.reportMonth
}

// Notes returns the free-form notes, possibly empty.
func (c ReportSalesCommand) Notes() string {
	return c.notes
}

func (c *ReportSalesCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *ReportSalesCommand) setSalesAmount(salesAmount string) error {
	if salesAmount == "" {
		return errs.NewValueIsRequiredError("salesAmount")
	}

	c.salesAmount = salesAmount
	return nil
}

func (c *ReportSalesCommand) setReportMonth(reportMonth string) error {
	if reportMonth == "" {
		return errs.NewValueIsRequiredError("reportMonth")
	}

	c.reportMonth = reportMonth
	return nil
}
