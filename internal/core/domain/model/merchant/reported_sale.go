package merchant

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

// CommissionRate is the platform's share of reported monthly sales.
const CommissionRate = 0.01

// ErrReportedSaleIsNotConstructed is returned when a ReportedSale was not
// created through the NewReportedSale factory method.
var ErrReportedSaleIsNotConstructed = errors.New("ReportedSale must be created via NewReportedSale constructor")

var reportMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ReportedSale is one self-reported monthly sales figure. The commission is
// computed at construction time and stored alongside the amount, so later
// rate changes never rewrite history.
type ReportedSale struct {
	id               kernel.UUID
	merchantID       kernel.UUID
	salesAmount      string
	commissionAmount string
	reportMonth      string
	notes            string

	guard guard.ConstructorGuard
}

// NewReportedSale creates a sales report for reportMonth ("YYYY-MM").
// salesAmount is a non-negative decimal string; the 1% commission is derived
// from it and rounded to two decimal places.
func NewReportedSale(id, merchantID kernel.UUID, salesAmount, reportMonth, notes string) (*ReportedSale, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}

	amount, err := strconv.ParseFloat(salesAmount, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("salesAmount", err)
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"salesAmount", fmt.Errorf("%s is negative", salesAmount))
	}

	if !reportMonthPattern.MatchString(reportMonth) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"reportMonth", fmt.Errorf("%q is not in YYYY-MM form", reportMonth))
	}

	return &ReportedSale{
		id:               id,
		merchantID:       merchantID,
		salesAmount:      salesAmount,
		commissionAmount: fmt.Sprintf("%.2f", amount*CommissionRate),
		reportMonth:      reportMonth,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreReportedSale reconstructs a report from persistence, keeping the
// commission that was recorded at report time.
func RestoreReportedSale(id, merchantID kernel.UUID, salesAmount, commissionAmount, reportMonth, notes string) (*ReportedSale, error) {
	s, err := NewReportedSale(id, merchantID, salesAmount, reportMonth, notes)
	if err != nil {
		return nil, err
	}

	s.commissionAmount = commissionAmount
	return s, nil
}

// Validate ensures the ReportedSale was built through a constructor.
func (s *ReportedSale) Validate() error {
	if s == nil {
		return ErrReportedSaleIsNotConstructed
	}
	return s.guard.Validate(ErrReportedSaleIsNotConstructed)
}

// ID returns the report's unique identifier.
func (s *ReportedSale) ID() kernel.UUID { return s.id }

// MerchantID returns the reporting merchant's identifier.
func (s *ReportedSale) MerchantID() kernel.UUID { return s.merchantID }

// SalesAmount returns the reported sales figure as a decimal string.
func (s *ReportedSale) SalesAmount() string { return s.salesAmount }

// CommissionAmount returns the commission derived at report time.
func (s *ReportedSale) CommissionAmount() string { return s.commissionAmount }

// ReportMonth returns the "YYYY-MM" month the report covers.
func (s *ReportedSale) ReportMonth() string { return s.reportMonth }

// Notes returns the free-form notes, possibly empty.
func (s *ReportedSale) Notes() string { return s.notes }
