package queries

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/guard"
)

var ErrGetSalesReportsQueryIsNotConstructed = errors.New(
	"GetSalesReportsQuery must be created via NewGetSalesReportsQuery constructor",
)

// GetSalesReportsQuery lists a merchant's filed monthly sales reports,
// newest month first, with the commission frozen at report time.
type GetSalesReportsQuery struct {
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSalesReportsQuery creates a report listing query for the merchant.
func NewGetSalesReportsQuery(merchantID kernel.UUID) (GetSalesReportsQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetSalesReportsQuery{}, err
	}

	return GetSalesReportsQuery{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesReportsQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportsQueryIsNotConstructed)
}

// MerchantID returns the merchant whose reports are listed.
func (q GetSalesReportsQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// GetSalesReportsQueryResponse is one filed report in the read model.
type GetSalesReportsQueryResponse struct {
	ID               kernel.UUID
	SalesAmount      string
	CommissionAmount string
	ReportMonth      string
	Notes            string
}
