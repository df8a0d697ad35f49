package queries

import (
	"context"

	"orderboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSalesReportsQueryHandler lists sales reports with direct SQL.
type GetSalesReportsQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesReportsQueryHandler creates a handler for report listing queries.
func NewGetSalesReportsQueryHandler(db *gorm.DB) GetSalesReportsQueryHandler {
	return GetSalesReportsQueryHandler{db: db}
}

// Handle returns the merchant's reports, newest month first.
func (h GetSalesReportsQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportsQuery,
) ([]GetSalesReportsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reports := make([]GetSalesReportsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sales_amount,
			commission_amount,
			report_month,
			notes
		FROM reported_sales
		WHERE merchant_id = ?
		ORDER BY report_month DESC
	`, query.MerchantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var report GetSalesReportsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&report.SalesAmount,
			&report.CommissionAmount,
			&report.ReportMonth,
			&report.Notes,
		)
		if err != nil {
			return nil, err
		}

		reportID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		report.ID = reportID
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
