// Package salesrepo persists monthly sales reports, handling the conversion
// between domain entities and their database representation.
package salesrepo

import (
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"

	"github.com/google/uuid"
)

// ReportedSaleDTO represents the database structure for persisting reports.
// The commission is stored as computed at report time.
type ReportedSaleDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SalesAmount      string    `gorm:"type:varchar(32);not null"`
	CommissionAmount string    `gorm:"type:varchar(32);not null"`
	ReportMonth      string    `gorm:"type:varchar(7);not null"`
	Notes            string    `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "reported_sales".
func (ReportedSaleDTO) TableName() string {
	return "reported_sales"
}

func fromDomain(s *merchant.ReportedSale) ReportedSaleDTO {
	return ReportedSaleDTO{
		ID:               s.ID().Bytes(),
		MerchantID:       s.MerchantID().Bytes(),
		SalesAmount:      s.SalesAmount(),
		CommissionAmount: s.CommissionAmount(),
		ReportMonth:      s.ReportMonth(),
		Notes:            s.Notes(),
	}
}

func toDomain(dto ReportedSaleDTO) (*merchant.ReportedSale, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	return merchant.RestoreReportedSale(
		id,
		merchantID,
		dto.SalesAmount,
		dto.CommissionAmount,
		dto.ReportMonth,
		dto.Notes,
	)
}
