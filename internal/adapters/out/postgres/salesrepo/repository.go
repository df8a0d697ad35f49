package salesrepo

import (
	"context"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"

	"gorm.io/gorm"
)

// GormReportedSaleRepository implements ReportedSaleRepository using GORM.
// Reports are append-only; there is no update or delete.
type GormReportedSaleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReportedSaleRepository creates a new GORM sales report repository.
func NewGormReportedSaleRepository(db *gorm.DB, tracker aggregateTracker) *GormReportedSaleRepository {
	return &GormReportedSaleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new report.
func (r *GormReportedSaleRepository) Add(ctx context.Context, aggregate *merchant.ReportedSale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByMerchant retrieves every report filed by the merchant, newest
// month first.
func (r *GormReportedSaleRepository) GetAllByMerchant(ctx context.Context, merchantID kernel.UUID) ([]*merchant.ReportedSale, error) {
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReportedSaleDTO
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID.Bytes()).
		Order("report_month DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	reports := make([]*merchant.ReportedSale, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reports = append(reports, s)
	}

	return reports, nil
}
