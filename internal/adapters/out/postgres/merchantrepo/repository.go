package merchantrepo

import (
	"context"
	"errors"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"
	"orderboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMerchantRepository implements MerchantRepository using GORM.
type GormMerchantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMerchantRepository creates a new GORM merchant repository.
func NewGormMerchantRepository(db *gorm.DB, tracker aggregateTracker) *GormMerchantRepository {
	return &GormMerchantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new merchant. The unique index on slug turns racing
// registrations into a constraint error.
func (r *GormMerchantRepository) Add(ctx context.Context, aggregate *merchant.Merchant) error {
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

// Update saves an existing merchant.
func (r *GormMerchantRepository) Update(ctx context.Context, aggregate *merchant.Merchant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a merchant by ID.
func (r *GormMerchantRepository) Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MerchantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySlug retrieves a merchant by its public storefront slug.
func (r *GormMerchantRepository) GetBySlug(ctx context.Context, slug string) (*merchant.Merchant, error) {
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}

	var dto MerchantDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("slug", slug)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllWithExpiredTrial retrieves active merchants whose trial has ended.
func (r *GormMerchantRepository) GetAllWithExpiredTrial(ctx context.Context) ([]*merchant.Merchant, error) {
	var dtos []MerchantDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = true AND expiry_date < ?", time.Now()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	merchants := make([]*merchant.Merchant, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		merchants = append(merchants, m)
	}

	return merchants, nil
}
