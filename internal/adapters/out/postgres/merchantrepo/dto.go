// Package merchantrepo persists merchant aggregates, handling the conversion
// between domain entities and their database representation.
package merchantrepo

import (
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"

	"github.com/google/uuid"
)

// MerchantDTO represents the database structure for persisting merchants.
type MerchantDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopName       string    `gorm:"type:varchar(255);not null"`
	Slug           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	WhatsappNumber string    `gorm:"type:varchar(32)"`
	Currency       string    `gorm:"type:varchar(3);not null"`
	ExpiryDate     time.Time `gorm:"not null"`
	IsActive       bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "merchants".
func (MerchantDTO) TableName() string {
	return "merchants"
}

func fromDomain(m *merchant.Merchant) MerchantDTO {
	return MerchantDTO{
		ID:             m.ID().Bytes(),
		ShopName:       m.ShopName(),
		Slug:           m.Slug(),
		WhatsappNumber: m.WhatsappNumber(),
		Currency:       string(m.Currency()),
		ExpiryDate:     m.ExpiryDate(),
		IsActive:       m.IsActive(),
	}
}

func toDomain(dto MerchantDTO) (*merchant.Merchant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return merchant.RestoreMerchant(
		id,
		dto.ShopName,
		dto.Slug,
		dto.WhatsappNumber,
		merchant.Currency(dto.Currency),
		dto.ExpiryDate,
		dto.IsActive,
	)
}
