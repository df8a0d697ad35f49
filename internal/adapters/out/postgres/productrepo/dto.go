// Package productrepo persists product aggregates, handling the conversion
// between domain entities and their database representation.
package productrepo

import (
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
// Price is stored as a decimal string to keep money values exact.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       string    `gorm:"type:varchar(32);not null"`
	ImageURL    string    `gorm:"type:text"`
	Stock       int       `gorm:"type:int;not null"`
	IsAvailable bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *merchant.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		MerchantID:  p.MerchantID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		ImageURL:    p.ImageURL(),
		Stock:       p.Stock(),
		IsAvailable: p.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*merchant.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	return merchant.RestoreProduct(
		id,
		merchantID,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.ImageURL,
		dto.Stock,
		dto.IsAvailable,
	)
}
