package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStorefrontQueryHandler builds the storefront page read model with direct
// SQL, bypassing the aggregates.
type GetStorefrontQueryHandler struct {
	db *gorm.DB
}

// NewGetStorefrontQueryHandler creates a handler for storefront queries.
func NewGetStorefrontQueryHandler(db *gorm.DB) GetStorefrontQueryHandler {
	return GetStorefrontQueryHandler{db: db}
}

// Handle retrieves the merchant header and its available products. Returns an
// errs.ObjectNotFoundError when no merchant carries the slug.
func (h GetStorefrontQueryHandler) Handle(
	ctx context.Context,
	query GetStorefrontQuery,
) (GetStorefrontQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStorefrontQueryResponse{}, err
	}

	var response GetStorefrontQueryResponse
	var merchantID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_name,
			slug,
			whatsapp_number,
			currency,
			is_active
		FROM merchants
		WHERE slug = ?
	`, query.Slug()).Row()

	err := row.Scan(
		&merchantID,
		&response.ShopName,
		&response.Slug,
		&response.WhatsappNumber,
		&response.Currency,
		&response.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetStorefrontQueryResponse{}, errs.NewObjectNotFoundError("slug", query.Slug())
		}
		return GetStorefrontQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(merchantID[:])
	if err != nil {
		return GetStorefrontQueryResponse{}, err
	}
	response.MerchantID = id

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			image_url,
			stock
		FROM products
		WHERE merchant_id = ? AND is_available = true
		ORDER BY name
	`, merchantID).Rows()
	if err != nil {
		return GetStorefrontQueryResponse{}, err
	}
	defer rows.Close()

	response.Products = make([]StorefrontProductResponse, 0)
	for rows.Next() {
		var product StorefrontProductResponse
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.ImageURL,
			&product.Stock,
		)
		if err != nil {
			return GetStorefrontQueryResponse{}, err
		}

		pid, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetStorefrontQueryResponse{}, idErr
		}
		product.ID = pid
		response.Products = append(response.Products, product)
	}

	if err = rows.Err(); err != nil {
		return GetStorefrontQueryResponse{}, err
	}

	return response, nil
}
