package queries

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrGetStorefrontQueryIsNotConstructed = errors.New(
	"GetStorefrontQuery must be created via NewGetStorefrontQuery constructor",
)

// GetStorefrontQuery retrieves the public storefront read model of one
// merchant: the shop header plus its available products. It backs the page a
// customer sees before placing an order.
type GetStorefrontQuery struct {
	slug string

	guard guard.ConstructorGuard
}

// NewGetStorefrontQuery creates a storefront query for the slug.
func NewGetStorefrontQuery(slug string) (GetStorefrontQuery, error) {
	if slug == "" {
		return GetStorefrontQuery{}, errs.NewValueIsRequiredError("slug")
	}

	return GetStorefrontQuery{
		slug:  slug,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStorefrontQuery) Validate() error {
	return q.guard.Validate(ErrGetStorefrontQueryIsNotConstructed)
}

// Slug returns the storefront slug being looked up.
func (q GetStorefrontQuery) Slug() string {
	return q.slug
}

// StorefrontProductResponse is one available product on the storefront page.
type StorefrontProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       string
	ImageURL    string
	Stock       int
}

// GetStorefrontQueryResponse is the storefront page read model.
type GetStorefrontQueryResponse struct {
	MerchantID     kernel.UUID
	ShopName       string
	Slug           string
	WhatsappNumber string
	Currency       string
	IsActive       bool
	Products       []StorefrontProductResponse
}
