package merchant

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is one catalog entry owned by a merchant. Price is carried as a
// decimal string end to end, matching how the storefront submits it, to avoid
// binary float drift in money values.
type Product struct {
	id          kernel.UUID
	merchantID  kernel.UUID
	name        string
	description string
	price       string
	imageURL    string
	stock       int
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewProduct creates an available product. Name and price are required and
// stock must not be negative.
func NewProduct(id, merchantID kernel.UUID, name, description, price, imageURL string, stock int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price == "" {
		return nil, errs.NewValueIsRequiredError("price")
	}
	if stock < 0 {
		return nil, errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}

	return &Product{
		id:          id,
		merchantID:  merchantID,
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		stock:       stock,
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs a product from persistence, including its
// availability flag.
func RestoreProduct(id, merchantID kernel.UUID, name, description, price, imageURL string, stock int, isAvailable bool) (*Product, error) {
	p, err := NewProduct(id, merchantID, name, description, price, imageURL, stock)
	if err != nil {
		return nil, err
	}

	p.isAvailable = isAvailable
	return p, nil
}

// Validate ensures the Product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// MerchantID returns the owning merchant's identifier.
func (p *Product) MerchantID() kernel.UUID { return p.merchantID }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Description returns the product description, possibly empty.
func (p *Product) Description() string { return p.description }

// Price returns the decimal price string.
func (p *Product) Price() string { return p.price }

// ImageURL returns the product image location, possibly empty.
func (p *Product) ImageURL() string { return p.imageURL }

// Stock returns the units in stock.
func (p *Product) Stock() int { return p.stock }

// IsAvailable reports whether the product is shown on the storefront.
func (p *Product) IsAvailable() bool { return p.isAvailable }
