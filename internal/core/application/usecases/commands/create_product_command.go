package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a catalog entry to a merchant's storefront.
// Price travels as a decimal string, exactly as the admin panel submits it.
type CreateProductCommand struct {
	merchantID  kernel.UUID
	name        string
	description string
	price       string
	imageURL    string
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a product creation command. Name and price
// are required and stock must not be negative.
func NewCreateProductCommand(merchantID kernel.UUID, name, description, price, imageURL string, stock int) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMerchantID(merchantID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.description = description
	cmd.imageURL = imageURL
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// MerchantID returns the owning merchant's identifier.
func (c CreateProductCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the decimal price string.
func (c CreateProductCommand) Price() string {
	return c.price
}

// ImageURL returns the product image location, possibly empty.
func (c CreateProductCommand) ImageURL() string {
	return c.imageURL
}

// Stock returns the initial units in stock.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price string) error {
	if price == "" {
		return errs.NewValueIsRequiredError("price")
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}

	c.stock = stock
	return nil
}
