package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/merchant"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrCreateMerchantCommandIsNotConstructed = errors.New(
	"CreateMerchantCommand must be created via NewCreateMerchantCommand constructor",
)

// CreateMerchantCommand registers a new shop. The slug becomes the public
// storefront address, so it must be unique; the handler checks that against
// the store before persisting.
type CreateMerchantCommand struct {
	shopName       string
	slug           string
	whatsappNumber string
	currency       merchant.Currency

	guard guard.ConstructorGuard
}

// NewCreateMerchantCommand creates a merchant registration command.
// ShopName and slug are required; whatsappNumber is optional.
func NewCreateMerchantCommand(shopName, slug, whatsappNumber string, currency merchant.Currency) (CreateMerchantCommand, error) {
	cmd := CreateMerchantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShopName(shopName),
		cmd.setSlug(slug),
		cmd.setCurrency(currency),
	); err != nil {
		return CreateMerchantCommand{}, err
	}

	cmd.whatsappNumber = whatsappNumber
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMerchantCommand) Validate() error {
	return c.guard.Validate(ErrCreateMerchantCommandIsNotConstructed)
}

// ShopName returns the display name of the shop.
func (c CreateMerchantCommand) ShopName() string {
	return c.shopName
}

// Slug returns the requested storefront slug.
func (c CreateMerchantCommand) Slug() string {
	return c.slug
}

// WhatsappNumber returns the contact number, empty when not set.
func (c CreateMerchantCommand) WhatsappNumber() string {
	return c.whatsappNumber
}

// Currency returns the shop's pricing currency.
func (c CreateMerchantCommand) Currency() merchant.Currency {
	return c.currency
}

func (c *CreateMerchantCommand) setShopName(shopName string) error {
	if shopName == "" {
		return errs.NewValueIsRequiredError("shopName")
	}

	c.shopName = shopName
	return nil
}

func (c *CreateMerchantCommand) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}

	c.slug = slug
	return nil
}

func (c *CreateMerchantCommand) setCurrency(currency merchant.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	c.currency = currency
	return nil
}
