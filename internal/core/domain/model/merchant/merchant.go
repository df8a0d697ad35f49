package merchant

import (
	"errors"
	"fmt"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

// TrialPeriod is the free trial granted to a newly registered merchant.
const TrialPeriod = 30 * 24 * time.Hour

// ErrMerchantIsNotConstructed is returned when a Merchant instance was not
// created through the NewMerchant factory method.
var ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant constructor")

// Currency is one of the ISO currency codes the shop can price in.
type Currency string

const (
	SAR Currency = "SAR"
	EGP Currency = "EGP"
	DZD Currency = "DZD"
	USD Currency = "USD"
)

// Validate checks the currency against the supported set.
func (c Currency) Validate() error {
	switch c {
	case SAR, EGP, DZD, USD:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%q is not a supported currency", string(c)))
	}
}

// Merchant is the shop owner profile of the admin subsystem. A merchant owns
// products and reports monthly sales; the slug is the public identifier the
// storefront is reached through.
//
// Merchants start on a 30-day trial; the trial expiry job deactivates them
// once the expiry date passes.
type Merchant struct {
	id             kernel.UUID
	shopName       string
	slug           string
	whatsappNumber string
	currency       Currency
	expiryDate     time.Time
	isActive       bool

	guard guard.ConstructorGuard
}

// NewMerchant creates an active merchant with a trial expiring TrialPeriod
// from now. ShopName and slug are required; whatsappNumber is optional.
func NewMerchant(id kernel.UUID, shopName, slug, whatsappNumber string, currency Currency, now time.Time) (*Merchant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if shopName == "" {
		return nil, errs.NewValueIsRequiredError("shopName")
	}
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}
	if err := currency.Validate(); err != nil {
		return nil, err
	}

	return &Merchant{
		id:             id,
		shopName:       shopName,
		slug:           slug,
		whatsappNumber: whatsappNumber,
		currency:       currency,
		expiryDate:     now.Add(TrialPeriod),
		isActive:       true,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreMerchant reconstructs a merchant from persistence without re-deriving
// the trial expiry.
func RestoreMerchant(id kernel.UUID, shopName, slug, whatsappNumber string, currency Currency, expiryDate time.Time, isActive bool) (*Merchant, error) {
	m, err := NewMerchant(id, shopName, slug, whatsappNumber, currency, expiryDate)
	if err != nil {
		return nil, err
	}

	m.expiryDate = expiryDate
	m.isActive = isActive
	return m, nil
}

// Validate ensures the Merchant was built through a constructor.
func (m *Merchant) Validate() error {
	if m == nil {
		return ErrMerchantIsNotConstructed
	}
	return m.guard.Validate(ErrMerchantIsNotConstructed)
}

// ID returns the merchant's unique identifier.
func (m *Merchant) ID() kernel.UUID { return m.id }

// ShopName returns the display name of the shop.
func (m *Merchant) ShopName() string { return m.shopName }

// Slug returns the public storefront identifier.
func (m *Merchant) Slug() string { return m.slug }

// WhatsappNumber returns the contact number, empty when not set.
func (m *Merchant) WhatsappNumber() string { return m.whatsappNumber }

// Currency returns the shop's pricing currency.
func (m *Merchant) Currency() Currency { return m.currency }

// ExpiryDate returns when the merchant's trial ends.
func (m *Merchant) ExpiryDate() time.Time { return m.expiryDate }

// IsActive reports whether the merchant can currently take orders.
func (m *Merchant) IsActive() bool { return m.isActive }

// TrialExpired reports whether the trial has ended at now.
func (m *Merchant) TrialExpired(now time.Time) bool {
	return now.After(m.expiryDate)
}

// Deactivate switches the merchant off, used when the trial expires.
func (m *Merchant) Deactivate() {
	m.isActive = false
}
