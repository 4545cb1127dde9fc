package kernel

import (
	"fmt"

	"storepanel/internal/pkg/errs"
)

// ItemCategory distinguishes physical products from workshop services.
// It is shared between orders and catalog items.
type ItemCategory int

const (
	// UnknownItemCategory is the invalid zero value.
	UnknownItemCategory ItemCategory = iota

	// Product is a physical part held in stock.
	Product

	// Service is workshop labor; services have no stock level.
	Service
)

func itemCategoryStrings() map[ItemCategory]string {
	return map[ItemCategory]string{
		Product: "Product",
		Service: "Service",
	}
}

// ItemCategoryFromString parses the display form ("Product", "Service").
func ItemCategoryFromString(s string) (ItemCategory, error) {
	for category, str := range itemCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return UnknownItemCategory, errs.NewValueIsInvalidErrorWithCause("itemCategory",
		fmt.Errorf("%q is not a valid item category", s))
}

// String returns "Product", "Service", or "Unknown".
func (c ItemCategory) String() string {
	if str, ok := itemCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects the zero value and anything outside the enum.
func (c ItemCategory) Validate() error {
	if _, ok := itemCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("itemCategory",
			fmt.Errorf("%d is not a valid item category", c))
	}
	return nil
}
