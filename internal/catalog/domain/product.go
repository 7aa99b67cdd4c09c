package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidProduct = errors.New("invalid product")

const skuSuffixLen = 4

type Product struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Validate rejects products the cart cannot order: the sku must end in four
// digits, the name must be present and the price must not be negative.
func (p Product) Validate() error {
	if err := ValidateSKU(p.SKU); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: %s has no name", ErrInvalidProduct, p.SKU)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: %s has negative price %s", ErrInvalidProduct, p.SKU, p.Price)
	}
	return nil
}

func ValidateSKU(sku string) error {
	if len(sku) < skuSuffixLen {
		return fmt.Errorf("%w: sku %q shorter than %d characters", ErrInvalidProduct, sku, skuSuffixLen)
	}
	suffix := sku[len(sku)-skuSuffixLen:]
	if _, err := strconv.ParseUint(suffix, 10, 32); err != nil {
		return fmt.Errorf("%w: sku %q must end in %d digits", ErrInvalidProduct, sku, skuSuffixLen)
	}
	return nil
}
