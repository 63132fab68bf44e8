package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductRecord is a catalog entry as of the moment the catalog was fetched.
type ProductRecord struct {
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	StockCount int             `json:"stock_count"`
	Category   string          `json:"category"`
}

func (p ProductRecord) Validate() error {
	if p.SKU == "" {
		return fmt.Errorf("%w: product without sku", ErrMalformedRecord)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: product %s has negative price %s", ErrMalformedRecord, p.SKU, p.Price)
	}
	if p.StockCount < 0 {
		return fmt.Errorf("%w: product %s has negative stock %d", ErrMalformedRecord, p.SKU, p.StockCount)
	}
	return nil
}

// ValidateCatalog validates every product and checks SKU uniqueness.
func ValidateCatalog(products []ProductRecord) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.SKU]; ok {
			return fmt.Errorf("%w: duplicate sku %s in catalog", ErrMalformedRecord, p.SKU)
		}
		seen[p.SKU] = struct{}{}
	}
	return nil
}
