package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteLine struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	// CartPrice is the price stored on the cart line when it differs from
	// the catalog's current price.
	CartPrice *decimal.Decimal `json:"cart_price,omitempty"`
}

type Quote struct {
	Lines      []QuoteLine     `json:"lines"`
	TotalItems int             `json:"total_items"`
	Total      decimal.Decimal `json:"total"`
	Formatted  string          `json:"formatted_total"`
}

func (q Quote) PriceChanged() bool {
	for _, ln := range q.Lines {
		if ln.CartPrice != nil {
			return true
		}
	}
	return false
}

type Receipt struct {
	ID       string    `json:"id"`
	Quote    Quote     `json:"quote"`
	PlacedAt time.Time `json:"placed_at"`
}
