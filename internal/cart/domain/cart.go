package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingPayload     = errors.New("action payload missing")
	ErrItemNotFound       = errors.New("item must exist in order to update quantity")
	ErrUnrecognizedAction = errors.New("unrecognized cart action")
)

// LineItem is a product reference plus a quantity. SKU is unique within a cart.
type LineItem struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type State struct {
	Items []LineItem
}

func NewState() State {
	return State{Items: []LineItem{}}
}

func (s State) Find(sku string) (LineItem, bool) {
	for _, it := range s.Items {
		if it.SKU == sku {
			return it, true
		}
	}
	return LineItem{}, false
}

// without returns a fresh slice holding every item except sku, in order.
func (s State) without(sku string) []LineItem {
	out := make([]LineItem, 0, len(s.Items)+1)
	for _, it := range s.Items {
		if it.SKU != sku {
			out = append(out, it)
		}
	}
	return out
}
