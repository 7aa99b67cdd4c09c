package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const skuSuffixLen = 4

// View is the consumer-facing read of a cart. It is derived from State on
// every read and never stored.
type View struct {
	Items      []LineItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func NewView(s State) View {
	return View{
		Items:      SortBySKU(s.Items),
		TotalItems: TotalItems(s.Items),
		TotalPrice: TotalPrice(s.Items),
	}
}

func (v View) FormattedTotal() string {
	return FormatUSD(v.TotalPrice)
}

func TotalItems(items []LineItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

func TotalPrice(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// FormatUSD renders d the way en-US renders a USD amount: "$1,234.50".
func FormatUSD(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}

	whole := r.IntPart()
	cents := r.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	p := message.NewPrinter(language.AmericanEnglish)
	return sign + "$" + p.Sprintf("%d", whole) + fmt.Sprintf(".%02d", cents)
}

// SKUSuffix parses the last four characters of sku as a base-10 integer.
// All four must be ASCII digits, so "item+001" and "item-001" have no suffix.
func SKUSuffix(sku string) (int, bool) {
	if len(sku) < skuSuffixLen {
		return 0, false
	}
	suffix := sku[len(sku)-skuSuffixLen:]
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortBySKU returns a copy of items ordered by numeric sku suffix. Items
// whose sku has no numeric suffix go last in their original order.
func SortBySKU(items []LineItem) []LineItem {
	out := slices.Clone(items)
	if out == nil {
		out = []LineItem{}
	}
	slices.SortStableFunc(out, func(a, b LineItem) int {
		na, okA := SKUSuffix(a.SKU)
		nb, okB := SKUSuffix(b.SKU)
		switch {
		case okA && okB:
			return cmp.Compare(na, nb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
	return out
}
