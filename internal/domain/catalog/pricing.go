package catalog

import "github.com/shopspring/decimal"

// ResolvePrice picks the unit price for a requested quantity: the break
// with the greatest MinQuantity not exceeding quantity wins. The breaks
// must be ordered ascending by MinQuantity. ok is false when no break
// qualifies — the item is not purchasable at this quantity, not free.
func ResolvePrice(breaks []PriceBreak, quantity int) (price decimal.Decimal, ok bool) {
	for _, b := range breaks {
		if quantity >= b.MinQuantity {
			price = b.Price
			ok = true
		}
	}
	return price, ok
}

// Price resolves the unit price for quantity from the item's own breaks.
func (i *Item) Price(quantity int) (decimal.Decimal, bool) {
	return ResolvePrice(i.PriceBreaks, quantity)
}
