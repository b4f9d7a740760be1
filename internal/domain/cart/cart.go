package cart

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/RouNNdeL/bada-project/internal/domain/catalog"
	"github.com/RouNNdeL/bada-project/internal/domain/errs"
)

// Cart maps item id to requested quantity. Repeated adds merge by
// addition; it lives only for the duration of a session.
type Cart map[int64]int

// ItemFinder is the catalog lookup the cart resolves against.
type ItemFinder interface {
	ItemByID(ctx context.Context, id int64) (*catalog.Item, error)
}

// ResolvedLine is one cart entry priced against the current catalog.
type ResolvedLine struct {
	Item      *catalog.Item
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Add merges quantity into the cart. Quantity must be positive and the
// item id well-formed; existence is only checked at resolve time.
func (c Cart) Add(itemID int64, quantity int) error {
	if quantity <= 0 {
		return errs.Invalid("quantity", "must be > 0")
	}
	if itemID <= 0 {
		return errs.Invalid("itemId", "missing or malformed")
	}
	c[itemID] += quantity
	return nil
}

// Resolve prices every cart entry against the catalog. Entries whose
// item has vanished are dropped — the cart is best effort, not a
// transaction log. An unresolvable price reads as zero. Lines come back
// ordered by item id.
func (c Cart) Resolve(ctx context.Context, items ItemFinder) ([]ResolvedLine, error) {
	ids := make([]int64, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]ResolvedLine, 0, len(ids))
	for _, id := range ids {
		item, err := items.ItemByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve item %d: %w", id, err)
		}
		if item == nil {
			continue
		}

		qty := c[id]
		price, ok := item.Price(qty)
		if !ok {
			price = decimal.Zero
		}
		lines = append(lines, ResolvedLine{
			Item:      item,
			Quantity:  qty,
			UnitPrice: price,
			LineTotal: price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return lines, nil
}

// Total sums resolved lines, rounded up to whole cents for display.
func Total(lines []ResolvedLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal)
	}
	return sum.RoundCeil(2)
}
