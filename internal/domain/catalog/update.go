package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/RouNNdeL/bada-project/internal/domain/auth"
	"github.com/RouNNdeL/bada-project/internal/domain/errs"
	"github.com/RouNNdeL/bada-project/internal/infra/metrics"
)

// ItemUpdate is the caller-shaped payload for price and stock edits.
type ItemUpdate struct {
	PriceRanges []RangeUpdate `json:"priceRanges"`
	Stock       []StockUpdate `json:"stock"`
}

type RangeUpdate struct {
	MinQuantity int             `json:"minQuantity"`
	Price       decimal.Decimal `json:"price"`
}

type StockUpdate struct {
	Warehouse int64 `json:"warehouse"`
	Quantity  int   `json:"quantity"`
}

// UpdateStore is what the update workflow needs from persistence.
type UpdateStore interface {
	ItemByID(ctx context.Context, id int64) (*Item, error)
	ApplyItemUpdate(ctx context.Context, itemID int64, breaks []RangeUpdate, stock []StockUpdate) error
}

// UpdateItem validates the payload and the caller's permissions, then
// applies the whole update in one transaction. Any permission failure
// rejects the request before a single write: price edits need
// CHANGE_PRICE, stock edits need CHANGE_STOCK_ALL or CHANGE_STOCK
// limited to the employee's own warehouse.
func UpdateItem(ctx context.Context, store UpdateStore, p auth.Principal, itemID int64, upd ItemUpdate) error {
	item, err := store.ItemByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("load item: %w", err)
	}
	if item == nil {
		return fmt.Errorf("item %d: %w", itemID, errs.ErrNotFound)
	}

	emp, ok := p.(auth.EmployeePrincipal)
	if !ok {
		return errs.ErrForbidden
	}

	if len(upd.PriceRanges) > 0 && !emp.Has(auth.PermChangePrice) {
		return errs.ErrForbidden
	}
	seen := make(map[int]bool, len(upd.PriceRanges))
	for _, b := range upd.PriceRanges {
		if b.MinQuantity <= 0 {
			return errs.Invalid("minQuantity", "must be > 0")
		}
		if seen[b.MinQuantity] {
			return errs.Invalid("minQuantity", "duplicate break")
		}
		seen[b.MinQuantity] = true
		if !b.Price.IsPositive() {
			return errs.Invalid("price", "must be > 0")
		}
	}

	for _, s := range upd.Stock {
		if s.Quantity < 0 {
			return errs.Invalid("quantity", "must be >= 0")
		}
		if emp.Has(auth.PermChangeStockAll) {
			continue
		}
		if emp.Has(auth.PermChangeStock) && emp.Warehouse != nil && *emp.Warehouse == s.Warehouse {
			continue
		}
		return errs.ErrForbidden
	}

	if len(upd.PriceRanges) == 0 && len(upd.Stock) == 0 {
		return nil
	}

	if err := store.ApplyItemUpdate(ctx, itemID, upd.PriceRanges, upd.Stock); err != nil {
		return fmt.Errorf("apply item update: %w", err)
	}
	metrics.StockUpdates.Add(float64(len(upd.Stock)))
	return nil
}
