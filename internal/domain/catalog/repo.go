package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/RouNNdeL/bada-project/internal/domain/errs"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

/* Items */

// ItemByID loads the full aggregate: item row, price breaks ascending by
// min_quantity, stock records joined with their warehouses.
func (r *Repo) ItemByID(ctx context.Context, id int64) (*Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description FROM items WHERE id = $1
	`, id)

	var it Item
	if err := row.Scan(&it.ID, &it.Name, &it.Description); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	breaks, err := r.priceBreaks(ctx, id)
	if err != nil {
		return nil, err
	}
	it.PriceBreaks = breaks

	stock, err := r.stock(ctx, id)
	if err != nil {
		return nil, err
	}
	it.Stock = stock

	return &it, nil
}

func (r *Repo) priceBreaks(ctx context.Context, itemID int64) ([]PriceBreak, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT item_id, min_quantity, price
		FROM price_ranges
		WHERE item_id = $1
		ORDER BY min_quantity ASC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PriceBreak
	for rows.Next() {
		var b PriceBreak
		if err := rows.Scan(&b.ItemID, &b.MinQuantity, &b.Price); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) stock(ctx context.Context, itemID int64) ([]WarehouseStock, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT wi.item_id, wi.item_quantity,
		       w.id, w.company_id, w.capacity, w.number_of_loading_bays, w.is_retail
		FROM warehouses_items wi
		JOIN warehouses w ON w.id = wi.warehouse_id
		WHERE wi.item_id = $1
		ORDER BY w.id
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WarehouseStock
	for rows.Next() {
		var s WarehouseStock
		if err := rows.Scan(
			&s.ItemID, &s.Quantity,
			&s.Warehouse.ID, &s.Warehouse.CompanyID, &s.Warehouse.Capacity,
			&s.Warehouse.BayCount, &s.Warehouse.Retail,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListItems returns every item with its price breaks (no stock) for the
// storefront listing.
func (r *Repo) ListItems(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description FROM items ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	index := map[int64]int{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description); err != nil {
			return nil, err
		}
		index[it.ID] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	brs, err := r.pool.Query(ctx, `
		SELECT item_id, min_quantity, price
		FROM price_ranges
		ORDER BY item_id, min_quantity ASC
	`)
	if err != nil {
		return nil, err
	}
	defer brs.Close()

	for brs.Next() {
		var b PriceBreak
		if err := brs.Scan(&b.ItemID, &b.MinQuantity, &b.Price); err != nil {
			return nil, err
		}
		if i, ok := index[b.ItemID]; ok {
			items[i].PriceBreaks = append(items[i].PriceBreaks, b)
		}
	}
	return items, brs.Err()
}

// CreateItem inserts an item together with its base price break.
func (r *Repo) CreateItem(ctx context.Context, name, description string, baseQuantity int, basePrice decimal.Decimal) (*Item, error) {
	if !basePrice.IsPositive() {
		return nil, errs.Invalid("basePrice", "must be > 0")
	}
	if baseQuantity <= 0 {
		return nil, errs.Invalid("baseQuantity", "must be > 0")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var it Item
	if err = tx.QueryRow(ctx, `
		INSERT INTO items (name, description) VALUES ($1,$2)
		RETURNING id, name, description
	`, name, description).Scan(&it.ID, &it.Name, &it.Description); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO price_ranges (item_id, min_quantity, price) VALUES ($1,$2,$3)
	`, it.ID, baseQuantity, basePrice); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	it.PriceBreaks = []PriceBreak{{ItemID: it.ID, MinQuantity: baseQuantity, Price: basePrice}}
	return &it, nil
}

// DeleteItem removes the item with everything hanging off it: order
// lines referencing it, price breaks and stock records.
func (r *Repo) DeleteItem(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `DELETE FROM orders_items WHERE item_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM price_ranges WHERE item_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM warehouses_items WHERE item_id = $1`, id); err != nil {
		return err
	}
	ct, err := tx.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", id, errs.ErrNotFound)
	}

	return tx.Commit(ctx)
}

// ApplyItemUpdate replaces the item's price breaks (when any are given)
// and upserts the stock rows, all in one transaction. Permission checks
// happen in UpdateItem before anything is written.
func (r *Repo) ApplyItemUpdate(ctx context.Context, itemID int64, breaks []RangeUpdate, stock []StockUpdate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if len(breaks) > 0 {
		if _, err = tx.Exec(ctx, `DELETE FROM price_ranges WHERE item_id = $1`, itemID); err != nil {
			return err
		}
		for _, b := range breaks {
			if _, err = tx.Exec(ctx, `
				INSERT INTO price_ranges (item_id, min_quantity, price) VALUES ($1,$2,$3)
			`, itemID, b.MinQuantity, b.Price); err != nil {
				return err
			}
		}
	}

	// Independent upserts keyed by (warehouse, item); last write wins.
	for _, s := range stock {
		if _, err = tx.Exec(ctx, `
			INSERT INTO warehouses_items (warehouse_id, item_id, item_quantity)
			VALUES ($1,$2,$3)
			ON CONFLICT (warehouse_id, item_id)
			DO UPDATE SET item_quantity = EXCLUDED.item_quantity
		`, s.Warehouse, itemID, s.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

/* Warehouses */

func (r *Repo) WarehouseByID(ctx context.Context, id int64) (*Warehouse, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, company_id, capacity, number_of_loading_bays, is_retail
		FROM warehouses WHERE id = $1
	`, id)
	var w Warehouse
	if err := row.Scan(&w.ID, &w.CompanyID, &w.Capacity, &w.BayCount, &w.Retail); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *Repo) WarehousesForCompany(ctx context.Context, companyID int64) ([]Warehouse, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, capacity, number_of_loading_bays, is_retail
		FROM warehouses
		WHERE company_id = $1
		ORDER BY id
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Warehouse
	for rows.Next() {
		var w Warehouse
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Capacity, &w.BayCount, &w.Retail); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
