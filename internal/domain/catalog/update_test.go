package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RouNNdeL/bada-project/internal/domain/auth"
	"github.com/RouNNdeL/bada-project/internal/domain/errs"
)

type fakeUpdateStore struct {
	item    *Item
	applied int
}

func (f *fakeUpdateStore) ItemByID(_ context.Context, _ int64) (*Item, error) {
	return f.item, nil
}

func (f *fakeUpdateStore) ApplyItemUpdate(_ context.Context, _ int64, _ []RangeUpdate, _ []StockUpdate) error {
	f.applied++
	return nil
}

func manager() auth.EmployeePrincipal {
	return auth.EmployeePrincipal{ID: 1, Company: 10, Role: auth.RoleWarehouseManager}
}

func workerAt(warehouse int64) auth.EmployeePrincipal {
	return auth.EmployeePrincipal{ID: 2, Company: 10, Role: auth.RoleWarehouseWorker, Warehouse: &warehouse}
}

func priceUpdate() ItemUpdate {
	return ItemUpdate{PriceRanges: []RangeUpdate{
		{MinQuantity: 1, Price: decimal.RequireFromString("10")},
		{MinQuantity: 10, Price: decimal.RequireFromString("9")},
	}}
}

func TestUpdateItem_ItemMissing(t *testing.T) {
	store := &fakeUpdateStore{}

	err := UpdateItem(context.Background(), store, manager(), 5, priceUpdate())
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Zero(t, store.applied)
}

func TestUpdateItem_CustomerForbidden(t *testing.T) {
	store := &fakeUpdateStore{item: &Item{ID: 5}}
	customer := auth.CustomerPrincipal{ID: 3, Company: 10}

	err := UpdateItem(context.Background(), store, customer, 5, priceUpdate())
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Zero(t, store.applied)
}

func TestUpdateItem_PriceNeedsChangePrice(t *testing.T) {
	store := &fakeUpdateStore{item: &Item{ID: 5}}

	err := UpdateItem(context.Background(), store, workerAt(1), 5, priceUpdate())
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Zero(t, store.applied)
}

func TestUpdateItem_StockScopedToOwnWarehouse(t *testing.T) {
	store := &fakeUpdateStore{item: &Item{ID: 5}}

	upd := ItemUpdate{Stock: []StockUpdate{
		{Warehouse: 1, Quantity: 4},
		{Warehouse: 2, Quantity: 9},
	}}

	// A worker at warehouse 1 cannot touch warehouse 2; the whole
	// request is rejected with no writes.
	err := UpdateItem(context.Background(), store, workerAt(1), 5, upd)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Zero(t, store.applied)

	// CHANGE_STOCK_ALL covers any warehouse.
	err = UpdateItem(context.Background(), store, manager(), 5, upd)
	require.NoError(t, err)
	assert.Equal(t, 1, store.applied)
}

func TestUpdateItem_Validation(t *testing.T) {
	store := &fakeUpdateStore{item: &Item{ID: 5}}

	tests := []struct {
		name string
		upd  ItemUpdate
	}{
		{"duplicate break", ItemUpdate{PriceRanges: []RangeUpdate{
			{MinQuantity: 1, Price: decimal.RequireFromString("10")},
			{MinQuantity: 1, Price: decimal.RequireFromString("9")},
		}}},
		{"non-positive price", ItemUpdate{PriceRanges: []RangeUpdate{
			{MinQuantity: 1, Price: decimal.Zero},
		}}},
		{"non-positive min quantity", ItemUpdate{PriceRanges: []RangeUpdate{
			{MinQuantity: 0, Price: decimal.RequireFromString("10")},
		}}},
		{"negative stock", ItemUpdate{Stock: []StockUpdate{
			{Warehouse: 1, Quantity: -1},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UpdateItem(context.Background(), store, manager(), 5, tt.upd)
			var ve *errs.ValidationError
			assert.True(t, errors.As(err, &ve), "want validation error, got %v", err)
			assert.Zero(t, store.applied)
		})
	}
}

func TestUpdateItem_EmptyUpdateIsNoop(t *testing.T) {
	store := &fakeUpdateStore{item: &Item{ID: 5}}

	require.NoError(t, UpdateItem(context.Background(), store, manager(), 5, ItemUpdate{}))
	assert.Zero(t, store.applied)
}
