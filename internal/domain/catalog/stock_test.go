package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeStock_EmptyWarehouses(t *testing.T) {
	actual := []WarehouseStock{{Warehouse: Warehouse{ID: 1, CompanyID: 1}, Quantity: 5}}
	assert.Empty(t, MergeStock(actual, nil, true))
}

func TestMergeStock_AllPlaceholders(t *testing.T) {
	w1 := Warehouse{ID: 1, CompanyID: 10}
	w2 := Warehouse{ID: 2, CompanyID: 10}

	got := MergeStock(nil, []Warehouse{w1, w2}, true)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Warehouse.ID)
	assert.Equal(t, 0, got[0].Quantity)
	assert.Equal(t, int64(2), got[1].Warehouse.ID)
	assert.Equal(t, 0, got[1].Quantity)
}

func TestMergeStock_FillsGapsSorted(t *testing.T) {
	w1 := Warehouse{ID: 1, CompanyID: 10}
	w2 := Warehouse{ID: 2, CompanyID: 10}

	actual := []WarehouseStock{{Warehouse: w1, Quantity: 5}}
	got := MergeStock(actual, []Warehouse{w2, w1}, true)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Warehouse.ID)
	assert.Equal(t, 5, got[0].Quantity)
	assert.Equal(t, int64(2), got[1].Warehouse.ID)
	assert.Equal(t, 0, got[1].Quantity)
}

func TestMergeStock_ForeignCompanyFiltered(t *testing.T) {
	mine := Warehouse{ID: 1, CompanyID: 10}
	foreign := Warehouse{ID: 2, CompanyID: 99}

	actual := []WarehouseStock{
		{Warehouse: mine, Quantity: 3},
		{Warehouse: foreign, Quantity: 7},
	}

	got := MergeStock(actual, []Warehouse{mine, foreign}, true)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].Warehouse.ID)
	assert.Equal(t, 3, got[0].Quantity)

	// Unrestricted view keeps the foreign record and warehouse.
	got = MergeStock(actual, []Warehouse{mine, foreign}, false)
	require.Len(t, got, 2)
	assert.Equal(t, 7, got[1].Quantity)
}

func TestMergedStock_StampsItemID(t *testing.T) {
	w1 := Warehouse{ID: 1, CompanyID: 10}
	w2 := Warehouse{ID: 2, CompanyID: 10}

	item := Item{
		ID:    42,
		Stock: []WarehouseStock{{Warehouse: w1, ItemID: 42, Quantity: 5}},
	}

	got := item.MergedStock([]Warehouse{w1, w2}, true)
	require.Len(t, got, 2)
	for _, s := range got {
		assert.Equal(t, int64(42), s.ItemID)
	}
}
