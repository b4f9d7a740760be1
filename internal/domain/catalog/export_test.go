package catalog

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportPriceList(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Bolt", PriceBreaks: []PriceBreak{
			{ItemID: 1, MinQuantity: 1, Price: decimal.RequireFromString("10")},
			{ItemID: 1, MinQuantity: 10, Price: decimal.RequireFromString("9")},
		}},
		{ID: 2, Name: "Nut", PriceBreaks: []PriceBreak{
			{ItemID: 2, MinQuantity: 5, Price: decimal.RequireFromString("0.25")},
		}},
	}

	data, err := ExportPriceList(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus three breaks")

	assert.Equal(t, []string{"item_id", "item_name", "min_quantity", "unit_price"}, rows[0])
	assert.Equal(t, []string{"1", "Bolt", "1", "10"}, rows[1])
	assert.Equal(t, []string{"1", "Bolt", "10", "9"}, rows[2])
	assert.Equal(t, []string{"2", "Nut", "5", "0.25"}, rows[3])
}

func TestExportStock(t *testing.T) {
	w1 := Warehouse{ID: 1, CompanyID: 10}
	w2 := Warehouse{ID: 2, CompanyID: 10}
	item := &Item{
		ID:    42,
		Name:  "Bolt",
		Stock: []WarehouseStock{{Warehouse: w1, ItemID: 42, Quantity: 5}},
	}

	data, err := ExportStock(item, []Warehouse{w1, w2})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus both warehouses, placeholder included")

	assert.Equal(t, []string{"1", "42", "Bolt", "5"}, rows[1])
	assert.Equal(t, []string{"2", "42", "Bolt", "0"}, rows[2])
}
