package catalog

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportPriceList renders the wholesale price list as an xlsx workbook,
// one row per price break.
func ExportPriceList(items []Item) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"item_id",
		"item_name",
		"min_quantity",
		"unit_price",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, it := range items {
		for _, b := range it.PriceBreaks {
			excelRow := []interface{}{
				it.ID,
				it.Name,
				b.MinQuantity,
				b.Price.String(),
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportStock renders an item's reconciled per-warehouse stock, the
// same view MergeStock produces for the item page.
func ExportStock(item *Item, warehouses []Warehouse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"warehouse_id",
		"item_id",
		"item_name",
		"quantity",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, s := range item.MergedStock(warehouses, true) {
		excelRow := []interface{}{
			s.Warehouse.ID,
			item.ID,
			item.Name,
			s.Quantity,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
