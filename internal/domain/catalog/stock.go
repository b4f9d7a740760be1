package catalog

import "sort"

// MergeStock reconciles actual stock records with the warehouse set the
// viewer is entitled to see, synthesizing zero-quantity placeholders for
// warehouses without a record. The company context comes from the first
// warehouse; when restrictToCompany is set, records and warehouses of
// other companies are silently dropped. This only shapes data for
// display — authorization proper is the caller's job.
func MergeStock(actual []WarehouseStock, warehouses []Warehouse, restrictToCompany bool) []WarehouseStock {
	if len(warehouses) == 0 {
		return nil
	}
	companyID := warehouses[0].CompanyID

	out := make([]WarehouseStock, 0, len(warehouses))
	covered := make(map[int64]bool, len(actual))
	for _, s := range actual {
		if restrictToCompany && s.Warehouse.CompanyID != companyID {
			continue
		}
		covered[s.Warehouse.ID] = true
		out = append(out, s)
	}

	for _, w := range warehouses {
		if covered[w.ID] {
			continue
		}
		if restrictToCompany && w.CompanyID != companyID {
			continue
		}
		out = append(out, WarehouseStock{Warehouse: w, Quantity: 0})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Warehouse.ID < out[j].Warehouse.ID
	})
	return out
}

// MergedStock merges the item's own stock records against warehouses,
// stamping the item id on synthesized placeholders.
func (i *Item) MergedStock(warehouses []Warehouse, restrictToCompany bool) []WarehouseStock {
	merged := MergeStock(i.Stock, warehouses, restrictToCompany)
	for idx := range merged {
		merged[idx].ItemID = i.ID
	}
	return merged
}
