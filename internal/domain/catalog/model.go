package catalog

import "github.com/shopspring/decimal"

type Warehouse struct {
	ID        int64
	CompanyID int64
	Capacity  float64
	BayCount  int
	Retail    bool
}

// Item is the catalog aggregate: price breaks ordered ascending by
// MinQuantity, stock one record per warehouse the item is held in.
type Item struct {
	ID          int64
	Name        string
	Description string
	PriceBreaks []PriceBreak
	Stock       []WarehouseStock
}

// PriceBreak is a (minimum quantity, unit price) rule. MinQuantity is
// unique within an item.
type PriceBreak struct {
	ItemID      int64
	MinQuantity int
	Price       decimal.Decimal
}

// WarehouseStock is the quantity of one item in one warehouse. A missing
// record means zero stock; it is never written until stock is saved.
type WarehouseStock struct {
	Warehouse Warehouse
	ItemID    int64
	Quantity  int
}
