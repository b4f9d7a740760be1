package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/RouNNdeL/bada-project/internal/domain/geo"
)

type Status string

const (
	StatusReceived         Status = "RECEIVED"
	StatusInProgress       Status = "IN_PROGRESS"
	StatusReadyForShipment Status = "READY_FOR_SHIPMENT"
	StatusCompleted        Status = "COMPLETED"
)

var statusRank = map[Status]int{
	StatusReceived:         0,
	StatusInProgress:       1,
	StatusReadyForShipment: 2,
	StatusCompleted:        3,
}

// CanAdvance reports whether to is a valid forward move from s. Orders
// never move backwards.
func (s Status) CanAdvance(to Status) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	next, ok := statusRank[to]
	if !ok {
		return false
	}
	return next > from
}

type Order struct {
	ID                 int64
	Date               time.Time
	Status             Status
	CustomerID         int64
	AssignedEmployeeID *int64
	Address            geo.Address
	Lines              []Line
}

// Line is an immutable snapshot of one ordered item: quantity and the
// unit price that applied when the order was placed.
type Line struct {
	OrderID   int64
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total is the order value from its own snapshots, rounded up to cents.
func (o *Order) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.Lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum.RoundCeil(2)
}

// NewOrder is the checkout payload the repo persists atomically.
type NewOrder struct {
	CustomerID         int64
	AssignedEmployeeID int64
	Address            geo.Address
	Lines              []NewLine
}

type NewLine struct {
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
}
