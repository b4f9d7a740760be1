package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	o := Order{
		Lines: []Line{
			{Quantity: 3, UnitPrice: decimal.RequireFromString("4.50")},
			{Quantity: 2, UnitPrice: decimal.RequireFromString("1.333")},
		},
	}

	// 13.50 + 2.666 = 16.166, ceiled to cents.
	assert.True(t, o.Total().Equal(decimal.RequireFromString("16.17")), "got %s", o.Total())
}

func TestOrderTotal_Empty(t *testing.T) {
	var o Order
	assert.True(t, o.Total().IsZero())
}
