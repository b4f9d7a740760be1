package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breaksFixture() []PriceBreak {
	return []PriceBreak{
		{ItemID: 1, MinQuantity: 1, Price: decimal.RequireFromString("10")},
		{ItemID: 1, MinQuantity: 10, Price: decimal.RequireFromString("9")},
		{ItemID: 1, MinQuantity: 50, Price: decimal.RequireFromString("8")},
	}
}

func TestResolvePrice(t *testing.T) {
	tests := []struct {
		name     string
		breaks   []PriceBreak
		quantity int
		want     string
		ok       bool
	}{
		{"exact first break", breaksFixture(), 1, "10", true},
		{"between breaks", breaksFixture(), 12, "9", true},
		{"exact second break", breaksFixture(), 10, "9", true},
		{"exact last break", breaksFixture(), 50, "8", true},
		{"beyond last break", breaksFixture(), 5000, "8", true},
		{"below smallest break", breaksFixture(), 0, "", false},
		{"no breaks", nil, 10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := ResolvePrice(tt.breaks, tt.quantity)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, price.Equal(decimal.RequireFromString(tt.want)),
					"want %s, got %s", tt.want, price)
			}
		})
	}
}

func TestResolvePrice_HigherMinQuantityWins(t *testing.T) {
	breaks := []PriceBreak{
		{MinQuantity: 5, Price: decimal.RequireFromString("4.50")},
		{MinQuantity: 20, Price: decimal.RequireFromString("4.10")},
	}

	price, ok := ResolvePrice(breaks, 20)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("4.10")))

	// Quantity below every break is "no price", not zero.
	_, ok = ResolvePrice(breaks, 4)
	assert.False(t, ok)
}

func TestItemPrice(t *testing.T) {
	item := Item{ID: 1, Name: "Widget", PriceBreaks: breaksFixture()}

	price, ok := item.Price(10)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("9")))
}
