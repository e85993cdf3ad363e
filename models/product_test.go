package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateSumsVariantStock(t *testing.T) {
	p := Product{
		Price: 50,
		Variants: []Variant{
			{Size: "S", Stock: 2},
			{Size: "M", Stock: 3},
			{Size: "L", Stock: 0},
		},
	}
	p.Recalculate()

	assert.Equal(t, 5, p.StockQuantity)
	assert.True(t, p.InStock)
	assert.Equal(t, 250.0, p.Valuation)
}

func TestRecalculateUsesDiscountPrice(t *testing.T) {
	p := Product{Price: 100, DiscountPrice: 80, StockQuantity: 4}
	p.Recalculate()

	assert.Equal(t, 320.0, p.Valuation)
}

func TestRecalculateOutOfStock(t *testing.T) {
	p := Product{
		Price:    50,
		Variants: []Variant{{Size: "S", Stock: 0}},
	}
	p.Recalculate()

	assert.Equal(t, 0, p.StockQuantity)
	assert.False(t, p.InStock)
	assert.Equal(t, 0.0, p.Valuation)
}

func TestRecalculateKeepsSimpleProductStock(t *testing.T) {
	// No variants: the stored quantity is authoritative.
	p := Product{Price: 10, StockQuantity: 7}
	p.Recalculate()

	assert.Equal(t, 7, p.StockQuantity)
	assert.True(t, p.InStock)
	assert.Equal(t, 70.0, p.Valuation)
}
