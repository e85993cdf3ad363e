package inventory

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
)

func shirtWithVariants() *models.Product {
	p := &models.Product{
		ID:    1,
		Name:  "Linen Shirt",
		Price: 100,
		Variants: []models.Variant{
			{ID: 10, ProductID: 1, Size: "M", Color: "white", Stock: 5},
			{ID: 11, ProductID: 1, Size: "M", Color: "black", Stock: 2},
			{ID: 12, ProductID: 1, Size: "L", Color: "white", Stock: 0},
		},
	}
	p.Recalculate()
	return p
}

func TestApplyDecrementsMatchedVariant(t *testing.T) {
	p := shirtWithVariants()

	res, err := apply(p, 3, Selector{Size: "M", Color: "white"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Variant.Stock)
	assert.Equal(t, 3, res.Quantity)
	assert.Equal(t, 100.0, res.UnitPrice)

	// Aggregates track the variant sum.
	assert.Equal(t, 4, p.StockQuantity)
	assert.True(t, p.InStock)
	assert.Equal(t, 400.0, p.Valuation)
}

func TestApplyMatchesBySizeWhenColorOmitted(t *testing.T) {
	p := shirtWithVariants()

	res, err := apply(p, 1, Selector{Size: "M"})
	require.NoError(t, err)
	assert.Equal(t, "white", res.Variant.Color)
}

func TestApplyUnknownVariant(t *testing.T) {
	p := shirtWithVariants()

	_, err := apply(p, 1, Selector{Size: "XL"})
	assert.ErrorIs(t, err, ErrVariantUnavailable)

	_, err = apply(p, 1, Selector{Size: "M", Color: "red"})
	assert.ErrorIs(t, err, ErrVariantUnavailable)
}

func TestApplyInsufficientStockLeavesProductUntouched(t *testing.T) {
	p := shirtWithVariants()
	before := p.StockQuantity

	_, err := apply(p, 3, Selector{Size: "M", Color: "black"})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, before, p.StockQuantity)
	assert.Equal(t, 2, p.Variants[1].Stock)
}

func TestApplyZeroStockVariant(t *testing.T) {
	p := shirtWithVariants()

	_, err := apply(p, 1, Selector{Size: "L", Color: "white"})
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestApplySimpleProduct(t *testing.T) {
	p := &models.Product{ID: 2, Name: "Tote", Price: 40, StockQuantity: 8}
	p.Recalculate()

	res, err := apply(p, 8, Selector{})
	require.NoError(t, err)

	assert.Nil(t, res.Variant)
	assert.Equal(t, 0, p.StockQuantity)
	assert.False(t, p.InStock)

	_, err = apply(p, 1, Selector{})
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestApplyExactStockDrainsVariant(t *testing.T) {
	p := shirtWithVariants()

	res, err := apply(p, 2, Selector{Size: "M", Color: "black"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Variant.Stock)
	assert.True(t, p.InStock)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestReserveInvalidQuantity(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := Reserve(db, 1, 0, Selector{})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = Reserve(db, 1, -2, Selector{})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestReserveProductNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := Reserve(db, 99, 1, Selector{})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveConditionalDecrementGuard(t *testing.T) {
	db, mock := newMockDB(t)

	// The loaded row shows one unit, but a concurrent reservation drains it
	// before our update lands: the guarded decrement matches zero rows and
	// the reservation fails instead of driving stock negative.
	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price", "stock_quantity"}).
			AddRow(1, 40.0, 1))
	mock.ExpectQuery(`SELECT .* FROM "variants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := Reserve(db, 1, 1, Selector{})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}
