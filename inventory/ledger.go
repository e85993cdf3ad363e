// Package inventory owns product stock. Reserve is the only way stock is
// decremented during checkout.
package inventory

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atelier-verne/ecommerce-api/models"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrVariantUnavailable = errors.New("selected size/color not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)

// Selector picks a variant by size, and by color when one is given.
type Selector struct {
	Size  string
	Color string
}

// Reservation is the transient hold produced by a successful Reserve. It
// lives for the duration of one checkout transaction and is never persisted.
type Reservation struct {
	Product   models.Product
	Variant   *models.Variant
	Quantity  int
	UnitPrice float64
}

// Reserve decrements stock for one product inside the caller's transaction.
// The product row is locked FOR UPDATE so concurrent reservations against
// the same product serialize, and the decrement itself is guarded by a
// conditional update so a lost race can never drive stock negative. The
// caller's transaction rolls everything back if the subsequent order insert
// fails.
func Reserve(tx *gorm.DB, productID uint, qty int, sel Selector) (*Reservation, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	var product models.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Variants").
		First(&product, "id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	res, err := apply(&product, qty, sel)
	if err != nil {
		return nil, err
	}

	if res.Variant != nil {
		out := tx.Model(&models.Variant{}).
			Where("id = ? AND stock >= ?", res.Variant.ID, qty).
			UpdateColumn("stock", gorm.Expr("stock - ?", qty))
		if out.Error != nil {
			return nil, out.Error
		}
		if out.RowsAffected == 0 {
			return nil, ErrInsufficientStock
		}
		// Aggregate stock is always the sum over variants.
		if err := persistAggregates(tx, &product, true); err != nil {
			return nil, err
		}
		return res, nil
	}

	out := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", product.ID, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if out.Error != nil {
		return nil, out.Error
	}
	if out.RowsAffected == 0 {
		return nil, ErrInsufficientStock
	}
	if err := persistAggregates(tx, &product, false); err != nil {
		return nil, err
	}
	return res, nil
}

// apply runs the reservation against the in-memory document: variant match,
// stock check, decrement, aggregate recomputation. It never touches the
// product on failure.
func apply(p *models.Product, qty int, sel Selector) (*Reservation, error) {
	if len(p.Variants) > 0 {
		idx := matchVariant(p.Variants, sel)
		if idx < 0 {
			return nil, ErrVariantUnavailable
		}
		v := &p.Variants[idx]
		if v.Stock < qty {
			return nil, ErrInsufficientStock
		}
		v.Stock -= qty
		p.Recalculate()
		return &Reservation{Product: *p, Variant: v, Quantity: qty, UnitPrice: p.Price}, nil
	}

	if p.StockQuantity < qty {
		return nil, ErrInsufficientStock
	}
	p.StockQuantity -= qty
	p.Recalculate()
	return &Reservation{Product: *p, Quantity: qty, UnitPrice: p.Price}, nil
}

func matchVariant(variants []models.Variant, sel Selector) int {
	for i, v := range variants {
		if v.Size != sel.Size {
			continue
		}
		if sel.Color != "" && v.Color != sel.Color {
			continue
		}
		return i
	}
	return -1
}

func persistAggregates(tx *gorm.DB, p *models.Product, withStock bool) error {
	cols := map[string]interface{}{
		"in_stock":  p.InStock,
		"valuation": p.Valuation,
	}
	if withStock {
		cols["stock_quantity"] = p.StockQuantity
	}
	return tx.Model(&models.Product{}).Where("id = ?", p.ID).UpdateColumns(cols).Error
}
