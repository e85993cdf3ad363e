package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `json:"description"`
	Category      string  `gorm:"not null" json:"category"`
	Price         float64 `gorm:"not null" json:"price"`
	DiscountPrice float64 `json:"discount_price"`
	ImageURL      string  `json:"image_url"`
	SKU           string  `gorm:"uniqueIndex" json:"sku"`
	Vendor        string  `json:"vendor"`

	Variants []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`

	// Derived fields, recomputed on every mutating write.
	StockQuantity int     `json:"stock_quantity"`
	InStock       bool    `json:"in_stock"`
	Valuation     float64 `json:"valuation"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Variant struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Material  string  `json:"material"`
	Barcode   string  `json:"barcode"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
}

// Recalculate refreshes the derived fields. When variants exist the
// aggregate stock is always the sum of variant stock; valuation uses the
// discount price when one is set.
func (p *Product) Recalculate() {
	if len(p.Variants) > 0 {
		total := 0
		for _, v := range p.Variants {
			total += v.Stock
		}
		p.StockQuantity = total
	}

	p.InStock = p.StockQuantity > 0

	base := p.Price
	if p.DiscountPrice > 0 {
		base = p.DiscountPrice
	}
	p.Valuation = base * float64(p.StockQuantity)
}

// BeforeSave keeps the derived fields consistent on direct saves, the same
// way partial updates must go through UpdateColumns with recomputed values.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Recalculate()
	return nil
}
