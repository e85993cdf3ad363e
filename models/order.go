package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CustomerID *uint       `gorm:"index" json:"customer_id,omitempty"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	// Shipping address snapshot, frozen at creation time.
	Address ShippingAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Amount    float64     `json:"amount"`
	OrderCode string      `gorm:"uniqueIndex;not null" json:"order_code"`
	Status    OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	PaymentMethod  string `json:"payment_method"`
	PaymentID      string `json:"payment_id"`
	GatewayRef     string `gorm:"index" json:"gateway_ref"`
	GatewayPayload string `json:"-"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// OrderItem carries a frozen copy of the product display fields so later
// product edits or deletion never corrupt historical orders.
type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"index" json:"order_id"`
	ProductID uint `json:"product_id"`

	Name      string  `json:"name"`
	Image     string  `json:"image"`
	SKU       string  `json:"sku"`
	Barcode   string  `json:"barcode"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
	Line1   string `json:"line1"`
}
