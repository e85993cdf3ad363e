package checkoutControllers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier-verne/ecommerce-api/inventory"
	"github.com/atelier-verne/ecommerce-api/models"
)

func sampleReservation() *inventory.Reservation {
	return &inventory.Reservation{
		Product: models.Product{
			ID:       3,
			Name:     "Linen Shirt",
			ImageURL: "https://cdn.example.com/shirt.jpg",
			SKU:      "AVN-1001",
			Price:    100,
		},
		Variant: &models.Variant{
			ID: 30, ProductID: 3,
			Size: "M", Color: "white", Barcode: "890123",
			Stock: 4,
		},
		Quantity:  2,
		UnitPrice: 100,
	}
}

func TestBuildOrderAmountIncludesDelivery(t *testing.T) {
	o := buildOrder(sampleReservation(), models.ShippingAddress{City: "Pune"}, "COD", nil)

	assert.Equal(t, 100.0*2+DeliveryFee, o.Amount)
	assert.Equal(t, models.OrderStatusPending, o.Status)
}

func TestBuildOrderSnapshotsProductFields(t *testing.T) {
	res := sampleReservation()
	o := buildOrder(res, models.ShippingAddress{}, "", nil)

	if assert.Len(t, o.Items, 1) {
		item := o.Items[0]
		assert.Equal(t, "Linen Shirt", item.Name)
		assert.Equal(t, "AVN-1001", item.SKU)
		assert.Equal(t, "890123", item.Barcode)
		assert.Equal(t, "M", item.Size)
		assert.Equal(t, "white", item.Color)
		assert.Equal(t, 100.0, item.UnitPrice)
		assert.Equal(t, 2, item.Quantity)
	}

	// Later product edits must not reach the frozen item.
	res.Product.Name = "Renamed"
	res.Product.Price = 1
	assert.Equal(t, "Linen Shirt", o.Items[0].Name)
	assert.Equal(t, 100.0, o.Items[0].UnitPrice)
}

func TestBuildOrderBarcodeFallbacks(t *testing.T) {
	res := sampleReservation()

	res.Variant.Barcode = ""
	o := buildOrder(res, models.ShippingAddress{}, "", nil)
	assert.Equal(t, "AVN-1001", o.Items[0].Barcode)

	res.Variant = nil
	res.Product.SKU = ""
	o = buildOrder(res, models.ShippingAddress{}, "", nil)
	assert.Equal(t, "N/A", o.Items[0].Barcode)
	assert.Equal(t, "N/A", o.Items[0].SKU)
	assert.Empty(t, o.Items[0].Size)
}

func TestBuildOrderDefaultsPaymentMethod(t *testing.T) {
	o := buildOrder(sampleReservation(), models.ShippingAddress{}, "", nil)
	assert.Equal(t, "COD", o.PaymentMethod)

	o = buildOrder(sampleReservation(), models.ShippingAddress{}, "stripe", nil)
	assert.Equal(t, "stripe", o.PaymentMethod)
}

func TestGenerateOrderCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, generateOrderCode())
	}
}

func TestErrorStatusMapping(t *testing.T) {
	status, _ := ErrorStatus(inventory.ErrProductNotFound)
	assert.Equal(t, 404, status)

	status, msg := ErrorStatus(inventory.ErrInsufficientStock)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Not enough items in stock", msg)

	status, _ = ErrorStatus(inventory.ErrVariantUnavailable)
	assert.Equal(t, 400, status)

	status, _ = ErrorStatus(assert.AnError)
	assert.Equal(t, 500, status)
}
