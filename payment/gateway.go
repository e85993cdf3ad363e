// Package payment is the gateway boundary: the core only ever sees
// checkout-session creation and verified webhook events.
package payment

import "errors"

var ErrInvalidSignature = errors.New("webhook signature verification failed")

// EventCheckoutCompleted flips the matching order to paid;
// EventPaymentFailed marks it failed. Other event types are ignored.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventPaymentFailed     = "checkout.session.async_payment_failed"
)

type LineItem struct {
	Name      string
	Image     string
	UnitPrice float64
	Quantity  int
}

// Event is a verified gateway notification. GatewayRef identifies the
// checkout session the event belongs to; Payload is the raw gateway object
// recorded on the order.
type Event struct {
	Type       string
	GatewayRef string
	Payload    []byte
}

type Gateway interface {
	CreateCheckoutSession(items []LineItem, customerEmail, successURL, cancelURL string) (string, error)
	VerifyWebhook(payload []byte, signature string) (*Event, error)
}
