package entities

import "time"

type PaymentEventType string

const (
	EventPaymentSucceeded PaymentEventType = "payment_intent.succeeded"
	EventPaymentFailed    PaymentEventType = "payment_intent.payment_failed"
	EventPaymentCanceled  PaymentEventType = "payment_intent.canceled"
)

// PaymentEvent is a verified gateway notification.
type PaymentEvent struct {
	ID              string           `json:"id"`
	Type            PaymentEventType `json:"type"`
	PaymentIntentID string           `json:"payment_intent_id"`
	// OrderID comes from the intent metadata and is used when no order is
	// linked to PaymentIntentID yet.
	OrderID string `json:"order_id,omitempty"`
}

// TargetPaymentStatus maps the event to the payment status it sets. ok is
// false for event types that are accepted and ignored.
func (e PaymentEvent) TargetPaymentStatus() (status PaymentStatus, ok bool) {
	switch e.Type {
	case EventPaymentSucceeded:
		return PaymentCompleted, true
	case EventPaymentFailed, EventPaymentCanceled:
		return PaymentFailed, true
	}
	return "", false
}

const (
	OrderEventCreated = "order.created"
	OrderEventUpdated = "order.updated"
)

type OrderEvent struct {
	Type          string        `json:"type"`
	OrderID       string        `json:"order_id"`
	CustomerID    string        `json:"customer_id"`
	VendorID      string        `json:"vendor_id"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

func NewOrderEvent(eventType string, o Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:          eventType,
		OrderID:       o.OrderID,
		CustomerID:    o.CustomerID,
		VendorID:      o.VendorID,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		OccurredAt:    at,
	}
}

type PaymentIntentRequest struct {
	OrderID string
	// Amount is in minor currency units.
	Amount   int64
	Currency string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	OrderID      string
}
