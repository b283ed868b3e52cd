package entities

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

type OrderItem struct {
	ProductID string
	Quantity  int
	// Price is frozen at checkout, unlike cart prices.
	Price decimal.Decimal
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Tracking struct {
	Carrier        string
	TrackingNumber string
}

type Order struct {
	ID            string
	OrderID       string
	CustomerID    string
	VendorID      string
	VendorOwnerID string
	Items         []OrderItem
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	ShippingCost  decimal.Decimal
	Tax           decimal.Decimal
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	Shipping      Address

	PaymentIntentID string
	Tracking        *Tracking
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyStatusConsistency keeps Status aligned with PaymentStatus. It runs
// before every persist and reports whether Status changed.
func (o *Order) ApplyStatusConsistency() bool {
	switch {
	case o.PaymentStatus == PaymentCompleted && o.Status == StatusPending:
		o.Status = StatusProcessing
		return true
	case o.PaymentStatus == PaymentFailed && o.Status != StatusCancelled:
		o.Status = StatusCancelled
		return true
	}
	return false
}

func (o Order) ItemsSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ExpectedTotal is the line subtotal plus shipping and tax, minus discount.
func (o Order) ExpectedTotal() decimal.Decimal {
	return o.ItemsSubtotal().Add(o.ShippingCost).Add(o.Tax).Sub(o.Discount)
}

// VisibleTo reports whether the actor may read the order.
func (o Order) VisibleTo(c Claims) bool {
	switch c.Role {
	case RoleAdmin:
		return true
	case RoleMerchant:
		return o.VendorOwnerID == c.UserID
	default:
		return o.CustomerID == c.UserID
	}
}

// ManageableBy reports whether the actor may change order status.
func (o Order) ManageableBy(c Claims) bool {
	return c.Role == RoleAdmin || (c.Role == RoleMerchant && o.VendorOwnerID == c.UserID)
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID returns ORDER-<unix millis>-<6 base36 uppercase chars>.
// Uniqueness is enforced by the storage constraint, not here.
func NewOrderID(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	return "ORDER-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + string(suffix)
}

// NewOrder is a checkout submission.
type NewOrder struct {
	CustomerID    string
	VendorID      string
	Items         []OrderItem
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	ShippingCost  decimal.Decimal
	Tax           decimal.Decimal
	Shipping      Address
	PaymentMethod PaymentMethod
	Notes         string
}

type StatusUpdate struct {
	OrderID       string
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	Tracking      *Tracking
}

// OrderView is the denormalized read model.
type OrderView struct {
	Order
	CustomerName string
	VendorName   string
	ItemNames    map[string]string
}

type OrderFilter struct {
	CustomerID    string
	VendorOwnerID string
	Limit         int
	Offset        int
}
