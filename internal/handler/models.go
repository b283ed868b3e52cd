package handler

import (
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/shopspring/decimal"
)

// Product is the catalog entry attached to a cart line
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" swaggertype:"string"`
	Stock int             `json:"stock"`
}

// CartLine is a cart line priced with the current catalog price
type CartLine struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   *Product        `json:"product"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// Cart is the user's cart with derived totals
type Cart struct {
	Items         []CartLine      `json:"items"`
	SavedForLater []CartLine      `json:"savedForLater"`
	TotalItems    int             `json:"totalItems"`
	TotalPrice    decimal.Decimal `json:"totalPrice" swaggertype:"string"`
}

// CartActionRequest mutates the cart
type CartActionRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"`
	Action    string `json:"action" validate:"required"`
}

type Address struct {
	Street  string `json:"street" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	Zip     string `json:"zip" validate:"required,max=20"`
	Country string `json:"country" validate:"required,max=100"`
}

type OrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,gte=1"`
	Price     decimal.Decimal `json:"price" swaggertype:"string" validate:"gte=0"`
}

// CreateOrderRequest is a checkout submission. CustomerID is only honored for admins.
type CreateOrderRequest struct {
	CustomerID      string             `json:"customerId,omitempty" validate:"omitempty,uuid"`
	VendorID        string             `json:"vendorId" validate:"required,uuid"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal    `json:"totalAmount" swaggertype:"string" validate:"gte=0"`
	Discount        decimal.Decimal    `json:"discount" swaggertype:"string" validate:"gte=0"`
	ShippingCost    decimal.Decimal    `json:"shippingCost" swaggertype:"string" validate:"gte=0"`
	Tax             decimal.Decimal    `json:"tax" swaggertype:"string" validate:"gte=0"`
	ShippingAddress Address            `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,oneof=card cod wallet"`
	Notes           string             `json:"notes,omitempty" validate:"max=1000"`
}

type Tracking struct {
	Carrier        string `json:"carrier" validate:"required,max=100"`
	TrackingNumber string `json:"trackingNumber" validate:"required,max=100"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// Order is the order representation returned by the API
type Order struct {
	OrderID         string          `json:"orderId"`
	CustomerID      string          `json:"customerId"`
	VendorID        string          `json:"vendorId"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount" swaggertype:"string"`
	Discount        decimal.Decimal `json:"discount" swaggertype:"string"`
	ShippingCost    decimal.Decimal `json:"shippingCost" swaggertype:"string"`
	Tax             decimal.Decimal `json:"tax" swaggertype:"string"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress Address         `json:"shippingAddress"`
	PaymentIntentID string          `json:"paymentIntentId,omitempty"`
	Tracking        *Tracking       `json:"tracking,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderDetails is the flattened order view
type OrderDetails struct {
	Order
	CustomerName string `json:"customerName"`
	VendorName   string `json:"vendorName"`
}

// UpdateStatusRequest changes order or payment status. Absent fields are left as is.
type UpdateStatusRequest struct {
	Status        *string   `json:"status,omitempty" validate:"omitempty,oneof=pending processing shipped delivered cancelled returned"`
	PaymentStatus *string   `json:"paymentStatus,omitempty" validate:"omitempty,oneof=pending completed failed refunded"`
	Tracking      *Tracking `json:"tracking,omitempty"`
}

type CreateIntentRequest struct {
	OrderID  string          `json:"orderId" validate:"required"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" validate:"required,gt=0"`
	Currency string          `json:"currency" validate:"required,len=3,alpha"`
}

type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=customer merchant"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func cartLinesToJSON(lines []entities.CartLine) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		line := CartLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Subtotal:  money(l.Subtotal),
		}
		if l.Product != nil {
			line.Product = &Product{
				ID:    l.Product.ID,
				Name:  l.Product.Name,
				Price: money(l.Product.Price),
				Stock: l.Product.Stock,
			}
		}
		out = append(out, line)
	}
	return out
}

func CartEntityToJSON(v entities.CartView) Cart {
	return Cart{
		Items:         cartLinesToJSON(v.Items),
		SavedForLater: cartLinesToJSON(v.SavedForLater),
		TotalItems:    v.TotalItems,
		TotalPrice:    money(v.TotalPrice),
	}
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
	}
}

func CreateOrderJSONToEntity(r CreateOrderRequest) entities.NewOrder {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return entities.NewOrder{
		CustomerID:    r.CustomerID,
		VendorID:      r.VendorID,
		Items:         items,
		TotalAmount:   r.TotalAmount,
		Discount:      r.Discount,
		ShippingCost:  r.ShippingCost,
		Tax:           r.Tax,
		Shipping:      AddressJSONToEntity(r.ShippingAddress),
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		Notes:         r.Notes,
	}
}

func OrderEntityToJSON(o entities.Order, names map[string]string) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      names[it.ProductID],
			Quantity:  it.Quantity,
			Price:     money(it.Price),
			Subtotal:  money(it.Subtotal()),
		})
	}

	order := Order{
		OrderID:         o.OrderID,
		CustomerID:      o.CustomerID,
		VendorID:        o.VendorID,
		Items:           items,
		TotalAmount:     money(o.TotalAmount),
		Discount:        money(o.Discount),
		ShippingCost:    money(o.ShippingCost),
		Tax:             money(o.Tax),
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentMethod:   string(o.PaymentMethod),
		ShippingAddress: AddressEntityToJSON(o.Shipping),
		PaymentIntentID: o.PaymentIntentID,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Tracking != nil {
		order.Tracking = &Tracking{Carrier: o.Tracking.Carrier, TrackingNumber: o.Tracking.TrackingNumber}
	}
	return order
}

func OrderViewToJSON(v entities.OrderView) OrderDetails {
	return OrderDetails{
		Order:        OrderEntityToJSON(v.Order, v.ItemNames),
		CustomerName: v.CustomerName,
		VendorName:   v.VendorName,
	}
}

func UpdateStatusJSONToEntity(orderID string, r UpdateStatusRequest) entities.StatusUpdate {
	upd := entities.StatusUpdate{OrderID: orderID}
	if r.Status != nil {
		s := entities.OrderStatus(*r.Status)
		upd.Status = &s
	}
	if r.PaymentStatus != nil {
		s := entities.PaymentStatus(*r.PaymentStatus)
		upd.PaymentStatus = &s
	}
	if r.Tracking != nil {
		upd.Tracking = &entities.Tracking{Carrier: r.Tracking.Carrier, TrackingNumber: r.Tracking.TrackingNumber}
	}
	return upd
}

func UserEntityToJSON(u entities.User) User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

func TokenPairEntityToJSON(p entities.TokenPair) TokenPair {
	return TokenPair{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken, ExpiresAt: p.ExpiresAt}
}
