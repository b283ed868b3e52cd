package repo

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/shopspring/decimal"
)

type lineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// lineItems is stored as a JSONB array.
type lineItems []lineItem

func (l lineItems) Value() (driver.Value, error) {
	if l == nil {
		l = lineItems{}
	}
	return json.Marshal(l)
}

func (l *lineItems) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*l = lineItems{}
		return nil
	default:
		return errors.New("unsupported type for line items")
	}
	return json.Unmarshal(data, l)
}

type Cart struct {
	UserID        string    `db:"user_id"`
	Items         lineItems `db:"items"`
	SavedForLater lineItems `db:"saved_for_later"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Product struct {
	ID       string          `db:"id"`
	VendorID string          `db:"vendor_id"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	Stock    int             `db:"stock"`
}

type User struct {
	ID                  string         `db:"id"`
	Name                string         `db:"name"`
	Email               string         `db:"email"`
	PasswordHash        string         `db:"password_hash"`
	Role                string         `db:"role"`
	FailedLoginAttempts int            `db:"failed_login_attempts"`
	LockedUntil         sql.NullTime   `db:"locked_until"`
	RefreshTokenID      sql.NullString `db:"refresh_token_id"`
	CreatedAt           time.Time      `db:"created_at"`
}

type Order struct {
	ID              string          `db:"id"`
	OrderID         string          `db:"order_id"`
	CustomerID      string          `db:"customer_id"`
	VendorID        string          `db:"vendor_id"`
	VendorOwnerID   string          `db:"vendor_owner_id"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Discount        decimal.Decimal `db:"discount"`
	ShippingCost    decimal.Decimal `db:"shipping_cost"`
	Tax             decimal.Decimal `db:"tax"`
	Status          string          `db:"status"`
	PaymentStatus   string          `db:"payment_status"`
	PaymentMethod   string          `db:"payment_method"`
	ShippingStreet  string          `db:"shipping_street"`
	ShippingCity    string          `db:"shipping_city"`
	ShippingState   string          `db:"shipping_state"`
	ShippingZip     string          `db:"shipping_zip"`
	ShippingCountry string          `db:"shipping_country"`
	PaymentIntentID sql.NullString  `db:"payment_intent_id"`
	TrackingCarrier sql.NullString  `db:"tracking_carrier"`
	TrackingNumber  sql.NullString  `db:"tracking_number"`
	Notes           sql.NullString  `db:"notes"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`

	// only filled by view queries
	CustomerName sql.NullString `db:"customer_name"`
	VendorName   sql.NullString `db:"vendor_name"`
}

type Item struct {
	OrderID     string          `db:"order_id"`
	Position    int             `db:"position"`
	ProductID   string          `db:"product_id"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
	ProductName sql.NullString  `db:"product_name"`
}

func toLineItems(items []entities.LineItem) lineItems {
	out := make(lineItems, 0, len(items))
	for _, it := range items {
		out = append(out, lineItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func fromLineItems(items lineItems) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func CartToEntity(c Cart) entities.Cart {
	return entities.Cart{
		UserID:        c.UserID,
		Items:         fromLineItems(c.Items),
		SavedForLater: fromLineItems(c.SavedForLater),
		UpdatedAt:     c.UpdatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:       p.ID,
		VendorID: p.VendorID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
	}
}

func UserToEntity(u User) entities.User {
	user := entities.User{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Role:                entities.Role(u.Role),
		FailedLoginAttempts: u.FailedLoginAttempts,
		RefreshTokenID:      nullStringToString(u.RefreshTokenID),
		CreatedAt:           u.CreatedAt,
	}
	if u.LockedUntil.Valid {
		t := u.LockedUntil.Time
		user.LockedUntil = &t
	}
	return user
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		OrderID:       o.OrderID,
		CustomerID:    o.CustomerID,
		VendorID:      o.VendorID,
		VendorOwnerID: o.VendorOwnerID,
		TotalAmount:   o.TotalAmount,
		Discount:      o.Discount,
		ShippingCost:  o.ShippingCost,
		Tax:           o.Tax,
		Status:        entities.OrderStatus(o.Status),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		Shipping: entities.Address{
			Street:  o.ShippingStreet,
			City:    o.ShippingCity,
			State:   o.ShippingState,
			Zip:     o.ShippingZip,
			Country: o.ShippingCountry,
		},
		PaymentIntentID: nullStringToString(o.PaymentIntentID),
		Notes:           nullStringToString(o.Notes),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           make([]entities.OrderItem, 0, len(items)),
	}

	if o.TrackingCarrier.Valid || o.TrackingNumber.Valid {
		order.Tracking = &entities.Tracking{
			Carrier:        nullStringToString(o.TrackingCarrier),
			TrackingNumber: nullStringToString(o.TrackingNumber),
		}
	}

	for _, it := range items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return order
}

func OrderToView(o Order, items []Item) entities.OrderView {
	view := entities.OrderView{
		Order:        OrderToEntity(o, items),
		CustomerName: nullStringToString(o.CustomerName),
		VendorName:   nullStringToString(o.VendorName),
		ItemNames:    make(map[string]string, len(items)),
	}
	for _, it := range items {
		if it.ProductName.Valid {
			view.ItemNames[it.ProductID] = it.ProductName.String
		}
	}
	return view
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
