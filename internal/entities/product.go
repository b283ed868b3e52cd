package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID       string
	VendorID string
	Name     string
	Price    decimal.Decimal
	// Stock is informational, carts never reserve it.
	Stock int
}

type Vendor struct {
	ID      string
	Name    string
	OwnerID string
}
