package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	ProductID string
	Quantity  int
}

// Cart is a per-user document. Items and SavedForLater each hold at most one
// line per product; quantities in Items are always >= 1.
type Cart struct {
	UserID        string
	Items         []LineItem
	SavedForLater []LineItem
	UpdatedAt     time.Time
}

func NewCart(userID string) Cart {
	return Cart{
		UserID:        userID,
		Items:         []LineItem{},
		SavedForLater: []LineItem{},
	}
}

type CartAction string

const (
	CartActionAdd          CartAction = "add"
	CartActionUpdate       CartAction = "update"
	CartActionRemove       CartAction = "remove"
	CartActionSaveForLater CartAction = "saveForLater"
	CartActionMoveToCart   CartAction = "moveToCart"
)

var cartActions = map[CartAction]struct{}{
	CartActionAdd:          {},
	CartActionUpdate:       {},
	CartActionRemove:       {},
	CartActionSaveForLater: {},
	CartActionMoveToCart:   {},
}

func ParseCartAction(s string) (CartAction, error) {
	a := CartAction(s)
	if _, ok := cartActions[a]; !ok {
		return "", NewValidationError("unknown cart action %q", s)
	}
	return a, nil
}

// Apply dispatches a parsed action. Every CartAction value has a case; the
// default branch only guards against values built without ParseCartAction.
func (c *Cart) Apply(action CartAction, productID string, quantity int) error {
	switch action {
	case CartActionAdd:
		return c.AddItem(productID, quantity)
	case CartActionUpdate:
		c.UpdateQuantity(productID, quantity)
	case CartActionRemove:
		c.RemoveItem(productID)
	case CartActionSaveForLater:
		c.SaveForLater(productID)
	case CartActionMoveToCart:
		c.MoveToCart(productID)
	default:
		return NewValidationError("unknown cart action %q", string(action))
	}
	return nil
}

func (c *Cart) AddItem(productID string, quantity int) error {
	if quantity <= 0 {
		return NewValidationError("quantity must be a positive integer")
	}
	if idx := findLine(c.Items, productID); idx >= 0 {
		c.Items[idx].Quantity += quantity
		return nil
	}
	c.Items = append(c.Items, LineItem{ProductID: productID, Quantity: quantity})
	return nil
}

// UpdateQuantity replaces the quantity of an existing line. A quantity <= 0
// removes the line. Unknown products are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	idx := findLine(c.Items, productID)
	if idx < 0 {
		return
	}
	if quantity <= 0 {
		c.Items = removeLine(c.Items, idx)
		return
	}
	c.Items[idx].Quantity = quantity
}

func (c *Cart) RemoveItem(productID string) {
	if idx := findLine(c.Items, productID); idx >= 0 {
		c.Items = removeLine(c.Items, idx)
	}
}

func (c *Cart) SaveForLater(productID string) {
	c.Items, c.SavedForLater = moveLine(c.Items, c.SavedForLater, productID)
}

func (c *Cart) MoveToCart(productID string) {
	c.SavedForLater, c.Items = moveLine(c.SavedForLater, c.Items, productID)
}

func (c Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// ProductIDs returns the distinct products referenced by both lists.
func (c Cart) ProductIDs() []string {
	seen := make(map[string]struct{}, len(c.Items)+len(c.SavedForLater))
	ids := make([]string, 0, len(c.Items)+len(c.SavedForLater))
	for _, list := range [][]LineItem{c.Items, c.SavedForLater} {
		for _, it := range list {
			if _, ok := seen[it.ProductID]; ok {
				continue
			}
			seen[it.ProductID] = struct{}{}
			ids = append(ids, it.ProductID)
		}
	}
	return ids
}

func (c Cart) Validate() error {
	for name, list := range map[string][]LineItem{"items": c.Items, "savedForLater": c.SavedForLater} {
		seen := make(map[string]struct{}, len(list))
		for _, it := range list {
			if _, ok := seen[it.ProductID]; ok {
				return fmt.Errorf("cart %s: duplicate product %s in %s", c.UserID, it.ProductID, name)
			}
			seen[it.ProductID] = struct{}{}
			if it.Quantity < 1 {
				return fmt.Errorf("cart %s: non-positive quantity for %s in %s", c.UserID, it.ProductID, name)
			}
		}
	}
	return nil
}

func findLine(list []LineItem, productID string) int {
	for i, it := range list {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func removeLine(list []LineItem, idx int) []LineItem {
	out := make([]LineItem, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}

// moveLine moves the product's line from src to dst, merging quantities when
// dst already holds the product.
func moveLine(src, dst []LineItem, productID string) ([]LineItem, []LineItem) {
	idx := findLine(src, productID)
	if idx < 0 {
		return src, dst
	}
	line := src[idx]
	src = removeLine(src, idx)

	if j := findLine(dst, productID); j >= 0 {
		dst[j].Quantity += line.Quantity
		return src, dst
	}
	return src, append(dst, line)
}

// CartLine is a line resolved against the live catalog. Product is nil when
// the product no longer exists.
type CartLine struct {
	ProductID string
	Quantity  int
	Product   *Product
	Subtotal  decimal.Decimal
}

type CartView struct {
	UserID        string
	Items         []CartLine
	SavedForLater []CartLine
	TotalItems    int
	TotalPrice    decimal.Decimal
}

// View prices the cart with current catalog prices.
func (c Cart) View(products map[string]Product) CartView {
	view := CartView{
		UserID:        c.UserID,
		Items:         resolveLines(c.Items, products),
		SavedForLater: resolveLines(c.SavedForLater, products),
		TotalItems:    c.TotalItems(),
		TotalPrice:    decimal.Zero,
	}
	for _, line := range view.Items {
		view.TotalPrice = view.TotalPrice.Add(line.Subtotal)
	}
	return view
}

func resolveLines(list []LineItem, products map[string]Product) []CartLine {
	lines := make([]CartLine, 0, len(list))
	for _, it := range list {
		line := CartLine{ProductID: it.ProductID, Quantity: it.Quantity, Subtotal: decimal.Zero}
		if p, ok := products[it.ProductID]; ok {
			line.Product = &p
			line.Subtotal = p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		}
		lines = append(lines, line)
	}
	return lines
}
