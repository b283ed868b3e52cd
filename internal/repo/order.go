package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/supermall/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"o.id", "o.order_id", "o.customer_id", "o.vendor_id", "v.owner_id AS vendor_owner_id",
	"o.total_amount", "o.discount", "o.shipping_cost", "o.tax",
	"o.status", "o.payment_status", "o.payment_method",
	"o.shipping_street", "o.shipping_city", "o.shipping_state", "o.shipping_zip", "o.shipping_country",
	"o.payment_intent_id", "o.tracking_carrier", "o.tracking_number", "o.notes",
	"o.created_at", "o.updated_at",
}

type OrderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *OrderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "order_id", "customer_id", "vendor_id",
			"total_amount", "discount", "shipping_cost", "tax",
			"status", "payment_status", "payment_method",
			"shipping_street", "shipping_city", "shipping_state", "shipping_zip", "shipping_country",
			"payment_intent_id", "notes", "created_at", "updated_at",
		).
		Values(
			o.ID, o.OrderID, o.CustomerID, o.VendorID,
			o.TotalAmount, o.Discount, o.ShippingCost, o.Tax,
			string(o.Status), string(o.PaymentStatus), string(o.PaymentMethod),
			o.Shipping.Street, o.Shipping.City, o.Shipping.State, o.Shipping.Zip, o.Shipping.Country,
			nullString(o.PaymentIntentID), nullString(o.Notes), o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", mapError(err, nil))
	}
	return nil
}

func (r *OrderRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "quantity", "price")

	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", mapError(err, nil))
	}
	return nil
}

// UpdateOrder writes the mutable lifecycle fields.
func (r *OrderRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	var carrier, number string
	if o.Tracking != nil {
		carrier, number = o.Tracking.Carrier, o.Tracking.TrackingNumber
	}

	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("payment_status", string(o.PaymentStatus)).
		Set("payment_intent_id", nullString(o.PaymentIntentID)).
		Set("tracking_carrier", nullString(carrier)).
		Set("tracking_number", nullString(number)).
		Set("updated_at", o.UpdatedAt).
		Where(sq.Eq{"order_id": o.OrderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepo) GetOrderByOrderID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"o.order_id": orderID})
}

func (r *OrderRepo) GetOrderByPaymentIntent(ctx context.Context, intentID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"o.payment_intent_id": intentID})
}

func (r *OrderRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders o").
		Join("vendors v ON v.id = o.vendor_id").
		Where(where).
		Limit(1).
		MustSql()

	var order Order
	if err := r.getContext(ctx, &order, query, args...); err != nil {
		return entities.Order{}, mapError(err, entities.ErrOrderNotFound)
	}

	items, err := r.getItems(ctx, []string{order.ID})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items[order.ID]), nil
}

func (r *OrderRepo) GetOrderView(ctx context.Context, orderID string) (entities.OrderView, error) {
	columns := append(append([]string{}, orderColumns...), "c.name AS customer_name", "v.name AS vendor_name")
	query, args := r.qb.Select(columns...).
		From("orders o").
		Join("vendors v ON v.id = o.vendor_id").
		LeftJoin("users c ON c.id = o.customer_id").
		Where(sq.Eq{"o.order_id": orderID}).
		MustSql()

	var order Order
	if err := r.getContext(ctx, &order, query, args...); err != nil {
		return entities.OrderView{}, mapError(err, entities.ErrOrderNotFound)
	}

	items, err := r.getItems(ctx, []string{order.ID})
	if err != nil {
		return entities.OrderView{}, err
	}
	return OrderToView(order, items[order.ID]), nil
}

func (r *OrderRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders o").
		Join("vendors v ON v.id = o.vendor_id").
		OrderBy("o.created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	if f.CustomerID != "" {
		q = q.Where(sq.Eq{"o.customer_id": f.CustomerID})
	}
	if f.VendorOwnerID != "" {
		q = q.Where(sq.Eq{"v.owner_id": f.VendorOwnerID})
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, items[o.ID]))
	}
	return result, nil
}

func (r *OrderRepo) getItems(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select(
		"i.order_id", "i.position", "i.product_id", "i.quantity", "i.price", "p.name AS product_name",
	).
		From("order_items i").
		LeftJoin("products p ON p.id = i.product_id").
		Where(sq.Eq{"i.order_id": orderIDs}).
		OrderBy("i.order_id", "i.position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	byOrder := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}
