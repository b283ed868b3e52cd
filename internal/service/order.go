package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/pkg/trm"
	"github.com/SergeyBogomolovv/supermall/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	UpdateOrder(ctx context.Context, o entities.Order) error

	GetOrderByOrderID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByPaymentIntent(ctx context.Context, intentID string) (entities.Order, error)
	GetOrderView(ctx context.Context, orderID string) (entities.OrderView, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error
}

type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error)
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	gateway   PaymentGateway
	events    EventPublisher
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, gateway PaymentGateway, events EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		gateway:   gateway,
		events:    events,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     time.Second,
			MaxAttempts:  5,
			Multiplier:   2,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder persists a new pending order and its items in one transaction.
// An identifier collision surfaces as entities.ErrDuplicateKey with nothing
// written.
func (s *orderService) CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error) {
	if err := validateNewOrder(in); err != nil {
		return entities.Order{}, err
	}

	now := s.now()
	order := entities.Order{
		ID:            uuid.NewString(),
		OrderID:       entities.NewOrderID(now),
		CustomerID:    in.CustomerID,
		VendorID:      in.VendorID,
		Items:         in.Items,
		TotalAmount:   in.TotalAmount,
		Discount:      in.Discount,
		ShippingCost:  in.ShippingCost,
		Tax:           in.Tax,
		Status:        entities.StatusPending,
		PaymentStatus: entities.PaymentPending,
		PaymentMethod: in.PaymentMethod,
		Shipping:      in.Shipping,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.ApplyStatusConsistency()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order created", slog.String("order_id", order.OrderID))
	s.publish(ctx, entities.OrderEventCreated, order)
	return order, nil
}

func validateNewOrder(in entities.NewOrder) error {
	switch {
	case in.CustomerID == "":
		return entities.NewValidationError("customer is required")
	case in.VendorID == "":
		return entities.NewValidationError("vendor is required")
	case len(in.Items) == 0:
		return entities.NewValidationError("order must contain at least one item")
	case in.TotalAmount.IsNegative():
		return entities.NewValidationError("total amount must not be negative")
	}

	for _, it := range in.Items {
		if it.ProductID == "" {
			return entities.NewValidationError("item product is required")
		}
		if it.Quantity < 1 {
			return entities.NewValidationError("item quantity must be at least 1")
		}
		if it.Price.IsNegative() {
			return entities.NewValidationError("item price must not be negative")
		}
	}

	a := in.Shipping
	if a.Street == "" || a.City == "" || a.State == "" || a.Zip == "" || a.Country == "" {
		return entities.NewValidationError("shipping address is incomplete")
	}

	switch in.PaymentMethod {
	case entities.PaymentMethodCard, entities.PaymentMethodCOD, entities.PaymentMethodWallet:
	default:
		return entities.NewValidationError("unsupported payment method %q", string(in.PaymentMethod))
	}
	return nil
}

// GetOrderView returns the denormalized order if the actor may see it.
func (s *orderService) GetOrderView(ctx context.Context, actor entities.Claims, orderID string) (entities.OrderView, error) {
	view, err := s.repo.GetOrderView(ctx, orderID)
	if err != nil {
		return entities.OrderView{}, err
	}
	if !view.VisibleTo(actor) {
		return entities.OrderView{}, entities.ErrForbidden
	}
	return view, nil
}

func (s *orderService) ListOrders(ctx context.Context, actor entities.Claims, limit, offset int) ([]entities.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset = max(offset, 0)

	filter := entities.OrderFilter{Limit: limit, Offset: offset}
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleMerchant:
		filter.VendorOwnerID = actor.UserID
	default:
		filter.CustomerID = actor.UserID
	}

	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus applies a manual change by an admin or the owning
// merchant. The status-consistency rule runs afterwards, so forcing a failed
// payment cancels the order whatever Status was requested.
func (s *orderService) UpdateOrderStatus(ctx context.Context, actor entities.Claims, upd entities.StatusUpdate) (entities.Order, error) {
	if upd.Status == nil && upd.PaymentStatus == nil && upd.Tracking == nil {
		return entities.Order{}, entities.NewValidationError("nothing to update")
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Order{}, entities.NewValidationError("unknown order status %q", string(*upd.Status))
	}
	if upd.PaymentStatus != nil && !upd.PaymentStatus.Valid() {
		return entities.Order{}, entities.NewValidationError("unknown payment status %q", string(*upd.PaymentStatus))
	}

	order, err := s.repo.GetOrderByOrderID(ctx, upd.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.ManageableBy(actor) {
		return entities.Order{}, entities.ErrForbidden
	}

	if upd.Status != nil && *upd.Status != order.Status {
		if !entities.CanTransition(order.Status, *upd.Status) {
			return entities.Order{}, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, *upd.Status)
		}
		order.Status = *upd.Status
	}
	if upd.PaymentStatus != nil {
		order.PaymentStatus = *upd.PaymentStatus
	}
	if upd.Tracking != nil {
		order.Tracking = upd.Tracking
	}

	if err := s.update(ctx, &order); err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", order.OrderID),
		slog.String("status", string(order.Status)),
		slog.String("payment_status", string(order.PaymentStatus)),
		slog.String("actor", actor.UserID),
	)
	return order, nil
}

// CreatePaymentIntent asks the gateway for an intent tied to the order and
// links its id to the order before answering. The link write is retried; when
// it still fails the call fails and the webhook falls back to the order id in
// the intent metadata.
func (s *orderService) CreatePaymentIntent(ctx context.Context, actor entities.Claims, orderID string, amount decimal.Decimal, currency string) (entities.PaymentIntent, error) {
	if !amount.IsPositive() {
		return entities.PaymentIntent{}, entities.NewValidationError("amount must be positive")
	}
	currency = entities.NormalizeCurrency(currency)
	if !isCurrencyCode(currency) {
		return entities.PaymentIntent{}, entities.NewValidationError("currency must be a 3-letter code")
	}

	order, err := s.repo.GetOrderByOrderID(ctx, orderID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if !order.VisibleTo(actor) {
		return entities.PaymentIntent{}, entities.ErrForbidden
	}
	if order.PaymentStatus == entities.PaymentCompleted {
		return entities.PaymentIntent{}, entities.NewValidationError("order is already paid")
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, entities.PaymentIntentRequest{
		OrderID:  order.OrderID,
		Amount:   entities.MinorUnits(amount, currency),
		Currency: currency,
	})
	if err != nil {
		return entities.PaymentIntent{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	link := func() error {
		o, err := s.repo.GetOrderByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		o.PaymentIntentID = intent.ID
		return s.update(ctx, &o)
	}
	if err := utils.Retry(s.retry, link, entities.ErrOrderNotFound); err != nil {
		s.logger.ErrorContext(ctx, "failed to link payment intent",
			slog.String("order_id", orderID),
			slog.String("intent_id", intent.ID),
			slog.Any("error", err),
		)
		return entities.PaymentIntent{}, fmt.Errorf("failed to link payment intent: %w", err)
	}

	intent.OrderID = order.OrderID
	return intent, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < 'a' || r > 'z' }) < 0
}

// HandlePaymentEvent applies a verified gateway event. Redelivery of an
// already applied event is a no-op. entities.ErrOrderNotFound is returned
// when no order matches the intent id or the metadata order id.
func (s *orderService) HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) error {
	target, ok := event.TargetPaymentStatus()
	if !ok {
		s.logger.DebugContext(ctx, "ignoring payment event", slog.String("type", string(event.Type)))
		return nil
	}

	order, err := s.findOrderForEvent(ctx, event)
	if err != nil {
		return err
	}

	linked := order.PaymentIntentID == event.PaymentIntentID
	if order.PaymentStatus == target && linked {
		s.logger.DebugContext(ctx, "payment event already applied",
			slog.String("event_id", event.ID),
			slog.String("order_id", order.OrderID),
		)
		return nil
	}

	if order.PaymentIntentID == "" {
		order.PaymentIntentID = event.PaymentIntentID
	}
	order.PaymentStatus = target

	if err := s.update(ctx, &order); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "payment event applied",
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.String("order_id", order.OrderID),
		slog.String("status", string(order.Status)),
	)
	return nil
}

func (s *orderService) findOrderForEvent(ctx context.Context, event entities.PaymentEvent) (entities.Order, error) {
	if event.PaymentIntentID != "" {
		order, err := s.repo.GetOrderByPaymentIntent(ctx, event.PaymentIntentID)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, fmt.Errorf("failed to get order by intent: %w", err)
		}
	}

	if event.OrderID == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	order, err := s.repo.GetOrderByOrderID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, err
		}
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	// An order re-linked to a newer intent ignores events of the old one.
	if order.PaymentIntentID != "" && order.PaymentIntentID != event.PaymentIntentID {
		s.logger.WarnContext(ctx, "stale payment intent event",
			slog.String("order_id", order.OrderID),
			slog.String("intent_id", event.PaymentIntentID),
			slog.String("linked_intent_id", order.PaymentIntentID),
		)
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

// update applies the status-consistency rule and persists the order.
func (s *orderService) update(ctx context.Context, o *entities.Order) error {
	o.ApplyStatusConsistency()
	o.UpdatedAt = s.now()

	if err := s.repo.UpdateOrder(ctx, *o); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	s.publish(ctx, entities.OrderEventUpdated, *o)
	return nil
}

func (s *orderService) publish(ctx context.Context, eventType string, o entities.Order) {
	event := entities.NewOrderEvent(eventType, o, s.now())
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("order_id", o.OrderID),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}
