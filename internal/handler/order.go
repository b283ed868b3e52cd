package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/middleware"
	"github.com/SergeyBogomolovv/supermall/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// maxCreateAttempts bounds retries on order identifier collisions.
const maxCreateAttempts = 3

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error)
	GetOrderView(ctx context.Context, actor entities.Claims, orderID string) (entities.OrderView, error)
	ListOrders(ctx context.Context, actor entities.Claims, limit, offset int) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, actor entities.Claims, upd entities.StatusUpdate) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	auth     func(http.Handler) http.Handler
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, auth func(http.Handler) http.Handler) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: utils.NewValidator(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(h.auth)
		r.With(middleware.RequireRole(entities.RoleCustomer, entities.RoleAdmin)).Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{orderId}", h.GetOrder)
		r.With(middleware.RequireRole(entities.RoleMerchant, entities.RoleAdmin)).Patch("/{orderId}/status", h.UpdateStatus)
	})
}

// CreateOrder places an order.
// @Summary      Create order
// @Description  totalAmount must equal the item subtotals plus shipping and tax, minus discount
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        body  body      CreateOrderRequest  true  "Checkout submission"
// @Success      201   {object}  Order
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      401   {object}  utils.ErrorResponse
// @Failure      403   {object}  utils.ErrorResponse
// @Failure      500   {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := middleware.ClaimsFromContext(ctx)

	var req CreateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	in := CreateOrderJSONToEntity(req)
	if claims.Role != entities.RoleAdmin || in.CustomerID == "" {
		in.CustomerID = claims.UserID
	}

	expected := entities.Order{Items: in.Items, ShippingCost: in.ShippingCost, Tax: in.Tax, Discount: in.Discount}.ExpectedTotal()
	if !expected.Round(2).Equal(in.TotalAmount.Round(2)) {
		utils.WriteError(w, "total amount does not match order items", http.StatusBadRequest)
		return
	}

	var (
		order entities.Order
		err   error
	)
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		order, err = h.svc.CreateOrder(ctx, in)
		if !errors.Is(err, entities.ErrDuplicateKey) {
			break
		}
		orderIDCollisions.Inc()
		h.logger.WarnContext(ctx, "order id collision", slog.Int("attempt", attempt))
	}
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, slog.String("customer_id", in.CustomerID))
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order, nil), http.StatusCreated)
}

// ListOrders returns the orders visible to the caller.
// @Summary      List orders
// @Description  Customers see their own orders, merchants their vendors' orders, admins all orders
// @Tags         orders
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (max 100)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {array}   Order
// @Failure      400     {object}  utils.ValidationErrorResponse
// @Failure      401     {object}  utils.ErrorResponse
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := middleware.ClaimsFromContext(ctx)

	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.WriteError(w, "limit must be a non-negative integer", http.StatusBadRequest)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		utils.WriteError(w, "offset must be a non-negative integer", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.ListOrders(ctx, claims, limit, offset)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, slog.String("user_id", claims.UserID))
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o, nil))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrder returns the flattened order view.
// @Summary      Get order
// @Description  Returns the order with customer, vendor and item names
// @Tags         orders
// @Security     BearerAuth
// @Param        orderId  path      string  true  "Order identifier, e.g. ORDER-1700000000000-AB12CD"
// @Success      200      {object}  OrderDetails
// @Failure      401      {object}  utils.ErrorResponse
// @Failure      403      {object}  utils.ErrorResponse
// @Failure      404      {object}  utils.ErrorResponse "Order not found"
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /orders/{orderId} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := middleware.ClaimsFromContext(ctx)
	orderID := chi.URLParam(r, "orderId")

	if err := h.validate.Var(orderID, "required,max=64"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.svc.GetOrderView(ctx, claims, orderID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view), http.StatusOK)
}

// UpdateStatus changes order status, payment status or tracking.
// @Summary      Update order status
// @Description  Status changes follow the order lifecycle; a failed payment always cancels the order
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        orderId  path      string               true  "Order identifier"
// @Param        body     body      UpdateStatusRequest  true  "Changes"
// @Success      200      {object}  Order
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      401      {object}  utils.ErrorResponse
// @Failure      403      {object}  utils.ErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /orders/{orderId}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := middleware.ClaimsFromContext(ctx)
	orderID := chi.URLParam(r, "orderId")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, claims, UpdateStatusJSONToEntity(orderID, req))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order, nil), http.StatusOK)
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
