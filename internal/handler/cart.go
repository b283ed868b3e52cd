package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/middleware"
	"github.com/SergeyBogomolovv/supermall/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (entities.CartView, error)
	ApplyCartAction(ctx context.Context, userID string, action entities.CartAction, productID string, quantity int) (entities.CartView, error)
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
	auth     func(http.Handler) http.Handler
}

func NewCartHandler(logger *slog.Logger, svc CartService, auth func(http.Handler) http.Handler) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: utils.NewValidator(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.GetCart)
		r.Post("/", h.UpdateCart)
	})
}

// GetCart returns the caller's cart.
// @Summary      Get cart
// @Description  Returns cart lines priced with current catalog prices
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := middleware.ClaimsFromContext(ctx)

	cart, err := h.svc.GetCart(ctx, claims.UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, slog.String("user_id", claims.UserID))
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// UpdateCart applies one cart action.
// @Summary      Mutate cart
// @Description  action is one of add, update, remove, saveForLater, moveToCart
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Param        body  body      CartActionRequest  true  "Cart action"
// @Success      200   {object}  Cart
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      401   {object}  utils.ErrorResponse
// @Failure      404   {object}  utils.ErrorResponse "Product not found"
// @Failure      500   {object}  utils.ErrorResponse
// @Router       /cart [post]
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := middleware.ClaimsFromContext(ctx)

	var req CartActionRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	action, err := entities.ParseCartAction(req.Action)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	cart, err := h.svc.ApplyCartAction(ctx, claims.UserID, action, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err,
			slog.String("user_id", claims.UserID),
			slog.String("action", req.Action),
		)
		return
	}

	cartActions.WithLabelValues(string(action)).Inc()
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}
