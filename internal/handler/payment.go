package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/middleware"
	"github.com/SergeyBogomolovv/supermall/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxWebhookBytes matches the size Stripe documents for event payloads.
const maxWebhookBytes = 65536

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, actor entities.Claims, orderID string, amount decimal.Decimal, currency string) (entities.PaymentIntent, error)
	HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) error
}

type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (entities.PaymentEvent, error)
}

type EventRequeuer interface {
	RequeuePaymentEvent(ctx context.Context, event entities.PaymentEvent) error
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      PaymentService
	parser   WebhookParser
	requeuer EventRequeuer
	auth     func(http.Handler) http.Handler
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService, parser WebhookParser, requeuer EventRequeuer, auth func(http.Handler) http.Handler) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger.With(slog.String("handler", "payment")),
		validate: utils.NewValidator(),
		svc:      svc,
		parser:   parser,
		requeuer: requeuer,
		auth:     auth,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Post("/webhooks/stripe", h.StripeWebhook)
	r.With(h.auth).Post("/payments/intent", h.CreatePaymentIntent)
}

// CreatePaymentIntent starts a payment for an order.
// @Summary      Create payment intent
// @Description  Creates a Stripe payment intent for the order and returns its client secret
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Param        body  body      CreateIntentRequest  true  "Amount in major units and ISO currency"
// @Success      200   {object}  PaymentIntent
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      401   {object}  utils.ErrorResponse
// @Failure      403   {object}  utils.ErrorResponse
// @Failure      404   {object}  utils.ErrorResponse "Order not found"
// @Failure      502   {object}  utils.ErrorResponse "Payment provider error"
// @Failure      500   {object}  utils.ErrorResponse
// @Router       /payments/intent [post]
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := middleware.ClaimsFromContext(ctx)

	var req CreateIntentRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	intent, err := h.svc.CreatePaymentIntent(ctx, claims, req.OrderID, req.Amount, req.Currency)
	if err != nil {
		paymentIntents.WithLabelValues("error").Inc()
		writeServiceError(ctx, h.logger, w, err, slog.String("order_id", req.OrderID))
		return
	}

	paymentIntents.WithLabelValues("created").Inc()
	utils.WriteJSON(w, PaymentIntent{ClientSecret: intent.ClientSecret, OrderID: intent.OrderID}, http.StatusOK)
}

// StripeWebhook receives gateway notifications.
// @Summary      Stripe webhook
// @Description  Verifies the Stripe-Signature header and applies payment_intent events. Always acknowledged once verified.
// @Tags         payments
// @Accept       json
// @Param        Stripe-Signature  header    string  true  "Stripe signature"
// @Success      200               {object}  WebhookAck
// @Failure      400               {object}  utils.ErrorResponse "Invalid signature"
// @Failure      413               {object}  utils.ErrorResponse "Payload too large"
// @Router       /webhooks/stripe [post]
func (h *PaymentHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			webhookEvents.WithLabelValues("unknown", "too_large").Inc()
			h.logger.WarnContext(ctx, "webhook payload too large", slog.Int64("limit", tooLarge.Limit))
			utils.WriteError(w, "payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.ErrorContext(ctx, "failed to read webhook body", slog.Any("error", err))
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	event, err := h.parser.ParseWebhook(payload, r.Header.Get("Stripe-Signature"))
	if errors.Is(err, entities.ErrMalformedEvent) {
		webhookEvents.WithLabelValues("unknown", "malformed").Inc()
		h.logger.WarnContext(ctx, "malformed webhook event", slog.Any("error", err))
		utils.WriteJSON(w, WebhookAck{Received: true}, http.StatusOK)
		return
	}
	if err != nil {
		webhookEvents.WithLabelValues("unknown", "rejected").Inc()
		h.logger.WarnContext(ctx, "webhook rejected", slog.Any("error", err))
		utils.WriteError(w, "invalid signature", http.StatusBadRequest)
		return
	}

	attrs := []any{
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.String("intent_id", event.PaymentIntentID),
	}

	outcome := "applied"
	err = h.svc.HandlePaymentEvent(ctx, event)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrOrderNotFound):
		outcome = "unmatched"
		h.logger.WarnContext(ctx, "no order for payment event", attrs...)
	default:
		outcome = "requeued"
		h.logger.ErrorContext(ctx, "failed to handle payment event", append(attrs, slog.Any("error", err))...)
		if err := h.requeuer.RequeuePaymentEvent(ctx, event); err != nil {
			outcome = "failed"
			h.logger.ErrorContext(ctx, "failed to requeue payment event", append(attrs, slog.Any("error", err))...)
		}
	}
	webhookEvents.WithLabelValues(string(event.Type), outcome).Inc()

	utils.WriteJSON(w, WebhookAck{Received: true}, http.StatusOK)
}
