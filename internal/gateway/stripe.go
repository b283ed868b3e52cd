// Package gateway adapts the Stripe API to the order lifecycle.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/supermall/internal/config"
	"github.com/SergeyBogomolovv/supermall/internal/entities"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	serviceName      = "stripe"
	metadataOrderKey = "orderId"
)

type Stripe struct {
	api           *client.API
	webhookSecret string
}

// NewStripe builds the adapter. backends may be nil to use the default
// Stripe endpoints.
func NewStripe(cfg config.Stripe, backends *stripe.Backends) *Stripe {
	return &Stripe{
		api:           client.New(cfg.SecretKey, backends),
		webhookSecret: cfg.WebhookSecret,
	}
}

// CreatePaymentIntent creates an intent with the order id in its metadata.
func (s *Stripe) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataOrderKey, req.OrderID)

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return entities.PaymentIntent{}, classify(err)
	}

	return entities.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		OrderID:      pi.Metadata[metadataOrderKey],
	}, nil
}

// classify wraps gateway errors. Card errors carry a message meant for the
// payer, everything else stays generic.
func classify(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		return &entities.ExternalServiceError{
			Service: serviceName,
			Message: se.Msg,
			Safe:    se.Type == stripe.ErrorTypeCard,
			Err:     err,
		}
	}
	return &entities.ExternalServiceError{Service: serviceName, Message: err.Error(), Err: err}
}

// ParseWebhook verifies the Stripe-Signature header against the raw payload
// and extracts the payment intent the event refers to. A verified payload
// that does not decode yields entities.ErrMalformedEvent.
func (s *Stripe) ParseWebhook(payload []byte, signature string) (entities.PaymentEvent, error) {
	if err := webhook.ValidatePayload(payload, signature, s.webhookSecret); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", entities.ErrInvalidSignature, err)
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", entities.ErrMalformedEvent, err)
	}

	pe := entities.PaymentEvent{
		ID:   event.ID,
		Type: entities.PaymentEventType(event.Type),
	}

	if strings.HasPrefix(string(event.Type), "payment_intent.") && event.Data != nil {
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("%w: failed to decode payment intent: %v", entities.ErrMalformedEvent, err)
		}
		pe.PaymentIntentID = pi.ID
		pe.OrderID = pi.Metadata[metadataOrderKey]
	}
	return pe, nil
}
