// Package broker publishes order lifecycle events to Kafka.
package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SergeyBogomolovv/supermall/internal/config"
	"github.com/SergeyBogomolovv/supermall/internal/entities"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer      messageWriter
	ordersTopic string
	retryTopic  string
}

func NewPublisher(cfg config.Kafka) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		ordersTopic: cfg.OrderEventsTopic,
		retryTopic:  cfg.PaymentRetryTopic,
	}
}

// PublishOrderEvent writes the event keyed by order id, so events of one
// order stay in one partition.
func (p *Publisher) PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error {
	return p.write(ctx, p.ordersTopic, e.OrderID, e)
}

// RequeuePaymentEvent hands a webhook event that failed to apply to the
// retry consumer.
func (p *Publisher) RequeuePaymentEvent(ctx context.Context, e entities.PaymentEvent) error {
	return p.write(ctx, p.retryTopic, e.PaymentIntentID, e)
}

func (p *Publisher) write(ctx context.Context, topic, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write to %s: %w", topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Noop is used when no brokers are configured.
type Noop struct{}

func (Noop) PublishOrderEvent(context.Context, entities.OrderEvent) error { return nil }

// RequeuePaymentEvent reports failure so callers log the lost event.
func (Noop) RequeuePaymentEvent(context.Context, entities.PaymentEvent) error {
	return ErrDisabled
}

func (Noop) Close() error { return nil }
