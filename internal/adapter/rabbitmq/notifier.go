// Package rabbitmq publishes user-facing notification events to a durable
// topic exchange. Delivery is best-effort: the swap and moderation flows
// treat a failed publish as a logging concern, never as a business failure.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

// message is the wire envelope for every notification event.
type message struct {
	UserID    uuid.UUID                `json:"user_id"`
	Event     domain.NotificationEvent `json:"event"`
	Payload   any                      `json:"payload,omitempty"`
	Timestamp time.Time                `json:"timestamp"`
}

// Notifier publishes notification events to a RabbitMQ topic exchange.
// Routing keys take the form "user.<event>".
type Notifier struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	logger   *slog.Logger
}

// NewNotifier dials RabbitMQ with a bounded timeout and declares the
// notification exchange. The caller owns the returned Notifier and must
// Close it on shutdown.
func NewNotifier(url, exchange string, dialTimeout time.Duration, logger *slog.Logger) (*Notifier, error) {
	conn, err := amqp091.DialConfig(url, amqp091.Config{
		Dial: amqp091.DefaultDial(dialTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &Notifier{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Notify publishes a single event for a user. The error return exists so
// callers can log it; no caller should fail its own operation on it.
func (n *Notifier) Notify(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) error {
	body, err := json.Marshal(message{
		UserID:    userID,
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	routingKey := "user." + string(event)

	err = n.channel.PublishWithContext(ctx,
		n.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		// One-shot retry on a fresh channel: the old one may have been
		// closed by a broker-side error.
		ch, chErr := n.conn.Channel()
		if chErr != nil {
			return fmt.Errorf("publish %s: %w", routingKey, err)
		}
		n.channel = ch
		if err = n.channel.PublishWithContext(ctx, n.exchange, routingKey, false, false, amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		}); err != nil {
			return fmt.Errorf("publish %s: %w", routingKey, err)
		}
	}

	n.logger.DebugContext(ctx, "notification published",
		slog.String("routing_key", routingKey),
		slog.String("user_id", userID.String()),
	)
	return nil
}

// Close releases the channel and connection.
func (n *Notifier) Close() {
	if n.channel != nil {
		if err := n.channel.Close(); err != nil {
			n.logger.Warn("closing rabbitmq channel", slog.Any("error", err))
		}
	}
	if n.conn != nil {
		if err := n.conn.Close(); err != nil {
			n.logger.Warn("closing rabbitmq connection", slog.Any("error", err))
		}
	}
}

// NoopNotifier is used when no broker URL is configured. Every event is
// dropped with a debug log line so local development works without RabbitMQ.
type NoopNotifier struct {
	logger *slog.Logger
}

// NewNoopNotifier returns a notifier that drops all events.
func NewNoopNotifier(logger *slog.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

func (n *NoopNotifier) Notify(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, _ any) error {
	n.logger.DebugContext(ctx, "notification dropped, broker disabled",
		slog.String("event", string(event)),
		slog.String("user_id", userID.String()),
	)
	return nil
}

func (n *NoopNotifier) Close() {}
