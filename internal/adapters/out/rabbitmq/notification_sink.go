// Package rabbitmq publishes notifications to a RabbitMQ fanout exchange
// so other panel instances and mobile clients receive them in real time.
// Publishing is best effort: the command handlers log a warning on failure
// and carry on, the notification feed in the database stays authoritative.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"storepanel/internal/core/domain/model/notification"
)

// notificationMessage is the wire form of a published notification.
type notificationMessage struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	RelatedID *string   `json:"relatedId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationSink implements ports.NotificationSink over a RabbitMQ
// fanout exchange.
type NotificationSink struct {
	conn     *amqp091.Connection
	exchange string
}

// NewNotificationSink connects to RabbitMQ and declares the exchange.
func NewNotificationSink(url, exchange string) (*NotificationSink, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &NotificationSink{conn: conn, exchange: exchange}, nil
}

// Publish sends a notification to the exchange.
func (s *NotificationSink) Publish(ctx context.Context, n *notification.Notification) error {
	msg := notificationMessage{
		ID:        n.ID.String(),
		Message:   n.Message,
		Type:      n.Type.String(),
		Timestamp: n.Timestamp,
	}
	if n.RelatedID != nil {
		related := n.RelatedID.String()
		msg.RelatedID = &related
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ch, err := s.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	return ch.PublishWithContext(ctx, s.exchange, "", false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        payload,
	})
}

// Close releases the underlying broker connection.
func (s *NotificationSink) Close() error {
	return s.conn.Close()
}
