package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catering/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ordersExchange = "orders_topic"

// orderChangeMessage is the wire format of an order change event.
type orderChangeMessage struct {
	OrderID  string    `json:"order_id"`
	Status   string    `json:"status"`
	Priority string    `json:"priority"`
	At       time.Time `json:"at"`
	Notes    string    `json:"notes,omitempty"`
}

type notifier struct {
	conn Connection
}

// NewNotifier creates a Notifier that publishes order changes to a durable
// topic exchange. Consumers bind with patterns like "orders.*.urgent" or
// "orders.delivered.*".
func NewNotifier(conn Connection) ports.Notifier {
	return &notifier{conn: conn}
}

func (n *notifier) PublishOrderChange(ctx context.Context, change ports.OrderChange) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(orderChangeMessage{
		OrderID:  change.OrderID.String(),
		Status:   change.Status.String(),
		Priority: change.Priority.String(),
		At:       change.At,
		Notes:    change.Notes,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	routingKey := fmt.Sprintf("orders.%s.%s", change.Status, change.Priority)

	err = ch.Publish(ordersExchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
