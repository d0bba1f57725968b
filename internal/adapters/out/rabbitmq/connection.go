package rabbitmq

import (
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection is the subset of an AMQP connection the notifier needs.
// Wrapping the library connection keeps the publisher testable without
// a running broker.
type Connection interface {
	Channel() (Channel, error)
	Close() error
	IsClosed() bool
}

// Channel is the subset of an AMQP channel used for publishing.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpConnection struct {
	conn   *amqp.Connection
	mu     sync.RWMutex
	closed bool
}

type amqpChannel struct {
	ch *amqp.Channel
}

// Connect dials the broker at the given AMQP URL.
func Connect(url string) (Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return &amqpConnection{conn: conn}, nil
}

func (c *amqpConnection) Channel() (Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, fmt.Errorf("connection is closed")
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return &amqpChannel{ch: ch}, nil
}

func (c *amqpConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}

func (c *amqpConnection) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed || c.conn.IsClosed()
}

func (ch *amqpChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return ch.ch.ExchangeDeclare(name, kind, durable, autoDelete, internal, noWait, args)
}

func (ch *amqpChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return ch.ch.Publish(exchange, key, mandatory, immediate, msg)
}

func (ch *amqpChannel) Close() error {
	return ch.ch.Close()
}
