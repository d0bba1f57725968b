package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChannel struct {
	declaredExchange string
	declaredKind     string
	declaredDurable  bool

	publishedKey string
	publishedMsg amqp.Publishing

	declareErr error
	publishErr error
	closed     bool
}

func (s *stubChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp.Table) error {
	s.declaredExchange = name
	s.declaredKind = kind
	s.declaredDurable = durable
	return s.declareErr
}

func (s *stubChannel) Publish(_, key string, _, _ bool, msg amqp.Publishing) error {
	s.publishedKey = key
	s.publishedMsg = msg
	return s.publishErr
}

func (s *stubChannel) Close() error {
	s.closed = true
	return nil
}

type stubConnection struct {
	ch         *stubChannel
	channelErr error
}

func (s *stubConnection) Channel() (Channel, error) {
	if s.channelErr != nil {
		return nil, s.channelErr
	}
	return s.ch, nil
}

func (s *stubConnection) Close() error { return nil }

func (s *stubConnection) IsClosed() bool { return false }

func testChange(t *testing.T) ports.OrderChange {
	t.Helper()

	return ports.OrderChange{
		OrderID:  kernel.NewUUID(),
		Status:   order.Delivered,
		Priority: order.PriorityHigh,
		At:       time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		Notes:    "equipment returned",
	}
}

func TestNotifier_PublishOrderChange(t *testing.T) {
	ch := &stubChannel{}
	n := NewNotifier(&stubConnection{ch: ch})
	change := testChange(t)

	err := n.PublishOrderChange(context.Background(), change)

	require.NoError(t, err)
	assert.Equal(t, "orders_topic", ch.declaredExchange)
	assert.Equal(t, "topic", ch.declaredKind)
	assert.True(t, ch.declaredDurable)
	assert.Equal(t, "orders.delivered.high", ch.publishedKey)
	assert.Equal(t, "application/json", ch.publishedMsg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), ch.publishedMsg.DeliveryMode)
	assert.True(t, ch.closed)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(ch.publishedMsg.Body, &msg))
	assert.Equal(t, change.OrderID.String(), msg["order_id"])
	assert.Equal(t, "delivered", msg["status"])
	assert.Equal(t, "high", msg["priority"])
	assert.Equal(t, "equipment returned", msg["notes"])
}

func TestNotifier_PublishOrderChange_ChannelError(t *testing.T) {
	n := NewNotifier(&stubConnection{channelErr: errors.New("broker down")})

	err := n.PublishOrderChange(context.Background(), testChange(t))

	assert.ErrorContains(t, err, "failed to open channel")
}

func TestNotifier_PublishOrderChange_DeclareError(t *testing.T) {
	ch := &stubChannel{declareErr: errors.New("no permission")}
	n := NewNotifier(&stubConnection{ch: ch})

	err := n.PublishOrderChange(context.Background(), testChange(t))

	assert.ErrorContains(t, err, "failed to declare exchange")
	assert.True(t, ch.closed)
}

func TestNotifier_PublishOrderChange_PublishError(t *testing.T) {
	ch := &stubChannel{publishErr: errors.New("channel closed")}
	n := NewNotifier(&stubConnection{ch: ch})

	err := n.PublishOrderChange(context.Background(), testChange(t))

	assert.ErrorContains(t, err, "failed to publish message")
}
