package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/ridepulse/ridepulse/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer owns a set of subscriptions that are torn down together.
// Handler errors are logged and the message dropped; delivery retries are
// the responsibility of the polling fallback, not the channel.
type Consumer struct {
	client        *Client
	subscriptions []*nats.Subscription
}

// NewConsumer creates a consumer on an existing client
func NewConsumer(client *Client) *Consumer {
	return &Consumer{client: client}
}

// Subscribe adds a subscription for the given subject
func (c *Consumer) Subscribe(subject string, handler MessageHandler) error {
	sub, err := c.client.Subscribe(subject, func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	c.subscriptions = append(c.subscriptions, sub)
	return nil
}

// QueueSubscribe adds a queue-group subscription for the given subject
func (c *Consumer) QueueSubscribe(subject, queueGroup string, handler MessageHandler) error {
	sub, err := c.client.QueueSubscribe(subject, queueGroup, func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	c.subscriptions = append(c.subscriptions, sub)
	return nil
}

// Stop unsubscribes everything owned by this consumer
func (c *Consumer) Stop() {
	for _, sub := range c.subscriptions {
		if sub.IsValid() {
			_ = sub.Unsubscribe()
		}
	}
	c.subscriptions = nil
}
