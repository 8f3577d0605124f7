package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type consumer struct {
	conn Connection
	log  logger.Logger
}

func NewConsumer(conn Connection, log logger.Logger) interfaces.MessageConsumer {
	return &consumer{conn: conn, log: log}
}

// ConsumeStatusUpdates subscribes to the status fanout and feeds each message
// to handler, reconnecting after transient channel failures until ctx ends.
func (c *consumer) ConsumeStatusUpdates(ctx context.Context, handler interfaces.NotificationHandler) error {
	for {
		err := c.consumeOnce(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		c.log.Error("consumer_disconnected", "Status consumer disconnected, reconnecting", "", nil, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
}

func (c *consumer) consumeOnce(ctx context.Context, handler interfaces.NotificationHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err := ch.ExchangeDeclare(statusExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	// temporary exclusive queue; every subscriber sees every update
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", statusExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}
			if err := handler(ctx, msg.Body); err != nil {
				c.log.Error("notification_failed", "Failed to handle status update", "", nil, err)
			}
		}
	}
}
