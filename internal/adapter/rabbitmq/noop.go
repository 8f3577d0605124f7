package rabbitmq

import (
	"context"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

// noopPublisher stands in for the broker when the server runs against the
// in-memory store; status updates are logged instead of published.
type noopPublisher struct {
	log logger.Logger
}

func NewNoopPublisher(log logger.Logger) interfaces.MessagePublisher {
	return &noopPublisher{log: log}
}

func (p *noopPublisher) PublishStatusUpdate(ctx context.Context, msg interfaces.StatusUpdateMessage) error {
	p.log.Debug("status_update_dropped", "No broker configured, status update not published", "", map[string]interface{}{
		"order_code": msg.OrderCode,
		"new_status": string(msg.NewStatus),
	})
	return nil
}
