package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

// NotificationHandler logs order status updates received from the fanout.
// This is the backend counterpart of the storefront's toast notifications.
type NotificationHandler struct {
	log logger.Logger
}

func NewNotificationHandler(log logger.Logger) *NotificationHandler {
	return &NotificationHandler{log: log}
}

func (h *NotificationHandler) HandleStatusUpdate(ctx context.Context, body []byte) error {
	var msg interfaces.StatusUpdateMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal status update: %w", err)
	}

	h.log.Info("order_status_changed", fmt.Sprintf("Order %s is now %s", msg.OrderCode, msg.NewStatus), "", map[string]interface{}{
		"order_id":   msg.OrderID,
		"old_status": string(msg.OldStatus),
		"new_status": string(msg.NewStatus),
		"changed_by": msg.ChangedBy,
	})
	return nil
}
