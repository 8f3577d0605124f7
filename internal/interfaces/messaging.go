package interfaces

import (
	"context"
	"time"

	"github.com/gdevgproject/perfume-shop/internal/domain"
)

// StatusUpdateMessage is broadcast on the notifications fanout after every
// order status change.
type StatusUpdateMessage struct {
	OrderID   string        `json:"order_id"`
	OrderCode string        `json:"order_code"`
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
	ChangedBy string        `json:"changed_by"`
	Note      string        `json:"note,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

type MessagePublisher interface {
	PublishStatusUpdate(ctx context.Context, msg StatusUpdateMessage) error
}

type MessageConsumer interface {
	ConsumeStatusUpdates(ctx context.Context, handler NotificationHandler) error
}

type NotificationHandler func(ctx context.Context, body []byte) error
