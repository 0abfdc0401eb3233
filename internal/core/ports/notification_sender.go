package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
)

// NotificationSender composes a notification message into a raw MIME document
// and transmits it. Fetching attachment content is the sender's concern.
type NotificationSender interface {
	Send(ctx context.Context, msg notification.Message) error
}
