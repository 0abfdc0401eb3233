// Package ports defines the contracts the fulfillment pipeline consumes from
// its three external collaborators: the commerce platform, the shipping
// provider and the email transport. Implementations live under
// internal/adapters/out and are process-wide singletons, never mutated per
// request.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderProvider fetches authoritative order state from the commerce platform.
// The pipeline never trusts order state carried in a webhook body.
type OrderProvider interface {
	// GetOrder retrieves the order by its platform identifier.
	GetOrder(ctx context.Context, orderID string) (*order.Order, error)
}
