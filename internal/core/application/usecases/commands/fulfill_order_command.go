// Package commands contains the business operations of the fulfillment
// pipeline. The single command, FulfillOrder, carries a webhook delivery's
// order reference and included line items; its handler runs the guard
// predicate and the ordered provider chain.
package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrFulfillOrderCommandIsNotConstructed is returned when a
	// FulfillOrderCommand was not created via NewFulfillOrderCommand.
	ErrFulfillOrderCommandIsNotConstructed = errors.New(
		"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
	)
)

// FulfillOrderCommand represents a request to run fulfillment for one order.
// It carries the order's platform identifier and the line items included in
// the webhook delivery; the authoritative order state is fetched by the
// handler, never taken from the event.
//
// Example:
//
//	cmd, err := NewFulfillOrderCommand("ord-123", items)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type FulfillOrderCommand struct {
	orderID string
	items   []order.LineItem

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command to fulfill the given order.
// The order id is required; the item list may be empty (the handler acks
// such deliveries without action).
func NewFulfillOrderCommand(orderID string, items []order.LineItem) (FulfillOrderCommand, error) {
	if orderID == "" {
		return FulfillOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return FulfillOrderCommand{
		orderID: orderID,
		items:   items,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFulfillOrderCommandIsNotConstructed if validation fails.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// OrderID returns the platform identifier of the order to fulfill.
func (c FulfillOrderCommand) OrderID() string {
	return c.orderID
}

// Items returns the line items included in the webhook delivery.
func (c FulfillOrderCommand) Items() []order.LineItem {
	return c.items
}
