package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Pipeline stages, used to tag upstream failures.
const (
	StageShipment = "shipment"
	StageLabel    = "label"
	StageTracking = "tracking"
	StageEmail    = "email"
)

// ErrMissingLabelID is returned when the label step succeeds but the provider
// response carries no label id. Guards against malformed provider responses:
// the pipeline must not send an email for a label it cannot reference.
var ErrMissingLabelID = errors.New("label was created without a label id")

// FulfillmentResult reports the outcome of handling a FulfillOrderCommand.
// Fulfilled is false for the ack-without-action case (guard predicate false);
// RateSKU then carries the shipping line item SKU when one was found.
type FulfillmentResult struct {
	Fulfilled      bool
	RateSKU        string
	CarrierID      string
	ServiceCode    string
	TrackingNumber string
}

// FulfillOrderCommandHandler orchestrates the fulfillment pipeline for one
// order: fetch authoritative order state, evaluate the guard predicate, then
// run the strictly ordered provider chain — create shipment, create label,
// activate tracking — and send the internal notification email.
//
// All dependencies are injected once at composition time; the handler holds
// no per-request state and is safe for concurrent use.
type FulfillOrderCommandHandler struct {
	orders    ports.OrderProvider
	shipments ports.ShipmentProvider
	notifier  ports.NotificationSender

	// Configured origin and default packaging, applied to every shipment.
	shipFrom  order.ShippingAddress
	parcels   []shipment.Parcel
	emailFrom string
}

// NewFulfillOrderCommandHandler creates a handler wired to the three provider
// ports, the configured ship-from address, the default parcel set and the
// internal notification address.
func NewFulfillOrderCommandHandler(
	orders ports.OrderProvider,
	shipments ports.ShipmentProvider,
	notifier ports.NotificationSender,
	shipFrom order.ShippingAddress,
	parcels []shipment.Parcel,
	emailFrom string,
) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		orders:    orders,
		shipments: shipments,
		notifier:  notifier,
		shipFrom:  shipFrom,
		parcels:   parcels,
		emailFrom: emailFrom,
	}
}

// Handle processes the fulfillment command. Each step's failure is terminal
// for the request; no step is retried and no provider is called after the
// first failure. A false guard predicate is a successful no-op, not an error.
func (h *FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) (FulfillmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return FulfillmentResult{}, err
	}

	ord, err := h.orders.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return FulfillmentResult{}, fmt.Errorf("fetching order %s: %w", cmd.OrderID(), err)
	}

	shippingItem, found := order.FindShippingItem(cmd.Items())
	var itemRef *order.LineItem
	if found {
		itemRef = &shippingItem
	}

	if !order.EligibleForFulfillment(ord, itemRef) {
		// Ack without action. The SKU is only reported when a shipping
		// line item was actually found.
		return FulfillmentResult{RateSKU: shippingItem.SKU}, nil
	}

	rate, err := order.NewRateFromSKU(shippingItem.SKU)
	if err != nil {
		return FulfillmentResult{}, err
	}

	shipTo, err := shipment.TransformAddress(*ord.ShippingAddress)
	if err != nil {
		return FulfillmentResult{}, err
	}

	shipFrom, err := shipment.TransformAddress(h.shipFrom)
	if err != nil {
		return FulfillmentResult{}, err
	}

	created, err := h.shipments.CreateShipment(ctx, shipment.Request{
		CarrierID:          rate.CarrierID(),
		ServiceCode:        rate.ServiceCode(),
		ExternalShipmentID: ord.ID,
		ShipTo:             shipTo,
		ShipFrom:           shipFrom,
		Packages:           shipment.TransformParcels(h.parcels),
	})
	if err != nil {
		return FulfillmentResult{}, errs.NewUpstreamError(StageShipment, err)
	}

	label, err := h.shipments.CreateLabel(ctx, created.ShipmentID)
	if err != nil {
		return FulfillmentResult{}, errs.NewUpstreamError(StageLabel, err)
	}
	if label.LabelID == "" {
		return FulfillmentResult{}, ErrMissingLabelID
	}

	if err := h.shipments.StopTracking(ctx, label.CarrierCode, label.TrackingNumber); err != nil {
		return FulfillmentResult{}, errs.NewUpstreamError(StageTracking, err)
	}

	tracking, err := h.shipments.StartTracking(ctx, label.CarrierCode, label.TrackingNumber)
	if err != nil {
		return FulfillmentResult{}, errs.NewUpstreamError(StageTracking, err)
	}

	msg := notification.NewOrderShipped(ord, *label, h.emailFrom)
	if err := h.notifier.Send(ctx, msg); err != nil {
		return FulfillmentResult{}, errs.NewUpstreamError(StageEmail, err)
	}

	return FulfillmentResult{
		Fulfilled:      true,
		RateSKU:        rate.SKU(),
		CarrierID:      rate.CarrierID(),
		ServiceCode:    rate.ServiceCode(),
		TrackingNumber: tracking.TrackingNumber,
	}, nil
}
