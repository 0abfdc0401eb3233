package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentProvider is the shipping provider contract. The three operations
// form a strictly ordered chain: the created shipment's id feeds label
// creation, and the label's carrier/tracking pair feeds tracking activation.
type ShipmentProvider interface {
	// CreateShipment submits a single-shipment batch and returns the
	// provider's record for it.
	CreateShipment(ctx context.Context, req shipment.Request) (*shipment.Shipment, error)

	// CreateLabel requests a PDF label for a previously created shipment.
	CreateLabel(ctx context.Context, shipmentID string) (*shipment.Label, error)

	// StopTracking deactivates tracking for a carrier/tracking-number pair.
	// Called before StartTracking so a redelivered webhook does not trip
	// the provider's "already tracking" error.
	StopTracking(ctx context.Context, carrierCode, trackingNumber string) error

	// StartTracking activates tracking for a carrier/tracking-number pair
	// and returns the activated pair.
	StartTracking(ctx context.Context, carrierCode, trackingNumber string) (*shipment.Tracking, error)
}
