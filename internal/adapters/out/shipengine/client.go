// Package shipengine is the shipping provider adapter. It implements the
// ordered shipment → label → tracking operations over the provider's
// REST API.
package shipengine

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/shipment"

	"github.com/go-resty/resty/v2"
)

// Client implements ports.ShipmentProvider. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	http *resty.Client
}

// NewClient creates a shipping provider client for the given API base URL
// and API key. Every request is bounded by timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("API-Key", apiKey).
			SetTimeout(timeout),
	}
}

// CreateShipment submits the request as a single-element shipment batch and
// projects the first element of the provider's response.
func (c *Client) CreateShipment(ctx context.Context, req shipment.Request) (*shipment.Shipment, error) {
	payload := createShipmentRequest{
		Shipments: []shipmentPayload{newShipmentPayload(req)},
	}

	var result createShipmentResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/v1/shipments")
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create shipment: %s: %s", resp.Status(), resp.String())
	}
	if len(result.Shipments) == 0 {
		return nil, fmt.Errorf("create shipment: empty shipment batch in response")
	}

	created := result.Shipments[0]
	return &shipment.Shipment{
		ShipmentID:         created.ShipmentID,
		ExternalShipmentID: created.ExternalShipmentID,
		CarrierID:          created.CarrierID,
		ServiceCode:        created.ServiceCode,
		CreatedAt:          created.CreatedAt,
		ShipDate:           created.ShipDate,
	}, nil
}

// CreateLabel requests a test PDF label for the shipment. The download URL
// is taken from the nested label-download link.
func (c *Client) CreateLabel(ctx context.Context, shipmentID string) (*shipment.Label, error) {
	var result labelResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(labelRequest{TestLabel: true, LabelFormat: "pdf"}).
		SetResult(&result).
		Post("/v1/labels/shipment/" + shipmentID)
	if err != nil {
		return nil, fmt.Errorf("create label: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create label: %s: %s", resp.Status(), resp.String())
	}

	return &shipment.Label{
		LabelID:        result.LabelID,
		ShipmentID:     result.ShipmentID,
		CarrierCode:    result.CarrierCode,
		TrackingNumber: result.TrackingNumber,
		LabelURL:       result.LabelDownload.Href,
	}, nil
}

// StopTracking deactivates tracking for the carrier/tracking-number pair.
func (c *Client) StopTracking(ctx context.Context, carrierCode, trackingNumber string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"carrier_code":    carrierCode,
			"tracking_number": trackingNumber,
		}).
		Post("/v1/tracking/stop")
	if err != nil {
		return fmt.Errorf("stop tracking: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("stop tracking: %s: %s", resp.Status(), resp.String())
	}
	return nil
}

// StartTracking activates tracking for the carrier/tracking-number pair.
func (c *Client) StartTracking(ctx context.Context, carrierCode, trackingNumber string) (*shipment.Tracking, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"carrier_code":    carrierCode,
			"tracking_number": trackingNumber,
		}).
		Post("/v1/tracking/start")
	if err != nil {
		return nil, fmt.Errorf("start tracking: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("start tracking: %s: %s", resp.Status(), resp.String())
	}

	return &shipment.Tracking{
		CarrierCode:    carrierCode,
		TrackingNumber: trackingNumber,
	}, nil
}
