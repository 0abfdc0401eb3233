package shipengine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() shipment.Request {
	return shipment.Request{
		CarrierID:          "se-123",
		ServiceCode:        "usps_priority_mail",
		ExternalShipmentID: "ord-1",
		ShipTo: shipment.Address{
			Name:          "Ada Lovelace",
			Phone:         "555-0100",
			AddressLine1:  "1 Analytical Way",
			CityLocality:  "Hayward",
			StateProvince: "CA",
			PostalCode:    "94544",
			CountryCode:   "US",
		},
		ShipFrom: shipment.Address{
			Name:          "Warehouse",
			Phone:         "555-0101",
			AddressLine1:  "2 Depot St",
			CityLocality:  "Austin",
			StateProvince: "TX",
			PostalCode:    "78701",
			CountryCode:   "US",
		},
		Packages: []shipment.Package{
			{
				Weight:     shipment.Weight{Value: 2, Unit: "pound"},
				Dimensions: shipment.Dimensions{Unit: "inch", Length: 18, Width: 12, Height: 6},
			},
		},
	}
}

func Test_CreateShipment(t *testing.T) {
	ctx := context.Background()

	t.Run("should post a single-element batch and map the first shipment", func(t *testing.T) {
		var captured createShipmentRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/shipments", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("API-Key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"shipments":[{
				"shipment_id":"se-ship-1",
				"external_shipment_id":"ord-1",
				"carrier_id":"se-123",
				"service_code":"usps_priority_mail",
				"created_at":"2024-05-01T10:00:00Z",
				"ship_date":"2024-05-02T00:00:00Z"
			}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second)
		created, err := client.CreateShipment(ctx, testRequest())

		require.NoError(t, err)
		assert.Equal(t, "se-ship-1", created.ShipmentID)
		assert.Equal(t, "ord-1", created.ExternalShipmentID)
		assert.Equal(t, "se-123", created.CarrierID)
		assert.Equal(t, "usps_priority_mail", created.ServiceCode)

		require.Len(t, captured.Shipments, 1)
		sent := captured.Shipments[0]
		assert.Equal(t, shipment.NoAddressValidation, sent.ValidateAddress)
		assert.Equal(t, "ord-1", sent.ExternalShipmentID)
		assert.Equal(t, "Ada Lovelace", sent.ShipTo.Name)
		assert.Equal(t, "CA", sent.ShipTo.StateProvince)
		require.Len(t, sent.Packages, 1)
		assert.Equal(t, 2.0, sent.Packages[0].Weight.Value)
		assert.Equal(t, "inch", sent.Packages[0].Dimensions.Unit)
	})

	t.Run("should fail on an empty shipment batch in the response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"shipments":[]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second)
		created, err := client.CreateShipment(ctx, testRequest())

		require.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "empty shipment batch")
	})

	t.Run("should surface a provider error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":[{"message":"invalid carrier"}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second)
		_, err := client.CreateShipment(ctx, testRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})
}

func Test_CreateLabel(t *testing.T) {
	ctx := context.Background()

	t.Run("should request a test pdf label for the shipment", func(t *testing.T) {
		var captured labelRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/labels/shipment/se-ship-1", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"label_id":"se-lbl-1",
				"shipment_id":"se-ship-1",
				"carrier_code":"usps",
				"tracking_number":"9400100000000000000000",
				"label_download":{"href":"https://labels.example.com/se-lbl-1.pdf"}
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second)
		label, err := client.CreateLabel(ctx, "se-ship-1")

		require.NoError(t, err)
		assert.True(t, captured.TestLabel)
		assert.Equal(t, "pdf", captured.LabelFormat)
		assert.Equal(t, "se-lbl-1", label.LabelID)
		assert.Equal(t, "usps", label.CarrierCode)
		assert.Equal(t, "9400100000000000000000", label.TrackingNumber)
		assert.Equal(t, "https://labels.example.com/se-lbl-1.pdf", label.LabelURL)
	})
}

func Test_Tracking(t *testing.T) {
	ctx := context.Background()

	t.Run("should stop then start tracking with carrier and tracking number", func(t *testing.T) {
		var paths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			assert.Equal(t, "usps", r.URL.Query().Get("carrier_code"))
			assert.Equal(t, "9400100000000000000000", r.URL.Query().Get("tracking_number"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second)

		err := client.StopTracking(ctx, "usps", "9400100000000000000000")
		require.NoError(t, err)

		tracking, err := client.StartTracking(ctx, "usps", "9400100000000000000000")
		require.NoError(t, err)
		assert.Equal(t, "usps", tracking.CarrierCode)
		assert.Equal(t, "9400100000000000000000", tracking.TrackingNumber)

		assert.Equal(t, []string{"/v1/tracking/stop", "/v1/tracking/start"}, paths)
	})

	t.Run("should surface a tracking error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", time.Second)

		err := client.StopTracking(ctx, "usps", "na")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}
