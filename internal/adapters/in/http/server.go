// Package http is the inbound webhook adapter: it verifies the shared
// secret, parses the event envelope, gates out irrelevant deliveries and
// maps pipeline outcomes to HTTP responses.
package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SecretHeader carries the webhook shared secret set by the commerce platform.
const SecretHeader = "x-moltin-secret-key"

// orderResourceType is the only resource type the pipeline acts on.
const orderResourceType = "order"

// Server handles webhook deliveries. It holds the configured shared secret
// and the fulfillment command handler; both are request-invariant.
type Server struct {
	secret         string
	fulfillHandler commands.FulfillOrderCommandHandler
}

// NewServer creates a webhook server with the shared secret and the
// fulfillment command handler.
func NewServer(secret string, fulfillHandler commands.FulfillOrderCommandHandler) *Server {
	return &Server{
		secret:         secret,
		fulfillHandler: fulfillHandler,
	}
}

// HandleWebhook handles POST / — one webhook delivery per request.
//
// Response contract:
//   - 401 empty body: secret header missing or wrong; nothing else runs.
//   - 200 {received:true}: delivery is irrelevant to shipping.
//   - 200 {received:true, rateId?}: order fetched but the fulfillment
//     predicate is false; acknowledged without action.
//   - 200 {received:true, carrierId, serviceCode, trackingNumber}: fulfilled.
//   - 500 tagged error JSON: any pipeline stage failed.
func (s *Server) HandleWebhook(c echo.Context) error {
	if c.Request().Header.Get(SecretHeader) != s.secret {
		return c.NoContent(http.StatusUnauthorized)
	}

	deliveryID := uuid.New().String()
	logger := c.Logger()

	var envelope webhookEnvelope
	if err := c.Bind(&envelope); err != nil {
		logger.Errorf("delivery %s: malformed envelope: %v", deliveryID, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(err))
	}

	var doc resourcesDocument
	if err := json.Unmarshal([]byte(envelope.Resources), &doc); err != nil {
		logger.Errorf("delivery %s: malformed resources payload: %v", deliveryID, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(err))
	}

	triggerType, _, _ := strings.Cut(envelope.TriggeredBy, ".")
	items := doc.lineItems()
	_, hasShippingItem := order.FindShippingItem(items)

	if triggerType != orderResourceType ||
		doc.Data.Type != orderResourceType ||
		doc.Data.ID == "" ||
		!hasShippingItem {
		logger.Infof("delivery %s ignored: trigger=%q resource=%q",
			deliveryID, envelope.TriggeredBy, doc.Data.Type)
		return c.JSON(http.StatusOK, AckResponse{Received: true})
	}

	cmd, err := commands.NewFulfillOrderCommand(doc.Data.ID, items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(err))
	}

	result, err := s.fulfillHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		logger.Errorf("delivery %s: order %s failed: %v", deliveryID, doc.Data.ID, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(err))
	}

	if !result.Fulfilled {
		logger.Infof("delivery %s: order %s acknowledged without action, rate=%q",
			deliveryID, doc.Data.ID, result.RateSKU)
		return c.JSON(http.StatusOK, AckResponse{Received: true, RateID: result.RateSKU})
	}

	logger.Infof("delivery %s: order %s fulfilled, carrier=%s service=%s tracking=%s",
		deliveryID, doc.Data.ID, result.CarrierID, result.ServiceCode, result.TrackingNumber)
	return c.JSON(http.StatusOK, FulfilledResponse{
		Received:       true,
		CarrierID:      result.CarrierID,
		ServiceCode:    result.ServiceCode,
		TrackingNumber: result.TrackingNumber,
	})
}
