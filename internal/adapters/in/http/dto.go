package http

import "fulfillment/internal/core/domain/model/order"

// webhookEnvelope is the commerce platform's webhook body. The resources
// payload arrives double-encoded: a JSON string inside the JSON body.
type webhookEnvelope struct {
	TriggeredBy string `json:"triggered_by"`
	Resources   string `json:"resources"`
}

// resourcesDocument is the decoded resources payload: the triggering
// resource reference plus the order's included line items.
type resourcesDocument struct {
	Data struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	} `json:"data"`
	Included struct {
		Items []includedItem `json:"items"`
	} `json:"included"`
}

type includedItem struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

func (d resourcesDocument) lineItems() []order.LineItem {
	items := make([]order.LineItem, len(d.Included.Items))
	for i, item := range d.Included.Items {
		items[i] = order.LineItem{
			Name:     item.Name,
			SKU:      item.SKU,
			Quantity: item.Quantity,
		}
	}
	return items
}

// AckResponse acknowledges a delivery that required no action. RateID carries
// the shipping line item SKU when the guard predicate rejected an otherwise
// relevant order, and is omitted when no shipping line item was found.
type AckResponse struct {
	Received bool   `json:"received"`
	RateID   string `json:"rateId,omitempty"`
}

// FulfilledResponse reports a completed fulfillment run.
type FulfilledResponse struct {
	Received       bool   `json:"received"`
	CarrierID      string `json:"carrierId"`
	ServiceCode    string `json:"serviceCode"`
	TrackingNumber string `json:"trackingNumber"`
}
