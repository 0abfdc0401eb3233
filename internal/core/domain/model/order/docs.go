// Package order models the commerce platform's order resource as seen by the
// fulfillment pipeline. The order is fetched from the platform per webhook
// delivery and is read-only within the pipeline.
//
// The package includes:
//   - Order: the authoritative order state (status, payment, shipping, customer, address)
//   - LineItem: an order line item from the webhook's included items
//   - Rate: the carrier/service pair encoded in a shipping line item's SKU
//   - EligibleForFulfillment: the business predicate gating the pipeline
//
// Key business rules:
//   - A shipping line item is identified by a case-insensitive "shipping" name prefix
//   - A rate SKU encodes "<carrierID>--<serviceCode>"; a malformed SKU is a
//     validation failure, never an undefined service code
//   - Fulfillment requires a paid, unfulfilled order with a customer email,
//     a shipping address and a shipping line item
package order
