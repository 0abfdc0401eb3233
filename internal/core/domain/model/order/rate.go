package order

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// RateSKUDelimiter separates the carrier id from the service code in a
// shipping line item's SKU, e.g. "ups--ups_ground".
const RateSKUDelimiter = "--"

// ErrRateIsNotConstructed is returned when a Rate instance was not created
// through the NewRateFromSKU factory method.
var ErrRateIsNotConstructed = errors.New("Rate must be created via NewRateFromSKU constructor")

// Rate is the carrier/service pair selected for an order, derived from the
// shipping line item's SKU.
//
// Rate follows these invariants:
//   - The SKU must contain exactly one "--" delimiter
//   - Both the carrier id and the service code must be non-empty
//   - Can only be created through NewRateFromSKU
type Rate struct {
	sku         string
	carrierID   string
	serviceCode string

	guard guard.ConstructorGuard
}

// NewRateFromSKU derives a Rate from a shipping line item SKU.
// A missing delimiter or an empty carrier id/service code is an
// input-validation failure, not an undefined rate.
//
// Example:
//
//	rate, err := order.NewRateFromSKU("fedex--fedex_2_day")
//	if err != nil {
//	    return err
//	}
//	rate.CarrierID()   // "fedex"
//	rate.ServiceCode() // "fedex_2_day"
func NewRateFromSKU(sku string) (Rate, error) {
	if sku == "" {
		return Rate{}, errs.NewValueIsRequiredError("sku")
	}

	carrierID, serviceCode, found := strings.Cut(sku, RateSKUDelimiter)
	if !found {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("sku",
			errors.New("missing carrier/service delimiter "+RateSKUDelimiter))
	}
	if carrierID == "" || serviceCode == "" {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("sku",
			errors.New("carrier id and service code must be non-empty"))
	}

	return Rate{
		sku:         sku,
		carrierID:   carrierID,
		serviceCode: serviceCode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the rate was created through the constructor.
func (r Rate) Validate() error {
	return r.guard.Validate(ErrRateIsNotConstructed)
}

// SKU returns the original line item SKU.
func (r Rate) SKU() string {
	return r.sku
}

// CarrierID returns the carrier identifier half of the SKU.
func (r Rate) CarrierID() string {
	return r.carrierID
}

// ServiceCode returns the carrier service tier half of the SKU.
func (r Rate) ServiceCode() string {
	return r.serviceCode
}
