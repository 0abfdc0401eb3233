package shipment

import (
	"fulfillment/internal/core/domain/model/order"
)

// Address is the shipping provider's native address shape.
type Address struct {
	Name          string
	Phone         string
	CompanyName   string
	AddressLine1  string
	AddressLine2  string
	CityLocality  string
	StateProvince string
	PostalCode    string
	CountryCode   string
}

// TransformAddress maps a platform-native shipping address to the provider's
// shape. The recipient name falls back to "<first> <last>" when no explicit
// name is set, and the county is resolved to a two-letter state code.
// Returns a lookup error for an unrecognized full state name.
func TransformAddress(a order.ShippingAddress) (Address, error) {
	name := a.Name
	if name == "" {
		name = a.FirstName + " " + a.LastName
	}

	state, err := AbbreviateState(a.County)
	if err != nil {
		return Address{}, err
	}

	return Address{
		Name:          name,
		Phone:         a.PhoneNumber,
		CompanyName:   a.CompanyName,
		AddressLine1:  a.Line1,
		AddressLine2:  a.Line2,
		CityLocality:  a.City,
		StateProvince: state,
		PostalCode:    a.Postcode,
		CountryCode:   a.Country,
	}, nil
}
