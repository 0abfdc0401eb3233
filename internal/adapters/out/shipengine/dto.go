package shipengine

import "fulfillment/internal/core/domain/model/shipment"

type createShipmentRequest struct {
	Shipments []shipmentPayload `json:"shipments"`
}

type shipmentPayload struct {
	ValidateAddress    string       `json:"validate_address"`
	CarrierID          string       `json:"carrier_id"`
	ServiceCode        string       `json:"service_code"`
	ExternalShipmentID string       `json:"external_shipment_id"`
	ShipTo             addressDTO   `json:"ship_to"`
	ShipFrom           addressDTO   `json:"ship_from"`
	Packages           []packageDTO `json:"packages"`
}

type addressDTO struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	CompanyName   string `json:"company_name"`
	AddressLine1  string `json:"address_line1"`
	AddressLine2  string `json:"address_line2,omitempty"`
	CityLocality  string `json:"city_locality"`
	StateProvince string `json:"state_province"`
	PostalCode    string `json:"postal_code"`
	CountryCode   string `json:"country_code"`
}

type packageDTO struct {
	Weight     weightDTO     `json:"weight"`
	Dimensions dimensionsDTO `json:"dimensions"`
}

type weightDTO struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type dimensionsDTO struct {
	Unit   string  `json:"unit"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type createShipmentResponse struct {
	Shipments []shipmentRecord `json:"shipments"`
}

type shipmentRecord struct {
	ShipmentID         string `json:"shipment_id"`
	ExternalShipmentID string `json:"external_shipment_id"`
	CarrierID          string `json:"carrier_id"`
	ServiceCode        string `json:"service_code"`
	CreatedAt          string `json:"created_at"`
	ShipDate           string `json:"ship_date"`
}

type labelRequest struct {
	TestLabel   bool   `json:"test_label"`
	LabelFormat string `json:"label_format"`
}

type labelResponse struct {
	LabelID        string `json:"label_id"`
	ShipmentID     string `json:"shipment_id"`
	CarrierCode    string `json:"carrier_code"`
	TrackingNumber string `json:"tracking_number"`
	LabelDownload  struct {
		Href string `json:"href"`
	} `json:"label_download"`
}

func newShipmentPayload(req shipment.Request) shipmentPayload {
	return shipmentPayload{
		ValidateAddress:    shipment.NoAddressValidation,
		CarrierID:          req.CarrierID,
		ServiceCode:        req.ServiceCode,
		ExternalShipmentID: req.ExternalShipmentID,
		ShipTo:             newAddressDTO(req.ShipTo),
		ShipFrom:           newAddressDTO(req.ShipFrom),
		Packages:           newPackageDTOs(req.Packages),
	}
}

func newAddressDTO(a shipment.Address) addressDTO {
	return addressDTO{
		Name:          a.Name,
		Phone:         a.Phone,
		CompanyName:   a.CompanyName,
		AddressLine1:  a.AddressLine1,
		AddressLine2:  a.AddressLine2,
		CityLocality:  a.CityLocality,
		StateProvince: a.StateProvince,
		PostalCode:    a.PostalCode,
		CountryCode:   a.CountryCode,
	}
}

func newPackageDTOs(packages []shipment.Package) []packageDTO {
	dtos := make([]packageDTO, len(packages))
	for i, p := range packages {
		dtos[i] = packageDTO{
			Weight:     weightDTO{Value: p.Weight.Value, Unit: p.Weight.Unit},
			Dimensions: dimensionsDTO{Unit: p.Dimensions.Unit, Length: p.Dimensions.Length, Width: p.Dimensions.Width, Height: p.Dimensions.Height},
		}
	}
	return dtos
}
