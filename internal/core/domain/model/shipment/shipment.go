package shipment

// NoAddressValidation tells the provider to accept the ship-to address as-is.
const NoAddressValidation = "no_validation"

// Request carries everything the provider needs to create a shipment.
// ExternalShipmentID ties the provider's record back to the platform order.
type Request struct {
	CarrierID          string
	ServiceCode        string
	ExternalShipmentID string
	ShipTo             Address
	ShipFrom           Address
	Packages           []Package
}

// Shipment is the provider's shipment record, projected to the fields the
// pipeline consumes.
type Shipment struct {
	ShipmentID         string
	ExternalShipmentID string
	CarrierID          string
	ServiceCode        string
	CreatedAt          string
	ShipDate           string
}

// Label is the provider's shipping label record. LabelURL is the PDF
// download location taken from the nested label-download link.
type Label struct {
	LabelID        string
	ShipmentID     string
	CarrierCode    string
	TrackingNumber string
	LabelURL       string
}

// Tracking is the carrier/tracking-number pair for which tracking is active.
type Tracking struct {
	CarrierCode    string
	TrackingNumber string
}
