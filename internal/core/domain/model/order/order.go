package order

// Payment and shipping status values used by the fulfillment predicate.
// The platform reports more states than these; the pipeline only ever
// compares against the two below.
const (
	PaymentPaid       = "paid"
	ShippingFulfilled = "fulfilled"
)

// ShippingAddress is the platform-native shipping address attached to an order.
type ShippingAddress struct {
	FirstName    string
	LastName     string
	Name         string
	CompanyName  string
	Line1        string
	Line2        string
	City         string
	Postcode     string
	County       string
	Country      string
	PhoneNumber  string
	Instructions string
}

// Order is the authoritative order state fetched from the commerce platform.
// It is a read model: the pipeline never mutates or persists it.
type Order struct {
	ID              string
	Status          string
	Payment         string
	Shipping        string
	CustomerName    string
	CustomerEmail   string
	CustomerID      string
	TotalPaid       string
	ShippingAddress *ShippingAddress
}

// EligibleForFulfillment evaluates the business predicate that decides whether
// fulfillment orchestration runs for an order:
// customer email present, payment is paid, shipping not yet fulfilled,
// a shipping line item was found and a shipping address is present.
func EligibleForFulfillment(o *Order, shippingItem *LineItem) bool {
	return o != nil &&
		o.CustomerEmail != "" &&
		o.Payment == PaymentPaid &&
		o.Shipping != ShippingFulfilled &&
		shippingItem != nil &&
		o.ShippingAddress != nil
}
