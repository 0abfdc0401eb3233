package order

import "strings"

const shippingNamePrefix = "shipping"

// LineItem is an order line item as delivered in the webhook's included items.
type LineItem struct {
	Name     string
	SKU      string
	Quantity int
}

// IsShipping reports whether the line item is the order's shipping selection,
// identified by a case-insensitive "shipping" name prefix.
func (l LineItem) IsShipping() bool {
	return strings.HasPrefix(strings.ToLower(l.Name), shippingNamePrefix)
}

// FindShippingItem returns the first shipping line item among items.
// The second return value is false when no shipping line item exists,
// which is a normal condition for most webhook deliveries.
func FindShippingItem(items []LineItem) (LineItem, bool) {
	for _, item := range items {
		if item.IsShipping() {
			return item, true
		}
	}
	return LineItem{}, false
}
