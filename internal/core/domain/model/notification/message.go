// Package notification builds the internal email document announcing a
// generated shipping label: subject, plain-text and HTML bodies, and the
// label PDF attachment reference. Composition to a transport-ready MIME
// message happens in the sending adapter.
package notification

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

const (
	// orderDashboardURL links the HTML body to the platform's order view.
	orderDashboardURL = "https://dashboard.moltin.com/app/orders/"

	// trackingSearchURL is a placeholder tracking link keyed on the tracking
	// number, not a carrier deep link.
	trackingSearchURL = "https://www.google.com/search?q="
)

// Attachment references a document to attach to the message.
// Path is fetched at send time.
type Attachment struct {
	Filename string
	Path     string
}

// Message is the outbound notification email before MIME composition.
type Message struct {
	From        string
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// NewOrderShipped builds the notification for a successfully labeled order:
// order id, customer contact, shipping address block, tracking link and the
// label PDF as a single attachment. Sender and recipient are both the
// configured internal address.
func NewOrderShipped(o *order.Order, label shipment.Label, from string) Message {
	trackingURL := trackingSearchURL + label.TrackingNumber

	return Message{
		From:    from,
		To:      from,
		Subject: fmt.Sprintf("Order: %s", o.ID),
		Text: fmt.Sprintf("Order ID: %s\n%s (%s)\nTracking Number: %s\n\nShipping Label: %s",
			o.ID, o.CustomerName, o.CustomerEmail, label.TrackingNumber, label.LabelURL),
		HTML: htmlBody(o, label, trackingURL),
		Attachments: []Attachment{
			{
				Filename: fmt.Sprintf("order-%s.pdf", o.ID),
				Path:     label.LabelURL,
			},
		},
	}
}

func htmlBody(o *order.Order, label shipment.Label, trackingURL string) string {
	addr := o.ShippingAddress

	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, `Order ID: <a href="%s%s" target="_blank">%s</a><br/><br/>`,
		orderDashboardURL, o.ID, o.ID)
	fmt.Fprintf(&b, "Customer Name: %s<br/>", o.CustomerName)
	fmt.Fprintf(&b, "Customer Email: %s<br/><br/>", o.CustomerEmail)
	b.WriteString("Shipping Information:<br/>")
	if addr != nil {
		if addr.CompanyName != "" {
			fmt.Fprintf(&b, "&nbsp;%s<br/>", addr.CompanyName)
		}
		fmt.Fprintf(&b, "&nbsp;%s&nbsp;%s<br/>", addr.FirstName, addr.LastName)
		fmt.Fprintf(&b, "&nbsp;%s<br/>", addr.Line1)
		if addr.Line2 != "" {
			fmt.Fprintf(&b, "&nbsp;%s<br/>", addr.Line2)
		}
		fmt.Fprintf(&b, "&nbsp;%s,&nbsp;%s&nbsp;%s<br/>", addr.City, addr.County, addr.Postcode)
		if addr.Instructions != "" {
			fmt.Fprintf(&b, "&nbsp;%s<br/>", addr.Instructions)
		}
	}
	fmt.Fprintf(&b, `<br/>Tracking Number: <a href="%s" target="_blank">%s</a><br/>`,
		trackingURL, label.TrackingNumber)
	fmt.Fprintf(&b, `Shipping Label: <a href="%s" target="_blank">%s</a><br/><br/>`,
		label.LabelURL, label.LabelURL)
	b.WriteString("</body></html>")
	return b.String()
}
