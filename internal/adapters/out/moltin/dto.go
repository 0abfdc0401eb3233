package moltin

import "fulfillment/internal/core/domain/model/order"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Expires     int64  `json:"expires"`
}

// orderDocument is the platform's order resource envelope. Only the fields
// the pipeline consumes are mapped.
type orderDocument struct {
	Data struct {
		ID              string      `json:"id"`
		Status          string      `json:"status"`
		Payment         string      `json:"payment"`
		Shipping        string      `json:"shipping"`
		ShippingAddress *addressDTO `json:"shipping_address"`
		Customer        struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"customer"`
		Meta struct {
			DisplayPrice struct {
				WithTax struct {
					Formatted string `json:"formatted"`
				} `json:"with_tax"`
			} `json:"display_price"`
		} `json:"meta"`
		Relationships struct {
			Customer struct {
				Data struct {
					ID string `json:"id"`
				} `json:"data"`
			} `json:"customer"`
		} `json:"relationships"`
	} `json:"data"`
}

type addressDTO struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Name         string `json:"name"`
	CompanyName  string `json:"company_name"`
	Line1        string `json:"line_1"`
	Line2        string `json:"line_2"`
	City         string `json:"city"`
	Postcode     string `json:"postcode"`
	County       string `json:"county"`
	Country      string `json:"country"`
	PhoneNumber  string `json:"phone_number"`
	Instructions string `json:"instructions"`
}

func (d orderDocument) toDomain() *order.Order {
	o := &order.Order{
		ID:            d.Data.ID,
		Status:        d.Data.Status,
		Payment:       d.Data.Payment,
		Shipping:      d.Data.Shipping,
		CustomerName:  d.Data.Customer.Name,
		CustomerEmail: d.Data.Customer.Email,
		CustomerID:    d.Data.Relationships.Customer.Data.ID,
		TotalPaid:     d.Data.Meta.DisplayPrice.WithTax.Formatted,
	}

	if a := d.Data.ShippingAddress; a != nil {
		o.ShippingAddress = &order.ShippingAddress{
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			Name:         a.Name,
			CompanyName:  a.CompanyName,
			Line1:        a.Line1,
			Line2:        a.Line2,
			City:         a.City,
			Postcode:     a.Postcode,
			County:       a.County,
			Country:      a.Country,
			PhoneNumber:  a.PhoneNumber,
			Instructions: a.Instructions,
		}
	}

	return o
}
