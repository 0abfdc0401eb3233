package moltin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderPayload = `{"data":{
	"id":"ord-1",
	"status":"complete",
	"payment":"paid",
	"shipping":"unfulfilled",
	"shipping_address":{
		"first_name":"Ada","last_name":"Lovelace",
		"line_1":"1 Analytical Way","city":"Hayward",
		"county":"California","postcode":"94544","country":"US",
		"phone_number":"555-0100","instructions":"leave at door"
	},
	"customer":{"name":"Ada Lovelace","email":"ada@example.com"},
	"meta":{"display_price":{"with_tax":{"formatted":"$42.00"}}},
	"relationships":{"customer":{"data":{"id":"cust-1"}}}
}}`

func Test_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("should authenticate with client credentials and map the order", func(t *testing.T) {
		var tokenRequests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/oauth/access_token":
				tokenRequests++
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
				assert.Equal(t, "id-1", r.Form.Get("client_id"))
				assert.Equal(t, "secret-1", r.Form.Get("client_secret"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires":4102444800}`))
			case "/v2/orders/ord-1":
				assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(orderPayload))
			default:
				t.Errorf("unexpected request to %s", r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := NewClient(server.URL, "id-1", "secret-1", time.Second)

		o, err := client.GetOrder(ctx, "ord-1")
		require.NoError(t, err)
		assert.Equal(t, "ord-1", o.ID)
		assert.Equal(t, "paid", o.Payment)
		assert.Equal(t, "unfulfilled", o.Shipping)
		assert.Equal(t, "ada@example.com", o.CustomerEmail)
		assert.Equal(t, "cust-1", o.CustomerID)
		assert.Equal(t, "$42.00", o.TotalPaid)
		require.NotNil(t, o.ShippingAddress)
		assert.Equal(t, "Ada", o.ShippingAddress.FirstName)
		assert.Equal(t, "California", o.ShippingAddress.County)
		assert.Equal(t, "leave at door", o.ShippingAddress.Instructions)

		// a second fetch reuses the cached token
		_, err = client.GetOrder(ctx, "ord-1")
		require.NoError(t, err)
		assert.Equal(t, 1, tokenRequests)
	})

	t.Run("should fail when the token response carries no token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "id-1", "secret-1", time.Second)

		_, err := client.GetOrder(ctx, "ord-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty token")
	})

	t.Run("should surface a platform error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/access_token" {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token":"tok-1","expires":4102444800}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[{"status":404}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "id-1", "secret-1", time.Second)

		_, err := client.GetOrder(ctx, "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}
