// Package moltin is the commerce platform adapter. It fetches authoritative
// order resources over the platform's REST API, authenticating with
// client-credentials tokens that are cached until shortly before expiry.
package moltin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/go-resty/resty/v2"
)

// tokenExpiryMargin renews the cached token slightly early so an in-flight
// request never races token expiry.
const tokenExpiryMargin = 30 * time.Second

// Client implements ports.OrderProvider against the commerce platform API.
// Safe for concurrent use; only the token cache is mutated, under a mutex.
type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a commerce platform client for the given API base URL
// and client credentials. Every request is bounded by timeout.
func NewClient(baseURL, clientID, clientSecret string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// GetOrder retrieves the order by id and maps it to the domain read model.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var doc orderDocument
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&doc).
		Get("/v2/orders/" + orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get order %s: %s: %s", orderID, resp.Status(), resp.String())
	}

	return doc.toDomain(), nil
}

// accessToken returns a valid bearer token, requesting a fresh one from the
// platform's token endpoint when the cached token is missing or near expiry.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpiryMargin)) {
		return c.token, nil
	}

	var tok tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
		}).
		SetResult(&tok).
		Post("/oauth/access_token")
	if err != nil {
		return "", fmt.Errorf("request access token: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("request access token: %s: %s", resp.Status(), resp.String())
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("request access token: empty token in response")
	}

	c.token = tok.AccessToken
	c.tokenExpiry = time.Unix(tok.Expires, 0)
	return c.token, nil
}
