// Package kitchenriders implements the courier service integration. An
// accepted delivery order is handed off with a single JSON POST; the courier
// service owns the ride from there.
package kitchenriders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

var _ ports.DeliveryDispatcher = (*Client)(nil)

// Client posts delivery requests to the kitchen riders service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a kitchen riders client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type deliveryRequest struct {
	OrderID         string `json:"order_id"`
	DeliveryAddress string `json:"delivery_address"`
	Total           string `json:"total"`
}

// RequestDelivery asks the courier service to deliver the order.
func (c *Client) RequestDelivery(ctx context.Context, orderID kernel.UUID, deliveryAddress string, total kernel.Money) error {
	payload, err := json.Marshal(deliveryRequest{
		OrderID:         orderID.String(),
		DeliveryAddress: deliveryAddress,
		Total:           total.Amount().String(),
	})
	if err != nil {
		return fmt.Errorf("encode delivery request: %w", err)
	}

	endpoint := c.baseURL + "/deliveries"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call courier service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("courier service returned status %d", resp.StatusCode)
	}
	return nil
}
