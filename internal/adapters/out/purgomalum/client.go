// Package purgomalum implements profanity screening against the PurgoMalum
// web service. The service answers a plain-text "true" or "false" for the
// containsprofanity endpoint.
package purgomalum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

var _ ports.ProfanityChecker = (*Client)(nil)

// Client calls the PurgoMalum containsprofanity endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a PurgoMalum client for the given base URL,
// e.g. "https://www.purgomalum.com".
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

// ContainsProfanity reports whether the given text contains profanity.
// Service failures are returned as errors, never as a clean verdict.
func (c *Client) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	endpoint := c.baseURL + "/service/containsprofanity?text=" + url.QueryEscape(text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build profanity request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("call profanity service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("profanity service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read profanity response: %w", err)
	}

	verdict, err := strconv.ParseBool(strings.TrimSpace(string(body)))
	if err != nil {
		return false, fmt.Errorf("unexpected profanity response %q: %w", string(body), err)
	}
	return verdict, nil
}
