package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const detailFields = "name,formatted_address,website,formatted_phone_number"

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/place",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests against a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Search runs a text search for "<category> in <location>" and resolves each
// hit to its details (name, address, phone, website). Any failure here is
// fatal to the caller's run: auth, quota and network errors all propagate.
func (c *Client) Search(ctx context.Context, category, location string, limit int) ([]Place, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("places: API key not configured")
	}

	query := fmt.Sprintf("%s in %s", category, location)
	searchURL := fmt.Sprintf("%s/textsearch/json?query=%s&key=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	var search searchResponse
	if err := c.get(ctx, searchURL, &search); err != nil {
		return nil, err
	}
	if err := checkStatus(search.Status, search.ErrorMessage); err != nil {
		return nil, err
	}

	places := make([]Place, 0, limit)
	for _, result := range search.Results {
		if len(places) >= limit {
			break
		}

		detail, err := c.details(ctx, result.PlaceID)
		if err != nil {
			return nil, err
		}

		places = append(places, *detail)
	}

	return places, nil
}

func (c *Client) details(ctx context.Context, placeID string) (*Place, error) {
	detailsURL := fmt.Sprintf("%s/details/json?place_id=%s&fields=%s&key=%s",
		c.baseURL, url.QueryEscape(placeID), url.QueryEscape(detailFields), url.QueryEscape(c.apiKey))

	var details detailsResponse
	if err := c.get(ctx, detailsURL, &details); err != nil {
		return nil, err
	}
	if err := checkStatus(details.Status, details.ErrorMessage); err != nil {
		return nil, err
	}

	return &Place{
		Name:    details.Result.Name,
		Address: details.Result.FormattedAddress,
		Phone:   details.Result.FormattedPhoneNumber,
		Website: details.Result.Website,
	}, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("places returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}

	return nil
}

// checkStatus maps the API-level status field. ZERO_RESULTS is a valid
// empty answer, everything else besides OK is an error.
func checkStatus(status, message string) error {
	if status == "OK" || status == "ZERO_RESULTS" {
		return nil
	}
	if message != "" {
		return fmt.Errorf("places API error %s: %s", status, message)
	}
	return fmt.Errorf("places API error %s", status)
}
