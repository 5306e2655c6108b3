package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.sendgrid.com",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests against a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Send submits one HTML email through the v3 mail API. SendGrid answers
// 202 when the message is accepted for delivery; anything else is a
// rejection.
func (c *Client) Send(ctx context.Context, input SendInput) error {
	if c.apiKey == "" {
		return fmt.Errorf("sendgrid: API key not configured")
	}

	payload := mailRequest{
		Personalizations: []personalization{
			{To: []address{{Email: input.To}}},
		},
		From:    address{Email: input.From, Name: input.FromName},
		Subject: input.Subject,
		Content: []content{
			{Type: "text/html", Value: input.HTMLBody},
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v3/mail/send", bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid rejected the message (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
