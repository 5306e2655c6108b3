package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini SDK with the fixed outreach persona. The model is
// asked for JSON output so the response parses without prose cleanup.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

func (c *Client) GenerateOutreach(ctx context.Context, input OutreachInput) (*OutreachOutput, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(input)))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	var out OutreachOutput
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &out); err != nil {
		return nil, fmt.Errorf("gemini returned malformed JSON: %w", err)
	}

	if out.Subject == "" || out.EmailBody == "" || out.LinkedInDM == "" {
		return nil, fmt.Errorf("gemini response is missing required fields")
	}

	return &out, nil
}

func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func buildPrompt(input OutreachInput) string {
	profile, _ := json.MarshalIndent(input, "", "  ")

	return fmt.Sprintf(`You are "Alex", a friendly and professional business development assistant for a marketing agency called "GrowthBoost".
Your goal is to write a short, compelling, highly personalized outreach message to the business described below.

YOUR GUIDELINES:
1. Personalize: you MUST reference at least one specific detail from the profile (the business name, what they do, or their location).
2. Lead with a plausible problem or challenge a business in their category typically faces.
3. Concise: keep the email body under 90 words, written at an easy reading level. Shorter is better.
4. Soft CTA: end with exactly one low-pressure question. Ask if they are open to exploring ideas, never to book a call.
5. Output format: respond with a single valid JSON object with exactly three keys: "subject", "email_body" and "linkedin_dm". The linkedin_dm is a shorter variant suited to a LinkedIn direct message.

Here is the profile of the business to contact:

%s

Now generate the JSON output based on the profile and your guidelines.`, string(profile))
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("gemini returned no text parts")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock strips markdown fences; models wrap JSON in ```json blocks
// even when told not to.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
