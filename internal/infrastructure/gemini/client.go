package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"gastos/internal/domain/interpret"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Client calls the Gemini API to interpret transaction text and review
// spending periods. It implements interpret.Interpreter.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to init gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Interpret sends the user's text plus the existing wallets and categories
// as matching context and parses the proposal the model answers with.
func (c *Client) Interpret(ctx context.Context, text string, wallets []interpret.WalletRef, categories []interpret.CategoryRef) (*interpret.Proposal, error) {
	var b strings.Builder
	b.WriteString(transactionPrompt)
	fmt.Fprintf(&b, "\n\nThe user says: %q\n\nEXISTING WALLETS:\n", text)
	if len(wallets) == 0 {
		b.WriteString("(none)\n")
	}
	for _, w := range wallets {
		fmt.Fprintf(&b, "- ID:%s %q %s\n", w.ID, w.Name, w.Emoji)
	}
	b.WriteString("\nEXISTING CATEGORIES:\n")
	if len(categories) == 0 {
		b.WriteString("(none)\n")
	}
	for _, cat := range categories {
		fmt.Fprintf(&b, "- ID:%s %q %s (%s)\n", cat.ID, cat.Name, cat.Emoji, cat.Type)
	}

	raw, err := c.generate(ctx, b.String())
	if err != nil {
		return nil, err
	}

	var proposal interpret.Proposal
	if err := json.Unmarshal([]byte(stripFences(raw)), &proposal); err != nil {
		return nil, fmt.Errorf("%w: unparseable model output: %v", interpret.ErrInterpreter, err)
	}

	proposal.Normalize(text)
	return &proposal, nil
}

// Review produces a plain-text analysis of the rendered period data.
func (c *Client) Review(ctx context.Context, periodContext string) (string, error) {
	raw, err := c.generate(ctx, reviewPrompt+"\n\n"+periodContext)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty model response", interpret.ErrInterpreter)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	return text.String(), nil
}

// stripFences removes the markdown code fences the model tends to wrap JSON
// in despite being told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
