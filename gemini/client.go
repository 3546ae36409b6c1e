package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minios-linux/mdtranslate/clierr"
)

// Client issues generateContent requests. One invocation makes exactly one
// outbound call: no retry, no caching, no streaming.
type Client struct {
	apiKey string
	http   *http.Client
}

// New builds a client. The credential is validated here, before any
// request work happens: a blank key fails fast without touching the
// network.
func New(apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &clierr.MissingCredential{}
	}
	return &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}, nil
}

// ---------------------------------------------------------------------------
// Wire types (generateContent request/response)
// ---------------------------------------------------------------------------

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Translate sends the prompt as the sole user message and returns the
// trimmed concatenation of every text part of every candidate, in response
// order. A successful response with no usable text is a failure, never a
// silent pass-through of the input.
func (c *Client) Translate(ctx context.Context, endpoint, userPrompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: userPrompt}}},
		},
		GenerationConfig: generationConfig{Temperature: 0.3},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("User-Agent", "mdtranslate/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &clierr.RemoteService{Status: resp.StatusCode, Body: string(respBody)}
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	var b strings.Builder
	for _, cand := range gr.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", &clierr.EmptyTranslation{}
	}
	return text, nil
}
