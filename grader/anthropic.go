// CLAUDE:SUMMARY Anthropic Messages API grader: prompt + screenshot image blocks, JSON verdict parsing.
package grader

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hazyhaar/shopscan/score"
)

const (
	anthropicAPIURL     = "https://api.anthropic.com/v1/messages"
	anthropicModel      = "claude-sonnet-4-5"
	anthropicAPIVersion = "2023-06-01"
	anthropicMaxTokens  = 2048

	// maxScreenshots bounds the image payload per request.
	maxScreenshots = 2
)

// Anthropic grades pages with the Anthropic Messages API, attaching the
// page screenshots as image blocks.
type Anthropic struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewAnthropic creates the grader from the ANTHROPIC_API_KEY env var.
func NewAnthropic() (*Anthropic, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("grader: ANTHROPIC_API_KEY not set")
	}
	return &Anthropic{
		apiKey: key,
		apiURL: anthropicAPIURL,
		model:  anthropicModel,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Anthropic) Name() string { return "anthropic" }

type anthropicContent struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Grade sends the prompt plus up to maxScreenshots image blocks and parses
// the JSON verdict.
func (a *Anthropic) Grade(ctx context.Context, in Input) (score.GraderOutput, error) {
	content := []anthropicContent{{Type: "text", Text: buildPrompt(in)}}
	for i, shot := range in.Screenshots {
		if i >= maxScreenshots {
			break
		}
		content = append(content, anthropicContent{
			Type: "image",
			Source: &anthropicSource{
				Type:      "base64",
				MediaType: "image/png",
				Data:      base64.StdEncoding.EncodeToString(shot),
			},
		})
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     a.model,
		MaxTokens: anthropicMaxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: content}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrGradingFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrGradingFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", a.apiKey)
	req.Header.Set("Anthropic-Version", anthropicAPIVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGradingFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrGradingFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API returned %d: %s", ErrGradingFailed, resp.StatusCode, respBody)
	}

	var result anthropicResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrGradingFailed, err)
	}
	for _, block := range result.Content {
		if block.Type == "text" {
			return parseOutput(block.Text)
		}
	}
	return nil, fmt.Errorf("%w: response had no text block", ErrGradingFailed)
}
