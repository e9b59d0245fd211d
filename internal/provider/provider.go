// Package provider sends assembled prompts to an external chat-completion
// endpoint. The engine itself never runs inference; this is its only outward
// dependency.
package provider

// #region imports
import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/driftlab/stance-engine/internal/trigger"
)

// #endregion

// #region completer

// Request carries everything a completion needs for one turn.
type Request struct {
	System  string
	History []trigger.Message
	Message string
}

// Completer produces a response for one turn. Implementations must respect
// ctx cancellation.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// #endregion completer

// #region http-client

// HTTPClient talks to an Ollama-style /api/chat endpoint.
type HTTPClient struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewHTTPClient creates a completion client with a bounded request timeout.
func NewHTTPClient(endpoint, model string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
	Error   string      `json:"error,omitempty"`
}

// Complete posts the system prompt, prior turns, and current message as one
// chat request and returns the model's reply text.
func (c *HTTPClient) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]chatMessage, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	for _, m := range req.History {
		messages = append(messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Message})

	body, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion error %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if chatResp.Error != "" {
		return "", fmt.Errorf("completion error: %s", chatResp.Error)
	}
	return chatResp.Message.Content, nil
}

// #endregion http-client
