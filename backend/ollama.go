package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rescanvas/assist/log"
)

const defaultOllamaEndpoint = "http://localhost:11434"

// OllamaClient calls a locally reachable Ollama server. It is the Secondary
// backend, attempted only after the Primary fails.
type OllamaClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewOllamaClient creates the local fallback client.
func NewOllamaClient(endpoint string, timeout time.Duration) *OllamaClient {
	if endpoint == "" {
		endpoint = defaultOllamaEndpoint
	}
	return &OllamaClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *OllamaClient) Name() string { return "ollama" }

type ollamaRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ollamaResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Generate sends the messages to the local model and returns its reply.
func (c *OllamaClient) Generate(ctx context.Context, messages []Message, opts Options) (string, error) {
	body := ollamaRequest{
		Model:    opts.Model,
		Messages: messages,
		Stream:   false,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/api/chat", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: connection failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: API error %d: %s", resp.StatusCode, string(respBody))
	}

	var result ollamaResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("ollama: parse response: %w", err)
	}
	if result.Message.Content == "" {
		return "", fmt.Errorf("ollama: empty response")
	}

	log.Trace.Printf("ollama: received %d chars", len(result.Message.Content))
	return result.Message.Content, nil
}
