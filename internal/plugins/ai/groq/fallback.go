package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/smartmcq/mcqgen/internal/log"
	"github.com/smartmcq/mcqgen/internal/plugins/ai"
)

// requestTimeout bounds the degraded transport path. One shot, no retry.
const requestTimeout = 60 * time.Second

// HTTPClient posts directly to the chat completions endpoint without
// the SDK. It exists for environments where the SDK transport is not
// wanted, and mirrors its request/response shapes.
type HTTPClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewHTTPClient builds the degraded-path client. An empty baseURL
// selects the Groq API.
func NewHTTPClient(apiKey, baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

func (c *HTTPClient) Name() string { return "groq-http" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *HTTPClient) Send(ctx context.Context, msgs []ai.Message, opts ai.Options) (string, error) {
	req := chatRequest{
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, "encode completion request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build completion request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	log.Debugf(log.Basic, "groq-http: POST %s/chat/completions", c.baseURL)
	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "completion request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("completion request returned %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "decode completion response")
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}
	return parsed.Choices[0].Message.Content, nil
}
