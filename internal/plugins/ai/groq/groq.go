// Package groq talks to the Groq chat completions API, which is
// OpenAI-compatible. The primary client rides the official OpenAI SDK;
// a raw HTTP transport exists as a degraded path.
package groq

import (
	"context"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"

	"github.com/smartmcq/mcqgen/internal/log"
	"github.com/smartmcq/mcqgen/internal/plugins/ai"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"
)

// Client sends completion requests through the OpenAI SDK pointed at
// the Groq base URL.
type Client struct {
	client openai.Client
}

// NewClient builds a Client. An empty baseURL selects the Groq API.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
	}
}

func (c *Client) Name() string { return "groq" }

func (c *Client) Send(ctx context.Context, msgs []ai.Message, opts ai.Options) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(opts.Model),
	}
	for _, m := range msgs {
		switch m.Role {
		case ai.RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}

	log.Debugf(log.Basic, "groq: completion request, model=%s", opts.Model)
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "groq completion request")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}
	content := resp.Choices[0].Message.Content
	log.Debugf(log.Wire, "groq: response content:\n%s", content)
	return content, nil
}
