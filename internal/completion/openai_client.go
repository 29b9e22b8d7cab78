// Package completion talks to OpenAI compatible chat completion APIs.
package completion

import (
	"context"
	"errors"
	"io"
	"net/http"

	"channa-relay/config"
	"channa-relay/internal/services"
	relay_errors "channa-relay/pkg/errors"

	"github.com/sashabaranov/go-openai"
)

const providerName = "openai"

type Client struct {
	client *openai.Client
}

func NewClient(cfg config.CompletionConfig) *Client {
	return NewClientWithHTTP(cfg, nil)
}

// NewClientWithHTTP lets callers supply the transport, e.g. in tests.
func NewClientWithHTTP(cfg config.CompletionConfig, httpClient *http.Client) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		clientCfg.HTTPClient = httpClient
	}
	return &Client{client: openai.NewClientWithConfig(clientCfg)}
}

func (c *Client) StreamChat(ctx context.Context, req services.CompletionRequest) (services.CompletionStream, error) {
	openaiReq := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Message,
			},
		},
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Stream:      true,
	}

	s, err := c.client.CreateChatCompletionStream(ctx, openaiReq)
	if err != nil {
		return nil, classify(err)
	}

	return &chatStream{stream: s}, nil
}

type chatStream struct {
	stream *openai.ChatCompletionStream
}

// Recv returns the next delta. Chunks without choices carry usage only and
// come back as an empty delta.
func (s *chatStream) Recv() (string, error) {
	res, err := s.stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", classify(err)
	}
	if len(res.Choices) == 0 {
		return "", nil
	}
	return res.Choices[0].Delta.Content, nil
}

func (s *chatStream) Close() error {
	return s.stream.Close()
}

func classify(err error) error {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	if errors.As(err, &apiErr) || errors.As(err, &reqErr) {
		return relay_errors.Rejected(providerName, err)
	}
	return relay_errors.Unavailable(providerName, err)
}
