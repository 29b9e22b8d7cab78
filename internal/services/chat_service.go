package services

import (
	"context"
	"errors"
	"io"

	"channa-relay/config"
	"channa-relay/pkg/logger"
)

// Sampling parameters sent with every chat completion.
const (
	chatTemperature float32 = 0.6
	chatTopP        float32 = 0.7
	chatMaxTokens           = 4096
)

type CompletionRequest struct {
	Model        string
	SystemPrompt string
	Message      string
	Temperature  float32
	TopP         float32
	MaxTokens    int
}

// CompletionStream yields text deltas in order. Recv returns io.EOF once
// the provider has finished; any other error ends the stream.
type CompletionStream interface {
	Recv() (string, error)
	Close() error
}

type CompletionProvider interface {
	StreamChat(ctx context.Context, req CompletionRequest) (CompletionStream, error)
}

type ChatService struct {
	provider CompletionProvider
	model    string
	prompt   string
	logger   *logger.Logger
}

func NewChatService(provider CompletionProvider, cfg config.CompletionConfig, l *logger.Logger) *ChatService {
	if l == nil {
		l = logger.Nop()
	}
	return &ChatService{
		provider: provider,
		model:    cfg.Model,
		prompt:   cfg.Prompt,
		logger:   l,
	}
}

func (s *ChatService) request(message string) CompletionRequest {
	return CompletionRequest{
		Model:        s.model,
		SystemPrompt: s.prompt,
		Message:      message,
		Temperature:  chatTemperature,
		TopP:         chatTopP,
		MaxTokens:    chatMaxTokens,
	}
}

// Stream relays the completion for message into w as it arrives. Provider
// failures end up as text in w, never as the returned error; the returned
// error only reports that w stopped accepting writes.
func (s *ChatService) Stream(ctx context.Context, message string, w io.Writer) error {
	relay := NewRelay(w)

	stream, err := s.provider.StreamChat(ctx, s.request(message))
	if err != nil {
		return s.finish(ctx, relay, err)
	}
	defer stream.Close()

	for {
		delta, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return s.finish(ctx, relay, nil)
		}
		if err != nil {
			return s.finish(ctx, relay, err)
		}
		if err := relay.Forward(delta); err != nil {
			s.logger.WarnCtx(ctx, "client stopped reading chat stream", err)
			return err
		}
	}
}

func (s *ChatService) finish(ctx context.Context, relay *Relay, providerErr error) error {
	if providerErr != nil {
		if ctx.Err() != nil {
			s.logger.WarnCtx(ctx, "completion stream cancelled", providerErr)
		} else {
			s.logger.ErrorCtx(ctx, "completion stream failed", providerErr)
		}
		relay.Fail(providerErr)
	}
	if err := relay.Finish(); err != nil {
		s.logger.WarnCtx(ctx, "client stopped reading chat stream", err)
		return err
	}
	return nil
}
