package chat

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is reported by the upstream client when no API key is
// configured. The relay turns it into an explanatory payload instead of an
// HTTP error.
var ErrNotConfigured = errors.New("chat api key not configured")

// Upstream is the hosted chat-completion API.
type Upstream interface {
	CreateCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (json.RawMessage, error)
}

// Service relays chat requests and absorbs every failure into a payload the
// browser can render as an assistant message. Relay never fails from the
// caller's perspective.
type Service interface {
	Relay(ctx context.Context, messages []openai.ChatCompletionMessage) json.RawMessage
}

type service struct {
	upstream Upstream
	log      zerolog.Logger
}

// NewService creates the chat relay service.
func NewService(upstream Upstream, log zerolog.Logger) Service {
	return &service{
		upstream: upstream,
		log:      log.With().Str("component", "chat-service").Logger(),
	}
}

func (s *service) Relay(ctx context.Context, messages []openai.ChatCompletionMessage) json.RawMessage {
	payload, err := s.upstream.CreateCompletion(ctx, messages)
	if err == nil {
		return payload
	}
	if errors.Is(err, ErrNotConfigured) {
		s.log.Warn().Msg("chat relay called without configured key")
		return SyntheticPayload("**Error:** GROQ_API_KEY not configured.")
	}
	s.log.Error().Err(err).Msg("chat relay failed")
	return SyntheticPayload("**System Error:** " + err.Error())
}
