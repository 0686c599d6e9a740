package handlers

import (
	"context"
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"

	"github.com/scouthq/scout-server/internal/domain/chat"
)

// ChatHandler handles chat-relay HTTP requests.
type ChatHandler struct {
	service chat.Service
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// Relay forwards the message list to the upstream chat API.
func (h *ChatHandler) Relay(ctx context.Context, messages []openai.ChatCompletionMessage) json.RawMessage {
	return h.service.Relay(ctx, messages)
}
