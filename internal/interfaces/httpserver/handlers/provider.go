package handlers

import (
	"github.com/google/wire"

	"github.com/scouthq/scout-server/internal/domain/chat"
	"github.com/scouthq/scout-server/internal/domain/search"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Search *SearchHandler
	Chat   *ChatHandler
}

// NewProvider creates a new handler provider.
func NewProvider(searchService search.Service, chatService chat.Service) *Provider {
	return &Provider{
		Search: NewSearchHandler(searchService),
		Chat:   NewChatHandler(chatService),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewSearchHandler,
	NewChatHandler,
	NewProvider,
)
