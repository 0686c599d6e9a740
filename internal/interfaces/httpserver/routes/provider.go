package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scouthq/scout-server/internal/interfaces/httpserver/handlers"
)

// Provider holds the route configuration.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{handlers: handlerProvider}
}

// Register registers all public routes on the engine. The browser client
// calls these paths directly, so they live at the root rather than under a
// version group.
func (p *Provider) Register(engine *gin.Engine) {
	RegisterSearchRoutes(engine, p.handlers.Search)
	RegisterChatRoutes(engine, p.handlers.Chat)
}
