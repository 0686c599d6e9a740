//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/scouthq/scout-server/internal/config"
	"github.com/scouthq/scout-server/internal/domain/chat"
	"github.com/scouthq/scout-server/internal/domain/search"
	"github.com/scouthq/scout-server/internal/infrastructure/ddglite"
	"github.com/scouthq/scout-server/internal/infrastructure/googlesearch"
	"github.com/scouthq/scout-server/internal/infrastructure/groq"
	"github.com/scouthq/scout-server/internal/interfaces/httpserver"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	ProvideStructuredClient,
	ProvideScrapeClient,
	ProvideChatUpstream,

	// Domain providers
	search.NewService,
	chat.NewService,

	// Interface providers
	httpserver.New,

	// Application
	NewApplication,
)

// ProvideStructuredClient provides the paid structured search backend.
func ProvideStructuredClient(cfg *config.Config, log zerolog.Logger) search.StructuredClient {
	return googlesearch.NewClient(cfg, log)
}

// ProvideScrapeClient provides the scraping fallback backend.
func ProvideScrapeClient(cfg *config.Config, log zerolog.Logger) search.ScrapeClient {
	return ddglite.NewClient(cfg, log)
}

// ProvideChatUpstream provides the hosted chat completion client.
func ProvideChatUpstream(cfg *config.Config, log zerolog.Logger) chat.Upstream {
	return groq.NewClient(cfg, log)
}

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(cfg *config.Config, log zerolog.Logger) (*Application, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
