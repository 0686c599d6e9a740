package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/scouthq/scout-server/internal/config"
	"github.com/scouthq/scout-server/internal/domain/chat"
	"github.com/scouthq/scout-server/internal/domain/search"
	"github.com/scouthq/scout-server/internal/infrastructure/ddglite"
	"github.com/scouthq/scout-server/internal/infrastructure/googlesearch"
	"github.com/scouthq/scout-server/internal/infrastructure/groq"
	"github.com/scouthq/scout-server/internal/infrastructure/logger"
	_ "github.com/scouthq/scout-server/internal/infrastructure/metrics" // Register Prometheus metrics
	"github.com/scouthq/scout-server/internal/interfaces/httpserver"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the application (blocks until context cancelled).
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)
	logKeyStatus(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize backend clients
	googleClient := googlesearch.NewClient(cfg, log)
	ddgClient := ddglite.NewClient(cfg, log)
	groqClient := groq.NewClient(cfg, log)

	// Initialize domain services
	searchService := search.NewService(googleClient, ddgClient, log)
	chatService := chat.NewService(groqClient, log)

	// Initialize HTTP server
	httpServer := httpserver.New(cfg, log, searchService, chatService)

	app := NewApplication(httpServer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// logKeyStatus reports which credentials are present without revealing them.
// Missing keys are not fatal; the affected endpoint degrades instead.
func logKeyStatus(cfg *config.Config, log zerolog.Logger) {
	log.Info().
		Str("groq_key", keyStatus(cfg.HasGroqKey())).
		Str("google_key", keyStatus(strings.TrimSpace(cfg.GoogleAPIKey) != "")).
		Str("google_cx", keyStatus(strings.TrimSpace(cfg.GoogleCXID) != "")).
		Msg("startup diagnostics")

	// The structured client needs both credentials; either one missing
	// leaves /search on the scrape fallback alone.
	if !cfg.HasGoogleKeys() {
		log.Warn().Msg("google credentials incomplete, structured search disabled")
	}
}

func keyStatus(present bool) string {
	if present {
		return "ok"
	}
	return "missing"
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
