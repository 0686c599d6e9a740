package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/scouthq/scout-server/internal/config"
	"github.com/scouthq/scout-server/internal/domain/chat"
	"github.com/scouthq/scout-server/internal/infrastructure/metrics"
)

// temperature is fixed for every relayed request; clients cannot override it.
const temperature = 0.7

// Client posts chat completions to the Groq OpenAI-compatible API.
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
	model   string
	log     zerolog.Logger
}

var _ chat.Upstream = (*Client)(nil)

// NewClient wires an HTTP client for the chat completion endpoint.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetHeader("User-Agent", "scout-server/1.0").
		SetTimeout(cfg.ChatTimeout).
		SetRetryCount(0)

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.GroqBaseURL), "/"),
		apiKey:  cfg.GroqAPIKey,
		model:   cfg.ChatModel,
		log:     log.With().Str("component", "groq-client").Logger(),
	}
}

// CreateCompletion forwards the messages with the configured model and the
// fixed temperature. Whatever JSON the upstream answers with is returned
// as-is, regardless of status code, so the browser sees exactly what the
// API said. Only transport failures and non-JSON bodies are errors.
func (c *Client) CreateCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (json.RawMessage, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, chat.ErrNotConfigured
	}

	startTime := time.Now()
	status := "success"
	defer func() {
		metrics.RecordBackendCall("groq", status, time.Since(startTime).Seconds())
	}()

	request := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		status = "error"
		c.log.Error().Err(err).Msg("groq request failed")
		return nil, fmt.Errorf("post chat completion: %w", err)
	}

	body := resp.Body()
	if !json.Valid(body) {
		status = "error"
		c.log.Error().Int("status", resp.StatusCode()).Msg("groq returned a non-JSON body")
		return nil, fmt.Errorf("groq returned a non-JSON body (status %d)", resp.StatusCode())
	}
	if resp.IsError() {
		// Error bodies are still JSON the browser can render; relay them
		// like the success path.
		status = "upstream_error"
		c.log.Warn().Int("status", resp.StatusCode()).Msg("groq returned an error status")
	}
	return json.RawMessage(body), nil
}
