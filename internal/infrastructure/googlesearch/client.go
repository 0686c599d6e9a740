package googlesearch

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/scouthq/scout-server/internal/config"
	"github.com/scouthq/scout-server/internal/domain/search"
	"github.com/scouthq/scout-server/internal/infrastructure/metrics"
)

// The Custom Search API serves fixed pages of 10.
const pageSize = 10

// Client queries the Google Custom Search JSON API.
type Client struct {
	http     *resty.Client
	endpoint string
	apiKey   string
	cxID     string
	log      zerolog.Logger
}

var _ search.StructuredClient = (*Client)(nil)

// NewClient wires an HTTP client for the Custom Search API.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetHeader("User-Agent", "scout-server/1.0").
		SetTimeout(cfg.GoogleTimeout).
		SetRetryCount(0)

	return &Client{
		http:     httpClient,
		endpoint: cfg.GoogleEndpoint,
		apiKey:   cfg.GoogleAPIKey,
		cxID:     cfg.GoogleCXID,
		log:      log.With().Str("component", "google-search").Logger(),
	}
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Search maps the 1-based page to the API's 'start' offset and returns
// normalized results. Missing credentials, rate limiting, any non-200
// status, and network failures all surface as search.ErrBackendUnavailable;
// a 200 with zero items is an empty list, not an error.
func (c *Client) Search(ctx context.Context, query string, page int) ([]search.Result, error) {
	if !c.hasCredentials() {
		return nil, fmt.Errorf("google credentials not configured: %w", search.ErrBackendUnavailable)
	}

	// 'start' is a 1-based index: page 1 = 1, page 2 = 11, ...
	start := (page-1)*pageSize + 1

	startTime := time.Now()
	status := "success"
	defer func() {
		metrics.RecordBackendCall("google", status, time.Since(startTime).Seconds())
	}()

	c.log.Info().Str("query", query).Int("start", start).Msg("fetching google results")

	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":   c.apiKey,
			"cx":    c.cxID,
			"q":     query,
			"start": strconv.Itoa(start),
			"num":   strconv.Itoa(pageSize),
		}).
		SetResult(&body).
		Get(c.endpoint)
	if err != nil {
		status = "error"
		c.log.Error().Err(err).Msg("google connection failed")
		return nil, fmt.Errorf("query google search api: %w", search.ErrBackendUnavailable)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		results := make([]search.Result, 0, len(body.Items))
		for _, item := range body.Items {
			results = append(results, search.Result{
				Title:   item.Title,
				URL:     item.Link,
				Snippet: item.Snippet,
				Source:  search.SourceGoogle,
			})
		}
		c.log.Info().Int("result_count", len(results)).Msg("google results fetched")
		return results, nil
	case http.StatusTooManyRequests:
		status = "quota_exceeded"
		c.log.Warn().Msg("google api quota exceeded")
		return nil, fmt.Errorf("google api quota exceeded: %w", search.ErrBackendUnavailable)
	default:
		status = "error"
		c.log.Error().Int("status", resp.StatusCode()).Msg("google api error")
		return nil, fmt.Errorf("google api status %d: %w", resp.StatusCode(), search.ErrBackendUnavailable)
	}
}

func (c *Client) hasCredentials() bool {
	return strings.TrimSpace(c.apiKey) != "" && strings.TrimSpace(c.cxID) != ""
}
