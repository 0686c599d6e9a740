package ddglite

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/scouthq/scout-server/internal/config"
	"github.com/scouthq/scout-server/internal/domain/search"
	"github.com/scouthq/scout-server/internal/infrastructure/metrics"
)

const (
	// DDG Lite serves 20 results per page; 's' is the skip offset.
	pageSize   = 20
	maxResults = 15

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client scrapes the DuckDuckGo Lite results page. It is the best-effort
// fallback behind the structured client and therefore never reports an
// error: every failure collapses to an empty list.
type Client struct {
	http     *resty.Client
	endpoint string
	log      zerolog.Logger
}

var _ search.ScrapeClient = (*Client)(nil)

// NewClient wires an HTTP client with browser-like headers to avoid basic
// bot detection.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5").
		SetTimeout(cfg.DDGTimeout).
		SetRetryCount(0)

	return &Client{
		http:     httpClient,
		endpoint: cfg.DDGEndpoint,
		log:      log.With().Str("component", "ddg-lite").Logger(),
	}
}

// Search posts the form-encoded query and parses the result table.
func (c *Client) Search(ctx context.Context, query string, page int) []search.Result {
	skip := (page - 1) * pageSize

	startTime := time.Now()
	status := "success"
	defer func() {
		metrics.RecordBackendCall("duckduckgo", status, time.Since(startTime).Seconds())
	}()

	c.log.Info().Str("query", query).Int("skip", skip).Msg("fetching ddg lite results")

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"q": query,
			"s": strconv.Itoa(skip),
		}).
		Post(c.endpoint)
	if err != nil {
		status = "error"
		c.log.Error().Err(err).Msg("ddg lite request failed")
		return []search.Result{}
	}
	if resp.IsError() {
		status = "error"
		c.log.Error().Int("status", resp.StatusCode()).Msg("ddg lite returned error status")
		return []search.Result{}
	}

	results, err := parseResults(bytes.NewReader(resp.Body()))
	if err != nil {
		status = "parse_error"
		c.log.Error().Err(err).Msg("ddg lite parse failed")
		return []search.Result{}
	}

	c.log.Info().Int("result_count", len(results)).Msg("ddg lite results parsed")
	return results
}

// parseResults walks the result table rows. A row carrying an a.result-link
// starts (or replaces) a pending result; a later td.result-snippet row
// completes the pending result and appends it. A snippet row with no pending
// link is ignored, and a dangling link with no snippet after it is dropped.
// Self-referential duckduckgo.com links are filtered out before the cap is
// applied.
func parseResults(r io.Reader) ([]search.Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var (
		parsed  []search.Result
		pending *search.Result
	)
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if link := row.Find("a.result-link").First(); link.Length() > 0 {
			pending = &search.Result{
				Title:  strings.TrimSpace(link.Text()),
				URL:    link.AttrOr("href", ""),
				Source: search.SourceDuckDuckGo,
			}
			return
		}
		if snippet := row.Find("td.result-snippet").First(); snippet.Length() > 0 && pending != nil {
			pending.Snippet = strings.TrimSpace(snippet.Text())
			parsed = append(parsed, *pending)
			pending = nil
		}
	})

	clean := make([]search.Result, 0, len(parsed))
	for _, res := range parsed {
		if strings.Contains(res.URL, "duckduckgo.com") {
			continue
		}
		clean = append(clean, res)
	}
	if len(clean) > maxResults {
		clean = clean[:maxResults]
	}
	return clean, nil
}
