package search

import (
	"context"

	"github.com/rs/zerolog"
)

// StructuredClient is the paid search API. A nil error with zero results
// means the backend was reached and had nothing; an error wrapping
// ErrBackendUnavailable means it could not be used for this request.
type StructuredClient interface {
	Search(ctx context.Context, query string, page int) ([]Result, error)
}

// ScrapeClient is the best-effort HTML fallback. It never reports failure;
// anything that goes wrong collapses to an empty list.
type ScrapeClient interface {
	Search(ctx context.Context, query string, page int) []Result
}

// Service defines the search aggregation operation exposed to the HTTP layer.
type Service interface {
	Search(ctx context.Context, query string, page int) []Result
}

type service struct {
	structured StructuredClient
	scraper    ScrapeClient
	log        zerolog.Logger
}

// NewService creates the search aggregation service.
func NewService(structured StructuredClient, scraper ScrapeClient, log zerolog.Logger) Service {
	return &service{
		structured: structured,
		scraper:    scraper,
		log:        log.With().Str("component", "search-service").Logger(),
	}
}

type structuredOutcome struct {
	results []Result
	err     error
}

// Search runs both backends concurrently for the same query and page and
// applies the priority policy. The structured outcome is always inspected
// first: a non-empty list from it is final and the scrape outcome is dropped
// unread (the scrape call still runs to completion on its own; no
// cancellation is sent). A sentinel or an empty structured list hands the
// decision to the scraper. When the chosen list is empty and page is 1, a
// single synthetic record takes its place; deeper pages stay empty so the
// caller can detect end-of-results.
func (s *service) Search(ctx context.Context, query string, page int) []Result {
	structuredCh := make(chan structuredOutcome, 1)
	scrapeCh := make(chan []Result, 1)

	go func() {
		results, err := s.structured.Search(ctx, query, page)
		structuredCh <- structuredOutcome{results: results, err: err}
	}()
	go func() {
		// The scrape call must not be torn down when the caller's request
		// context ends; it finishes or times out on its own client deadline.
		scrapeCh <- s.scraper.Search(context.WithoutCancel(ctx), query, page)
	}()

	var final []Result
	outcome := <-structuredCh
	if outcome.err == nil && len(outcome.results) > 0 {
		final = outcome.results
	} else {
		if outcome.err != nil {
			s.log.Info().Err(outcome.err).Str("query", query).Msg("structured search unavailable, using scrape result")
		} else {
			s.log.Info().Str("query", query).Msg("structured search empty, using scrape result")
		}
		final = <-scrapeCh
	}

	if len(final) == 0 && page == 1 {
		final = []Result{NoResultsRecord()}
	}
	if final == nil {
		final = []Result{}
	}
	return final
}
