package handlers

import (
	"context"

	"github.com/scouthq/scout-server/internal/domain/search"
)

// SearchHandler handles search-related HTTP requests.
type SearchHandler struct {
	service search.Service
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service search.Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search aggregates results for the query and page.
func (h *SearchHandler) Search(ctx context.Context, query string, page int) []search.Result {
	return h.service.Search(ctx, query, page)
}
