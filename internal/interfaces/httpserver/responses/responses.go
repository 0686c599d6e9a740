// Package responses contains HTTP response DTOs.
package responses

import "github.com/scouthq/scout-server/internal/domain/search"

// SearchResponse wraps the aggregated result list.
type SearchResponse struct {
	Results []search.Result `json:"results"`
}
