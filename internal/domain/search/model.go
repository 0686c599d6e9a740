package search

import "errors"

// ErrBackendUnavailable is the sentinel reported by the structured client
// when its backend cannot be used at all: missing credentials, network
// failure, rate limiting, or a non-200 response. It is distinct from an
// empty result list, which means the backend was reached and simply had
// nothing to return.
var ErrBackendUnavailable = errors.New("search backend unavailable")

// Result sources as rendered to the browser client.
const (
	SourceGoogle     = "Google"
	SourceDuckDuckGo = "DuckDuckGo"
	SourceSystem     = "System"
)

// Result is the normalized shape every backend record is converted to.
// Immutable once constructed; serialized straight into the response.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// NoResultsRecord is the synthetic record substituted when both backends
// come back empty on the first page.
func NoResultsRecord() Result {
	return Result{
		Title:   "No Results Found",
		URL:     "#",
		Snippet: "Both Google and DuckDuckGo failed to return results.",
		Source:  SourceSystem,
	}
}
