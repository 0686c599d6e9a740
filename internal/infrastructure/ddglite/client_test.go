package ddglite

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/scouthq/scout-server/internal/config"
	"github.com/scouthq/scout-server/internal/domain/search"
)

func newTestClient(endpoint string) *Client {
	cfg := &config.Config{
		DDGEndpoint: endpoint,
		DDGTimeout:  2 * time.Second,
	}
	return NewClient(cfg, zerolog.Nop())
}

func resultPair(n int, href string) string {
	return fmt.Sprintf(`
		<tr><td>%d.</td><td><a rel="nofollow" href="%s" class="result-link">Title %d</a></td></tr>
		<tr><td>&nbsp;</td><td class="result-snippet">Snippet %d</td></tr>`, n, href, n, n)
}

func resultPage(rows string) string {
	return `<html><body><table border="0">` + rows + `</table></body></html>`
}

func TestParseResults(t *testing.T) {
	page := resultPage(
		resultPair(1, "https://example.com/one") +
			resultPair(2, "https://example.com/two"),
	)

	results, err := parseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Title 1" {
		t.Errorf("Expected trimmed title 'Title 1', got %q", results[0].Title)
	}
	if results[0].URL != "https://example.com/one" {
		t.Errorf("Expected url, got %q", results[0].URL)
	}
	if results[0].Snippet != "Snippet 1" {
		t.Errorf("Expected trimmed snippet 'Snippet 1', got %q", results[0].Snippet)
	}
	if results[0].Source != search.SourceDuckDuckGo {
		t.Errorf("Expected source %q, got %q", search.SourceDuckDuckGo, results[0].Source)
	}
}

func TestParseResults_TrimsWhitespace(t *testing.T) {
	page := resultPage(`
		<tr><td><a href="https://example.com" class="result-link">
			Spaced Title
		</a></td></tr>
		<tr><td class="result-snippet">
			Spaced snippet text.
		</td></tr>`)

	results, err := parseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Spaced Title" {
		t.Errorf("Expected trimmed title, got %q", results[0].Title)
	}
	if results[0].Snippet != "Spaced snippet text." {
		t.Errorf("Expected trimmed snippet, got %q", results[0].Snippet)
	}
}

func TestParseResults_InterveningRows(t *testing.T) {
	// DDG Lite puts the displayed URL in its own row between link and
	// snippet; the parser must carry the pending link across it.
	page := resultPage(`
		<tr><td><a href="https://example.com" class="result-link">Title</a></td></tr>
		<tr><td class="link-text">example.com</td></tr>
		<tr><td class="result-snippet">Snippet</td></tr>`)

	results, err := parseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Snippet != "Snippet" {
		t.Errorf("Expected snippet to complete pending link, got %q", results[0].Snippet)
	}
}

func TestParseResults_NewLinkReplacesPending(t *testing.T) {
	page := resultPage(`
		<tr><td><a href="https://example.com/orphan" class="result-link">Orphan</a></td></tr>
		<tr><td><a href="https://example.com/kept" class="result-link">Kept</a></td></tr>
		<tr><td class="result-snippet">Snippet</td></tr>`)

	results, err := parseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Kept" {
		t.Errorf("Expected second link to replace the pending first, got %q", results[0].Title)
	}
}

func TestParseResults_DanglingLinkDropped(t *testing.T) {
	page := resultPage(
		resultPair(1, "https://example.com/complete") + `
		<tr><td><a href="https://example.com/dangling" class="result-link">Dangling</a></td></tr>`)

	results, err := parseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Title 1" {
		t.Errorf("Expected only the completed pair, got %q", results[0].Title)
	}
}

func TestParseResults_RowWithLinkAndSnippetIsALinkRow(t *testing.T) {
	// When one row carries both classes the link wins; the snippet cell in
	// that row is ignored and a later snippet row completes the result.
	page := resultPage(`
		<tr>
			<td><a href="https://example.com/combo" class="result-link">Combo</a></td>
			<td class="result-snippet">Same row snippet</td>
		</tr>
		<tr><td class="result-snippet">Following snippet</td></tr>`)

	results, err := parseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Combo" {
		t.Errorf("Expected title 'Combo', got %q", results[0].Title)
	}
	if results[0].Snippet != "Following snippet" {
		t.Errorf("Expected the following row's snippet, got %q", results[0].Snippet)
	}
}

func TestParseResults_SnippetWithoutLinkIgnored(t *testing.T) {
	page := resultPage(`
		<tr><td class="result-snippet">Stray snippet</td></tr>` +
		resultPair(1, "https://example.com/one"))

	results, err := parseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Snippet != "Snippet 1" {
		t.Errorf("Expected stray snippet to be ignored, got %q", results[0].Snippet)
	}
}

func TestParseResults_FiltersSelfLinks(t *testing.T) {
	page := resultPage(
		resultPair(1, "https://duckduckgo.com/y.js?ad_domain=example.com") +
			resultPair(2, "https://example.com/real"),
	)

	results, err := parseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result after filtering, got %d", len(results))
	}
	if results[0].URL != "https://example.com/real" {
		t.Errorf("Expected the external link to survive, got %q", results[0].URL)
	}
}

func TestParseResults_CapsAtFifteen(t *testing.T) {
	var rows strings.Builder
	for i := 1; i <= 18; i++ {
		rows.WriteString(resultPair(i, fmt.Sprintf("https://example.com/%d", i)))
	}

	results, err := parseResults(strings.NewReader(resultPage(rows.String())))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 15 {
		t.Errorf("Expected 15 results, got %d", len(results))
	}
}

func TestParseResults_SelfLinksDoNotConsumeCapSlots(t *testing.T) {
	// Filtering happens before the cap: two ad links followed by sixteen
	// real ones must still yield a full fifteen.
	var rows strings.Builder
	rows.WriteString(resultPair(1, "https://duckduckgo.com/y.js?one"))
	rows.WriteString(resultPair(2, "https://duckduckgo.com/y.js?two"))
	for i := 3; i <= 18; i++ {
		rows.WriteString(resultPair(i, fmt.Sprintf("https://example.com/%d", i)))
	}

	results, err := parseResults(strings.NewReader(resultPage(rows.String())))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 15 {
		t.Fatalf("Expected 15 results, got %d", len(results))
	}
	if results[0].Title != "Title 3" {
		t.Errorf("Expected first surviving result to be 'Title 3', got %q", results[0].Title)
	}
}

func TestParseResults_NoResultsTable(t *testing.T) {
	results, err := parseResults(strings.NewReader("<html><body><p>No results.</p></body></html>"))
	if err != nil {
		t.Fatalf("parseResults failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results, got %d", len(results))
	}
	if results == nil {
		t.Error("Expected non-nil empty slice")
	}
}

func TestClient_Search_FormRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
			t.Errorf("Expected form-encoded request, got %q", ct)
		}
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla/5.0") {
			t.Errorf("Expected browser-like user agent, got %q", ua)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Failed to parse form: %v", err)
		}
		if got := r.PostFormValue("q"); got != "golang" {
			t.Errorf("Expected q 'golang', got %q", got)
		}
		if got := r.PostFormValue("s"); got != "0" {
			t.Errorf("Expected s '0', got %q", got)
		}

		fmt.Fprint(w, resultPage(resultPair(1, "https://example.com/one")))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	results := client.Search(context.Background(), "golang", 1)

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Source != search.SourceDuckDuckGo {
		t.Errorf("Expected source %q, got %q", search.SourceDuckDuckGo, results[0].Source)
	}
}

func TestClient_Search_SkipOffset(t *testing.T) {
	tests := []struct {
		page     int
		wantSkip string
	}{
		{1, "0"},
		{2, "20"},
		{4, "60"},
	}

	var gotSkip string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotSkip = r.PostFormValue("s")
		fmt.Fprint(w, resultPage(""))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	for _, tt := range tests {
		client.Search(context.Background(), "golang", tt.page)
		if gotSkip != tt.wantSkip {
			t.Errorf("Page %d: expected s=%q, got %q", tt.page, tt.wantSkip, gotSkip)
		}
	}
}

func TestClient_Search_ErrorStatusReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	results := client.Search(context.Background(), "golang", 1)

	if results == nil {
		t.Fatal("Expected non-nil empty slice on error status")
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results, got %d", len(results))
	}
}

func TestClient_Search_UnreachableReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	results := client.Search(context.Background(), "golang", 1)

	if results == nil {
		t.Fatal("Expected non-nil empty slice when unreachable")
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results, got %d", len(results))
	}
}
