package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scouthq/scout-server/internal/domain/search"
	"github.com/scouthq/scout-server/internal/interfaces/httpserver/handlers"
	"github.com/scouthq/scout-server/internal/interfaces/httpserver/responses"
)

// RegisterSearchRoutes registers the search aggregation route.
func RegisterSearchRoutes(router gin.IRoutes, handler *handlers.SearchHandler) {
	router.GET("/search", searchWeb(handler))
}

// searchWeb aggregates both backends for the query. An empty q
// short-circuits to an empty result list without touching either backend.
func searchWeb(handler *handlers.SearchHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusOK, responses.SearchResponse{Results: []search.Result{}})
			return
		}

		page := parsePage(c.Query("page"))
		results := handler.Search(c.Request.Context(), query, page)
		c.JSON(http.StatusOK, responses.SearchResponse{Results: results})
	}
}

// parsePage clamps missing, malformed, and non-positive values to 1.
func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
