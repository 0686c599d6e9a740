package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	"github.com/scouthq/scout-server/internal/domain/chat"
	"github.com/scouthq/scout-server/internal/interfaces/httpserver/handlers"
	"github.com/scouthq/scout-server/internal/interfaces/httpserver/requests"
)

// RegisterChatRoutes registers the chat relay route.
func RegisterChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat", relayChat(handler))
}

// relayChat forwards the message list upstream. The route always answers
// 200 with a completion-shaped body; body parse failures surface inside the
// payload the same way upstream failures do.
func relayChat(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Data(http.StatusOK, "application/json", chat.SyntheticPayload("**System Error:** "+err.Error()))
			return
		}
		if req.Messages == nil {
			req.Messages = []openai.ChatCompletionMessage{}
		}

		payload := handler.Relay(c.Request.Context(), req.Messages)
		c.Data(http.StatusOK, "application/json", payload)
	}
}
