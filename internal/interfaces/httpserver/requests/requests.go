// Package requests contains HTTP request DTOs.
package requests

import openai "github.com/sashabaranov/go-openai"

// ChatRequest is the body accepted by POST /chat. Only the message list is
// read; model or parameter fields a client sends are ignored.
type ChatRequest struct {
	Messages []openai.ChatCompletionMessage `json:"messages"`
}
