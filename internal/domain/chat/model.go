package chat

import "encoding/json"

type syntheticMessage struct {
	Content string `json:"content"`
}

type syntheticChoice struct {
	Message syntheticMessage `json:"message"`
}

type syntheticResponse struct {
	Choices []syntheticChoice `json:"choices"`
}

// SyntheticPayload builds the minimal one-choice completion body returned
// when the upstream cannot be called or fails. The browser renders the text
// as a normal assistant message.
func SyntheticPayload(text string) json.RawMessage {
	payload, _ := json.Marshal(syntheticResponse{
		Choices: []syntheticChoice{{Message: syntheticMessage{Content: text}}},
	})
	return payload
}
