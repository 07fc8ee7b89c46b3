package openai

import "encoding/json"

type embeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`

	Dimensions     *int   `json:"dimensions,omitempty"`
	EncodingFormat string `json:"encoding_format,omitempty"`
}

// embeddingsResponse is the combined success/error envelope: a 200 body is
// either the data payload or an application-level error carrying a message.
type embeddingsResponse struct {
	Object string `json:"object"`
	Data   []struct {
		Object    string          `json:"object"`
		Embedding json.RawMessage `json:"embedding"`
		Index     int             `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`

	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
}
