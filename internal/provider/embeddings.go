package provider

import "context"

type EmbeddingProvider interface {
	Embed(ctx context.Context, req EmbeddingRequest) (EmbeddingResponse, error)
}

type EmbeddingRequest struct {
	Model string

	Inputs []string

	Headers map[string]string

	// ProviderOptions is provider-specific configuration (e.g. OpenAI dimensions).
	ProviderOptions any

	// ProviderData may carry provider-specific wiring (e.g. a client handle).
	// Providers must treat unknown types as an error.
	ProviderData any
}

type EmbeddingResponse struct {
	// Vectors holds one embedding per input, in input order.
	Vectors [][]float64
	Usage   Usage

	RawResponse []byte
}
