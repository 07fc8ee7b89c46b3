package embeddings

import (
	"context"
	"fmt"
	"time"

	internalEmbeddings "github.com/bitop-dev/embeddings/internal/embeddings"
	"github.com/bitop-dev/embeddings/internal/provider"
	"github.com/bitop-dev/embeddings/openai"
)

type EmbedRequest struct {
	Model ModelRef
	Input string

	Headers map[string]string
	Timeout time.Duration

	ProviderOptions map[string]any
}

type EmbedResponse struct {
	Embedding Embedding
	Usage     Usage

	RawResponse []byte
}

type EmbedManyRequest struct {
	Model ModelRef
	Input []string

	Headers map[string]string
	Timeout time.Duration

	// MaxDocumentsPerCall caps the documents sent per provider call; 0 means
	// the provider's documented batch limit. Inputs beyond the cap are split
	// into further calls.
	MaxDocumentsPerCall int

	// MaxParallelCalls bounds concurrent provider calls when the input is
	// split; 0 or 1 keeps the calls sequential.
	MaxParallelCalls int

	ProviderOptions map[string]any
}

type EmbedManyResponse struct {
	// Embeddings holds one entry per input document, in input order.
	Embeddings []Embedding
	Usage      Usage

	RawResponse []byte
}

func Embed(ctx context.Context, req EmbedRequest) (*EmbedResponse, error) {
	ctx, cancel := applyTimeout(ctx, req.Timeout)
	defer cancel()

	if req.Input == "" {
		return nil, fmt.Errorf("input is required")
	}
	resp, err := EmbedMany(ctx, EmbedManyRequest{
		Model:           req.Model,
		Input:           []string{req.Input},
		Headers:         req.Headers,
		ProviderOptions: req.ProviderOptions,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != 1 {
		return nil, fmt.Errorf("expected 1 embedding, got %d", len(resp.Embeddings))
	}
	return &EmbedResponse{Embedding: resp.Embeddings[0], Usage: resp.Usage, RawResponse: resp.RawResponse}, nil
}

func EmbedMany(ctx context.Context, req EmbedManyRequest) (*EmbedManyResponse, error) {
	ctx, cancel := applyTimeout(ctx, req.Timeout)
	defer cancel()

	ep, err := providerForModel(req.Model)
	if err != nil {
		return nil, err
	}
	if len(req.Input) == 0 {
		return nil, fmt.Errorf("input is required")
	}

	maxPerCall := req.MaxDocumentsPerCall
	if maxPerCall <= 0 {
		maxPerCall = openai.MaxDocuments
	}

	preq := provider.EmbeddingRequest{
		Model:           req.Model.Name(),
		Inputs:          append([]string(nil), req.Input...),
		Headers:         cloneStringMap(req.Headers),
		ProviderOptions: req.ProviderOptions,
		ProviderData:    nil,
	}
	// Reuse provider-specific wiring if present (e.g. client-bound model ref).
	if c, ok := openAIClientFromModel(req.Model); ok {
		preq.ProviderData = c
	}

	out, err := internalEmbeddings.EmbedMany(ctx, ep, preq, maxPerCall, req.MaxParallelCalls)
	if err != nil {
		return nil, mapProviderError(err)
	}
	if len(out.Vectors) != len(req.Input) {
		return nil, fmt.Errorf("embedding response count mismatch: got %d want %d", len(out.Vectors), len(req.Input))
	}

	embs := make([]Embedding, len(req.Input))
	for i, doc := range req.Input {
		embs[i] = Embedding{Document: doc, Vec: out.Vectors[i]}
	}
	return &EmbedManyResponse{
		Embeddings:  embs,
		Usage:       Usage{PromptTokens: out.Usage.PromptTokens, TotalTokens: out.Usage.TotalTokens},
		RawResponse: out.RawResponse,
	}, nil
}
