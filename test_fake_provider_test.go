package embeddings

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/bitop-dev/embeddings/internal/provider"
)

type testModel struct {
	provider string
	name     string
}

func (m testModel) Provider() string { return m.provider }
func (m testModel) Name() string     { return m.name }

type fakeEmbeddingProvider struct {
	mu sync.Mutex

	requests []provider.EmbeddingRequest

	embed func(call int, req provider.EmbeddingRequest) (provider.EmbeddingResponse, error)
}

func (p *fakeEmbeddingProvider) Embed(ctx context.Context, req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
	_ = ctx
	p.mu.Lock()
	p.requests = append(p.requests, req)
	call := len(p.requests) - 1
	fn := p.embed
	p.mu.Unlock()
	if fn == nil {
		return provider.EmbeddingResponse{}, fmt.Errorf("fakeEmbeddingProvider.Embed not configured")
	}
	return fn(call, req)
}

func (p *fakeEmbeddingProvider) Requests() []provider.EmbeddingRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]provider.EmbeddingRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

func registerFakeProvider(t *testing.T, fp provider.EmbeddingProvider) string {
	t.Helper()
	name := "fake_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	if err := provider.Register(name, fp); err != nil {
		t.Fatalf("register provider: %v", err)
	}
	return name
}
