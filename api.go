package embeddings

import (
	"fmt"

	"github.com/bitop-dev/embeddings/internal/provider"
)

func providerForModel(m ModelRef) (provider.EmbeddingProvider, error) {
	if m == nil {
		return nil, fmt.Errorf("model is required")
	}
	name := m.Provider()
	if name == "" {
		return nil, fmt.Errorf("model provider is required")
	}
	p, ok := provider.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", name)
	}
	return p, nil
}
