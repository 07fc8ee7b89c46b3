package provider

import (
	"fmt"
	"sync"
)

type Registry struct {
	mu        sync.RWMutex
	providers map[string]EmbeddingProvider
}

func NewRegistry() *Registry {
	return &Registry{providers: map[string]EmbeddingProvider{}}
}

func (r *Registry) Register(name string, p EmbeddingProvider) error {
	if name == "" {
		return fmt.Errorf("provider name is required")
	}
	if p == nil {
		return fmt.Errorf("provider %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %q already registered", name)
	}

	r.providers[name] = p
	return nil
}

func (r *Registry) Get(name string) (EmbeddingProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	return p, ok
}

var defaultRegistry = NewRegistry()

func Register(name string, p EmbeddingProvider) error {
	return defaultRegistry.Register(name, p)
}

func Get(name string) (EmbeddingProvider, bool) {
	return defaultRegistry.Get(name)
}
