package embeddings

import (
	internalOpenAI "github.com/bitop-dev/embeddings/internal/openai"
	"github.com/bitop-dev/embeddings/internal/provider"
	"github.com/bitop-dev/embeddings/openai"
)

func init() {
	if err := provider.Register(openai.ProviderName, &internalOpenAI.Provider{}); err != nil {
		panic(err)
	}
}
