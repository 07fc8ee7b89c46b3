package openai

// Embedding models offered by the OpenAI API.
const (
	TextEmbedding3Large = "text-embedding-3-large"
	TextEmbedding3Small = "text-embedding-3-small"
	TextEmbeddingAda002 = "text-embedding-ada-002"
)

// MaxDocuments is the provider's documented cap on inputs per embeddings
// call. The provider itself never splits batches; callers chunk (or let
// embeddings.EmbedMany chunk for them).
const MaxDocuments = 1024

// ModelDims reports the default output dimensionality of a known embedding
// model, or 0 for models this package does not know about.
func ModelDims(model string) int {
	switch model {
	case TextEmbedding3Large:
		return 3072
	case TextEmbedding3Small:
		return 1536
	case TextEmbeddingAda002:
		return 1536
	default:
		return 0
	}
}
