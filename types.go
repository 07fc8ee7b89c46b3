package embeddings

// ModelRef identifies a model at a named provider. Provider packages return
// concrete refs that may also carry client wiring (see openai.ModelRef).
type ModelRef interface {
	Provider() string
	Name() string
}

// Embedding pairs one input document with its vector. Document is the
// caller's original string; Vec is the provider's embedding for it.
type Embedding struct {
	Document string
	Vec      []float64
}

// Usage is the provider's token accounting for a call. Embeddings endpoints
// report prompt and total tokens only.
type Usage struct {
	PromptTokens int
	TotalTokens  int
}
