package provider

// Usage is the provider's token accounting for one embeddings call. The
// embeddings endpoints report no completion tokens.
type Usage struct {
	PromptTokens int
	TotalTokens  int
}
