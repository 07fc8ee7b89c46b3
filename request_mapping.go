package embeddings

import (
	"github.com/bitop-dev/embeddings/openai"
)

type openAIClientModel interface {
	Client() *openai.Client
}

func openAIClientFromModel(m ModelRef) (*openai.Client, bool) {
	v, ok := m.(openAIClientModel)
	if !ok || v.Client() == nil {
		return nil, false
	}
	return v.Client(), true
}

func cloneStringMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
