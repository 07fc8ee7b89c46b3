package openai

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/bitop-dev/embeddings/internal/httpx"
	"github.com/bitop-dev/embeddings/internal/provider"
	"github.com/bitop-dev/embeddings/internal/ratelimit"
	publicopenai "github.com/bitop-dev/embeddings/openai"
)

func (p *Provider) Embed(ctx context.Context, req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
	_, cfg, err := clientAndConfig(req.ProviderData)
	if err != nil {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "config_error", Message: err.Error(), Retryable: false, Cause: err}
	}
	if req.Model == "" {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "invalid_request", Message: "model is required", Retryable: false}
	}
	if len(req.Inputs) == 0 {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "invalid_request", Message: "inputs are required", Retryable: false}
	}

	var opts publicopenai.EmbeddingOptions
	if v, ok := req.ProviderOptions.(map[string]any); ok {
		if raw, ok := v["openai"]; ok {
			switch o := raw.(type) {
			case publicopenai.EmbeddingOptions:
				opts = o
			case *publicopenai.EmbeddingOptions:
				if o != nil {
					opts = *o
				}
			}
		}
	}

	body, err := json.Marshal(embeddingsRequest{
		Model:          req.Model,
		Input:          req.Inputs,
		Dimensions:     opts.Dimensions,
		EncodingFormat: opts.EncodingFormat,
	})
	if err != nil {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "marshal_error", Message: err.Error(), Retryable: false, Cause: err}
	}

	u, err := embeddingsURL(cfg)
	if err != nil {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "url_error", Message: err.Error(), Retryable: false, Cause: err}
	}

	h := make(http.Header)
	h.Set("Authorization", "Bearer "+cfg.APIKey)
	for k, v := range cfg.Headers {
		h.Set(k, v)
	}
	for k, v := range req.Headers {
		h.Set(k, v)
	}

	log := cfg.Logger

	// Re-issue the identical body until a non-429 outcome. A 429 whose reset
	// headers yield no duration fails instead of guessing a wait.
	for {
		resp, err := httpx.PostJSON(ctx, cfg.HTTPClient, u, body, h)
		if err != nil {
			code, retryable := classifyNetworkErr(err)
			return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: code, Message: err.Error(), Retryable: retryable, Cause: err}
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			wait, ok := ratelimit.ResetAfter(resp.Header)
			if !ok {
				b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
				resp.Body.Close()
				msg := strings.TrimSpace(string(b))
				var er errorResponse
				if json.Unmarshal(b, &er) == nil && er.Message != "" {
					msg = er.Message
				}
				if msg == "" {
					msg = "rate limited"
				}
				log.Error("openai embeddings rate limited without a reset hint",
					zap.String("model", req.Model),
					zap.String("body", msg),
				)
				return provider.EmbeddingResponse{}, &provider.Error{
					Provider:  "openai",
					Code:      "rate_limited",
					Status:    resp.StatusCode,
					Message:   msg,
					Retryable: true,
				}
			}

			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			log.Warn("openai embeddings rate limited, waiting for quota reset",
				zap.String("model", req.Model),
				zap.Duration("retry_after", wait),
			)
			if err := httpx.Sleep(ctx, wait); err != nil {
				code, retryable := classifyNetworkErr(err)
				return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: code, Message: err.Error(), Retryable: retryable, Cause: err}
			}

		case resp.StatusCode < 200 || resp.StatusCode > 299:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			resp.Body.Close()
			msg := strings.TrimSpace(string(b))
			var er errorResponse
			if json.Unmarshal(b, &er) == nil && er.Message != "" {
				msg = er.Message
			}
			log.Error("openai embeddings request failed",
				zap.String("model", req.Model),
				zap.Int("status", resp.StatusCode),
				zap.String("body", msg),
			)
			return provider.EmbeddingResponse{}, &provider.Error{
				Provider:  "openai",
				Code:      "http_error",
				Status:    resp.StatusCode,
				Message:   msg,
				Retryable: shouldRetryStatus(resp.StatusCode),
			}

		default:
			out, err := decodeEmbeddings(resp, len(req.Inputs))
			if err != nil {
				return provider.EmbeddingResponse{}, err
			}
			log.Info("openai embeddings completed",
				zap.String("model", req.Model),
				zap.Int("documents", len(req.Inputs)),
				zap.Int("prompt_tokens", out.Usage.PromptTokens),
				zap.Int("total_tokens", out.Usage.TotalTokens),
			)
			return out, nil
		}
	}
}

func decodeEmbeddings(resp *http.Response, want int) (provider.EmbeddingResponse, error) {
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "read_error", Message: err.Error(), Retryable: true, Cause: err}
	}
	var out embeddingsResponse
	if err := json.Unmarshal(rawBody, &out); err != nil {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "decode_error", Message: err.Error(), Retryable: false, Cause: err}
	}
	if out.Message != "" {
		return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "provider_error", Message: out.Message, Retryable: false}
	}
	if len(out.Data) != want {
		return provider.EmbeddingResponse{}, &provider.Error{
			Provider:  "openai",
			Code:      "invalid_response",
			Message:   fmt.Sprintf("expected %d embeddings, got %d", want, len(out.Data)),
			Retryable: false,
		}
	}

	// Index is advisory: a stable sort restores request order if the provider
	// reordered records and is a no-op when it did not.
	sort.SliceStable(out.Data, func(i, j int) bool { return out.Data[i].Index < out.Data[j].Index })

	vectors := make([][]float64, 0, len(out.Data))
	for _, d := range out.Data {
		vec, err := parseEmbedding(d.Embedding)
		if err != nil {
			return provider.EmbeddingResponse{}, &provider.Error{Provider: "openai", Code: "decode_error", Message: err.Error(), Retryable: false, Cause: err}
		}
		vectors = append(vectors, vec)
	}

	return provider.EmbeddingResponse{
		Vectors: vectors,
		Usage: provider.Usage{
			PromptTokens: out.Usage.PromptTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
		RawResponse: rawBody,
	}, nil
}

func embeddingsURL(cfg publicopenai.Config) (string, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	prefix := strings.TrimRight(cfg.APIPrefix, "/")
	u, err := url.Parse(base + prefix + "/embeddings")
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

var _ provider.EmbeddingProvider = (*Provider)(nil)

func parseEmbedding(raw json.RawMessage) ([]float64, error) {
	// Float array form
	var floats []float64
	if err := json.Unmarshal(raw, &floats); err == nil {
		return floats, nil
	}

	// Base64 form: packed little-endian float32s
	var b64 string
	if err := json.Unmarshal(raw, &b64); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	if len(data)%4 != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	vec := make([]float64, len(data)/4)
	for i := 0; i < len(vec); i++ {
		u := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
		vec[i] = float64(math.Float32frombits(u))
	}
	return vec, nil
}
