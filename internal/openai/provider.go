package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	publicopenai "github.com/bitop-dev/embeddings/openai"
)

type Provider struct{}

func clientAndConfig(providerData any) (*publicopenai.Client, publicopenai.Config, error) {
	c, ok := providerData.(*publicopenai.Client)
	if !ok || c == nil {
		return nil, publicopenai.Config{}, fmt.Errorf("openai provider requires a client-bound model ref")
	}
	cfg := c.Config()
	if cfg.APIKey == "" {
		return nil, publicopenai.Config{}, fmt.Errorf("openai API key is required")
	}
	return c, cfg, nil
}

// shouldRetryStatus classifies whether a failing status could succeed on a
// later attempt; it feeds the error's Retryable field only, never a retry.
func shouldRetryStatus(status int) bool {
	return status == http.StatusRequestTimeout ||
		status == http.StatusConflict ||
		status == http.StatusTooManyRequests ||
		(status >= 500 && status <= 599)
}

func classifyNetworkErr(err error) (code string, retryable bool) {
	if err == nil {
		return "network_error", false
	}
	if errors.Is(err, context.Canceled) {
		return "canceled", false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout", true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout", true
	}
	return "network_error", true
}
