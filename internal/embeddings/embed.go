package embeddings

import (
	"context"
	"fmt"
	"sync"

	"github.com/bitop-dev/embeddings/internal/provider"
)

// EmbedMany embeds req.Inputs through ep, splitting the input into batches of
// at most maxPerCall documents and issuing at most maxParallel provider calls
// at a time. A batch that fits in one call with parallelism off goes straight
// through. Vectors come back aligned to input order regardless of batch
// completion order; usage is summed across batches and the first raw response
// body is kept.
func EmbedMany(ctx context.Context, ep provider.EmbeddingProvider, req provider.EmbeddingRequest, maxPerCall, maxParallel int) (provider.EmbeddingResponse, error) {
	n := len(req.Inputs)
	if n == 0 {
		return provider.EmbeddingResponse{}, fmt.Errorf("input is required")
	}
	if maxPerCall <= 0 || maxPerCall > n {
		maxPerCall = n
	}
	if maxParallel <= 0 {
		maxParallel = 1
	}

	if maxPerCall >= n && maxParallel <= 1 {
		return ep.Embed(ctx, req)
	}

	type batch struct{ start, end int }
	var batches []batch
	for start := 0; start < n; start += maxPerCall {
		end := start + maxPerCall
		if end > n {
			end = n
		}
		batches = append(batches, batch{start: start, end: end})
	}
	// With parallelism requested but few batches, split further so the
	// goroutines have work to share; each batch stays within maxPerCall.
	if maxParallel > len(batches) && maxParallel <= n {
		batches = batches[:0]
		for _, b := range splitIntoBatches(n, maxParallel) {
			batches = append(batches, batch{start: b.start, end: b.end})
		}
	}

	outVectors := make([][]float64, n)
	var aggUsage provider.Usage

	var firstRaw []byte
	var firstRawOnce sync.Once

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallel)
	errCh := make(chan error, len(batches))

	for _, b := range batches {
		wg.Add(1)
		sem <- struct{}{}
		go func(b batch) {
			defer wg.Done()
			defer func() { <-sem }()

			subReq := req
			subReq.Inputs = append([]string(nil), req.Inputs[b.start:b.end]...)

			resp, err := ep.Embed(ctx, subReq)
			if err != nil {
				errCh <- err
				return
			}
			if len(resp.Vectors) != len(subReq.Inputs) {
				errCh <- fmt.Errorf("embedding response count mismatch: got %d want %d", len(resp.Vectors), len(subReq.Inputs))
				return
			}

			mu.Lock()
			for i := range resp.Vectors {
				outVectors[b.start+i] = resp.Vectors[i]
			}
			aggUsage = addUsage(aggUsage, resp.Usage)
			mu.Unlock()

			firstRawOnce.Do(func() { firstRaw = resp.RawResponse })
		}(b)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return provider.EmbeddingResponse{}, err
		}
	}

	return provider.EmbeddingResponse{
		Vectors:     outVectors,
		Usage:       aggUsage,
		RawResponse: firstRaw,
	}, nil
}

func addUsage(a, b provider.Usage) provider.Usage {
	return provider.Usage{
		PromptTokens: a.PromptTokens + b.PromptTokens,
		TotalTokens:  a.TotalTokens + b.TotalTokens,
	}
}

func splitIntoBatches(n, parts int) []struct{ start, end int } {
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	out := make([]struct{ start, end int }, 0, parts)
	base := n / parts
	rem := n % parts

	start := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < rem {
			size++
		}
		end := start + size
		out = append(out, struct{ start, end int }{start: start, end: end})
		start = end
	}
	return out
}
