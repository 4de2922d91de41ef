package perplexity

import "context"

// IPerplexity defines the interface for the Perplexity LLM client
type IPerplexity interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
}
