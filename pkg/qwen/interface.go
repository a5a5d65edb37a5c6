package qwen

import "context"

// IQwen defines the interface for Qwen (DashScope) LLM client
type IQwen interface {
	// GenerateContent sends a generation request to Qwen API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Qwen client with the given configuration
func New(cfg Config) (IQwen, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
