package llm

import "errors"

var (
	// ErrUnavailable indicates no LLM provider is usable.
	ErrUnavailable = errors.New("llm gateway unavailable")

	// ErrEmptyResponse indicates the provider returned no text.
	ErrEmptyResponse = errors.New("empty llm response")
)
