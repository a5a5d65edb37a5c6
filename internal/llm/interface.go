package llm

import (
	"context"

	"hr-assistant/pkg/llmprovider"
	"hr-assistant/pkg/log"
)

// Gateway is the interface for LLM-backed routing and response generation.
// When no provider is usable the disabled implementation is wired instead,
// and callers degrade to deterministic keyword behavior.
type Gateway interface {
	// IsAvailable reports whether an LLM provider is usable.
	IsAvailable() bool

	// RouteQuery classifies a query to an agent. Never returns an error:
	// any failure degrades to the GENERAL fallback decision.
	RouteQuery(ctx context.Context, query string) RoutingDecision

	// GenerateResponse produces a natural-language answer grounded in the
	// caller-supplied context data.
	GenerateResponse(ctx context.Context, input GenerateInput) (string, error)
}

// ContentGenerator is the narrow surface of llmprovider.Manager the gateway
// needs. Kept small so tests can fake it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// New creates a Gateway backed by the given content generator.
func New(generator ContentGenerator, l log.Logger) Gateway {
	return &implGateway{
		generator: generator,
		l:         l,
	}
}

// NewDisabled creates a Gateway that reports unavailable. RouteQuery returns
// the fallback decision and GenerateResponse returns ErrUnavailable.
func NewDisabled() Gateway {
	return &disabledGateway{}
}
