package agent

import (
	"context"
	"strings"

	"hr-assistant/internal/llm"
	"hr-assistant/pkg/log"
)

// matchesAny reports whether any of the lowercase phrases occurs in the
// already-lowercased query.
func matchesAny(queryLower string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(queryLower, p) {
			return true
		}
	}
	return false
}

// canHandle is the shared CanHandle implementation.
func canHandle(query string, keywords []string) bool {
	queryLower := strings.ToLower(query)
	return matchesAny(queryLower, keywords...)
}

// language and history tolerate a nil Context.
func language(c *Context) string {
	if c == nil {
		return ""
	}
	return c.Language
}

func history(c *Context) string {
	if c == nil {
		return ""
	}
	return c.ConversationHistory
}

// tryLLM attempts an LLM answer and returns ("", false) when the gateway is
// unavailable or fails, so the caller renders its template fallback.
func tryLLM(ctx context.Context, gateway llm.Gateway, l log.Logger, agentName, systemContext, query string, contextData interface{}, agentCtx *Context) (string, bool) {
	if gateway == nil || !gateway.IsAvailable() {
		return "", false
	}

	out, err := gateway.GenerateResponse(ctx, llm.GenerateInput{
		Query:               query,
		AgentName:           agentName,
		ContextData:         contextData,
		SystemContext:       systemContext,
		Language:            language(agentCtx),
		ConversationHistory: history(agentCtx),
	})
	if err != nil {
		l.Warnf(ctx, "internal.agent: %s LLM generation failed, using template: %v", agentName, err)
		return "", false
	}

	return out, true
}
