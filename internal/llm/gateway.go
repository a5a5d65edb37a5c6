package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hr-assistant/internal/i18n"
	"hr-assistant/pkg/llmprovider"
	"hr-assistant/pkg/log"
)

type implGateway struct {
	generator ContentGenerator
	l         log.Logger
}

var _ Gateway = (*implGateway)(nil)

func (g *implGateway) IsAvailable() bool {
	return g.generator != nil
}

// fallbackDecision routes to the general agent at the acceptance boundary so
// keyword routing gets a chance to refine it.
func fallbackDecision() RoutingDecision {
	return RoutingDecision{
		Agent:      FallbackAgent,
		Intent:     FallbackIntent,
		Confidence: FallbackConfidence,
	}
}

func (g *implGateway) RouteQuery(ctx context.Context, query string) RoutingDecision {
	if !g.IsAvailable() {
		return fallbackDecision()
	}

	resp, err := g.generator.GenerateContent(ctx, &llmprovider.Request{
		Prompt:      fmt.Sprintf(promptRouting, query),
		Temperature: RoutingTemperature,
	})
	if err != nil {
		g.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixRouteQuery, err)
		return fallbackDecision()
	}

	text := stripCodeFences(resp.Text)
	if text == "" {
		g.l.Warnf(ctx, "%s: empty response, falling back to %s", LogPrefixRouteQuery, FallbackAgent)
		return fallbackDecision()
	}

	var decision RoutingDecision
	if err := json.Unmarshal([]byte(text), &decision); err != nil {
		g.l.Warnf(ctx, "%s: failed to parse JSON, falling back to %s: %v", LogPrefixRouteQuery, FallbackAgent, err)
		return fallbackDecision()
	}

	if decision.Agent == "" {
		return fallbackDecision()
	}

	g.l.Infof(ctx, "%s: classified as %s (intent: %s, confidence: %.2f)",
		LogPrefixRouteQuery, decision.Agent, decision.Intent, decision.Confidence)
	return decision
}

func (g *implGateway) GenerateResponse(ctx context.Context, input GenerateInput) (string, error) {
	if !g.IsAvailable() {
		return "", ErrUnavailable
	}

	contextJSON, err := json.MarshalIndent(input.ContextData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%s: failed to serialize context data: %w", LogPrefixGenerate, err)
	}

	historyContext := ""
	if input.ConversationHistory != "" {
		historyContext = "\n" + input.ConversationHistory + "\n"
	}

	prompt := fmt.Sprintf(promptGenerate,
		input.SystemContext,
		input.AgentName,
		i18n.LanguageInstruction(input.Language),
		historyContext,
		input.Query,
		string(contextJSON),
	)

	resp, err := g.generator.GenerateContent(ctx, &llmprovider.Request{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixGenerate, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// stripCodeFences removes markdown code blocks (```json ... ```) the model
// sometimes wraps around JSON despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// disabledGateway is wired when no provider could be initialized.
type disabledGateway struct{}

var _ Gateway = (*disabledGateway)(nil)

func (d *disabledGateway) IsAvailable() bool {
	return false
}

func (d *disabledGateway) RouteQuery(ctx context.Context, query string) RoutingDecision {
	return fallbackDecision()
}

func (d *disabledGateway) GenerateResponse(ctx context.Context, input GenerateInput) (string, error) {
	return "", ErrUnavailable
}
