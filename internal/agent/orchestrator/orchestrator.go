// Package orchestrator routes chat queries to the specialized agents. LLM
// classification is tried first; keyword matching is the deterministic
// fallback so the assistant stays usable with no provider configured.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant/internal/agent"
	"hr-assistant/internal/i18n"
	"hr-assistant/internal/llm"
	"hr-assistant/pkg/log"
)

// Orchestrator is the top-level query handler.
type Orchestrator struct {
	registry *agent.Registry
	gateway  llm.Gateway
	store    agent.DataStore
	l        log.Logger
}

// New creates a new Orchestrator over the registered agents.
func New(registry *agent.Registry, gateway llm.Gateway, store agent.DataStore, l log.Logger) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		gateway:  gateway,
		store:    store,
		l:        l,
	}
}

// Name is the orchestrator's display name.
func (o *Orchestrator) Name() string { return "HR Assistant" }

// Description is the orchestrator's capability summary.
func (o *Orchestrator) Description() string {
	return "Main HR assistant that intelligently routes queries to specialized agents"
}

// route resolves a query to a Route, trying the LLM first and degrading to
// keywords when the classification is missing or below threshold.
func (o *Orchestrator) route(ctx context.Context, query string) (Route, string) {
	if o.gateway.IsAvailable() {
		decision := o.gateway.RouteQuery(ctx, query)
		if decision.Agent != "" && decision.Confidence >= RoutingThreshold {
			o.l.Debugf(ctx, "internal.orchestrator: routing to %s via LLM (intent: %s, confidence: %.2f)",
				decision.Agent, decision.Intent, decision.Confidence)
			return Route(decision.Agent), decision.Intent
		}
	}

	route := o.routeWithKeywords(query)
	o.l.Debugf(ctx, "internal.orchestrator: routing to %s via keywords", route)
	return route, "keyword-matched"
}

// routeWithKeywords is the deterministic routing tier: greetings, then
// help, then each registered agent in registration order.
func (o *Orchestrator) routeWithKeywords(query string) Route {
	queryLower := strings.ToLower(query)

	if containsAny(queryLower, greetingKeywords) {
		return RouteGreeting
	}
	if containsAny(queryLower, helpKeywords) {
		return RouteHelp
	}

	for _, routeKey := range o.registry.Routes() {
		a, _ := o.registry.Get(routeKey)
		if a.CanHandle(query) {
			return Route(routeKey)
		}
	}

	return RouteGeneral
}

// Process answers the query, dispatching to the resolved agent.
func (o *Orchestrator) Process(ctx context.Context, query, employeeID string, agentCtx *agent.Context) (string, error) {
	route, _ := o.route(ctx, query)

	queryLower := strings.ToLower(query)

	// LLM classifiers tend to label greetings GENERAL; re-check so
	// "hello" always gets the greeting card.
	if route == RouteGreeting || (route == RouteGeneral && containsAny(queryLower, greetingKeywords)) {
		return o.greeting(ctx, employeeID, agentCtx), nil
	}

	if route == RouteHelp {
		return o.help(), nil
	}

	if route == RouteGeneral {
		return o.general(ctx, query, employeeID, agentCtx)
	}

	if a, ok := o.registry.Get(string(route)); ok {
		return a.Process(ctx, query, employeeID, agentCtx)
	}

	return fmt.Sprintf(fallbackCard, query), nil
}

// AgentForQuery reports which agent would answer, without answering.
func (o *Orchestrator) AgentForQuery(ctx context.Context, query string) (string, string) {
	route, _ := o.route(ctx, query)

	switch route {
	case RouteGreeting:
		return o.Name(), "Greeting"
	case RouteHelp:
		return o.Name(), "Help"
	case RouteGeneral:
		return o.Name(), "General Query"
	}

	if a, ok := o.registry.Get(string(route)); ok {
		return a.Name(), a.Description()
	}

	return o.Name(), "Fallback"
}

// general answers unclassified queries with the LLM, or the fallback card
// when no provider is usable.
func (o *Orchestrator) general(ctx context.Context, query, employeeID string, agentCtx *agent.Context) (string, error) {
	if o.gateway.IsAvailable() {
		contextData := map[string]interface{}{
			"capabilities": capabilities,
		}
		if emp, err := o.store.Employee(employeeID); err == nil {
			contextData["employee"] = emp
		}

		input := llm.GenerateInput{
			Query:         query,
			AgentName:     o.Name(),
			ContextData:   contextData,
			SystemContext: generalSystemContext,
		}
		if agentCtx != nil {
			input.Language = agentCtx.Language
			input.ConversationHistory = agentCtx.ConversationHistory
		}

		out, err := o.gateway.GenerateResponse(ctx, input)
		if err == nil {
			return out, nil
		}
		o.l.Warnf(ctx, "internal.orchestrator: general LLM answer failed, using fallback card: %v", err)
	}

	return fmt.Sprintf(fallbackCard, query), nil
}

// greeting renders the welcome card with the employee's first name,
// localized when the request carries a language.
func (o *Orchestrator) greeting(ctx context.Context, employeeID string, agentCtx *agent.Context) string {
	name := "there"
	if emp, err := o.store.Employee(employeeID); err == nil {
		name = emp.FirstName()
	}

	lang := i18n.DefaultLanguage
	if agentCtx != nil && agentCtx.Language != "" {
		lang = i18n.Normalize(agentCtx.Language)
	}
	hello := i18n.Greeting(lang, name)

	if o.gateway.IsAvailable() {
		return fmt.Sprintf(greetingCardAI, hello)
	}
	return fmt.Sprintf(greetingCardKeyword, hello)
}

// help renders the static help card.
func (o *Orchestrator) help() string {
	if o.gateway.IsAvailable() {
		return helpCardAI
	}
	return helpCardKeyword
}

func containsAny(queryLower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(queryLower, p) {
			return true
		}
	}
	return false
}
