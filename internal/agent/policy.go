package agent

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant/internal/llm"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
)

const policySystemContext = "You are the Policy Agent. Help employees understand HR policies, company guidelines, and answer common questions. Be clear and cite specific policies when applicable. If a policy doesn't exist for what they're asking, suggest they contact HR directly."

const maxRelevantMatches = 3

var policyKeywords = []string{
	"policy", "policies", "rule", "rules", "guideline", "guidelines",
	"wfh", "work from home", "remote", "dress code", "dress",
	"expense", "reimbursement", "conduct", "behavior", "faq",
	"how do i", "what is the", "allowed", "permitted", "can i",
}

// PolicyAgent answers HR policy and FAQ queries. It is the only agent whose
// data is company-wide rather than per-employee.
type PolicyAgent struct {
	store   DataStore
	gateway llm.Gateway
	l       log.Logger
}

var _ Agent = (*PolicyAgent)(nil)

// NewPolicyAgent creates a new PolicyAgent.
func NewPolicyAgent(store DataStore, gateway llm.Gateway, l log.Logger) *PolicyAgent {
	return &PolicyAgent{store: store, gateway: gateway, l: l}
}

func (a *PolicyAgent) Name() string        { return "Policy Agent" }
func (a *PolicyAgent) Description() string { return "Handles HR policies, guidelines, and FAQ queries" }
func (a *PolicyAgent) Keywords() []string  { return policyKeywords }

func (a *PolicyAgent) CanHandle(query string) bool {
	return canHandle(query, policyKeywords)
}

func (a *PolicyAgent) Process(ctx context.Context, query, employeeID string, agentCtx *Context) (string, error) {
	catalog, err := a.store.Policies()
	if err != nil {
		return "", err
	}

	if out, ok := tryLLM(ctx, a.gateway, a.l, a.Name(), policySystemContext, query, map[string]interface{}{
		"relevant_policies":     relevantPolicies(query, catalog),
		"relevant_faqs":         relevantFAQs(query, catalog),
		"all_policy_categories": catalog.Categories(),
	}, agentCtx); ok {
		return out, nil
	}

	queryLower := strings.ToLower(query)

	switch {
	case matchesAny(queryLower, "wfh", "work from home", "remote", "hybrid"):
		return a.policyByID("POL001", catalog), nil
	case matchesAny(queryLower, "dress", "attire", "clothing"):
		return a.policyByID("POL002", catalog), nil
	case matchesAny(queryLower, "leave", "vacation", "pto", "time off"):
		return a.policyByID("POL003", catalog), nil
	case matchesAny(queryLower, "expense", "reimbursement", "travel"):
		return a.policyByID("POL004", catalog), nil
	case matchesAny(queryLower, "conduct", "behavior", "ethics", "harassment"):
		return a.policyByID("POL005", catalog), nil
	default:
		return a.allPoliciesSummary(catalog), nil
	}
}

// relevantPolicies matches the query against each policy's keyword list,
// title and category.
func relevantPolicies(query string, catalog model.PolicyCatalog) []model.Policy {
	queryLower := strings.ToLower(query)
	var relevant []model.Policy

	for _, policy := range catalog.Policies {
		if len(relevant) == maxRelevantMatches {
			break
		}
		if matchesAny(queryLower, policy.Keywords...) ||
			strings.Contains(queryLower, strings.ToLower(policy.Title)) ||
			strings.Contains(queryLower, strings.ToLower(policy.Category)) {
			relevant = append(relevant, policy)
		}
	}

	return relevant
}

// relevantFAQs matches individual query words against FAQ questions.
func relevantFAQs(query string, catalog model.PolicyCatalog) []model.FAQ {
	words := strings.Fields(strings.ToLower(query))
	var relevant []model.FAQ

	for _, faq := range catalog.FAQs {
		if len(relevant) == maxRelevantMatches {
			break
		}
		questionLower := strings.ToLower(faq.Question)
		for _, word := range words {
			if strings.Contains(questionLower, word) {
				relevant = append(relevant, faq)
				break
			}
		}
	}

	return relevant
}

func (a *PolicyAgent) policyByID(policyID string, catalog model.PolicyCatalog) string {
	for _, policy := range catalog.Policies {
		if policy.ID == policyID {
			return fmt.Sprintf(`📋 **%s**

**Category:** %s
**Effective:** %s | **Updated:** %s

---

### Summary
%s

### Details
%s

---
💡 *For clarification, contact HR at hr@company.com*`,
				policy.Title, policy.Category,
				policy.EffectiveDate, policy.LastUpdated,
				policy.Summary, policy.Content,
			)
		}
	}

	return "❌ Policy not found."
}

func (a *PolicyAgent) allPoliciesSummary(catalog model.PolicyCatalog) string {
	var b strings.Builder
	b.WriteString("📚 **Company Policies**\n\n")
	b.WriteString("| Category | Policy | Summary |\n")
	b.WriteString("|----------|--------|---------|\n")

	for _, policy := range catalog.Policies {
		summary := policy.Summary
		if len(summary) > 50 {
			summary = summary[:50]
		}
		fmt.Fprintf(&b, "| %s | %s | %s... |\n", policy.Category, policy.Title, summary)
	}

	b.WriteString("\n\n---\n\n### 💬 Common Questions\n\n")

	faqs := catalog.FAQs
	if len(faqs) > 3 {
		faqs = faqs[:3]
	}
	for _, faq := range faqs {
		fmt.Fprintf(&b, "**Q: %s**\n> %s\n\n", faq.Question, faq.Answer)
	}

	b.WriteString("\n💡 *Ask me about any specific policy for more details!*")

	return b.String()
}
