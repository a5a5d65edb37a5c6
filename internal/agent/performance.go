package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hr-assistant/internal/llm"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/markdown"
)

const performanceSystemContext = "You are the Performance Agent. Help employees view their performance reviews, track goals, understand KPIs, and see feedback. Present data clearly with tables and progress indicators."

var performanceKeywords = []string{
	"performance", "review", "rating", "goals", "goal", "kpi",
	"feedback", "evaluation", "appraisal", "improvement",
	"strengths", "weaknesses", "objectives", "targets",
}

// PerformanceAgent answers review, goal, KPI and feedback queries.
type PerformanceAgent struct {
	store   DataStore
	gateway llm.Gateway
	l       log.Logger
}

var _ Agent = (*PerformanceAgent)(nil)

// NewPerformanceAgent creates a new PerformanceAgent.
func NewPerformanceAgent(store DataStore, gateway llm.Gateway, l log.Logger) *PerformanceAgent {
	return &PerformanceAgent{store: store, gateway: gateway, l: l}
}

func (a *PerformanceAgent) Name() string { return "Performance Agent" }
func (a *PerformanceAgent) Description() string {
	return "Handles performance reviews, goals, and KPI queries"
}
func (a *PerformanceAgent) Keywords() []string { return performanceKeywords }

func (a *PerformanceAgent) CanHandle(query string) bool {
	return canHandle(query, performanceKeywords)
}

func (a *PerformanceAgent) Process(ctx context.Context, query, employeeID string, agentCtx *Context) (string, error) {
	records, err := a.store.Performance()
	if err != nil {
		return "", err
	}

	record, ok := records[employeeID]
	if !ok {
		return "❌ Sorry, I couldn't find your performance records.", nil
	}

	if out, ok := tryLLM(ctx, a.gateway, a.l, a.Name(), performanceSystemContext, query, map[string]interface{}{
		"employee_name":    record.EmployeeName,
		"current_rating":   record.CurrentRating,
		"last_review_date": record.LastReviewDate,
		"next_review_date": record.NextReviewDate,
		"reviews":          record.Reviews,
		"goals":            record.Goals,
		"kpis":             record.KPIs,
		"recent_feedback":  record.RecentFeedback,
	}, agentCtx); ok {
		return out, nil
	}

	queryLower := strings.ToLower(query)

	switch {
	case matchesAny(queryLower, "goal", "objective", "target"):
		return a.goals(record), nil
	case matchesAny(queryLower, "kpi", "metric", "score"):
		return a.kpis(record), nil
	case matchesAny(queryLower, "feedback", "comment"):
		return a.feedback(record), nil
	default:
		return a.performanceSummary(record), nil
	}
}

func (a *PerformanceAgent) performanceSummary(record model.PerformanceRecord) string {
	rating := record.CurrentRating

	var ratingEmoji, ratingText string
	switch {
	case rating >= 4.5:
		ratingEmoji, ratingText = "🌟", "Exceptional"
	case rating >= 4.0:
		ratingEmoji, ratingText = "⭐", "Exceeds Expectations"
	case rating >= 3.5:
		ratingEmoji, ratingText = "✅", "Meets Expectations"
	default:
		ratingEmoji, ratingText = "📈", "Developing"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `📊 **Performance Summary - %s**

### Current Rating: %g/5.0 %s
**Status:** %s

| Metric | Value |
|--------|-------|
| 📅 Last Review | %s |
| 📅 Next Review | %s |

`,
		record.EmployeeName, rating, ratingEmoji, ratingText,
		record.LastReviewDate, record.NextReviewDate,
	)

	if len(record.Reviews) > 0 {
		latest := record.Reviews[0]
		fmt.Fprintf(&b, `### Latest Review (%s)
> %s

**Strengths:** %s
**Areas to Improve:** %s
`,
			latest.Period, latest.Summary,
			strings.Join(latest.Strengths, ", "),
			strings.Join(latest.AreasForImprovement, ", "),
		)
	}

	return b.String()
}

func (a *PerformanceAgent) goals(record model.PerformanceRecord) string {
	if len(record.Goals) == 0 {
		return "📋 No goals found for the current period."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 **Goals - %s**\n\n", record.EmployeeName)
	b.WriteString("| Goal | Due Date | Status | Progress |\n")
	b.WriteString("|------|----------|--------|----------|\n")

	for _, goal := range record.Goals {
		statusEmoji := "⏳"
		switch goal.Status {
		case "completed":
			statusEmoji = "✅"
		case "in-progress":
			statusEmoji = "🔄"
		}
		b.WriteString(markdown.TableRow(
			goal.Title,
			goal.DueDate,
			fmt.Sprintf("%s %s", statusEmoji, markdown.TitleCase(goal.Status)),
			fmt.Sprintf("%s %d%%", markdown.ProgressBar(goal.Progress), goal.Progress),
		))
	}

	return b.String()
}

func (a *PerformanceAgent) kpis(record model.PerformanceRecord) string {
	if len(record.KPIs) == 0 {
		return "📈 No KPI data available."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📈 **KPI Metrics - %s**\n\n", record.EmployeeName)
	b.WriteString("| Metric | Score |\n")
	b.WriteString("|--------|-------|\n")

	keys := make([]string, 0, len(record.KPIs))
	for k := range record.KPIs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := record.KPIs[key]
		b.WriteString(markdown.TableRow(
			markdown.TitleCase(key),
			fmt.Sprintf("%s %d%%", markdown.ProgressBar(value), value),
		))
	}

	return b.String()
}

func (a *PerformanceAgent) feedback(record model.PerformanceRecord) string {
	if len(record.RecentFeedback) == 0 {
		return "💬 No recent feedback available."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💬 **Recent Feedback - %s**\n\n", record.EmployeeName)

	for _, fb := range record.RecentFeedback {
		typeEmoji := "💪"
		switch fb.Type {
		case "praise":
			typeEmoji = "👏"
		case "thanks":
			typeEmoji = "🙏"
		}
		fmt.Fprintf(&b, "**%s From %s** (%s)\n", typeEmoji, fb.From, fb.Date)
		fmt.Fprintf(&b, "> %s\n\n", fb.Message)
	}

	return b.String()
}
