package agent

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant/internal/llm"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/markdown"
)

const leaveSystemContext = "You are the Leave Agent. Help employees check leave balances, view leave history, and understand leave policies. Present data clearly with tables."

var leaveKeywords = []string{
	"leave", "vacation", "holiday", "time off", "pto", "sick",
	"annual", "personal", "absence", "day off", "days off",
	"leave balance", "request leave", "cancel leave",
}

// LeaveAgent answers leave balance and request queries.
type LeaveAgent struct {
	store   DataStore
	gateway llm.Gateway
	l       log.Logger
}

var _ Agent = (*LeaveAgent)(nil)

// NewLeaveAgent creates a new LeaveAgent.
func NewLeaveAgent(store DataStore, gateway llm.Gateway, l log.Logger) *LeaveAgent {
	return &LeaveAgent{store: store, gateway: gateway, l: l}
}

func (a *LeaveAgent) Name() string        { return "Leave Agent" }
func (a *LeaveAgent) Description() string { return "Handles leave balance and request queries" }
func (a *LeaveAgent) Keywords() []string  { return leaveKeywords }

func (a *LeaveAgent) CanHandle(query string) bool {
	return canHandle(query, leaveKeywords)
}

func (a *LeaveAgent) Process(ctx context.Context, query, employeeID string, agentCtx *Context) (string, error) {
	records, err := a.store.Leaves()
	if err != nil {
		return "", err
	}

	record, ok := records[employeeID]
	if !ok {
		return "❌ Sorry, I couldn't find your leave records.", nil
	}

	balance := record.Balance
	if out, ok := tryLLM(ctx, a.gateway, a.l, a.Name(), leaveSystemContext, query, map[string]interface{}{
		"employee_name": record.EmployeeName,
		"leave_balance": map[string]interface{}{
			"annual":   map[string]int{"total": balance.Annual, "used": balance.UsedAnnual, "remaining": balance.RemainingAnnual()},
			"sick":     map[string]int{"total": balance.Sick, "used": balance.UsedSick, "remaining": balance.RemainingSick()},
			"personal": map[string]int{"total": balance.Personal, "used": balance.UsedPersonal, "remaining": balance.RemainingPersonal()},
		},
		"leave_requests": record.Requests,
	}, agentCtx); ok {
		return out, nil
	}

	queryLower := strings.ToLower(query)

	switch {
	case matchesAny(queryLower, "balance", "remaining", "how many", "available"):
		return a.leaveBalance(record), nil
	case matchesAny(queryLower, "history", "past", "previous", "taken"):
		return a.leaveHistory(record), nil
	case matchesAny(queryLower, "pending", "status"):
		return a.pendingRequests(record), nil
	default:
		return a.leaveBalance(record), nil
	}
}

func (a *LeaveAgent) leaveBalance(record model.LeaveRecord) string {
	b := record.Balance
	return fmt.Sprintf(`📅 **Leave Balance - %s**

| Type | Total | Used | Remaining |
|------|-------|------|-----------|
| 🏖️ Annual | %d | %d | **%d** |
| 🤒 Sick | %d | %d | **%d** |
| 👤 Personal | %d | %d | **%d** |

**Total Available:** %d days`,
		record.EmployeeName,
		b.Annual, b.UsedAnnual, b.RemainingAnnual(),
		b.Sick, b.UsedSick, b.RemainingSick(),
		b.Personal, b.UsedPersonal, b.RemainingPersonal(),
		b.TotalAvailable(),
	)
}

func (a *LeaveAgent) leaveHistory(record model.LeaveRecord) string {
	if len(record.Requests) == 0 {
		return "📋 No leave history found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Leave History - %s**\n\n", record.EmployeeName)
	b.WriteString("| Type | Dates | Days | Status |\n")
	b.WriteString("|------|-------|------|--------|\n")

	for _, req := range record.Requests {
		statusEmoji := "❌"
		switch req.Status {
		case "approved":
			statusEmoji = "✅"
		case "pending":
			statusEmoji = "⏳"
		}
		b.WriteString(markdown.TableRow(
			markdown.TitleCase(req.Type),
			fmt.Sprintf("%s to %s", req.StartDate, req.EndDate),
			fmt.Sprintf("%d", req.Days),
			statusEmoji,
		))
	}

	return b.String()
}

func (a *LeaveAgent) pendingRequests(record model.LeaveRecord) string {
	var pending []model.LeaveRequest
	for _, req := range record.Requests {
		if req.Status == "pending" {
			pending = append(pending, req)
		}
	}

	if len(pending) == 0 {
		return "✅ No pending leave requests."
	}

	var b strings.Builder
	b.WriteString("⏳ **Pending Leave Requests**\n\n")
	for _, req := range pending {
		fmt.Fprintf(&b, "- **%s**: %s to %s (%d days)\n", markdown.TitleCase(req.Type), req.StartDate, req.EndDate, req.Days)
		fmt.Fprintf(&b, "  Reason: %s\n\n", req.Reason)
	}

	return b.String()
}
