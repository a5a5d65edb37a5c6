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

const employeeSystemContext = "You are the Employee Agent. Help employees view their profile, learn about their team, and find colleague information. Present data in clear tables."

var employeeKeywords = []string{
	"profile", "employee", "team", "department", "manager",
	"coworker", "colleague", "who am i", "my info", "my information",
	"my details", "contact", "position", "job", "role", "about me",
}

// EmployeeAgent answers profile, team, manager and department queries.
type EmployeeAgent struct {
	store   DataStore
	gateway llm.Gateway
	l       log.Logger
}

var _ Agent = (*EmployeeAgent)(nil)

// NewEmployeeAgent creates a new EmployeeAgent.
func NewEmployeeAgent(store DataStore, gateway llm.Gateway, l log.Logger) *EmployeeAgent {
	return &EmployeeAgent{store: store, gateway: gateway, l: l}
}

func (a *EmployeeAgent) Name() string { return "Employee Agent" }
func (a *EmployeeAgent) Description() string {
	return "Handles employee profile and team information queries"
}
func (a *EmployeeAgent) Keywords() []string { return employeeKeywords }

func (a *EmployeeAgent) CanHandle(query string) bool {
	return canHandle(query, employeeKeywords)
}

func (a *EmployeeAgent) Process(ctx context.Context, query, employeeID string, agentCtx *Context) (string, error) {
	employees, err := a.store.Employees()
	if err != nil {
		return "", err
	}

	var current *model.Employee
	for i := range employees {
		if employees[i].ID == employeeID {
			current = &employees[i]
			break
		}
	}

	if current == nil {
		return "❌ Sorry, I couldn't find your employee record.", nil
	}

	teamMembers := membersByID(employees, current.Team)

	var manager *model.Employee
	if current.ManagerID != "" {
		for i := range employees {
			if employees[i].ID == current.ManagerID {
				manager = &employees[i]
				break
			}
		}
	}

	contextData := map[string]interface{}{
		"employee":     current,
		"team_members": summarize(teamMembers),
	}
	if manager != nil {
		contextData["manager"] = map[string]string{
			"name": manager.Name, "position": manager.Position, "email": manager.Email,
		}
	}

	if out, ok := tryLLM(ctx, a.gateway, a.l, a.Name(), employeeSystemContext, query, contextData, agentCtx); ok {
		return out, nil
	}

	queryLower := strings.ToLower(query)

	switch {
	case matchesAny(queryLower, "team", "coworker", "colleague"):
		return a.teamInfo(*current, teamMembers), nil
	case matchesAny(queryLower, "manager", "boss"):
		return a.managerInfo(*current, manager), nil
	case matchesAny(queryLower, "department"):
		return a.departmentInfo(*current, employees), nil
	default:
		return a.profileInfo(*current), nil
	}
}

func membersByID(all []model.Employee, ids []string) []model.Employee {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	var out []model.Employee
	for _, emp := range all {
		if idSet[emp.ID] {
			out = append(out, emp)
		}
	}
	return out
}

func summarize(members []model.Employee) []map[string]string {
	out := make([]map[string]string, 0, len(members))
	for _, m := range members {
		out = append(out, map[string]string{
			"name": m.Name, "position": m.Position, "email": m.Email,
		})
	}
	return out
}

func (a *EmployeeAgent) profileInfo(emp model.Employee) string {
	managerName := emp.Manager
	if managerName == "" {
		managerName = "N/A"
	}

	return fmt.Sprintf(`👤 **Your Profile**

| Field | Information |
|-------|-------------|
| **Name** | %s |
| **ID** | %s |
| **Position** | %s |
| **Department** | %s |
| **Email** | %s |
| **Phone** | %s |
| **Manager** | %s |
| **Joined** | %s |`,
		emp.Name, emp.ID, emp.Position, emp.Department,
		emp.Email, emp.Phone, managerName, emp.JoinDate,
	)
}

func (a *EmployeeAgent) teamInfo(emp model.Employee, team []model.Employee) string {
	if len(team) == 0 {
		return "👥 You don't have any direct team members."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 **Your Team** (%d members)\n\n", len(team))
	b.WriteString("| Name | Position | Email |\n")
	b.WriteString("|------|----------|-------|\n")

	for _, member := range team {
		b.WriteString(markdown.TableRow(member.Name, member.Position, member.Email))
	}

	return b.String()
}

func (a *EmployeeAgent) managerInfo(emp model.Employee, manager *model.Employee) string {
	if emp.ManagerID == "" {
		return "👔 You are at the top - no manager assigned."
	}
	if manager == nil {
		return "❌ Manager information not found."
	}

	return fmt.Sprintf(`👔 **Your Manager**

| Field | Information |
|-------|-------------|
| **Name** | %s |
| **Position** | %s |
| **Email** | %s |
| **Phone** | %s |`,
		manager.Name, manager.Position, manager.Email, manager.Phone,
	)
}

func (a *EmployeeAgent) departmentInfo(emp model.Employee, all []model.Employee) string {
	var deptMembers []model.Employee
	for _, e := range all {
		if e.Department == emp.Department {
			deptMembers = append(deptMembers, e)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏢 **%s Department** (%d members)\n\n", emp.Department, len(deptMembers))
	b.WriteString("| Name | Position |\n")
	b.WriteString("|------|----------|\n")

	for _, member := range deptMembers {
		name := member.Name
		if member.ID == emp.ID {
			name += " ⭐"
		}
		b.WriteString(markdown.TableRow(name, member.Position))
	}

	return b.String()
}
