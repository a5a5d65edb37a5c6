package agent

import (
	"context"

	"hr-assistant/internal/model"
)

// Agent is one specialized HR domain handler. Agents answer with an LLM
// when a provider is available and fall back to deterministic markdown
// templates otherwise.
type Agent interface {
	// Name is the display name, e.g. "Payslip Agent".
	Name() string

	// Description is a one-line capability summary.
	Description() string

	// Keywords lists the lowercase trigger phrases for keyword routing.
	Keywords() []string

	// CanHandle reports whether any keyword occurs in the query.
	CanHandle(query string) bool

	// Process answers the query for the given employee.
	Process(ctx context.Context, query, employeeID string, agentCtx *Context) (string, error)
}

// Context carries per-request conversation state into an agent.
type Context struct {
	Language            string
	ConversationHistory string
}

// DataStore is the fixture access surface agents need. Satisfied by
// *hrdata.Store.
type DataStore interface {
	Employees() ([]model.Employee, error)
	Employee(id string) (model.Employee, error)
	Payslips() (map[string]model.PayslipRecord, error)
	Leaves() (map[string]model.LeaveRecord, error)
	Attendance() (map[string]model.AttendanceRecord, error)
	Benefits() (model.BenefitsData, error)
	Performance() (map[string]model.PerformanceRecord, error)
	Policies() (model.PolicyCatalog, error)
}
