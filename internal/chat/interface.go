package chat

import (
	"context"

	"hr-assistant/internal/agent"
	"hr-assistant/internal/model"
)

// Orchestrator is the routing surface the chat use case drives. Satisfied
// by *orchestrator.Orchestrator.
type Orchestrator interface {
	Name() string
	Description() string
	Process(ctx context.Context, query, employeeID string, agentCtx *agent.Context) (string, error)
	AgentForQuery(ctx context.Context, query string) (name, description string)
}

// UseCase is the chat service surface consumed by the HTTP delivery layer.
type UseCase interface {
	// Chat answers one message within a session.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ClearSession drops a session's conversation history.
	ClearSession(ctx context.Context, sessionID string)

	// Employees returns the full directory.
	Employees(ctx context.Context) ([]model.Employee, error)

	// Employee returns one directory entry.
	Employee(ctx context.Context, id string) (model.Employee, error)

	// Agents describes the routing surface: the orchestrator plus every
	// registered domain agent.
	Agents(ctx context.Context) []AgentInfo
}
