package usecase

import (
	"hr-assistant/internal/agent"
	"hr-assistant/internal/chat"
	"hr-assistant/internal/session"
	"hr-assistant/pkg/log"
)

type implUseCase struct {
	l                 log.Logger
	orc               chat.Orchestrator
	registry          *agent.Registry
	store             agent.DataStore
	memory            *session.Memory
	defaultEmployeeID string
}

var _ chat.UseCase = &implUseCase{}

// New creates the chat use case over the orchestrator and session memory.
func New(l log.Logger, orc chat.Orchestrator, registry *agent.Registry, store agent.DataStore, memory *session.Memory, defaultEmployeeID string) chat.UseCase {
	return &implUseCase{
		l:                 l,
		orc:               orc,
		registry:          registry,
		store:             store,
		memory:            memory,
		defaultEmployeeID: defaultEmployeeID,
	}
}
