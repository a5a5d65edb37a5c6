package usecase

import (
	"context"
	"strings"
	"time"

	"hr-assistant/internal/agent"
	"hr-assistant/internal/chat"
	"hr-assistant/internal/session"
)

// historyContextLimit is how many recent messages are rendered into the
// prompt context of one turn.
const historyContextLimit = 5

// Chat answers one message: the recent history is captured before the new
// message lands so the model sees prior turns only, both sides of the
// exchange are recorded, and the responsible agent is resolved up front so
// the caller can attribute the answer.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	employeeID := input.EmployeeID
	if employeeID == "" {
		employeeID = uc.defaultEmployeeID
	}

	history := uc.memory.ContextString(input.SessionID, historyContextLimit)
	uc.memory.AddMessage(input.SessionID, session.RoleUser, message, "")

	agentName, agentDescription := uc.orc.AgentForQuery(ctx, message)

	response, err := uc.orc.Process(ctx, message, employeeID, &agent.Context{
		Language:            input.Language,
		ConversationHistory: history,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Chat: process failed for session %s: %v", input.SessionID, err)
		return chat.ChatOutput{}, err
	}

	uc.memory.AddMessage(input.SessionID, session.RoleAssistant, response, agentName)

	return chat.ChatOutput{
		Response:         response,
		AgentName:        agentName,
		AgentDescription: agentDescription,
		SessionID:        input.SessionID,
		Timestamp:        time.Now().UTC(),
	}, nil
}

// ClearSession drops the session's history. Unknown sessions are a no-op.
func (uc *implUseCase) ClearSession(ctx context.Context, sessionID string) {
	uc.memory.ClearSession(sessionID)
	uc.l.Debugf(ctx, "chat.usecase.ClearSession: cleared session %s", sessionID)
}
