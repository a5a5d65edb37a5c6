package http

import (
	"hr-assistant/internal/chat"
	"hr-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c interface{})
	Employees(c interface{})
	EmployeeDetail(c interface{})
	Languages(c interface{})
	Translations(c interface{})
	Agents(c interface{})
	ClearSession(c interface{})
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
