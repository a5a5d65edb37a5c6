package chat

import "time"

// ChatInput is one user message. SessionID is always set by the delivery
// layer; EmployeeID falls back to the configured default when empty.
type ChatInput struct {
	Message    string
	EmployeeID string
	SessionID  string
	Language   string
}

// ChatOutput is the assistant's answer plus which agent produced it.
type ChatOutput struct {
	Response         string
	AgentName        string
	AgentDescription string
	SessionID        string
	Timestamp        time.Time
}

// AgentInfo describes one agent for the discovery endpoint.
type AgentInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}
