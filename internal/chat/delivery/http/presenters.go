package http

import (
	"time"

	"hr-assistant/internal/chat"
	"hr-assistant/internal/i18n"
	"hr-assistant/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message    string `json:"message"     binding:"required,min=1,max=4000"`
	EmployeeID string `json:"employee_id" binding:"omitempty,max=32"`
	SessionID  string `json:"session_id"  binding:"omitempty,max=64"`
	Language   string `json:"language"    binding:"omitempty,max=8"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Message:    r.Message,
		EmployeeID: r.EmployeeID,
		SessionID:  r.SessionID,
		Language:   i18n.Normalize(r.Language),
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response         string    `json:"response"`
	AgentName        string    `json:"agent_name"`
	AgentDescription string    `json:"agent_description"`
	SessionID        string    `json:"session_id"`
	Timestamp        time.Time `json:"timestamp"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:         out.Response,
		AgentName:        out.AgentName,
		AgentDescription: out.AgentDescription,
		SessionID:        out.SessionID,
		Timestamp:        out.Timestamp,
	}
}

type employeeResp struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Manager    string   `json:"manager,omitempty"`
	ManagerID  string   `json:"manager_id,omitempty"`
	JoinDate   string   `json:"join_date"`
	Phone      string   `json:"phone,omitempty"`
	Team       []string `json:"team,omitempty"`
}

func newEmployeeResp(emp model.Employee) employeeResp {
	return employeeResp{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Department: emp.Department,
		Position:   emp.Position,
		Manager:    emp.Manager,
		ManagerID:  emp.ManagerID,
		JoinDate:   emp.JoinDate,
		Phone:      emp.Phone,
		Team:       emp.Team,
	}
}

type employeesResp struct {
	Employees []employeeResp `json:"employees"`
	Total     int            `json:"total"`
}

func (h *handler) newEmployeesResp(employees []model.Employee) employeesResp {
	out := make([]employeeResp, len(employees))
	for i, emp := range employees {
		out[i] = newEmployeeResp(emp)
	}
	return employeesResp{Employees: out, Total: len(out)}
}

type languagesResp struct {
	Languages []i18n.Language `json:"languages"`
	Default   string          `json:"default"`
}

type translationsResp struct {
	Language     string            `json:"language"`
	Translations map[string]string `json:"translations"`
}

type agentsResp struct {
	Agents []chat.AgentInfo `json:"agents"`
	Total  int              `json:"total"`
}

type clearSessionResp struct {
	Message string `json:"message"`
}
