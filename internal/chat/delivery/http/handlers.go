package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/i18n"
	"hr-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Routes the message to the right HR agent and returns a markdown answer. Omitting session_id starts a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Employees godoc
// @Summary     List employees
// @Description Returns the full employee directory.
// @Tags        Employees
// @Produce     json
// @Success     200 {object} employeesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/employees [GET]
func (h *handler) Employees(c *gin.Context) {
	ctx := c.Request.Context()

	employees, err := h.uc.Employees(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Employees: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newEmployeesResp(employees))
}

// EmployeeDetail godoc
// @Summary     Get one employee
// @Description Returns a single directory entry by employee id.
// @Tags        Employees
// @Produce     json
// @Param       id path string true "Employee ID"
// @Success     200 {object} employeeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/employees/{id} [GET]
func (h *handler) EmployeeDetail(c *gin.Context) {
	ctx := c.Request.Context()

	emp, err := h.uc.Employee(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Employee: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newEmployeeResp(emp))
}

// Languages godoc
// @Summary     List supported languages
// @Description Returns every language the assistant can answer in, with the default code.
// @Tags        Localization
// @Produce     json
// @Success     200 {object} languagesResp
// @Router      /api/languages [GET]
func (h *handler) Languages(c *gin.Context) {
	response.OK(c, languagesResp{
		Languages: i18n.SupportedLanguages,
		Default:   i18n.DefaultLanguage,
	})
}

// Translations godoc
// @Summary     Get UI translations
// @Description Returns the static UI string table for a language code, falling back to English.
// @Tags        Localization
// @Produce     json
// @Param       language_code path string true "Language code (en, es, fr, ar, zh)"
// @Success     200 {object} translationsResp
// @Router      /api/translations/{language_code} [GET]
func (h *handler) Translations(c *gin.Context) {
	code := i18n.Normalize(c.Param("language_code"))
	response.OK(c, translationsResp{
		Language:     code,
		Translations: i18n.Translations(code),
	})
}

// Agents godoc
// @Summary     List agents
// @Description Returns the orchestrator and every registered domain agent with its routing keywords.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} agentsResp
// @Router      /api/agents [GET]
func (h *handler) Agents(c *gin.Context) {
	agents := h.uc.Agents(c.Request.Context())
	response.OK(c, agentsResp{Agents: agents, Total: len(agents)})
}

// ClearSession godoc
// @Summary     Clear a chat session
// @Description Drops the conversation history for the given session id. Clearing an unknown session succeeds.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} clearSessionResp
// @Router      /api/session/{session_id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	h.uc.ClearSession(c.Request.Context(), sessionID)
	response.OK(c, clearSessionResp{Message: fmt.Sprintf("Session %s cleared", sessionID)})
}
