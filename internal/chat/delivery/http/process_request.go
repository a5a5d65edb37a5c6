package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// processChatReq binds and validates the chat request body. A missing
// session id gets a fresh UUID so the client can continue the conversation
// with the id echoed in the response.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, req.validate()
}
