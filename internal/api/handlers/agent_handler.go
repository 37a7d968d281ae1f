package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/roster"
	"github.com/andresuchdata/vendex/internal/service"
	"github.com/gin-gonic/gin"
)

// AgentHandler serves the model-backed endpoints.
type AgentHandler struct {
	intent *service.IntentService
	roster *service.RosterService
}

func NewAgentHandler(intent *service.IntentService, roster *service.RosterService) *AgentHandler {
	return &AgentHandler{intent: intent, roster: roster}
}

func (h *AgentHandler) ProcessIntent(c *gin.Context) {
	var req domain.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if strings.TrimSpace(req.UserInput) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": "user_input must not be blank"})
		return
	}

	c.JSON(http.StatusOK, h.intent.ProcessIntent(c.Request.Context(), req))
}

func (h *AgentHandler) AssignRoster(c *gin.Context) {
	var req domain.RosterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	decision, err := h.roster.Assign(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, roster.ErrInvalidRoster) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid roster", "details": err.Error()})
			return
		}
		internalError(c, "failed to assign roster", err)
		return
	}

	c.JSON(http.StatusOK, decision)
}
