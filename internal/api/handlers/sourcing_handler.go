package handlers

import (
	"net/http"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/service"
	"github.com/gin-gonic/gin"
)

type SourcingHandler struct {
	service *service.SourcingService
}

func NewSourcingHandler(service *service.SourcingService) *SourcingHandler {
	return &SourcingHandler{service: service}
}

func (h *SourcingHandler) Recommend(c *gin.Context) {
	var req domain.SourcingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	rec, ok := h.service.Recommend(req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": service.NoFeasibleManufacturerMessage})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Rank returns every feasible manufacturer with its subscores.
func (h *SourcingHandler) Rank(c *gin.Context) {
	var req domain.SourcingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": h.service.Rank(req)})
}
