package handlers

import (
	"errors"
	"net/http"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/inventory"
	"github.com/andresuchdata/vendex/internal/service"
	"github.com/gin-gonic/gin"
)

const maxBulkItems = 500

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type forecastRequest struct {
	SalesHistory []float64 `json:"sales_history" binding:"dive,gte=0"`
}

type decisionRequest struct {
	Forecast     *int     `json:"forecast" binding:"required"`
	Confidence   *float64 `json:"confidence" binding:"required,gte=0,lte=1"`
	CurrentStock *int     `json:"current_stock" binding:"required,gte=0"`
	UnitCost     *float64 `json:"unit_cost" binding:"required,gte=0"`
}

type forecastAndDecideRequest struct {
	SalesHistory []float64 `json:"sales_history" binding:"dive,gte=0"`
	CurrentStock *int      `json:"current_stock" binding:"required,gte=0"`
	UnitCost     *float64  `json:"unit_cost" binding:"required,gte=0"`
}

// bulkItem is one SKU of a bulk request, validated like forecastAndDecideRequest.
type bulkItem struct {
	SKU          string    `json:"sku"`
	SalesHistory []float64 `json:"sales_history" binding:"dive,gte=0"`
	CurrentStock *int      `json:"current_stock" binding:"required,gte=0"`
	UnitCost     *float64  `json:"unit_cost" binding:"required,gte=0"`
}

type bulkRequest struct {
	Items []bulkItem `json:"items" binding:"required,min=1,dive"`
}

func (h *InventoryHandler) Forecast(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.service.Forecast(req.SalesHistory)
	if err != nil {
		forecastError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *InventoryHandler) Decide(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.service.Decide(*req.Forecast, *req.Confidence, *req.CurrentStock, *req.UnitCost))
}

func (h *InventoryHandler) ForecastAndDecide(c *gin.Context) {
	var req forecastAndDecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.service.ForecastAndDecide(domain.ReorderRequest{
		SalesHistory: req.SalesHistory,
		CurrentStock: *req.CurrentStock,
		UnitCost:     *req.UnitCost,
	})
	if err != nil {
		forecastError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *InventoryHandler) BulkForecastAndDecide(c *gin.Context) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if len(req.Items) > maxBulkItems {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many items", "details": "at most 500 SKUs per request"})
		return
	}

	reqs := make([]domain.ReorderRequest, len(req.Items))
	for i, item := range req.Items {
		reqs[i] = domain.ReorderRequest{
			SKU:          item.SKU,
			SalesHistory: item.SalesHistory,
			CurrentStock: *item.CurrentStock,
			UnitCost:     *item.UnitCost,
		}
	}

	results, err := h.service.BulkForecastAndDecide(c.Request.Context(), reqs)
	if err != nil {
		internalError(c, "failed to forecast items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func forecastError(c *gin.Context, err error) {
	if errors.Is(err, inventory.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sales history", "details": err.Error()})
		return
	}
	internalError(c, "failed to forecast", err)
}
