// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/vendex/internal/api/handlers"
	"github.com/andresuchdata/vendex/internal/api/middleware"
	"github.com/andresuchdata/vendex/internal/ratelimit"
	"github.com/andresuchdata/vendex/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to Vendex"

type Services struct {
	InventoryService *service.InventoryService
	SourcingService  *service.SourcingService
	IntentService    *service.IntentService
	RosterService    *service.RosterService
}

// NewRouter wires the HTTP surface. The limiter only guards the
// model-backed routes; pass nil to disable it.
func NewRouter(services *Services, allowedOrigins []string, limiter ratelimit.Limiter) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if services == nil {
		return router
	}

	apiGroup := router.Group("/api")

	if services.InventoryService != nil {
		inventoryHandler := handlers.NewInventoryHandler(services.InventoryService)
		apiGroup.POST("/forecast", inventoryHandler.Forecast)
		apiGroup.POST("/decision", inventoryHandler.Decide)
		apiGroup.POST("/forecast-and-decide", inventoryHandler.ForecastAndDecide)
		apiGroup.POST("/forecast-and-decide/bulk", inventoryHandler.BulkForecastAndDecide)
	}

	if services.SourcingService != nil {
		sourcingHandler := handlers.NewSourcingHandler(services.SourcingService)
		sourcingGroup := apiGroup.Group("/sourcing")
		{
			sourcingGroup.POST("/recommend", sourcingHandler.Recommend)
			sourcingGroup.POST("/rank", sourcingHandler.Rank)
		}
	}

	if services.IntentService != nil || services.RosterService != nil {
		agentHandler := handlers.NewAgentHandler(services.IntentService, services.RosterService)
		agentGroup := apiGroup.Group("", middleware.RateLimit(limiter))
		if services.IntentService != nil {
			agentGroup.POST("/process-intent", agentHandler.ProcessIntent)
		}
		if services.RosterService != nil {
			agentGroup.POST("/roster/assign", agentHandler.AssignRoster)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
