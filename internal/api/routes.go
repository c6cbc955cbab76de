package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes. metricsHandler serves /metrics and
// may be nil when telemetry is disabled.
func SetupRoutes(router *gin.Engine, handler *Handler, metricsHandler http.Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		analyze := v1.Group("/analyze")
		{
			analyze.POST("", handler.Analyze)            // POST /api/v1/analyze
			analyze.POST("/batch", handler.AnalyzeBatch) // POST /api/v1/analyze/batch
			analyze.POST("/file", handler.AnalyzeFile)   // POST /api/v1/analyze/file
		}
	}
}
