package routes

import (
	"hragent/internal/controllers"
	"hragent/internal/db"
	"hragent/internal/pkg/agent"
	"hragent/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter initializes all controllers and API routes
func SetupRouter(store *db.Store, verifier *agent.Verifier) *gin.Engine {
	hrController := controllers.HRController{
		Store:    store,
		Verifier: verifier,
		Reporter: &report.Reporter{DB: store.DB},
	}

	// Set up Gin router
	router := gin.Default()

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Group API routes under /api/v1
	api := router.Group("/api/v1")
	{
		// POST /api/v1/ask
		// Runs one question -> answer -> audit -> log cycle
		api.POST("/ask", hrController.Ask)

		// GET /api/v1/employees
		api.GET("/employees", hrController.GetEmployees)

		// GET /api/v1/logs
		api.GET("/logs", hrController.GetLogs)

		// GET /api/v1/stats
		api.GET("/stats", hrController.GetStats)
	}

	return router
}
