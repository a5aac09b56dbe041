package transport

import (
	"net/http"

	"github.com/ds124wfegd/ezgif-api/internal/service"
	"github.com/ds124wfegd/ezgif-api/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

var endpoints = []string{
	"GET /",
	"GET /health",
	"GET /api/status",
	"POST /api/convert",
}

func InitRoutes(production bool, statusHandler *StatusHandler, convertHandler *ConvertHandler) *gin.Engine {
	router := gin.New()

	// Logger wraps Recovery so recovered panics are still logged as 500s.
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery(production))
	router.Use(middleware.CORS())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   service.ServiceName,
			"status":    "running",
			"endpoints": endpoints,
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": service.ServiceName,
		})
	})

	api := router.Group("/api")
	{
		api.GET("/status", statusHandler.GetStatus)
		api.POST("/convert", convertHandler.Convert)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
