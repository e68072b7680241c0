package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultServiceName is reported by the health check when none is configured
const DefaultServiceName = "pizza-restaurants-api"

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(serviceName string) gin.HandlerFunc {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}
