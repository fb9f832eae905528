package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/directpro/directpro-api/internal/app"
)

// Handlers contains HTTP handlers for health checks
type Handlers struct {
	app *app.App
}

// NewHandlers creates a new health handlers instance
func NewHandlers(app *app.App) *Handlers {
	return &Handlers{app: app}
}

// RootHandler handles the root endpoint for Docker health checks
func (h *Handlers) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(h.app.StartTime).String(),
		"version": "1.0.0",
	})
}

// HealthCheckHandler handles the health check endpoint
func (h *Handlers) HealthCheckHandler(c *gin.Context) {
	h.app.Logger.Printf("Health check requested from %s", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"uptime":          time.Since(h.app.StartTime).String(),
		"recents_count":   h.app.Recents.Len(),
		"templates_count": h.app.Templates.Len(),
		"daily_count":     h.app.Counter.Current(time.Now()),
		"ai_enabled":      h.app.Refiner.Enabled(),
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

// HealthCheckHandlerWithSlash handles the health check endpoint with trailing slash
func (h *Handlers) HealthCheckHandlerWithSlash(c *gin.Context) {
	h.HealthCheckHandler(c)
}
