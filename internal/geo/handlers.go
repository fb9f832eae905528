package geo

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HintRequest represents device coordinates for region detection
type HintRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Handlers contains HTTP handlers for geo-based region detection
type Handlers struct {
	service *Service
	logger  *log.Logger
}

// NewHandlers creates a new geo handlers instance
func NewHandlers(service *Service, logger *log.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// HintHandler handles POST /geo/hint - applies a location-based default
// region. A failed or unmatched lookup is not an error; the response
// just reports applied=false and the selection stays as it was.
func (h *Handlers) HintHandler(c *gin.Context) {
	var req HintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"latitude\": 41.9, \"longitude\": 12.5}"})
		return
	}

	region, applied := h.service.ApplyHint(c.Request.Context(), req.Latitude, req.Longitude)
	if !applied {
		c.JSON(http.StatusOK, gin.H{"applied": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applied":   true,
		"dial_code": region.DialCode,
		"region":    region.Name,
	})
}
