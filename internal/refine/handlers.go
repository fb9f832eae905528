package refine

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request represents a request to refine a draft message
type Request struct {
	Message string `json:"message" binding:"required"`
}

// Handlers contains HTTP handlers for AI message refinement
type Handlers struct {
	service *Service
	logger  *log.Logger
}

// NewHandlers creates a new refine handlers instance
func NewHandlers(service *Service, logger *log.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// RefineHandler handles POST /compose/refine - rewrites the draft body.
// Unlike the other collaborators, a failure here is surfaced to the
// user: they explicitly asked for it.
func (h *Handlers) RefineHandler(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"message\": \"...\"}"})
		return
	}

	refined, err := h.service.Refine(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI refinement is not configured"})
			return
		}
		h.logger.Printf("Refinement failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refine message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": refined})
}
