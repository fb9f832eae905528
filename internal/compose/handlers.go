package compose

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handlers contains HTTP handlers for the compose confirm action
type Handlers struct {
	service *Service
	logger  *log.Logger
}

// NewHandlers creates a new compose handlers instance
func NewHandlers(service *Service, logger *log.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// OpenHandler handles POST /compose/open - confirms the draft, builds
// the outbound link and records the contact
func (h *Handlers) OpenHandler(c *gin.Context) {
	var req OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"input\": \"+39 333 123 4567\", \"message\": \"...\"}"})
		return
	}

	resp, err := h.service.Open(req, time.Now())
	if err != nil {
		if draftErr, ok := asInvalidDraftError(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid draft", "reason": draftErr.Reason})
			return
		}
		h.logger.Printf("Compose failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose link"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
