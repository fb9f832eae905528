package templates

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers contains HTTP handlers for message templates
type Handlers struct {
	service *Service
	logger  *log.Logger
}

// NewHandlers creates a new templates handlers instance
func NewHandlers(service *Service, logger *log.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// ListHandler handles GET /templates - lists templates, newest first
func (h *Handlers) ListHandler(c *gin.Context) {
	items := h.service.List()

	c.JSON(http.StatusOK, ListResponse{
		Templates: items,
		Total:     len(items),
	})
}

// AddHandler handles POST /templates - saves a new template
func (h *Handlers) AddHandler(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"label\": \"...\", \"body\": \"...\"}"})
		return
	}

	c.JSON(http.StatusOK, h.service.Add(req.Label, req.Body))
}

// UpdateHandler handles PUT /templates/:id - edits a template
func (h *Handlers) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"label\": \"...\", \"body\": \"...\"}"})
		return
	}

	t, err := h.service.Update(id, req.Label, req.Body)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found", "id": id})
			return
		}
		h.logger.Printf("Template update failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// RemoveHandler handles DELETE /templates/:id - deletes a template
func (h *Handlers) RemoveHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Remove(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found", "id": id})
			return
		}
		h.logger.Printf("Template removal failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Template removed", "id": id})
}
