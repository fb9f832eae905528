package backup

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers contains HTTP handlers for bulk export/import
type Handlers struct {
	service *Service
	logger  *log.Logger
}

// NewHandlers creates a new backup handlers instance
func NewHandlers(service *Service, logger *log.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// ExportHandler handles GET /backup/export - dumps both stores
func (h *Handlers) ExportHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Export())
}

// ImportHandler handles POST /backup/import - replaces both stores.
// Any malformed record rejects the whole document.
func (h *Handlers) ImportHandler(c *gin.Context) {
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup document: " + err.Error()})
		return
	}

	if err := h.service.Import(doc); err != nil {
		h.logger.Printf("Backup import rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup document: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":       "Backup imported",
		"recents":   len(doc.Recents),
		"templates": len(doc.Templates),
	})
}
