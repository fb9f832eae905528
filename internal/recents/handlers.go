package recents

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers contains HTTP handlers for the recents directory
type Handlers struct {
	service *Service
	logger  *log.Logger
}

// NewHandlers creates a new recents handlers instance
func NewHandlers(service *Service, logger *log.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// ListHandler handles GET /recents - lists or searches contacts
func (h *Handlers) ListHandler(c *gin.Context) {
	contacts := h.service.Search(c.Query("q"))

	c.JSON(http.StatusOK, ListResponse{
		Contacts: contacts,
		Total:    len(contacts),
	})
}

// NoteHandler handles POST /recents/note - annotates a contact
func (h *Handlers) NoteHandler(c *gin.Context) {
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"full_number\": \"+393331234567\"}"})
		return
	}

	contact, err := h.service.SetNote(req.FullNumber, req.Note)
	if err != nil {
		h.respondError(c, req.FullNumber, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// PinHandler handles POST /recents/pin - toggles the pinned flag
func (h *Handlers) PinHandler(c *gin.Context) {
	var req PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"full_number\": \"+393331234567\"}"})
		return
	}

	contact, err := h.service.TogglePinned(req.FullNumber)
	if err != nil {
		h.respondError(c, req.FullNumber, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// RemoveHandler handles POST /recents/remove - deletes a contact
func (h *Handlers) RemoveHandler(c *gin.Context) {
	var req RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"full_number\": \"+393331234567\"}"})
		return
	}

	if err := h.service.Remove(req.FullNumber); err != nil {
		h.respondError(c, req.FullNumber, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Contact removed", "full_number": req.FullNumber})
}

func (h *Handlers) respondError(c *gin.Context, fullNumber string, err error) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found", "full_number": fullNumber})
		return
	}
	h.logger.Printf("Recents operation failed for %s: %v", fullNumber, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
}
