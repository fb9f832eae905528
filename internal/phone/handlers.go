package phone

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/directpro/directpro-api/internal/country"
)

// Handlers contains HTTP handlers for phone intake
type Handlers struct {
	normalizer *Normalizer
	registry   *country.Registry
	selection  *country.Selection
	logger     *log.Logger
}

// NewHandlers creates a new phone handlers instance
func NewHandlers(normalizer *Normalizer, registry *country.Registry, selection *country.Selection, logger *log.Logger) *Handlers {
	return &Handlers{
		normalizer: normalizer,
		registry:   registry,
		selection:  selection,
		logger:     logger,
	}
}

// NormalizeHandler handles POST /phone/normalize - parses free-form input
func (h *Handlers) NormalizeHandler(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"input\": \"+39 333 123 4567\"}"})
		return
	}

	selected := req.DialCode
	if selected == "" {
		selected = h.selection.DialCode()
	}

	result := h.normalizer.Normalize(req.Input, selected)

	// Input carrying its own dial code moves the session selection,
	// mirroring the paste-a-full-number flow.
	if result.DialCode != selected {
		h.selection.Set(result.DialCode)
	}

	resp := NormalizeResponse{
		DialCode:       result.DialCode,
		NationalNumber: result.NationalNumber,
		KnownRegion:    result.KnownRegion,
	}
	if region, ok := h.registry.LookupByDialCode(result.DialCode); ok {
		resp.Region = region.Name
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateHandler handles POST /phone/validate - scores a normalized number
func (h *Handlers) ValidateHandler(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"dial_code\": \"+39\", \"national_number\": \"3331234567\"}"})
		return
	}

	region, known := h.registry.LookupByDialCode(req.DialCode)
	verdict := Validate(req.NationalNumber, region, known)

	c.JSON(http.StatusOK, verdict)
}
