package country

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers contains HTTP handlers for the region registry
type Handlers struct {
	registry  *Registry
	selection *Selection
}

// NewHandlers creates a new country handlers instance
func NewHandlers(registry *Registry, selection *Selection) *Handlers {
	return &Handlers{registry: registry, selection: selection}
}

// ListHandler handles GET /countries - returns the supported regions
func (h *Handlers) ListHandler(c *gin.Context) {
	regions := h.registry.All()
	out := make([]RegionResponse, 0, len(regions))
	for _, region := range regions {
		out = append(out, region.Response())
	}

	c.JSON(http.StatusOK, gin.H{
		"countries": out,
		"total":     len(out),
		"selected":  h.selection.DialCode(),
	})
}
