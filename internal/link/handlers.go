package link

import (
	"encoding/base64"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// qrSize is the rendered QR image edge in pixels
const qrSize = 256

// BuildRequest represents a request to build an outbound link
type BuildRequest struct {
	DialCode       string `json:"dial_code" binding:"required"`
	NationalNumber string `json:"national_number" binding:"required"`
	Message        string `json:"message"`
}

// Handlers contains HTTP handlers for link building and QR rendering
type Handlers struct {
	logger *log.Logger
}

// NewHandlers creates a new link handlers instance
func NewHandlers(logger *log.Logger) *Handlers {
	return &Handlers{logger: logger}
}

// BuildHandler handles POST /link/build - derives the wa.me link
func (h *Handlers) BuildHandler(c *gin.Context) {
	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: {\"dial_code\": \"+39\", \"national_number\": \"3331234567\"}"})
		return
	}

	built, err := Build(req.DialCode, req.NationalNumber, req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, built)
}

// QRImageHandler handles GET /link/qr - renders the link as a PNG QR code
func (h *Handlers) QRImageHandler(c *gin.Context) {
	dialCode := c.Query("dial_code")
	nationalNumber := c.Query("national_number")
	message := c.Query("message")

	if dialCode == "" || nationalNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing dial_code or national_number"})
		return
	}

	built, err := Build(dialCode, nationalNumber, message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qr, err := qrcode.New(built.URL, qrcode.Medium)
	if err != nil {
		h.logger.Printf("QR generation failed for %s: %v", built.Address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	png, err := qr.PNG(qrSize)
	if err != nil {
		h.logger.Printf("QR PNG encoding failed for %s: %v", built.Address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PNG"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"qrcode":  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"address": built.Address,
		"link":    built.URL,
	})
}
