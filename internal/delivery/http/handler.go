package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
	"github.com/NiviGiridharan/smart-pantry-assistant/internal/usecase"
	"github.com/NiviGiridharan/smart-pantry-assistant/internal/workflow"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extraction *usecase.ExtractionService
	sessions   *workflow.Store
}

// NewHandler creates a new HTTP handler
func NewHandler(extraction *usecase.ExtractionService, sessions *workflow.Store) *Handler {
	return &Handler{
		extraction: extraction,
		sessions:   sessions,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "smart-pantry-assistant",
		"version": "1.0.0",
	})
}

type receiptRequest struct {
	Text string `json:"text" binding:"required"`
}

type screenshotsRequest struct {
	Blocks []string `json:"blocks" binding:"required"`
}

type rematchRequest struct {
	Name string `json:"name" binding:"required"`
}

// ParseReceipt extracts items and totals from one receipt's OCR text.
func (h *Handler) ParseReceipt(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	result, err := h.extraction.ParseReceipt(c.Request.Context(), req.Text)
	if err != nil {
		respondExtractionError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ParseScreenshots extracts items and totals from app-screenshot OCR blocks,
// concatenated in upload order.
func (h *Handler) ParseScreenshots(c *gin.Context) {
	var req screenshotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "blocks are required"})
		return
	}

	result, err := h.extraction.ParseScreenshots(c.Request.Context(), req.Blocks)
	if err != nil {
		respondExtractionError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Rematch resolves shelf-life info for a (possibly user-edited) item name.
func (h *Handler) Rematch(c *gin.Context) {
	var req rematchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	info, err := h.extraction.MatchName(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shelfLife": info})
}

func respondExtractionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "extraction failed"})
	}
}
