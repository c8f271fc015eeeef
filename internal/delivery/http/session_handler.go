package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
	"github.com/NiviGiridharan/smart-pantry-assistant/internal/workflow"
)

type createSessionRequest struct {
	SourceType string   `json:"sourceType" binding:"required"`
	Text       string   `json:"text"`
	Blocks     []string `json:"blocks"`
}

type advanceSessionRequest struct {
	Event string `json:"event" binding:"required"`
}

// CreateSession runs an extraction and opens a review session around it.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sourceType is required"})
		return
	}

	var (
		result *domain.Extraction
		err    error
	)
	switch req.SourceType {
	case "receipt":
		result, err = h.extraction.ParseReceipt(c.Request.Context(), req.Text)
	case "screenshots":
		result, err = h.extraction.ParseScreenshots(c.Request.Context(), req.Blocks)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sourceType must be 'receipt' or 'screenshots'"})
		return
	}
	if err != nil {
		respondExtractionError(c, err)
		return
	}

	session := workflow.NewSession()
	if err := session.AttachExtraction(result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open session"})
		return
	}
	h.sessions.Put(session)

	c.JSON(http.StatusCreated, session.Snapshot())
}

// GetSession returns a session by ID.
func (h *Handler) GetSession(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// AdvanceSession applies one workflow event to a session.
func (h *Handler) AdvanceSession(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	var req advanceSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event is required"})
		return
	}

	if err := session.Apply(workflow.Event(req.Event)); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to advance session"})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// UpdateSessionItem applies a user correction to one item and re-runs
// shelf-life matching on the edited name.
func (h *Handler) UpdateSessionItem(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var edit workflow.ItemEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item edit"})
		return
	}

	item, err := session.EditItem(itemID, edit)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to edit item"})
		return
	}

	// Rematch works on the copy EditItem returned; the result is written
	// back under the session lock.
	if err := h.extraction.Rematch(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to re-match item"})
		return
	}
	item, err = session.SetItemShelfLife(itemID, item.ShelfLife)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) lookupSession(c *gin.Context) (*workflow.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return nil, false
	}

	session, err := h.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}

	return session, true
}
